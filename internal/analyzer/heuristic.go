package analyzer

// HeuristicAnalyzer is the default implementation of the TextAnalyzer
// interface. It delegates to the package-level heuristic functions and
// carries no state, so a single instance is safe for concurrent use.
type HeuristicAnalyzer struct{}

// NewHeuristicAnalyzer creates a new HeuristicAnalyzer instance.
func NewHeuristicAnalyzer() *HeuristicAnalyzer {
	return &HeuristicAnalyzer{}
}

// Initialize sets up the analyzer with any required configuration.
func (a *HeuristicAnalyzer) Initialize() error {
	return nil // No initialization needed for the heuristic analyzer
}

// WordCount returns the number of whitespace-delimited words in text.
func (a *HeuristicAnalyzer) WordCount(text string) int {
	return WordCount(text)
}

// Summarize returns the first maxSentences sentences of text.
func (a *HeuristicAnalyzer) Summarize(text string, maxSentences int) string {
	return Summarize(text, maxSentences)
}

// Keywords returns up to topN distinct tokens ordered by descending frequency.
func (a *HeuristicAnalyzer) Keywords(text string, topN int) []string {
	return Keywords(text, topN)
}
