// Package analyzer provides the heuristic text-analysis operations
// used by the TextOps service.
package analyzer

const (
	// DefaultMaxSentences defines the default number of sentences
	// returned by a summary.
	DefaultMaxSentences = 2

	// DefaultTopN defines the default number of keywords returned
	// by keyword extraction.
	DefaultTopN = 5

	// MinKeywordLength is the minimum token length (exclusive) for a
	// token to qualify as a keyword candidate.
	MinKeywordLength = 2
)

// TextAnalyzer defines the interface for the heuristic text operations.
type TextAnalyzer interface {
	// WordCount returns the number of whitespace-delimited words in text.
	WordCount(text string) int

	// Summarize returns the first maxSentences sentences of text.
	Summarize(text string, maxSentences int) string

	// Keywords returns up to topN distinct tokens ordered by descending
	// frequency.
	Keywords(text string, topN int) []string

	// Initialize sets up the analyzer with any required configuration.
	Initialize() error
}
