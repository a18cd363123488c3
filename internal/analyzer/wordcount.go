package analyzer

import "strings"

// WordCount counts the maximal whitespace-delimited substrings of text that
// contain at least one non-whitespace character. An empty or all-whitespace
// input yields 0.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
