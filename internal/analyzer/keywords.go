package analyzer

import (
	"sort"
	"strings"
)

// Keywords extracts up to topN keyword candidates from text, ordered by
// descending frequency. Tokens are lowercased and tokens of length
// MinKeywordLength or shorter are discarded before counting. When two tokens
// have the same count, the one whose first occurrence appears earlier in the
// text ranks higher. A zero or negative topN yields an empty result.
func Keywords(text string, topN int) []string {
	if topN <= 0 {
		return nil
	}

	type tokenCount struct {
		token string
		count int
	}

	// Counting preserves first-occurrence order so that the stable sort
	// below breaks frequency ties by earliest appearance.
	index := make(map[string]int)
	var counts []tokenCount

	for _, token := range Tokenize(text) {
		if len(token) <= MinKeywordLength {
			continue
		}
		pos, seen := index[token]
		if !seen {
			index[token] = len(counts)
			counts = append(counts, tokenCount{token: token})
			pos = len(counts) - 1
		}
		counts[pos].count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})

	if topN > len(counts) {
		topN = len(counts)
	}

	keywords := make([]string, 0, topN)
	for _, tc := range counts[:topN] {
		keywords = append(keywords, tc.token)
	}
	return keywords
}

// Tokenize splits text into maximal runs of ASCII letters, ASCII digits and
// apostrophes, lowercased. All other characters separate tokens.
func Tokenize(text string) []string {
	var tokens []string
	start := -1

	for i := 0; i < len(text); i++ {
		if isTokenByte(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, strings.ToLower(text[start:i]))
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, strings.ToLower(text[start:]))
	}

	return tokens
}

// isTokenByte reports whether b belongs to a token. The token character
// classes are ASCII only, so byte-wise scanning is safe on UTF-8 input.
func isTokenByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '\'':
		return true
	}
	return false
}
