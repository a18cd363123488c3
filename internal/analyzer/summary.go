package analyzer

import (
	"strings"
	"unicode"
)

// Summarize produces a simple extractive summary by taking the first
// maxSentences sentences of the text in original order, joined by a single
// space. It returns an empty string when maxSentences is zero or negative.
// Text with no terminal punctuation is treated as a single sentence.
func Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 {
		return ""
	}

	sentences := SplitSentences(text)
	if len(sentences) > maxSentences {
		sentences = sentences[:maxSentences]
	}

	return strings.Join(sentences, " ")
}

// SplitSentences splits text into sentences after trimming leading and
// trailing whitespace. A sentence boundary is the position immediately after
// a '.', '!' or '?' that is followed by one or more whitespace characters;
// the boundary whitespace is consumed and belongs to neither sentence.
// Empty fragments are discarded.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if !isSentenceTerminator(c) {
			continue
		}
		if i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			continue
		}

		if fragment := string(runes[start : i+1]); fragment != "" {
			sentences = append(sentences, fragment)
		}

		// Consume the whitespace run separating the sentences.
		i++
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		start = i
		i--
	}

	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}

	return sentences
}

// isSentenceTerminator reports whether c ends a sentence when followed by
// whitespace.
func isSentenceTerminator(c rune) bool {
	return c == '.' || c == '!' || c == '?'
}
