package util

import "strings"

// Preview returns a single-line prefix of text no longer than maxLen bytes,
// for use in log fields. Newlines are collapsed to spaces and truncation is
// marked with an ellipsis. It never splits a UTF-8 sequence.
func Preview(text string, maxLen int) string {
	text = strings.Join(strings.Fields(text), " ")
	if maxLen <= 0 || len(text) <= maxLen {
		return text
	}

	cut := maxLen
	for cut > 0 && text[cut]&0xC0 == 0x80 {
		cut--
	}
	return text[:cut] + "..."
}
