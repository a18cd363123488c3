package analyzer

import "testing"

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "empty string",
			text: "",
			want: 0,
		},
		{
			name: "only whitespace",
			text: "   \t\n  ",
			want: 0,
		},
		{
			name: "single word",
			text: "hello",
			want: 1,
		},
		{
			name: "surrounding whitespace",
			text: "  hello   world  ",
			want: 2,
		},
		{
			name: "mixed whitespace separators",
			text: "one\ttwo\nthree four",
			want: 4,
		},
		{
			name: "punctuation counts as word content",
			text: "well, that's... something",
			want: 3,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := WordCount(test.text); got != test.want {
				t.Errorf("WordCount(%q) = %d, want %d", test.text, got, test.want)
			}
		})
	}
}

func TestWordCountIdempotent(t *testing.T) {
	text := "the quick brown fox"
	first := WordCount(text)
	second := WordCount(text)
	if first != second {
		t.Errorf("WordCount not idempotent: %d vs %d", first, second)
	}
}
