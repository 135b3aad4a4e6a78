package answercheck

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"Hello", "hello"},
		{"  Hello  World  ", "hello world"},
		{"Hello, world!", "hello world"},
		{"The quick (brown) fox.", "the quick brown fox"},
		{"don't", "don't"},
		{"Don't stop!", "don't stop"},
		{"semi;colon:and\"quotes\"", "semicolonandquotes"},
		{"tabs\tand\nnewlines", "tabs and newlines"},
		{"[bracketed] {braced}", "bracketed braced"},
		{"well-known", "wellknown"},
		{"?!.,", ""},
	}

	for _, tc := range tests {
		got := Normalize(tc.input)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "Hello, World!", "  spaced   out  ", "don't panic", "a-b-c (d)",
	}
	for _, s := range inputs {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two three", 3},
		{"  padded   words  here ", 3},
	}
	for _, tc := range tests {
		if got := wordCount(tc.input); got != tc.want {
			t.Errorf("wordCount(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}
