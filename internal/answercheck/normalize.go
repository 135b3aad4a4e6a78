package answercheck

import (
	"strings"
	"unicode"
)

// strippedPunct is the punctuation removed during normalization.
// Apostrophes are deliberately absent so contractions survive
// ("don't" stays "don't").
const strippedPunct = ".,!?;:\"-()[]{}"

// Normalize canonicalizes a string for comparison: lowercase, strip
// punctuation, collapse whitespace runs to a single space, trim. It is
// pure and total (empty in, empty out) and idempotent. Every comparison
// in the engine normalizes both sides to avoid asymmetric bias.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
		case strings.ContainsRune(strippedPunct, r):
			// skip
		default:
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// wordCount counts whitespace-separated words in the raw (un-normalized)
// answer. Word-count gates run before normalization so stripped
// punctuation can't merge words.
func wordCount(s string) int {
	return len(strings.Fields(s))
}
