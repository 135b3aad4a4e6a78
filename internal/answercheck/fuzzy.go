package answercheck

import (
	"fmt"
	"unicode/utf8"
)

// defaultMaxDistance is the edit-distance tolerance validators use unless
// they tighten it (fill_blanks_multi) or widen it (correction).
const defaultMaxDistance = 2

// shortWordLen is the normalized-length threshold at or below which only
// a single edit is tolerated. Short words are too easy to turn into a
// different word with two changes ("frog" -> "flag").
const shortWordLen = 4

// Match is the outcome of a fuzzy comparison.
type Match struct {
	// Ok reports whether the answer is within tolerance.
	Ok bool

	// Distance is the Levenshtein distance between the normalized forms.
	Distance int

	// Feedback carries a spelling correction when the match was fuzzy
	// (non-zero distance). Empty on an exact match.
	Feedback string
}

// FuzzyMatch compares a learner answer against a correct answer with
// edit-distance tolerance. Both sides are normalized first. The effective
// tolerance is length-aware: a normalized correct answer of four runes or
// fewer accepts only one edit regardless of maxDistance.
func FuzzyMatch(user, correct string, maxDistance int) Match {
	nu := Normalize(user)
	nc := Normalize(correct)

	if nu == nc {
		return Match{Ok: true}
	}

	allowed := maxDistance
	if utf8.RuneCountInString(nc) <= shortWordLen && allowed > 1 {
		allowed = 1
	}

	d := Levenshtein(nu, nc)
	if d > allowed {
		return Match{Distance: d}
	}
	return Match{
		Ok:       true,
		Distance: d,
		Feedback: fmt.Sprintf("Correct! (Spelling: %q)", correct),
	}
}

// Levenshtein computes the edit distance between a and b: the minimum
// number of single-rune insertions, deletions, and substitutions to turn
// one into the other. Transpositions are not a single edit. O(n*m) time,
// single-row storage.
func Levenshtein(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	n, m := len(ar), len(br)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	row := make([]int, m+1)
	for j := 0; j <= m; j++ {
		row[j] = j
	}
	for i := 1; i <= n; i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= m; j++ {
			diag := prev
			prev = row[j]
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			row[j] = min(row[j]+1, min(row[j-1]+1, diag+cost))
		}
	}
	return row[m]
}
