package answercheck

import (
	"fmt"
	"strings"
)

// writingSentencePassBar is the key-element coverage at or above which a
// sentence counts as correct.
const writingSentencePassBar = 0.75

// checkWritingShort grades a short free-text answer. The word-count cap
// is applied before any matching so an overlong answer short-circuits.
func checkWritingShort(q *WritingShort, ans string) Result {
	if q.MaxWords > 0 {
		if n := wordCount(ans); n > q.MaxWords {
			return Result{
				Feedback:          fmt.Sprintf("Answer is too long: %d words (limit %d).", n, q.MaxWords),
				NormalizedAnswer:  Normalize(ans),
				NormalizedCorrect: Normalize(q.Correct),
			}
		}
	}
	return matchAnyAcceptable(ans, acceptableSet(q.Correct, q.AcceptableAnswers), defaultMaxDistance)
}

// checkWritingSentence grades a full sentence. Word-count bounds gate
// first; with key elements declared, correctness is coverage of those
// phrases in the normalized answer; without them, any answer of at least
// three words passes and the model answer is surfaced.
func checkWritingSentence(q *WritingSentence, ans string) Result {
	words := wordCount(ans)
	base := Result{
		NormalizedAnswer:  Normalize(ans),
		NormalizedCorrect: Normalize(q.ModelAnswer),
	}

	if q.MinWords > 0 && words < q.MinWords {
		base.Feedback = fmt.Sprintf("Answer is too short: %d words (need at least %d).", words, q.MinWords)
		return base
	}
	if q.MaxWords > 0 && words > q.MaxWords {
		base.Feedback = fmt.Sprintf("Answer is too long: %d words (limit %d).", words, q.MaxWords)
		return base
	}

	if len(q.KeyElements) == 0 {
		// Permissive fallback: no key phrases to check, so any real
		// sentence is accepted.
		if words >= 3 {
			base.IsCorrect = true
			base.Feedback = fmt.Sprintf("Example answer: %s", q.ModelAnswer)
			return base
		}
		base.Feedback = fmt.Sprintf("Try writing a full sentence. Example: %s", q.ModelAnswer)
		return base
	}

	na := Normalize(ans)
	found := 0
	var missing []string
	for _, k := range q.KeyElements {
		if strings.Contains(na, Normalize(k)) {
			found++
		} else {
			missing = append(missing, k)
		}
	}

	score := float64(found) / float64(len(q.KeyElements))
	base = base.partial(score)
	base.IsCorrect = score >= writingSentencePassBar
	if !base.IsCorrect {
		base.Feedback = fmt.Sprintf("Missing: %s. Example answer: %s", strings.Join(missing, ", "), q.ModelAnswer)
	}
	return base
}
