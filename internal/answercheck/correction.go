package answercheck

import (
	"fmt"
	"strings"
)

// correctionMaxDistance is the whole-text tolerance for correction
// questions. Corrected sentences are longer than single-word answers, so
// the budget is wider.
const correctionMaxDistance = 3

// checkCorrection first tries a whole-text fuzzy match against the fully
// corrected text. If that fails, it falls back to counting which declared
// fixes appear in the answer, awarding proportional credit.
func checkCorrection(q *Correction, ans string) Result {
	if m := FuzzyMatch(ans, q.CorrectedText, correctionMaxDistance); m.Ok {
		return Result{
			IsCorrect:         true,
			Feedback:          m.Feedback,
			NormalizedAnswer:  Normalize(ans),
			NormalizedCorrect: Normalize(q.CorrectedText),
		}
	}

	base := Result{
		NormalizedAnswer:  Normalize(ans),
		NormalizedCorrect: Normalize(q.CorrectedText),
	}

	total := len(q.Errors)
	if total == 0 {
		base.Feedback = fmt.Sprintf("The corrected sentence is: %s", q.CorrectedText)
		return base
	}

	na := Normalize(ans)
	found := 0
	for _, e := range q.Errors {
		if strings.Contains(na, Normalize(e.Correction)) {
			found++
		}
	}

	base = base.partial(float64(found) / float64(total))
	if found == 0 {
		base.Feedback = fmt.Sprintf("The corrected sentence is: %s", q.CorrectedText)
		return base
	}
	// All declared fixes present counts as correct even when the learner
	// rephrased the rest of the sentence beyond fuzzy reach.
	base.IsCorrect = found == total
	if !base.IsCorrect {
		base.Feedback = fmt.Sprintf("%d/%d corrections found", found, total)
	}
	return base
}
