package answercheck

import (
	"fmt"
	"strconv"
	"strings"
)

// checkFillBlank grades a single blank against the union of the canonical
// answer and any alternate spellings.
func checkFillBlank(q *FillBlank, ans string) Result {
	return matchAnyAcceptable(ans, acceptableSet(q.Correct, q.AcceptableAnswers), defaultMaxDistance)
}

// checkFillBlanksMulti grades each numbered blank against its private
// acceptable-answer set. Blanks hold short words, so the tolerance is
// tightened to a single edit. The learner's map is keyed by blank number
// ("1", "2", ...). A blank extracted with no acceptable answers counts
// against the total and gets its own note; it can never award credit.
func checkFillBlanksMulti(q *FillBlanksMulti, ans Map) Result {
	total := len(q.Blanks)
	if total == 0 {
		return Result{
			Feedback:          "This question has no blanks to grade.",
			NormalizedAnswer:  normalizeMap(ans),
			NormalizedCorrect: Normalize(q.Correct),
		}
	}

	correct := 0
	var notes []string
	for _, b := range q.Blanks {
		if len(b.Acceptable) == 0 {
			notes = append(notes, fmt.Sprintf("Blank %d: no acceptable answers were extracted for this blank", b.Position))
			continue
		}
		got := ans[strconv.Itoa(b.Position)]
		sub := matchAnyAcceptable(got, b.Acceptable, 1)
		if sub.IsCorrect {
			correct++
			if sub.Feedback != "" {
				notes = append(notes, fmt.Sprintf("Blank %d: %s", b.Position, sub.Feedback))
			}
		} else {
			notes = append(notes, fmt.Sprintf("Blank %d: incorrect", b.Position))
		}
	}

	r := Result{
		IsCorrect:         correct == total,
		Feedback:          strings.Join(notes, " "),
		NormalizedAnswer:  normalizeMap(ans),
		NormalizedCorrect: Normalize(q.Correct),
	}
	return r.partial(float64(correct) / float64(total))
}
