package answercheck

import "strconv"

// checkMultipleChoice compares the selected option against the correct
// one with exact normalized equality. Options are discrete, so there is
// no fuzzy tolerance: a near-miss string is a different option, not a
// typo of the right one.
func checkMultipleChoice(q *MultipleChoice, ans string) Result {
	nu := Normalize(ans)
	nc := Normalize(q.Correct)
	return Result{
		IsCorrect:         nu == nc,
		NormalizedAnswer:  nu,
		NormalizedCorrect: nc,
	}
}

// checkTrueFalse compares the coerced boolean answer against the ground
// truth. A binary decision has no fuzziness.
func checkTrueFalse(q *TrueFalse, got bool) Result {
	return Result{
		IsCorrect:         got == q.CorrectValue,
		NormalizedAnswer:  strconv.FormatBool(got),
		NormalizedCorrect: strconv.FormatBool(q.CorrectValue),
	}
}
