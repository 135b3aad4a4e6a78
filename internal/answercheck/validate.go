package answercheck

import "strings"

// Validate routes a (question, answer) pair to the validator for the
// question's concrete type and is the engine's single entry point.
//
// Contract notes:
//   - An answer whose shape doesn't fit the question type returns
//     *ErrAnswerShape; shape mismatches are caller bugs, never verdicts.
//   - *ReadingComprehension returns *ErrComposite; callers grade its
//     SubQuestions one by one.
//   - Any question outside the known variants (notably *Generic, carrying
//     an unrecognized AI-extracted type tag) falls back to plain
//     normalized equality against the question's Correct field.
func Validate(q Question, ans Answer) (Result, error) {
	switch qq := q.(type) {
	case *MultipleChoice:
		s, err := wantText(qq, ans)
		if err != nil {
			return Result{}, err
		}
		return checkMultipleChoice(qq, s), nil

	case *FillBlank:
		s, err := wantText(qq, ans)
		if err != nil {
			return Result{}, err
		}
		return checkFillBlank(qq, s), nil

	case *WritingShort:
		s, err := wantText(qq, ans)
		if err != nil {
			return Result{}, err
		}
		return checkWritingShort(qq, s), nil

	case *TrueFalse:
		b, err := wantBool(qq, ans)
		if err != nil {
			return Result{}, err
		}
		return checkTrueFalse(qq, b), nil

	case *Matching:
		m, err := wantMap(qq, ans)
		if err != nil {
			return Result{}, err
		}
		return checkMatching(qq, m), nil

	case *Ordering:
		l, err := wantList(qq, ans)
		if err != nil {
			return Result{}, err
		}
		return checkOrdering(qq, l), nil

	case *FillBlanksMulti:
		m, err := wantMap(qq, ans)
		if err != nil {
			return Result{}, err
		}
		return checkFillBlanksMulti(qq, m), nil

	case *WritingSentence:
		s, err := wantText(qq, ans)
		if err != nil {
			return Result{}, err
		}
		return checkWritingSentence(qq, s), nil

	case *Correction:
		s, err := wantText(qq, ans)
		if err != nil {
			return Result{}, err
		}
		return checkCorrection(qq, s), nil

	case *Categorization:
		g, err := wantGroupMap(qq, ans)
		if err != nil {
			return Result{}, err
		}
		return checkCategorization(qq, g), nil

	case *ReadingComprehension:
		return Result{}, &ErrComposite{SubQuestions: len(qq.SubQuestions)}

	default:
		return checkFallback(q, ans), nil
	}
}

// checkFallback grades an unrecognized question variant by comparing the
// answer, rendered to text, against the canonical correct string. Never
// an error: upstream AI-extracted data is not schema-guaranteed and a
// malformed record should still grade rather than crash a session.
func checkFallback(q Question, ans Answer) Result {
	nu := Normalize(answerText(ans))
	nc := Normalize(q.Common().Correct)
	return Result{
		IsCorrect:         nu == nc,
		Feedback:          "Unrecognized question type; answer was compared against the expected answer text.",
		NormalizedAnswer:  nu,
		NormalizedCorrect: nc,
	}
}

// answerText renders any answer shape as a plain string for the
// fallback comparison.
func answerText(ans Answer) string {
	switch a := ans.(type) {
	case Text:
		return string(a)
	case Bool:
		if a {
			return "true"
		}
		return "false"
	case List:
		return strings.Join(a, " ")
	case Map:
		return normalizeMap(a)
	case GroupMap:
		return normalizeGroupMap(a)
	default:
		return ""
	}
}

func wantText(q Question, ans Answer) (string, error) {
	t, ok := ans.(Text)
	if !ok {
		return "", &ErrAnswerShape{Question: q.Type(), Want: "Text", Got: ans}
	}
	return string(t), nil
}

// wantBool accepts a Bool answer or a Text answer spelling a boolean:
// "true" (any casing) coerces to true, anything else to false.
func wantBool(q Question, ans Answer) (bool, error) {
	switch a := ans.(type) {
	case Bool:
		return bool(a), nil
	case Text:
		return strings.EqualFold(strings.TrimSpace(string(a)), "true"), nil
	default:
		return false, &ErrAnswerShape{Question: q.Type(), Want: "Bool or Text", Got: ans}
	}
}

func wantList(q Question, ans Answer) (List, error) {
	l, ok := ans.(List)
	if !ok {
		return nil, &ErrAnswerShape{Question: q.Type(), Want: "List", Got: ans}
	}
	return l, nil
}

func wantMap(q Question, ans Answer) (Map, error) {
	m, ok := ans.(Map)
	if !ok {
		return nil, &ErrAnswerShape{Question: q.Type(), Want: "Map", Got: ans}
	}
	return m, nil
}

func wantGroupMap(q Question, ans Answer) (GroupMap, error) {
	g, ok := ans.(GroupMap)
	if !ok {
		return nil, &ErrAnswerShape{Question: q.Type(), Want: "GroupMap", Got: ans}
	}
	return g, nil
}
