package answercheck

import (
	"errors"
	"testing"
)

func TestValidateShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		ans  Answer
	}{
		{"multiple_choice wants text", &MultipleChoice{Base: Base{Correct: "cow"}}, Bool(true)},
		{"matching wants map", &Matching{Base: Base{Correct: "x"}}, Text("cow")},
		{"ordering wants list", &Ordering{Base: Base{Correct: "x"}}, Map{"a": "b"}},
		{"true_false wants bool or text", &TrueFalse{Base: Base{Correct: "true"}}, List{"true"}},
		{"categorization wants group map", &Categorization{Base: Base{Correct: "x"}}, Map{"a": "b"}},
	}

	for _, tc := range tests {
		_, err := Validate(tc.q, tc.ans)
		var shapeErr *ErrAnswerShape
		if !errors.As(err, &shapeErr) {
			t.Errorf("%s: err = %v, want *ErrAnswerShape", tc.name, err)
		}
	}
}

func TestValidateReadingComprehension(t *testing.T) {
	q := &ReadingComprehension{
		Base:    Base{Text: "Read the passage.", Correct: "see sub-questions"},
		Passage: "The fox lived in the forest.",
		SubQuestions: []Question{
			&TrueFalse{Base: Base{Correct: "True"}, CorrectValue: true},
			&WritingShort{Base: Base{Correct: "forest"}},
		},
	}

	_, err := Validate(q, Text("anything"))
	var composite *ErrComposite
	if !errors.As(err, &composite) {
		t.Fatalf("err = %v, want *ErrComposite", err)
	}
	if composite.SubQuestions != 2 {
		t.Errorf("SubQuestions = %d, want 2", composite.SubQuestions)
	}

	// The sub-questions themselves validate normally.
	res, err := Validate(q.SubQuestions[0], Bool(true))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect {
		t.Error("expected sub-question to grade on its own")
	}
}

func TestValidateUnknownTypeFallback(t *testing.T) {
	q := &Generic{
		Base:    Base{Text: "Mystery question", Correct: "forty two"},
		RawType: "word_search",
	}

	res, err := Validate(q, Text("  FORTY two! "))
	if err != nil {
		t.Fatalf("fallback must not error: %v", err)
	}
	if !res.IsCorrect {
		t.Error("expected normalized equality fallback to accept")
	}
	if res.Feedback == "" {
		t.Error("fallback must note how the answer was checked")
	}

	res, err = Validate(q, Text("forty three"))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("fallback comparison is exact, not fuzzy")
	}
}

func TestValidateResultNormalizedForms(t *testing.T) {
	q := &FillBlank{Base: Base{Correct: "Jumped"}}
	res, err := Validate(q, Text("  JUMPED! "))
	if err != nil {
		t.Fatal(err)
	}
	if res.NormalizedAnswer != "jumped" {
		t.Errorf("NormalizedAnswer = %q, want %q", res.NormalizedAnswer, "jumped")
	}
	if res.NormalizedCorrect != "jumped" {
		t.Errorf("NormalizedCorrect = %q, want %q", res.NormalizedCorrect, "jumped")
	}
}
