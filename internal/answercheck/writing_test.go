package answercheck

import (
	"strings"
	"testing"
)

func TestWritingShort(t *testing.T) {
	q := &WritingShort{
		Base:              Base{Text: "What do bees make?", Correct: "honey"},
		AcceptableAnswers: []string{"wax"},
		MaxWords:          3,
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{"honey", true},
		{"honney", true}, // distance 1
		{"wax", true},
		{"pollen", false},
	}

	for _, tc := range tests {
		res, err := Validate(q, Text(tc.answer))
		if err != nil {
			t.Fatalf("Validate(%q): %v", tc.answer, err)
		}
		if res.IsCorrect != tc.want {
			t.Errorf("writing_short answer %q: IsCorrect = %v, want %v", tc.answer, res.IsCorrect, tc.want)
		}
	}
}

func TestWritingShortMaxWordsGate(t *testing.T) {
	q := &WritingShort{
		Base:     Base{Correct: "honey"},
		MaxWords: 2,
	}

	// Over the cap the validator short-circuits before fuzzy matching,
	// even though the answer contains the correct word.
	res, err := Validate(q, Text("bees make sweet honey"))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("expected length violation to fail before matching")
	}
	if !strings.Contains(res.Feedback, "too long") {
		t.Errorf("Feedback = %q, want a length-violation message", res.Feedback)
	}
}

func TestWritingSentenceKeyElements(t *testing.T) {
	q := &WritingSentence{
		Base:        Base{Text: "Why do you wear a coat in winter?", Correct: "Because it is cold."},
		ModelAnswer: "I wear a coat because it is cold.",
		KeyElements: []string{"because"},
	}

	// Grammatical sentence missing the key word.
	res, err := Validate(q, Text("It is very cold in winter."))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("expected incorrect without key element")
	}
	if !res.HasPartial || res.PartialScore != 0 {
		t.Errorf("PartialScore = %v, want 0", res.PartialScore)
	}
	if !strings.Contains(res.Feedback, q.ModelAnswer) {
		t.Errorf("Feedback = %q, want reference to the model answer", res.Feedback)
	}

	res, err = Validate(q, Text("I wear one because winter is cold."))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect {
		t.Error("expected correct with key element present")
	}
	if res.PartialScore != 1.0 {
		t.Errorf("PartialScore = %v, want 1.0", res.PartialScore)
	}
}

func TestWritingSentenceCoverageBar(t *testing.T) {
	q := &WritingSentence{
		Base:        Base{Correct: "model"},
		ModelAnswer: "The sun gives us light and heat and helps plants grow.",
		KeyElements: []string{"light", "heat", "plants", "grow"},
	}

	// 3 of 4 = 0.75 meets the bar.
	res, err := Validate(q, Text("The sun gives light and heat so plants are happy."))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect {
		t.Errorf("expected 0.75 coverage to pass, got PartialScore=%v", res.PartialScore)
	}

	// 2 of 4 = 0.5 does not.
	res, err = Validate(q, Text("The sun gives light and heat."))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("expected 0.5 coverage to fail")
	}
	if res.PartialScore != 0.5 {
		t.Errorf("PartialScore = %v, want 0.5", res.PartialScore)
	}
}

func TestWritingSentenceNoKeyElements(t *testing.T) {
	q := &WritingSentence{
		Base:        Base{Correct: "model"},
		ModelAnswer: "A big red dog ran fast.",
	}

	res, err := Validate(q, Text("The dog is fast."))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect {
		t.Error("expected any three-word sentence to pass without key elements")
	}
	if !strings.Contains(res.Feedback, q.ModelAnswer) {
		t.Errorf("Feedback = %q, want the model answer surfaced", res.Feedback)
	}

	res, err = Validate(q, Text("dog fast"))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("expected a two-word answer to fail the permissive fallback")
	}
}

func TestWritingSentenceWordBounds(t *testing.T) {
	q := &WritingSentence{
		Base:        Base{Correct: "model"},
		ModelAnswer: "A proper sentence.",
		MinWords:    4,
		MaxWords:    8,
	}

	res, err := Validate(q, Text("Too short."))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect || !strings.Contains(res.Feedback, "too short") {
		t.Errorf("expected min-words violation, got IsCorrect=%v Feedback=%q", res.IsCorrect, res.Feedback)
	}

	res, err = Validate(q, Text("This answer goes on and on and on and on and on."))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect || !strings.Contains(res.Feedback, "too long") {
		t.Errorf("expected max-words violation, got IsCorrect=%v Feedback=%q", res.IsCorrect, res.Feedback)
	}
}
