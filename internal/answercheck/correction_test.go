package answercheck

import (
	"strings"
	"testing"
)

func TestCorrectionWholeText(t *testing.T) {
	q := &Correction{
		Base:          Base{Text: "Fix the sentence.", Correct: "She goes to school every day."},
		SourceText:    "She go to school evry day.",
		CorrectedText: "She goes to school every day.",
		Errors: []CorrectionEdit{
			{Original: "go", Correction: "goes"},
			{Original: "evry", Correction: "every"},
		},
	}

	res, err := Validate(q, Text("She goes to school every day"))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect {
		t.Error("expected exact rewrite to pass")
	}

	// Within the widened whole-text tolerance.
	res, err = Validate(q, Text("She goes to school evry day."))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect {
		t.Error("expected near rewrite to pass at maxDistance=3")
	}
}

func TestCorrectionFallbackCounting(t *testing.T) {
	q := &Correction{
		Base:          Base{Correct: "The dogs were barking loudly all night."},
		SourceText:    "The dogs was barking loud all nite.",
		CorrectedText: "The dogs were barking loudly all night.",
		Errors: []CorrectionEdit{
			{Original: "was", Correction: "were"},
			{Original: "loud", Correction: "loudly"},
			{Original: "nite", Correction: "night"},
		},
	}

	// Far from the corrected text, but two of three fixes present.
	res, err := Validate(q, Text("Those dogs were barking loudly yesterday"))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("expected incorrect with one fix missing")
	}
	if want := 2.0 / 3.0; res.PartialScore != want {
		t.Errorf("PartialScore = %v, want %v", res.PartialScore, want)
	}
	if !strings.Contains(res.Feedback, "2/3 corrections found") {
		t.Errorf("Feedback = %q, want correction count", res.Feedback)
	}
}

func TestCorrectionNothingFound(t *testing.T) {
	q := &Correction{
		Base:          Base{Correct: "He has two apples."},
		SourceText:    "He have too apple.",
		CorrectedText: "He has two apples.",
		Errors: []CorrectionEdit{
			{Original: "have", Correction: "has"},
			{Original: "too", Correction: "two apples"},
		},
	}

	res, err := Validate(q, Text("something else entirely written here"))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("expected incorrect")
	}
	if res.PartialScore != 0 {
		t.Errorf("PartialScore = %v, want 0", res.PartialScore)
	}
	if !strings.Contains(res.Feedback, q.CorrectedText) {
		t.Errorf("Feedback = %q, want the corrected text surfaced", res.Feedback)
	}
}
