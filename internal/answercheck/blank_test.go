package answercheck

import (
	"strings"
	"testing"
)

func TestFillBlank(t *testing.T) {
	q := &FillBlank{
		Base:              Base{Text: "Complete the sentence.", Correct: "jumped"},
		Sentence:          "The frog ___ over the log.",
		AcceptableAnswers: []string{"leaped"},
	}

	tests := []struct {
		answer       string
		want         bool
		wantFeedback string
	}{
		{"jumped", true, ""},
		{"jumpd", true, `Correct! (Spelling: "jumped")`},
		{"leaped", true, ""},
		{"leapt", true, `Correct! (Spelling: "leaped")`},
		{"crawled", false, ""},
	}

	for _, tc := range tests {
		res, err := Validate(q, Text(tc.answer))
		if err != nil {
			t.Fatalf("Validate(%q): %v", tc.answer, err)
		}
		if res.IsCorrect != tc.want {
			t.Errorf("fill_blank answer %q: IsCorrect = %v, want %v", tc.answer, res.IsCorrect, tc.want)
		}
		if res.Feedback != tc.wantFeedback {
			t.Errorf("fill_blank answer %q: Feedback = %q, want %q", tc.answer, res.Feedback, tc.wantFeedback)
		}
	}
}

func TestFillBlanksMulti(t *testing.T) {
	q := &FillBlanksMulti{
		Base:     Base{Text: "Fill in both blanks.", Correct: "sun, moon"},
		Sentence: "The (1) shines by day and the (2) by night.",
		Blanks: []Blank{
			{Position: 1, Acceptable: []string{"sun"}},
			{Position: 2, Acceptable: []string{"moon"}},
		},
	}

	res, err := Validate(q, Map{"1": "sun", "2": "moon"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect {
		t.Error("expected all blanks correct")
	}
	if !res.HasPartial || res.PartialScore != 1.0 {
		t.Errorf("PartialScore = %v, want 1.0", res.PartialScore)
	}

	res, err = Validate(q, Map{"1": "sun", "2": "stars"})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("expected incorrect with one wrong blank")
	}
	if res.PartialScore != 0.5 {
		t.Errorf("PartialScore = %v, want 0.5", res.PartialScore)
	}
	if !strings.Contains(res.Feedback, "Blank 2: incorrect") {
		t.Errorf("Feedback = %q, want mention of blank 2", res.Feedback)
	}
}

func TestFillBlanksMultiTightTolerance(t *testing.T) {
	q := &FillBlanksMulti{
		Base:     Base{Correct: "elephant"},
		Sentence: "An (1) never forgets.",
		Blanks: []Blank{
			{Position: 1, Acceptable: []string{"elephant"}},
		},
	}

	// One edit passes at the tightened per-blank tolerance.
	res, err := Validate(q, Map{"1": "elephantt"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect {
		t.Error("expected distance-1 blank to pass")
	}

	// Two edits would pass the default tolerance but not the per-blank one.
	res, err = Validate(q, Map{"1": "elefant"})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("expected distance-2 blank to fail at maxDistance=1")
	}
}

func TestFillBlanksMultiMalformedBlank(t *testing.T) {
	q := &FillBlanksMulti{
		Base:     Base{Correct: "sun, moon"},
		Sentence: "The (1) shines by day and the (2) by night.",
		Blanks: []Blank{
			{Position: 1, Acceptable: []string{"sun"}},
			{Position: 2}, // extraction produced no acceptable answers
		},
	}

	res, err := Validate(q, Map{"1": "sun", "2": "moon"})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("a blank with no acceptable answers must not grade as correct")
	}
	if res.PartialScore != 0.5 {
		t.Errorf("PartialScore = %v, want 0.5", res.PartialScore)
	}
	if !strings.Contains(res.Feedback, "Blank 2: no acceptable answers") {
		t.Errorf("Feedback = %q, want mention of the malformed blank", res.Feedback)
	}
}

func TestFillBlanksMultiEmpty(t *testing.T) {
	q := &FillBlanksMulti{Base: Base{Correct: "n/a"}}
	res, err := Validate(q, Map{})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("question with no blanks must not grade as correct")
	}
	if res.Feedback == "" {
		t.Error("expected descriptive feedback for empty blank set")
	}
}
