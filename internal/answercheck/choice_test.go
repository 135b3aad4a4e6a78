package answercheck

import "testing"

func TestMultipleChoiceStrict(t *testing.T) {
	q := &MultipleChoice{
		Base:    Base{Text: "Which animal says moo?", Correct: "cow"},
		Options: []string{"cow", "cat", "dog"},
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{"cow", true},
		{"Cow", true},
		{"  cow  ", true},
		{"cat", false},
		{"cows", false}, // one edit off is still the wrong option
		{"caw", false},
		{"", false},
	}

	for _, tc := range tests {
		res, err := Validate(q, Text(tc.answer))
		if err != nil {
			t.Fatalf("Validate(%q): %v", tc.answer, err)
		}
		if res.IsCorrect != tc.want {
			t.Errorf("multiple_choice answer %q: IsCorrect = %v, want %v", tc.answer, res.IsCorrect, tc.want)
		}
		if res.HasPartial {
			t.Errorf("multiple_choice should not produce a partial score")
		}
	}
}

func TestTrueFalse(t *testing.T) {
	q := &TrueFalse{
		Base:         Base{Text: "Spiders are insects.", Correct: "False"},
		CorrectValue: false,
	}

	tests := []struct {
		answer Answer
		want   bool
	}{
		{Bool(false), true},
		{Bool(true), false},
		{Text("false"), true},
		{Text("False"), true},
		{Text("True"), false},
		{Text("TRUE"), false},
		{Text("yes"), true}, // anything but "true" coerces to false
	}

	for _, tc := range tests {
		res, err := Validate(q, tc.answer)
		if err != nil {
			t.Fatalf("Validate(%v): %v", tc.answer, err)
		}
		if res.IsCorrect != tc.want {
			t.Errorf("true_false answer %v: IsCorrect = %v, want %v", tc.answer, res.IsCorrect, tc.want)
		}
	}
}
