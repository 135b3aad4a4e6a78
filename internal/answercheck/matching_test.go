package answercheck

import (
	"strings"
	"testing"
)

func TestMatchingPartialCredit(t *testing.T) {
	q := &Matching{
		Base: Base{Text: "Match the animal to its sound.", Correct: "cow-moo, cat-meow, dog-woof, duck-quack, pig-oink"},
		CorrectPairs: []MatchPair{
			{Left: "cow", Right: "moo"},
			{Left: "cat", Right: "meow"},
			{Left: "dog", Right: "woof"},
			{Left: "duck", Right: "quack"},
			{Left: "pig", Right: "oink"},
		},
	}

	res, err := Validate(q, Map{
		"cow":  "moo",
		"cat":  "meow",
		"dog":  "woof",
		"duck": "oink",
		"pig":  "quack",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("expected incorrect with two swapped pairs")
	}
	if res.PartialScore != 0.6 {
		t.Errorf("PartialScore = %v, want 0.6", res.PartialScore)
	}
	if !strings.Contains(res.Feedback, "3/5 pairs correct") {
		t.Errorf("Feedback = %q, want pair count", res.Feedback)
	}
}

func TestMatchingAllCorrect(t *testing.T) {
	q := &Matching{
		Base: Base{Correct: "cow-moo"},
		CorrectPairs: []MatchPair{
			{Left: "cow", Right: "moo"},
		},
	}

	// Case and punctuation differences on either side still match.
	res, err := Validate(q, Map{"Cow": "Moo!"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect {
		t.Error("expected normalized pair to match")
	}
	if res.Feedback != "" {
		t.Errorf("complete match should carry no feedback, got %q", res.Feedback)
	}
}

func TestMatchingNoFuzz(t *testing.T) {
	q := &Matching{
		Base:         Base{Correct: "cow-moo"},
		CorrectPairs: []MatchPair{{Left: "cow", Right: "moo"}},
	}

	// One edit off is not accepted; pair slots are exact.
	res, err := Validate(q, Map{"cow": "mooo"})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("matching must not apply fuzzy tolerance")
	}
}

func TestMatchingEmptyPairs(t *testing.T) {
	q := &Matching{Base: Base{Correct: "n/a"}}
	res, err := Validate(q, Map{})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("question with no pairs must not grade as correct")
	}
	if res.HasPartial {
		t.Error("no gradable units means no partial score")
	}
}

func TestOrderingPositional(t *testing.T) {
	q := &Ordering{
		Base:         Base{Text: "Put the days in order.", Correct: "A, B, C, D"},
		CorrectOrder: []string{"A", "B", "C", "D"},
	}

	// One transposition: only positions 0 and 3 match. Positional
	// comparison, not subsequence alignment.
	res, err := Validate(q, List{"A", "C", "B", "D"})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("expected incorrect with transposed items")
	}
	if res.PartialScore != 0.5 {
		t.Errorf("PartialScore = %v, want 0.5", res.PartialScore)
	}
	if !strings.Contains(res.Feedback, "2/4 positions correct") {
		t.Errorf("Feedback = %q, want positional count", res.Feedback)
	}
}

func TestOrderingShortAnswer(t *testing.T) {
	q := &Ordering{
		Base:         Base{Correct: "A, B, C"},
		CorrectOrder: []string{"A", "B", "C"},
	}

	// Missing trailing items simply don't match their positions.
	res, err := Validate(q, List{"A"})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("expected incorrect for truncated sequence")
	}
	if want := 1.0 / 3.0; res.PartialScore != want {
		t.Errorf("PartialScore = %v, want %v", res.PartialScore, want)
	}
}

func TestCategorization(t *testing.T) {
	q := &Categorization{
		Base:  Base{Text: "Sort the words.", Correct: "Nouns: cat, dog, tree; Verbs: run, jump, swim"},
		Items: []string{"cat", "dog", "tree", "run", "jump", "swim"},
		Categories: []Category{
			{Name: "Nouns", Items: []string{"cat", "dog", "tree"}},
			{Name: "Verbs", Items: []string{"run", "jump", "swim"}},
		},
	}

	res, err := Validate(q, GroupMap{
		"Nouns": {"cat", "dog"},
		"Verbs": {"run"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("expected incorrect with three items missing")
	}
	if res.PartialScore != 0.5 {
		t.Errorf("PartialScore = %v, want 0.5", res.PartialScore)
	}

	res, err = Validate(q, GroupMap{
		"nouns": {"Cat", "dog", "tree"},
		"verbs": {"run", "jump", "swim"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsCorrect {
		t.Error("expected correct with normalized category names and items")
	}
	if res.PartialScore != 1.0 {
		t.Errorf("PartialScore = %v, want 1.0", res.PartialScore)
	}
}

func TestCategorizationEmpty(t *testing.T) {
	q := &Categorization{Base: Base{Correct: "n/a"}}
	res, err := Validate(q, GroupMap{})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsCorrect {
		t.Error("question with no items must not grade as correct")
	}
}
