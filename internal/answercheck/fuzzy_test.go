package answercheck

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"frog", "frag", 1},
		{"frog", "flag", 2},
		{"ab", "ba", 2}, // transposition costs two edits
	}

	for _, tc := range tests {
		if got := Levenshtein(tc.a, tc.b); got != tc.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		// Distance is symmetric.
		if got := Levenshtein(tc.b, tc.a); got != tc.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestFuzzyMatchExact(t *testing.T) {
	m := FuzzyMatch("Jumped", "jumped", defaultMaxDistance)
	if !m.Ok {
		t.Error("expected exact match")
	}
	if m.Distance != 0 {
		t.Errorf("Distance = %d, want 0", m.Distance)
	}
	if m.Feedback != "" {
		t.Errorf("exact match should carry no feedback, got %q", m.Feedback)
	}
}

func TestFuzzyMatchFeedback(t *testing.T) {
	m := FuzzyMatch("jumpd", "jumped", defaultMaxDistance)
	if !m.Ok {
		t.Fatal("expected fuzzy match")
	}
	if m.Distance != 1 {
		t.Errorf("Distance = %d, want 1", m.Distance)
	}
	want := `Correct! (Spelling: "jumped")`
	if m.Feedback != want {
		t.Errorf("Feedback = %q, want %q", m.Feedback, want)
	}
}

func TestFuzzyMatchShortWordTolerance(t *testing.T) {
	// A 4-rune correct answer tolerates a single edit only, regardless
	// of the caller's budget.
	tests := []struct {
		user    string
		correct string
		want    bool
	}{
		{"frag", "frog", true},  // distance 1
		{"flag", "frog", false}, // distance 2, short word
		{"elefant", "elephant", true},  // distance 2, long word
		{"elefnt", "elephant", false},  // distance 3
	}

	for _, tc := range tests {
		m := FuzzyMatch(tc.user, tc.correct, defaultMaxDistance)
		if m.Ok != tc.want {
			t.Errorf("FuzzyMatch(%q, %q, 2).Ok = %v, want %v (distance %d)",
				tc.user, tc.correct, m.Ok, tc.want, m.Distance)
		}
	}
}

func TestFuzzyMatchNormalizesBothSides(t *testing.T) {
	m := FuzzyMatch("  The CAT!  ", "the cat", defaultMaxDistance)
	if !m.Ok || m.Distance != 0 {
		t.Errorf("expected normalized exact match, got Ok=%v Distance=%d", m.Ok, m.Distance)
	}
}

func TestMatchAnyAcceptable(t *testing.T) {
	res := matchAnyAcceptable("leaped", []string{"jumped", "leaped"}, defaultMaxDistance)
	if !res.IsCorrect {
		t.Error("expected match against second acceptable answer")
	}
	if res.NormalizedCorrect != "leaped" {
		t.Errorf("NormalizedCorrect = %q, want %q", res.NormalizedCorrect, "leaped")
	}

	// No match: normalized reference comes from the first entry.
	res = matchAnyAcceptable("swam", []string{"jumped", "leaped"}, defaultMaxDistance)
	if res.IsCorrect {
		t.Error("expected no match")
	}
	if res.NormalizedCorrect != "jumped" {
		t.Errorf("NormalizedCorrect = %q, want first acceptable %q", res.NormalizedCorrect, "jumped")
	}
}
