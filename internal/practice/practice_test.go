package practice

import (
	"testing"

	"github.com/abhisek/worksheetz/internal/store"
)

func missedAttempt(question, correct, learner string) store.AttemptRecord {
	return store.AttemptRecord{
		AttemptEventData: store.AttemptEventData{
			QuestionText:  question,
			CorrectAnswer: correct,
			LearnerAnswer: learner,
		},
	}
}

func TestBuildListFoldsNearIdenticalMisses(t *testing.T) {
	missed := []store.AttemptRecord{
		missedAttempt("Complete the sentence.", "jumped", "jmped"),
		missedAttempt("Complete the sentence.", "jumped.", "jumper"), // same answer, re-extracted with a period
		missedAttempt("What do bees make?", "honey", "bread"),
	}

	items := BuildList(missed, 0)
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2 after folding", len(items))
	}

	// Most-missed first.
	if items[0].Correct != "jumped" {
		t.Errorf("items[0].Correct = %q, want %q", items[0].Correct, "jumped")
	}
	if items[0].Misses != 2 {
		t.Errorf("items[0].Misses = %d, want 2", items[0].Misses)
	}
	// Newest wrong answer kept (records arrive newest first).
	if items[0].LastAnswer != "jmped" {
		t.Errorf("items[0].LastAnswer = %q, want %q", items[0].LastAnswer, "jmped")
	}
}

func TestBuildListSamePromptDifferentAnswer(t *testing.T) {
	missed := []store.AttemptRecord{
		missedAttempt("Fill in the blank.", "sun", "son"),
		missedAttempt("Fill in the blank.", "moon", "mon"),
	}

	items := BuildList(missed, 0)
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2: different answers must not fold", len(items))
	}
}

func TestBuildListLimit(t *testing.T) {
	var missed []store.AttemptRecord
	for _, word := range []string{"alpha", "bravo", "charlie", "delta"} {
		missed = append(missed, missedAttempt("Spell "+word+".", word, word+"x"))
	}

	items := BuildList(missed, 2)
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2 with limit", len(items))
	}
}

func TestBuildListSkipsEmptyAnswers(t *testing.T) {
	missed := []store.AttemptRecord{
		missedAttempt("A prompt.", "", "whatever"),
	}
	if items := BuildList(missed, 0); len(items) != 0 {
		t.Errorf("items = %d, want 0 for empty correct answers", len(items))
	}
}
