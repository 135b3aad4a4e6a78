package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T, s *Store) EventRepo {
	t.Helper()
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := testRepo(t, s)
	ctx := context.Background()

	attempts := []AttemptEventData{
		{SessionID: "sess-1", QuestionID: "q1", QuestionType: "fill_blank", CorrectAnswer: "jumped", LearnerAnswer: "jumpd", Correct: true},
		{SessionID: "sess-1", QuestionID: "q2", QuestionType: "true_false", CorrectAnswer: "false", LearnerAnswer: "true", Correct: false},
		{SessionID: "sess-1", QuestionID: "q3", QuestionType: "fill_blank", CorrectAnswer: "honey", LearnerAnswer: "wax", Correct: false, Feedback: "no"},
	}
	for _, a := range attempts {
		if err := repo.AppendAttemptEvent(ctx, a); err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	missed, err := repo.QueryMissedAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query missed: %v", err)
	}
	if len(missed) != 2 {
		t.Fatalf("missed = %d records, want 2", len(missed))
	}
	// Newest first.
	if missed[0].QuestionID != "q3" {
		t.Errorf("missed[0].QuestionID = %q, want %q", missed[0].QuestionID, "q3")
	}
	if missed[0].Sequence <= missed[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", missed[0].Sequence, missed[1].Sequence)
	}

	stats, err := repo.TypeAccuracy(ctx)
	if err != nil {
		t.Fatalf("type accuracy: %v", err)
	}
	fb := stats["fill_blank"]
	if fb.Attempts != 2 || fb.Correct != 1 {
		t.Errorf("fill_blank stats = %+v, want 2 attempts, 1 correct", fb)
	}
	if got := fb.Accuracy(); got != 0.5 {
		t.Errorf("fill_blank accuracy = %v, want 0.5", got)
	}
}

func TestAppendAndQuerySessions(t *testing.T) {
	s := openTestStore(t)
	repo := testRepo(t, s)
	ctx := context.Background()

	data := SessionEventData{
		SessionID:       "sess-1",
		WorksheetTitle:  "English Practice",
		QuestionsGraded: 10,
		CorrectAnswers:  8,
		Score:           8.5,
		Percent:         85,
		Stars:           2,
	}
	if err := repo.AppendSessionEvent(ctx, data); err != nil {
		t.Fatalf("append session: %v", err)
	}

	sessions, err := repo.QuerySessions(ctx, QueryOpts{Limit: 5})
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d records, want 1", len(sessions))
	}
	if sessions[0].Stars != 2 || sessions[0].Percent != 85 {
		t.Errorf("session record = %+v, want stars 2 percent 85", sessions[0].SessionEventData)
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seq, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new counter: %v", err)
	}

	prev := int64(-1)
	for i := 0; i < 5; i++ {
		n, err := seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= prev {
			t.Fatalf("sequence not increasing: %d after %d", n, prev)
		}
		prev = n
	}
}
