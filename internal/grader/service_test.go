package grader

import (
	"context"
	"testing"

	"github.com/abhisek/worksheetz/internal/answercheck"
	"github.com/abhisek/worksheetz/internal/store"
)

// mockEventRepo implements store.EventRepo for grader tests.
type mockEventRepo struct {
	attempts []store.AttemptEventData
	sessions []store.SessionEventData
}

func (m *mockEventRepo) AppendAttemptEvent(_ context.Context, data store.AttemptEventData) error {
	m.attempts = append(m.attempts, data)
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}
func (m *mockEventRepo) QueryMissedAttempts(_ context.Context, _ store.QueryOpts) ([]store.AttemptRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QuerySessions(_ context.Context, _ store.QueryOpts) ([]store.SessionRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) TypeAccuracy(_ context.Context) (map[string]store.TypeStats, error) {
	return nil, nil
}

func sampleQuestions() []answercheck.Question {
	return []answercheck.Question{
		&answercheck.FillBlank{
			Base:              answercheck.Base{ID: "q1", Text: "Complete the sentence.", Correct: "jumped"},
			AcceptableAnswers: []string{"leaped"},
		},
		&answercheck.TrueFalse{
			Base:         answercheck.Base{ID: "q2", Text: "Spiders are insects.", Correct: "False"},
			CorrectValue: false,
		},
		&answercheck.ReadingComprehension{
			Base:    answercheck.Base{ID: "q3", Text: "Read and answer.", Correct: "see sub-questions"},
			Passage: "The fox lived in the forest.",
			SubQuestions: []answercheck.Question{
				&answercheck.WritingShort{Base: answercheck.Base{ID: "q3.1", Text: "Where did the fox live?", Correct: "forest"}},
				&answercheck.TrueFalse{Base: answercheck.Base{ID: "q3.2", Correct: "True"}, CorrectValue: true},
			},
		},
	}
}

func TestGradeWorksheet(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	answers := map[string]answercheck.Answer{
		"q1":   answercheck.Text("jumpd"), // fuzzy correct
		"q2":   answercheck.Text("True"),  // wrong
		"q3.1": answercheck.Text("forest"),
		// q3.2 unanswered
	}

	report, err := svc.GradeWorksheet(ctx, "Week 4", sampleQuestions(), answers)
	if err != nil {
		t.Fatal(err)
	}

	// Reading comprehension expands to two units: 4 total.
	if len(report.Outcomes) != 4 {
		t.Fatalf("outcomes = %d, want 4", len(report.Outcomes))
	}
	if report.Summary.Total != 4 {
		t.Errorf("Total = %d, want 4", report.Summary.Total)
	}
	if report.Summary.Correct != 2 {
		t.Errorf("Correct = %d, want 2", report.Summary.Correct)
	}
	if report.Summary.Percent != 50 {
		t.Errorf("Percent = %v, want 50", report.Summary.Percent)
	}
	if report.Summary.Stars != 1 {
		t.Errorf("Stars = %d, want 1", report.Summary.Stars)
	}

	// q1 got spelling feedback.
	if report.Outcomes[0].Result.Feedback == "" {
		t.Error("expected spelling feedback on fuzzy-matched answer")
	}

	// Unanswered unit graded incorrect with a note.
	last := report.Outcomes[3]
	if last.Answered || last.Result.IsCorrect {
		t.Errorf("unanswered unit should grade incorrect, got %+v", last)
	}
	if last.Result.Feedback != "No answer given." {
		t.Errorf("Feedback = %q, want no-answer note", last.Result.Feedback)
	}

	// Events persisted: one per unit plus the session.
	if len(repo.attempts) != 4 {
		t.Errorf("persisted %d attempt events, want 4", len(repo.attempts))
	}
	if len(repo.sessions) != 1 {
		t.Fatalf("persisted %d session events, want 1", len(repo.sessions))
	}
	if repo.sessions[0].SessionID != report.SessionID {
		t.Error("session event should carry the report's session ID")
	}
	if repo.sessions[0].Stars != 1 {
		t.Errorf("persisted stars = %d, want 1", repo.sessions[0].Stars)
	}
}

func TestGradeWorksheetShapeErrorAborts(t *testing.T) {
	svc := NewService(nil)
	questions := []answercheck.Question{
		&answercheck.Matching{
			Base:         answercheck.Base{ID: "q1", Correct: "cow-moo"},
			CorrectPairs: []answercheck.MatchPair{{Left: "cow", Right: "moo"}},
		},
	}
	answers := map[string]answercheck.Answer{
		"q1": answercheck.Text("cow moo"), // wrong shape for matching
	}

	_, err := svc.GradeWorksheet(context.Background(), "", questions, answers)
	if err == nil {
		t.Fatal("expected shape mismatch to abort grading")
	}
}

func TestGradeWorksheetPartialCreditInScore(t *testing.T) {
	svc := NewService(nil)
	questions := []answercheck.Question{
		&answercheck.Ordering{
			Base:         answercheck.Base{ID: "q1", Correct: "A, B, C, D"},
			CorrectOrder: []string{"A", "B", "C", "D"},
		},
		&answercheck.FillBlank{
			Base: answercheck.Base{ID: "q2", Correct: "jumped"},
		},
	}
	answers := map[string]answercheck.Answer{
		"q1": answercheck.List{"A", "C", "B", "D"}, // 0.5 partial
		"q2": answercheck.Text("jumped"),
	}

	report, err := svc.GradeWorksheet(context.Background(), "", questions, answers)
	if err != nil {
		t.Fatal(err)
	}
	if report.Summary.Score != 1.5 {
		t.Errorf("Score = %v, want 1.5", report.Summary.Score)
	}
	if report.Summary.Percent != 75 {
		t.Errorf("Percent = %v, want 75", report.Summary.Percent)
	}
	if report.Summary.Stars != 2 {
		t.Errorf("Stars = %d, want 2", report.Summary.Stars)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := summarize("s", "", nil)
	if sum.Percent != 0 || sum.Stars != 0 {
		t.Errorf("empty summary = %+v, want zero percent and stars", sum)
	}
}
