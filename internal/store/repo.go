package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AttemptEventData is the payload for one graded answer.
type AttemptEventData struct {
	SessionID     string
	QuestionID    string
	QuestionType  string
	QuestionText  string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	PartialScore  float64
	HasPartial    bool
	Feedback      string
}

// AttemptRecord is a persisted attempt event read back from the store.
type AttemptRecord struct {
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// SessionEventData is the payload for one graded worksheet.
type SessionEventData struct {
	SessionID       string
	WorksheetTitle  string
	QuestionsGraded int
	CorrectAnswers  int
	Score           float64
	Percent         float64
	Stars           int
}

// SessionRecord is a persisted session summary read back from the store.
type SessionRecord struct {
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// TypeStats aggregates accuracy for one question type.
type TypeStats struct {
	Attempts int
	Correct  int
}

// Accuracy returns the correct fraction, 0 when there are no attempts.
func (s TypeStats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttemptEvent records one graded answer.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendSessionEvent records one worksheet session summary.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QueryMissedAttempts returns attempts graded incorrect, newest first.
	QueryMissedAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// QuerySessions returns session summaries, newest first.
	QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// TypeAccuracy aggregates attempt counts per question type.
	TypeAccuracy(ctx context.Context) (map[string]TypeStats, error)
}
