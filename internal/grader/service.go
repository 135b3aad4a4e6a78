package grader

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/abhisek/worksheetz/internal/answercheck"
	"github.com/abhisek/worksheetz/internal/store"
)

// Service grades worksheets and records attempt history.
type Service struct {
	events store.EventRepo
}

// NewService creates a grading service. events may be nil, in which case
// nothing is persisted (useful for one-off grading).
func NewService(events store.EventRepo) *Service {
	return &Service{events: events}
}

// GradeWorksheet validates every question against the learner's answer
// sheet and returns a per-unit report plus a session summary.
//
// Reading comprehension questions expand into their sub-questions: each
// sub-question is its own gradable unit, answered under its own ID
// (e.g. "q3.1"). A question with no submitted answer grades as incorrect
// rather than erroring; a shape-mismatched answer is an integration bug
// and aborts with the dispatcher's error.
func (s *Service) GradeWorksheet(ctx context.Context, title string, questions []answercheck.Question, answers map[string]answercheck.Answer) (*Report, error) {
	sessionID := uuid.NewString()

	var outcomes []Outcome
	for _, q := range questions {
		if rc, ok := q.(*answercheck.ReadingComprehension); ok {
			for _, sub := range rc.SubQuestions {
				o, err := s.gradeOne(sub, answers)
				if err != nil {
					return nil, err
				}
				outcomes = append(outcomes, o)
			}
			continue
		}
		o, err := s.gradeOne(q, answers)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, o)
	}

	summary := summarize(sessionID, title, outcomes)
	s.persist(ctx, sessionID, title, outcomes, summary)

	return &Report{SessionID: sessionID, Title: title, Outcomes: outcomes, Summary: summary}, nil
}

func (s *Service) gradeOne(q answercheck.Question, answers map[string]answercheck.Answer) (Outcome, error) {
	base := q.Common()
	o := Outcome{
		QuestionID:   base.ID,
		QuestionType: q.Type(),
		QuestionText: base.Text,
	}

	ans, ok := answers[base.ID]
	if !ok {
		o.Result = answercheck.Result{
			Feedback:          "No answer given.",
			NormalizedCorrect: answercheck.Normalize(base.Correct),
		}
		return o, nil
	}

	res, err := answercheck.Validate(q, ans)
	if err != nil {
		return Outcome{}, fmt.Errorf("grade %s: %w", base.ID, err)
	}
	o.Answered = true
	o.Result = res
	return o, nil
}

// persist appends one attempt event per graded unit and a session event
// for the worksheet. Persistence failures are warnings; a grading result
// is never lost to a storage problem.
func (s *Service) persist(ctx context.Context, sessionID, title string, outcomes []Outcome, summary Summary) {
	if s.events == nil {
		return
	}

	for _, o := range outcomes {
		data := store.AttemptEventData{
			SessionID:     sessionID,
			QuestionID:    o.QuestionID,
			QuestionType:  string(o.QuestionType),
			QuestionText:  o.QuestionText,
			CorrectAnswer: o.Result.NormalizedCorrect,
			LearnerAnswer: o.Result.NormalizedAnswer,
			Correct:       o.Result.IsCorrect,
			PartialScore:  o.Result.PartialScore,
			HasPartial:    o.Result.HasPartial,
			Feedback:      o.Result.Feedback,
		}
		if err := s.events.AppendAttemptEvent(ctx, data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log attempt event: %v\n", err)
		}
	}

	data := store.SessionEventData{
		SessionID:       sessionID,
		WorksheetTitle:  title,
		QuestionsGraded: summary.Total,
		CorrectAnswers:  summary.Correct,
		Score:           summary.Score,
		Percent:         summary.Percent,
		Stars:           summary.Stars,
	}
	if err := s.events.AppendSessionEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log session event: %v\n", err)
	}
}
