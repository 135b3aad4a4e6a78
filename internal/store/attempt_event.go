package store

import (
	"context"
	"fmt"

	"github.com/abhisek/worksheetz/ent"
	"github.com/abhisek/worksheetz/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetQuestionType(data.QuestionType).
		SetQuestionText(data.QuestionText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetPartialScore(data.PartialScore).
		SetHasPartial(data.HasPartial).
		SetFeedback(data.Feedback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryMissedAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	query := r.client.AttemptEvent.Query().
		Where(attemptevent.Correct(false)).
		Order(ent.Desc(attemptevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(attemptevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query missed attempts: %w", err)
	}

	records := make([]AttemptRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AttemptRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AttemptEventData: AttemptEventData{
				SessionID:     e.SessionID,
				QuestionID:    e.QuestionID,
				QuestionType:  e.QuestionType,
				QuestionText:  e.QuestionText,
				CorrectAnswer: e.CorrectAnswer,
				LearnerAnswer: e.LearnerAnswer,
				Correct:       e.Correct,
				PartialScore:  e.PartialScore,
				HasPartial:    e.HasPartial,
				Feedback:      e.Feedback,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) TypeAccuracy(ctx context.Context) (map[string]TypeStats, error) {
	events, err := r.client.AttemptEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	stats := make(map[string]TypeStats)
	for _, e := range events {
		s := stats[e.QuestionType]
		s.Attempts++
		if e.Correct {
			s.Correct++
		}
		stats[e.QuestionType] = s
	}
	return stats, nil
}
