package store

import (
	"context"
	"fmt"

	"github.com/abhisek/worksheetz/ent"
	"github.com/abhisek/worksheetz/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetWorksheetTitle(data.WorksheetTitle).
		SetQuestionsGraded(data.QuestionsGraded).
		SetCorrectAnswers(data.CorrectAnswers).
		SetScore(data.Score).
		SetPercent(data.Percent).
		SetStars(data.Stars).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	query := r.client.SessionEvent.Query().
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(sessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(sessionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SessionEventData: SessionEventData{
				SessionID:       e.SessionID,
				WorksheetTitle:  e.WorksheetTitle,
				QuestionsGraded: e.QuestionsGraded,
				CorrectAnswers:  e.CorrectAnswers,
				Score:           e.Score,
				Percent:         e.Percent,
				Stars:           e.Stars,
			},
		})
	}
	return records, nil
}
