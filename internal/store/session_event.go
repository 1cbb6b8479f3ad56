package store

import (
	"context"
	"fmt"

	"github.com/anirudh/explainly/ent"
	"github.com/anirudh/explainly/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetLessonTitle(data.LessonTitle).
		SetKind(sessionevent.Kind(data.Kind)).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetPassed(data.Passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.KindEQ(sessionevent.KindCompleted)).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	out := make([]SessionSummary, len(events))
	for i, e := range events {
		out[i] = SessionSummary{
			SessionID:   e.SessionID,
			LessonID:    e.LessonID,
			LessonTitle: e.LessonTitle,
			Score:       e.Score,
			Total:       e.Total,
			Passed:      e.Passed,
			Timestamp:   e.Timestamp,
		}
	}
	return out, nil
}
