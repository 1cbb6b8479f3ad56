package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendPhaseEvent(ctx context.Context, data PhaseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PhaseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetPhase(data.Phase).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save phase event: %w", err)
	}
	return nil
}
