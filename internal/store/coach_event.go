package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendCoachEvent(ctx context.Context, data CoachEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.CoachEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)

	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save coach event: %w", err)
	}
	return nil
}

func (r *eventRepo) CoachUsage(ctx context.Context) ([]CoachUsage, error) {
	events, err := r.client.CoachEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query coach events: %w", err)
	}

	byPurpose := make(map[string]*CoachUsage)
	var order []string
	for _, e := range events {
		u, ok := byPurpose[e.Purpose]
		if !ok {
			u = &CoachUsage{Purpose: e.Purpose}
			byPurpose[e.Purpose] = u
			order = append(order, e.Purpose)
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		u.totalLatencyMs += e.LatencyMs
		if e.Success {
			u.Succeeded++
		}
	}

	out := make([]CoachUsage, 0, len(order))
	for _, p := range order {
		u := byPurpose[p]
		if u.Calls > 0 {
			u.AvgLatencyMs = u.totalLatencyMs / int64(u.Calls)
		}
		out = append(out, *u)
	}
	return out, nil
}
