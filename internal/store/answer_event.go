package store

import (
	"context"
	"fmt"

	"github.com/anirudh/explainly/ent/sessionevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetQuestionIndex(data.QuestionIndex).
		SetAnswerID(data.AnswerID).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) Stats(ctx context.Context) ([]LessonStats, error) {
	sessions, err := r.client.SessionEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	answers, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	byLesson := make(map[string]*LessonStats)
	var order []string
	get := func(lessonID string) *LessonStats {
		if s, ok := byLesson[lessonID]; ok {
			return s
		}
		s := &LessonStats{LessonID: lessonID}
		byLesson[lessonID] = s
		order = append(order, lessonID)
		return s
	}

	for _, e := range sessions {
		s := get(e.LessonID)
		switch e.Kind {
		case sessionevent.KindStarted:
			s.Sessions++
		case sessionevent.KindCompleted:
			s.Completed++
		case sessionevent.KindMastery:
			s.Mastered++
		}
	}
	for _, a := range answers {
		s := get(a.LessonID)
		s.Answers++
		if a.Correct {
			s.Correct++
		}
	}

	out := make([]LessonStats, 0, len(order))
	for _, id := range order {
		out = append(out, *byLesson[id])
	}
	return out, nil
}
