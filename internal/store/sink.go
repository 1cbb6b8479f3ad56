package store

import (
	"context"
	"fmt"
	"os"

	"github.com/anirudh/explainly/internal/lesson"
)

// EventSink persists lesson events to the event log. It implements
// lesson.Sink; only the event types worth keeping land in tables, the
// rest (selections, param twiddles, cues) are dropped. Persistence
// failures are reported on stderr and never reach the lesson core.
type EventSink struct {
	repo EventRepo
}

// NewEventSink creates a sink writing to repo.
func NewEventSink(repo EventRepo) *EventSink {
	return &EventSink{repo: repo}
}

var _ lesson.Sink = (*EventSink)(nil)

// Emit persists one lesson event.
func (s *EventSink) Emit(e lesson.Event) {
	ctx := context.Background()
	var err error

	switch e.Type {
	case lesson.EventLessonStarted:
		err = s.repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:   e.SessionID,
			LessonID:    e.LessonID,
			LessonTitle: e.LessonTitle,
			Kind:        "started",
		})

	case lesson.EventLessonRestarted:
		err = s.repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:   e.SessionID,
			LessonID:    e.LessonID,
			LessonTitle: e.LessonTitle,
			Kind:        "restarted",
		})

	case lesson.EventGameCompleted:
		err = s.repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:   e.SessionID,
			LessonID:    e.LessonID,
			LessonTitle: e.LessonTitle,
			Kind:        "completed",
			Score:       detailInt(e.Details, "score"),
			Total:       detailInt(e.Details, "total"),
			Passed:      detailInt(e.Details, "score") >= lesson.PassThreshold,
		})

	case lesson.EventMasteryAchieved:
		err = s.repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:   e.SessionID,
			LessonID:    e.LessonID,
			LessonTitle: e.LessonTitle,
			Kind:        "mastery",
			Score:       detailInt(e.Details, "score"),
			Total:       detailInt(e.Details, "total"),
			Passed:      true,
		})

	case lesson.EventPhaseChanged:
		err = s.repo.AppendPhaseEvent(ctx, PhaseEventData{
			SessionID: e.SessionID,
			LessonID:  e.LessonID,
			Phase:     detailString(e.Details, "new_phase"),
		})

	case lesson.EventAnswerSubmitted:
		// Correctness arrives as a separate event right after; resolving
		// it here keeps one row per answer.
		return

	case lesson.EventAnswerCorrect:
		err = s.repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:     e.SessionID,
			LessonID:      e.LessonID,
			QuestionIndex: detailInt(e.Details, "question"),
			AnswerID:      detailString(e.Details, "answer"),
			Correct:       true,
		})

	case lesson.EventAnswerIncorrect:
		err = s.repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:     e.SessionID,
			LessonID:      e.LessonID,
			QuestionIndex: detailInt(e.Details, "question"),
			AnswerID:      detailString(e.Details, "answer"),
			Correct:       false,
		})
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist %s event: %v\n", e.Type, err)
	}
}

func detailInt(details map[string]any, key string) int {
	if v, ok := details[key].(int); ok {
		return v
	}
	return 0
}

func detailString(details map[string]any, key string) string {
	if v, ok := details[key].(string); ok {
		return v
	}
	return ""
}
