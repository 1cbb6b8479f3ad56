package lesson

import "time"

// EventType identifies one kind of lesson event. The set is closed; hosts
// switch on these values.
type EventType string

const (
	EventLessonStarted      EventType = "lesson_started"
	EventLessonRestarted    EventType = "lesson_restarted"
	EventPhaseChanged       EventType = "phase_changed"
	EventPredictionMade     EventType = "prediction_made"
	EventParamChanged       EventType = "param_changed"
	EventAnswerSelected     EventType = "answer_selected"
	EventAnswerSubmitted    EventType = "answer_submitted"
	EventAnswerCorrect      EventType = "answer_correct"
	EventAnswerIncorrect    EventType = "answer_incorrect"
	EventQuestionAdvanced   EventType = "question_advanced"
	EventApplicationViewed  EventType = "application_viewed"
	EventTransferCompleted  EventType = "transfer_completed"
	EventGameCompleted      EventType = "game_completed"
	EventMasteryAchieved    EventType = "mastery_achieved"
	EventCuePlayed          EventType = "cue_played"
)

// Event is one discrete notification pushed to the host. Details is a
// free-form map whose shape varies by Type (e.g. {"new_phase"},
// {"prediction"}, {"score", "total"}).
type Event struct {
	Type        EventType
	SessionID   string
	LessonID    string
	LessonTitle string
	Details     map[string]any
	Timestamp   time.Time
}

// Sink receives lesson events. Emission is fire-and-forget: the core never
// waits on, retries, or reacts to a sink.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// MultiSink fans one event out to several sinks in order.
type MultiSink []Sink

func (m MultiSink) Emit(e Event) {
	for _, s := range m {
		s.Emit(e)
	}
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Emit(Event) {}

// emitter attaches session identity and timestamps to outgoing events.
// All core components share one emitter per session.
type emitter struct {
	sessionID   string
	lessonID    string
	lessonTitle string
	sink        Sink
	now         func() time.Time
}

func (e *emitter) emit(t EventType, details map[string]any) {
	if e == nil || e.sink == nil {
		return
	}
	e.sink.Emit(Event{
		Type:        t,
		SessionID:   e.sessionID,
		LessonID:    e.lessonID,
		LessonTitle: e.lessonTitle,
		Details:     details,
		Timestamp:   e.now(),
	})
}
