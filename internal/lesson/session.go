package lesson

import (
	"time"

	"github.com/google/uuid"

	"github.com/anirudh/explainly/internal/content"
)

// SessionConfig configures a new lesson session.
type SessionConfig struct {
	// InitialPhase is an optional external phase hint. Invalid or empty
	// values default to hook.
	InitialPhase string

	// Sink receives lesson events. Nil means events are discarded.
	Sink Sink

	// Cue plays transition cues. Nil disables audio.
	Cue CuePlayer

	// Debounce overrides the transition debounce window (0 = default).
	Debounce time.Duration

	// Now overrides the clock, for tests. Nil means time.Now.
	Now func() time.Time
}

// Session is one run of a lesson: the phase controller, parameter store,
// quiz, and transfer browser wired to a shared event emitter. Session
// state lives only in memory; restarting the lesson is the only reset.
type Session struct {
	ID   string
	Pack content.Pack

	Controller *Controller
	Params     *Params
	Quiz       *Quiz
	Transfer   *Transfer

	// Prediction and TwistPrediction record the user's choices from the
	// predict phases ("" until made).
	Prediction      string
	TwistPrediction string

	em      *emitter
	cfg     SessionConfig
	mastery bool
}

// NewSession starts a session for the given pack and emits lesson_started.
func NewSession(pack content.Pack, cfg SessionConfig) *Session {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	sink := cfg.Sink
	if sink == nil {
		sink = NopSink{}
	}

	em := &emitter{
		sessionID:   uuid.NewString(),
		lessonID:    pack.ID,
		lessonTitle: pack.Title,
		sink:        sink,
		now:         now,
	}

	s := &Session{
		ID:         em.sessionID,
		Pack:       pack,
		Controller: newController(ParsePhase(cfg.InitialPhase), cfg.Cue, em, cfg.Debounce, now),
		Params:     newParams(pack.Params, em),
		Quiz:       newQuiz(pack.Questions, em),
		Transfer:   newTransfer(pack.Applications, em),
		em:         em,
		cfg:        cfg,
	}

	em.emit(EventLessonStarted, map[string]any{
		"initial_phase": string(s.Controller.Phase()),
	})
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.Controller.Phase()
}

// Continue advances to the next phase via the "continue" affordance. The
// transfer phase only yields once all application entries are completed,
// and the test phase only once the quiz is scored. Entering mastery with
// a passing score emits mastery_achieved.
func (s *Session) Continue() {
	switch s.Controller.Phase() {
	case PhaseTransfer:
		if !s.Transfer.AllCompleted() {
			return
		}
	case PhaseTest:
		if !s.Quiz.Completed() {
			return
		}
	}

	before := s.Controller.Phase()
	s.Controller.NextPhase()

	if s.Controller.Phase() == PhaseMastery && before != PhaseMastery {
		s.checkMastery()
	}
}

// Predict records the user's prediction for the predict or twist_predict
// phase, whichever is current. Predictions are one-shot per phase.
func (s *Session) Predict(predictionID string) {
	switch s.Controller.Phase() {
	case PhasePredict:
		if s.Prediction != "" {
			return
		}
		s.Prediction = predictionID
	case PhaseTwistPredict:
		if s.TwistPrediction != "" {
			return
		}
		s.TwistPrediction = predictionID
	default:
		return
	}
	s.em.emit(EventPredictionMade, map[string]any{
		"phase":      string(s.Controller.Phase()),
		"prediction": predictionID,
	})
}

// Restart resets the session to the hook phase with fresh quiz, transfer,
// and parameter state, keeping the same session id.
func (s *Session) Restart() {
	s.Params.Reset()
	s.Quiz = newQuiz(s.Pack.Questions, s.em)
	s.Transfer = newTransfer(s.Pack.Applications, s.em)
	s.Prediction = ""
	s.TwistPrediction = ""
	s.mastery = false
	s.Controller = newController(PhaseHook, s.cfg.Cue, s.em, s.cfg.Debounce, s.em.now)
	s.em.emit(EventLessonRestarted, nil)
}

func (s *Session) checkMastery() {
	if s.mastery || !s.Quiz.IsPassing() {
		return
	}
	s.mastery = true
	s.em.emit(EventMasteryAchieved, map[string]any{
		"score": s.Quiz.Score(),
		"total": s.Quiz.Len(),
	})
}
