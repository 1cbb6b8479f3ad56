package lesson

import (
	"testing"
	"time"
)

func TestSession_EmitsLessonStarted(t *testing.T) {
	_, sink, _ := newTestSession("play")

	started := sink.ofType(EventLessonStarted)
	if len(started) != 1 {
		t.Fatalf("lesson_started events = %d, want 1", len(started))
	}
	if started[0].Details["initial_phase"] != "play" {
		t.Errorf("initial_phase = %v, want play", started[0].Details["initial_phase"])
	}
	if started[0].LessonID != "test-lesson" || started[0].SessionID == "" {
		t.Errorf("event identity = %q/%q", started[0].LessonID, started[0].SessionID)
	}
}

func TestSession_Predict(t *testing.T) {
	s, sink, _ := newTestSession("predict")

	s.Predict("up")
	s.Predict("down") // one-shot; second prediction ignored
	if s.Prediction != "up" {
		t.Errorf("Prediction = %q, want up", s.Prediction)
	}
	if n := len(sink.ofType(EventPredictionMade)); n != 1 {
		t.Errorf("prediction_made events = %d, want 1", n)
	}
}

func TestSession_PredictOutsidePredictPhase(t *testing.T) {
	s, sink, _ := newTestSession("play")
	s.Predict("up")
	if s.Prediction != "" {
		t.Errorf("Prediction recorded outside predict phase: %q", s.Prediction)
	}
	if n := len(sink.ofType(EventPredictionMade)); n != 0 {
		t.Errorf("prediction_made events = %d, want 0", n)
	}
}

func TestSession_TwistPredict(t *testing.T) {
	s, _, _ := newTestSession("twist_predict")
	s.Predict("flips")
	if s.TwistPrediction != "flips" {
		t.Errorf("TwistPrediction = %q, want flips", s.TwistPrediction)
	}
	if s.Prediction != "" {
		t.Errorf("Prediction = %q, want empty", s.Prediction)
	}
}

func TestSession_TestGatesMastery(t *testing.T) {
	s, _, clock := newTestSession("test")

	clock.Advance(time.Second)
	s.Continue()
	if got := s.Phase(); got != PhaseTest {
		t.Errorf("Continue() before quiz completion advanced to %q", got)
	}

	answerAll(s.Quiz, "b")
	clock.Advance(time.Second)
	s.Continue()
	if got := s.Phase(); got != PhaseMastery {
		t.Errorf("Continue() after scoring: phase = %q, want mastery", got)
	}
}

func TestSession_MasteryAchievedOnPass(t *testing.T) {
	s, sink, clock := newTestSession("test")
	answerAll(s.Quiz, "b")
	clock.Advance(time.Second)
	s.Continue()

	achieved := sink.ofType(EventMasteryAchieved)
	if len(achieved) != 1 {
		t.Fatalf("mastery_achieved events = %d, want 1", len(achieved))
	}
	if achieved[0].Details["score"] != 10 {
		t.Errorf("mastery score = %v, want 10", achieved[0].Details["score"])
	}
}

func TestSession_NoMasteryOnFail(t *testing.T) {
	s, sink, clock := newTestSession("test")
	answerAll(s.Quiz, "a")
	clock.Advance(time.Second)
	s.Continue()

	if got := s.Phase(); got != PhaseMastery {
		t.Fatalf("phase = %q, want mastery", got)
	}
	if n := len(sink.ofType(EventMasteryAchieved)); n != 0 {
		t.Errorf("mastery_achieved events = %d, want 0 for failing score", n)
	}
}

func TestSession_Restart(t *testing.T) {
	s, sink, clock := newTestSession("test")
	s.Params.Set("voltage", 24)
	answerAll(s.Quiz, "b")
	clock.Advance(time.Second)
	s.Continue()

	s.Restart()

	if got := s.Phase(); got != PhaseHook {
		t.Errorf("post-restart phase = %q, want hook", got)
	}
	if got := s.Quiz.Score(); got != 0 {
		t.Errorf("post-restart score = %d, want 0", got)
	}
	if s.Transfer.AllCompleted() {
		t.Error("post-restart transfer still completed")
	}
	if got := s.Params.Get("voltage"); got != 12 {
		t.Errorf("post-restart voltage = %v, want default 12", got)
	}
	if n := len(sink.ofType(EventLessonRestarted)); n != 1 {
		t.Errorf("lesson_restarted events = %d, want 1", n)
	}
}

func TestSession_NilSink(t *testing.T) {
	// A session without a sink must not panic anywhere.
	s := NewSession(testPack(), SessionConfig{})
	s.Controller.GoToPhase(PhaseTest)
	s.Quiz.Select("b")
	s.Quiz.Submit()
	s.Params.Set("voltage", 5)
	s.Transfer.View(0)
}
