package lesson

import (
	"testing"
	"time"
)

func TestController_GoToPhase(t *testing.T) {
	s, sink, clock := newTestSession("")

	for _, p := range AllPhases() {
		clock.Advance(time.Second)
		s.Controller.GoToPhase(p)
		if got := s.Controller.Phase(); got != p {
			t.Errorf("after GoToPhase(%q), Phase() = %q", p, got)
		}
	}

	changes := sink.ofType(EventPhaseChanged)
	if len(changes) != len(AllPhases()) {
		t.Errorf("expected %d phase_changed events, got %d", len(AllPhases()), len(changes))
	}
	last, _ := sink.last()
	if last.Details["new_phase"] != "mastery" {
		t.Errorf("last new_phase = %v, want mastery", last.Details["new_phase"])
	}
}

func TestController_InvalidTargetIgnored(t *testing.T) {
	s, sink, clock := newTestSession("")
	clock.Advance(time.Second)

	s.Controller.GoToPhase(Phase("warp"))
	if got := s.Controller.Phase(); got != PhaseHook {
		t.Errorf("invalid target changed phase to %q", got)
	}
	if n := len(sink.ofType(EventPhaseChanged)); n != 0 {
		t.Errorf("invalid target emitted %d phase_changed events", n)
	}
}

func TestController_Debounce(t *testing.T) {
	s, sink, clock := newTestSession("")
	clock.Advance(time.Second)

	s.Controller.GoToPhase(PhasePredict)
	// Within the debounce window: ignored.
	clock.Advance(100 * time.Millisecond)
	s.Controller.GoToPhase(PhasePlay)
	if got := s.Controller.Phase(); got != PhasePredict {
		t.Errorf("debounced transition applied; phase = %q", got)
	}

	// After the window: allowed.
	clock.Advance(DefaultDebounce)
	s.Controller.GoToPhase(PhasePlay)
	if got := s.Controller.Phase(); got != PhasePlay {
		t.Errorf("post-debounce transition ignored; phase = %q", got)
	}

	if n := len(sink.ofType(EventPhaseChanged)); n != 2 {
		t.Errorf("expected 2 phase_changed events, got %d", n)
	}
}

func TestController_GoToPhaseIdempotent(t *testing.T) {
	s, _, clock := newTestSession("")
	clock.Advance(time.Second)

	s.Controller.GoToPhase(PhaseReview)
	clock.Advance(time.Second)
	s.Controller.GoToPhase(PhaseReview)
	if got := s.Controller.Phase(); got != PhaseReview {
		t.Errorf("repeated GoToPhase changed phase to %q", got)
	}
}

func TestController_NextPhaseWalksSequence(t *testing.T) {
	s, _, clock := newTestSession("")

	phases := AllPhases()
	for i := 1; i < len(phases); i++ {
		clock.Advance(time.Second)
		s.Controller.NextPhase()
		if got := s.Controller.Phase(); got != phases[i] {
			t.Fatalf("step %d: phase = %q, want %q", i, got, phases[i])
		}
	}
}

func TestController_NextPhaseTerminalNoOp(t *testing.T) {
	s, sink, clock := newTestSession("mastery")
	clock.Advance(time.Second)

	s.Controller.NextPhase()
	if got := s.Controller.Phase(); got != PhaseMastery {
		t.Errorf("NextPhase at mastery moved to %q", got)
	}
	if n := len(sink.ofType(EventPhaseChanged)); n != 0 {
		t.Errorf("terminal NextPhase emitted %d events", n)
	}
}

func TestController_CueFailureIgnored(t *testing.T) {
	sink := &recordingSink{}
	clock := newFakeClock()
	cue := &failingCue{}
	s := NewSession(testPack(), SessionConfig{
		Sink: sink,
		Cue:  cue,
		Now:  clock.Now,
	})

	clock.Advance(time.Second)
	s.Controller.GoToPhase(PhasePredict)

	if cue.calls != 1 {
		t.Errorf("cue called %d times, want 1", cue.calls)
	}
	if got := s.Controller.Phase(); got != PhasePredict {
		t.Errorf("cue failure blocked transition; phase = %q", got)
	}
	if n := len(sink.ofType(EventCuePlayed)); n != 0 {
		t.Errorf("failed cue emitted %d cue_played events", n)
	}
}

func TestSession_InitialPhaseHint(t *testing.T) {
	tests := []struct {
		hint string
		want Phase
	}{
		{"", PhaseHook},
		{"play", PhasePlay},
		{"test", PhaseTest},
		{"nonsense", PhaseHook},
	}

	for _, tt := range tests {
		s, _, _ := newTestSession(tt.hint)
		if got := s.Phase(); got != tt.want {
			t.Errorf("hint %q: initial phase = %q, want %q", tt.hint, got, tt.want)
		}
	}
}
