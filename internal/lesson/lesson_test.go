package lesson

import (
	"fmt"
	"sync"
	"time"

	"github.com/anirudh/explainly/internal/content"
)

// Shared test fixtures for the lesson package.

// fakeClock is a manually-advanced clock.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// recordingSink captures emitted events for assertions.
type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingSink) Emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingSink) ofType(t EventType) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (r *recordingSink) last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}

// failingCue always errors, simulating a host without an audio backend.
type failingCue struct{ calls int }

func (f *failingCue) Play(string) error {
	f.calls++
	return fmt.Errorf("no audio backend")
}

// testPack builds a minimal valid pack: 10 questions (correct answer is
// always option "b"), 4 applications, and two numeric knobs.
func testPack() content.Pack {
	questions := make([]content.Question, content.QuestionCount)
	for i := range questions {
		questions[i] = content.Question{
			Scenario: fmt.Sprintf("Scenario %d", i+1),
			Prompt:   fmt.Sprintf("Prompt %d", i+1),
			Options: []content.Option{
				{ID: "a", Label: "Wrong"},
				{ID: "b", Label: "Right", Correct: true},
				{ID: "c", Label: "Also wrong"},
			},
			Explanation: "Because physics.",
		}
	}

	apps := make([]content.Application, content.ApplicationCount)
	for i := range apps {
		apps[i] = content.Application{
			ID:    fmt.Sprintf("app-%d", i+1),
			Title: fmt.Sprintf("Application %d", i+1),
		}
	}

	return content.Pack{
		ID:    "test-lesson",
		Title: "Test Lesson",
		Params: []content.ParamSpec{
			{Name: "voltage", Min: 0, Max: 24, Step: 1, Default: 12},
			{Name: "resistance", Min: 0.5, Max: 10, Step: 0.5, Default: 2},
		},
		Predictions: []content.Prediction{
			{ID: "up", Label: "It goes up"},
			{ID: "down", Label: "It goes down"},
		},
		TwistPredictions: []content.Prediction{
			{ID: "same", Label: "Nothing changes"},
			{ID: "flips", Label: "It reverses"},
		},
		Questions:    questions,
		Applications: apps,
	}
}

// newTestSession wires a session with a fake clock and recording sink.
func newTestSession(initial string) (*Session, *recordingSink, *fakeClock) {
	sink := &recordingSink{}
	clock := newFakeClock()
	s := NewSession(testPack(), SessionConfig{
		InitialPhase: initial,
		Sink:         sink,
		Now:          clock.Now,
	})
	return s, sink, clock
}
