package lesson

import "time"

// DefaultDebounce is the window during which repeated phase transitions
// are ignored. It guards against double-invocation from rapid repeated
// input events; the core is single-threaded, so this is advisory rather
// than a lock.
const DefaultDebounce = 400 * time.Millisecond

// CuePlayer plays a short audio cue on phase transitions. Implementations
// that have no audio backend should return an error; the controller
// ignores it.
type CuePlayer interface {
	Play(cue string) error
}

// Controller owns the current phase and enforces the transition rules:
// any valid phase is reachable by explicit navigation, rapid repeated
// transitions are debounced, and every transition fires its side effects
// (audio cue, event emission).
type Controller struct {
	phase Phase

	debounceFor    time.Duration
	lastTransition time.Time

	cue CuePlayer
	em  *emitter
	now func() time.Time
}

// newController creates a Controller starting at initial, which must
// already be a valid phase (callers use ParsePhase on external hints).
func newController(initial Phase, cue CuePlayer, em *emitter, debounce time.Duration, now func() time.Time) *Controller {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Controller{
		phase:       initial,
		debounceFor: debounce,
		cue:         cue,
		em:          em,
		now:         now,
	}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// GoToPhase navigates to target. Invalid targets are ignored. While a
// transition is in flight (within the debounce window) the call is a
// no-op. Otherwise it sets the phase, plays the transition cue, and emits
// phase_changed.
func (c *Controller) GoToPhase(target Phase) {
	if !target.Valid() {
		return
	}
	if c.debounced() {
		return
	}
	c.phase = target
	c.lastTransition = c.now()

	if c.cue != nil {
		// Audio may be unavailable in the host environment; ignore.
		if err := c.cue.Play("transition"); err == nil {
			c.em.emit(EventCuePlayed, map[string]any{"cue": "transition"})
		}
	}

	c.em.emit(EventPhaseChanged, map[string]any{"new_phase": string(target)})
}

// NextPhase advances to the successor of the current phase in the fixed
// ordering. At the terminal phase it is a no-op.
func (c *Controller) NextPhase() {
	if c.phase.Terminal() {
		return
	}
	c.GoToPhase(c.phase.Next())
}

// debounced reports whether a transition happened within the debounce
// window.
func (c *Controller) debounced() bool {
	if c.lastTransition.IsZero() {
		return false
	}
	return c.now().Sub(c.lastTransition) < c.debounceFor
}
