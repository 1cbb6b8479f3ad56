package lesson

import "github.com/anirudh/explainly/internal/content"

// Params is the flat set of slider-bound knobs for one running session.
// The store records whatever the input control hands it; range clamping
// is the control's responsibility. Derived metrics are pure functions of
// these values, recomputed on read, never stored.
type Params struct {
	specs  []content.ParamSpec
	values map[string]float64
	bools  map[string]bool

	em *emitter
}

// newParams initializes every declared knob to its default value.
func newParams(specs []content.ParamSpec, em *emitter) *Params {
	values := make(map[string]float64, len(specs))
	for _, s := range specs {
		values[s.Name] = s.Default
	}
	return &Params{
		specs:  specs,
		values: values,
		bools:  make(map[string]bool),
		em:     em,
	}
}

// Specs returns the declared knobs in display order.
func (p *Params) Specs() []content.ParamSpec {
	return p.specs
}

// Spec returns the spec for the named knob.
func (p *Params) Spec(name string) (content.ParamSpec, bool) {
	for _, s := range p.specs {
		if s.Name == name {
			return s, true
		}
	}
	return content.ParamSpec{}, false
}

// Get returns the current value of a numeric knob (0 if undeclared).
func (p *Params) Get(name string) float64 {
	return p.values[name]
}

// Set records a new value for a numeric knob and emits param_changed.
func (p *Params) Set(name string, value float64) {
	if p.values[name] == value {
		return
	}
	p.values[name] = value
	p.em.emit(EventParamChanged, map[string]any{"param": name, "value": value})
}

// GetBool returns the current value of a boolean knob.
func (p *Params) GetBool(name string) bool {
	return p.bools[name]
}

// SetBool records a new value for a boolean knob and emits param_changed.
func (p *Params) SetBool(name string, value bool) {
	if p.bools[name] == value {
		return
	}
	p.bools[name] = value
	p.em.emit(EventParamChanged, map[string]any{"param": name, "value": value})
}

// Reset restores every numeric knob to its declared default and clears
// boolean knobs.
func (p *Params) Reset() {
	for _, s := range p.specs {
		p.values[s.Name] = s.Default
	}
	p.bools = make(map[string]bool)
}
