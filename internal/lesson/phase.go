package lesson

// Phase is one step of the fixed ten-phase instructional sequence every
// lesson walks through.
type Phase string

const (
	PhaseHook         Phase = "hook"
	PhasePredict      Phase = "predict"
	PhasePlay         Phase = "play"
	PhaseReview       Phase = "review"
	PhaseTwistPredict Phase = "twist_predict"
	PhaseTwistPlay    Phase = "twist_play"
	PhaseTwistReview  Phase = "twist_review"
	PhaseTransfer     Phase = "transfer"
	PhaseTest         Phase = "test"
	PhaseMastery      Phase = "mastery"
)

// phaseOrder is the fixed progression sequence.
var phaseOrder = []Phase{
	PhaseHook,
	PhasePredict,
	PhasePlay,
	PhaseReview,
	PhaseTwistPredict,
	PhaseTwistPlay,
	PhaseTwistReview,
	PhaseTransfer,
	PhaseTest,
	PhaseMastery,
}

// AllPhases returns the ten phases in progression order.
func AllPhases() []Phase {
	out := make([]Phase, len(phaseOrder))
	copy(out, phaseOrder)
	return out
}

// ParsePhase maps an external phase hint to a valid Phase. Invalid or
// absent hints default to PhaseHook.
func ParsePhase(s string) Phase {
	p := Phase(s)
	if p.Valid() {
		return p
	}
	return PhaseHook
}

// Valid reports whether p is one of the ten defined phases.
func (p Phase) Valid() bool {
	for _, q := range phaseOrder {
		if p == q {
			return true
		}
	}
	return false
}

// Index returns p's position in the progression order, or -1 for an
// invalid phase.
func (p Phase) Index() int {
	for i, q := range phaseOrder {
		if p == q {
			return i
		}
	}
	return -1
}

// Next returns the successor phase in the fixed ordering. The terminal
// phase returns itself.
func (p Phase) Next() Phase {
	i := p.Index()
	if i < 0 || i >= len(phaseOrder)-1 {
		return p
	}
	return phaseOrder[i+1]
}

// Terminal reports whether p is the final phase of the sequence.
func (p Phase) Terminal() bool {
	return p == PhaseMastery
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseHook:
		return "Hook"
	case PhasePredict:
		return "Predict"
	case PhasePlay:
		return "Play"
	case PhaseReview:
		return "Review"
	case PhaseTwistPredict:
		return "Twist: Predict"
	case PhaseTwistPlay:
		return "Twist: Play"
	case PhaseTwistReview:
		return "Twist: Review"
	case PhaseTransfer:
		return "Transfer"
	case PhaseTest:
		return "Test"
	case PhaseMastery:
		return "Mastery"
	}
	return string(p)
}
