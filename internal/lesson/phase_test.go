package lesson

import "testing"

func TestParsePhase(t *testing.T) {
	tests := []struct {
		in   string
		want Phase
	}{
		{"hook", PhaseHook},
		{"predict", PhasePredict},
		{"twist_predict", PhaseTwistPredict},
		{"mastery", PhaseMastery},
		{"", PhaseHook},
		{"bogus", PhaseHook},
		{"Hook", PhaseHook},
	}

	for _, tt := range tests {
		got := ParsePhase(tt.in)
		if got != tt.want {
			t.Errorf("ParsePhase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPhase_Next(t *testing.T) {
	phases := AllPhases()
	for i := 0; i < len(phases)-1; i++ {
		if got := phases[i].Next(); got != phases[i+1] {
			t.Errorf("%q.Next() = %q, want %q", phases[i], got, phases[i+1])
		}
	}
	if got := PhaseMastery.Next(); got != PhaseMastery {
		t.Errorf("mastery.Next() = %q, want mastery", got)
	}
}

func TestPhase_Order(t *testing.T) {
	phases := AllPhases()
	if len(phases) != 10 {
		t.Fatalf("expected 10 phases, got %d", len(phases))
	}
	if phases[0] != PhaseHook || phases[9] != PhaseMastery {
		t.Errorf("unexpected ordering: %v", phases)
	}
	for i, p := range phases {
		if !p.Valid() {
			t.Errorf("phase %q not valid", p)
		}
		if p.Index() != i {
			t.Errorf("%q.Index() = %d, want %d", p, p.Index(), i)
		}
	}
}

func TestPhase_Terminal(t *testing.T) {
	for _, p := range AllPhases() {
		want := p == PhaseMastery
		if p.Terminal() != want {
			t.Errorf("%q.Terminal() = %v, want %v", p, p.Terminal(), want)
		}
	}
}
