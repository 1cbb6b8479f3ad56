package calc

import (
	"math"
	"testing"
)

func TestMotor_Stall(t *testing.T) {
	m := Motor{SupplyVoltage: 12, Resistance: 2, Ke: 0.05}

	if got := m.BackEMF(0); got != 0 {
		t.Errorf("BackEMF(0) = %v, want 0", got)
	}
	if got := m.Current(0); got != 6.0 {
		t.Errorf("Current(0) = %v, want 6.0", got)
	}
	if got := m.StallCurrent(); got != 6.0 {
		t.Errorf("StallCurrent() = %v, want 6.0", got)
	}
}

func TestMotor_BackEMF(t *testing.T) {
	m := Motor{SupplyVoltage: 12, Resistance: 2, Ke: 0.05}

	tests := []struct {
		speed       float64
		wantEMF     float64
		wantCurrent float64
	}{
		{0, 0, 6},
		{100, 5, 3.5},
		{200, 10, 1},
		{240, 12, 0}, // no-load speed: EMF cancels supply
	}

	for _, tt := range tests {
		if got := m.BackEMF(tt.speed); got != tt.wantEMF {
			t.Errorf("BackEMF(%v) = %v, want %v", tt.speed, got, tt.wantEMF)
		}
		if got := m.Current(tt.speed); math.Abs(got-tt.wantCurrent) > 1e-12 {
			t.Errorf("Current(%v) = %v, want %v", tt.speed, got, tt.wantCurrent)
		}
	}
}

func TestMotor_NoLoadSpeed(t *testing.T) {
	m := Motor{SupplyVoltage: 12, Resistance: 2, Ke: 0.05}
	if got := m.NoLoadSpeed(); got != 240 {
		t.Errorf("NoLoadSpeed() = %v, want 240", got)
	}
}

func TestMotor_CurrentFloorsAtZero(t *testing.T) {
	m := Motor{SupplyVoltage: 12, Resistance: 2, Ke: 0.05}
	if got := m.Current(300); got != 0 {
		t.Errorf("overdriven Current = %v, want 0 without regeneration", got)
	}
}

func TestMotor_Regeneration(t *testing.T) {
	m := Motor{SupplyVoltage: 12, Resistance: 2, Ke: 0.05, Regeneration: true}
	// Driven above no-load speed: current reverses into the supply.
	got := m.Current(300)
	if math.Abs(got-(-1.5)) > 1e-12 {
		t.Errorf("regenerative Current(300) = %v, want -1.5", got)
	}
}

func TestMotor_CurrentFinite(t *testing.T) {
	for v := 1.0; v <= 24; v += 0.5 {
		for r := 0.5; r <= 10; r += 0.5 {
			m := Motor{SupplyVoltage: v, Resistance: r, Ke: 0.05}
			for speed := 0.0; speed <= 400; speed += 40 {
				if got := m.Current(speed); math.IsNaN(got) || math.IsInf(got, 0) {
					t.Fatalf("Current not finite at V=%v R=%v speed=%v: %v", v, r, speed, got)
				}
			}
		}
	}
}
