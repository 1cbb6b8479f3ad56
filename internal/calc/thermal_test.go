package calc

import (
	"math"
	"testing"
)

func TestThermal_Expansion(t *testing.T) {
	// A 500 m steel bridge deck over a 60°C seasonal swing grows 360 mm.
	th := Thermal{AlphaPPM: 12, Length0: 500000}
	if got := th.Expansion(60); got != 360 {
		t.Errorf("Expansion(60) = %v mm, want 360", got)
	}
}

func TestThermal_ExpansionTable(t *testing.T) {
	tests := []struct {
		alphaPPM float64
		length0  float64
		deltaT   float64
		want     float64
	}{
		{12, 500000, 60, 360},
		{12, 500000, 0, 0},
		{12, 500000, -60, -360}, // cooling contracts
		{23, 1000, 50, 1.15},    // aluminium rod, 1 m
		{0, 500000, 60, 0},
	}

	for _, tt := range tests {
		th := Thermal{AlphaPPM: tt.alphaPPM, Length0: tt.length0}
		got := th.Expansion(tt.deltaT)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Thermal{α=%v, L0=%v}.Expansion(%v) = %v, want %v",
				tt.alphaPPM, tt.length0, tt.deltaT, got, tt.want)
		}
	}
}

func TestThermal_Stress(t *testing.T) {
	// Constrained steel: E = 200000 MPa, α = 12 ppm/°C, ΔT = 50°C → 120 MPa.
	th := Thermal{AlphaPPM: 12, Length0: 1000, YoungsModulus: 200000}
	got := th.Stress(50)
	if math.Abs(got-120) > 1e-9 {
		t.Errorf("Stress(50) = %v MPa, want 120", got)
	}
}
