package calc

import (
	"math"
	"testing"
)

func TestSweep_Endpoints(t *testing.T) {
	pts := Sweep(func(x float64) float64 { return 2 * x }, 0, 10, 5)

	if len(pts) != 5 {
		t.Fatalf("len = %d, want 5", len(pts))
	}
	if pts[0].X != 0 || pts[0].Y != 0 {
		t.Errorf("first point = %+v, want (0, 0)", pts[0])
	}
	if pts[4].X != 10 || pts[4].Y != 20 {
		t.Errorf("last point = %+v, want (10, 20)", pts[4])
	}
}

func TestSweep_EvenSpacing(t *testing.T) {
	pts := Sweep(func(x float64) float64 { return x }, 0, 240, ChartPoints)

	if len(pts) != ChartPoints {
		t.Fatalf("len = %d, want %d", len(pts), ChartPoints)
	}
	step := 240.0 / float64(ChartPoints-1)
	for i, p := range pts {
		want := float64(i) * step
		if math.Abs(p.X-want) > 1e-9 {
			t.Errorf("pts[%d].X = %v, want %v", i, p.X, want)
		}
	}
}

func TestSweep_MatchesFormula(t *testing.T) {
	m := Motor{SupplyVoltage: 12, Resistance: 2, Ke: 0.05}
	pts := Sweep(m.Current, 0, m.NoLoadSpeed(), ChartPoints)

	for _, p := range pts {
		if p.Y != m.Current(p.X) {
			t.Errorf("sweep sample (%v, %v) disagrees with formula %v", p.X, p.Y, m.Current(p.X))
		}
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			t.Errorf("non-finite sample at x=%v", p.X)
		}
	}
}

func TestSweep_MinPoints(t *testing.T) {
	pts := Sweep(func(x float64) float64 { return x }, 0, 1, 0)
	if len(pts) != 2 {
		t.Errorf("len = %d, want 2", len(pts))
	}
}
