package calc

import (
	"math"
	"testing"
)

func TestGridQueue_Backlog(t *testing.T) {
	// 400 applications per year waiting 5 years → 2000 projects queued.
	g := GridQueue{ApplicationsPerYear: 400, StudyYears: 5, CompletionRate: 0.2}
	if got := g.Backlog(); got != 2000 {
		t.Errorf("Backlog() = %v, want 2000", got)
	}
}

func TestGridQueue_CompletedPerYear(t *testing.T) {
	g := GridQueue{ApplicationsPerYear: 400, StudyYears: 5, CompletionRate: 0.2}
	if got := g.CompletedPerYear(); got != 80 {
		t.Errorf("CompletedPerYear() = %v, want 80", got)
	}
}

func TestGridQueue_ThroughputCurve(t *testing.T) {
	g := GridQueue{ApplicationsPerYear: 400, StudyYears: 5, CompletionRate: 0.2}

	tests := []struct {
		studyYears float64
		want       float64
	}{
		{0, 80},  // instant studies: full completion rate
		{5, 40},  // rate halved
		{9, 8},   // floored at 10% of the base rate
		{10, 8},  // floor
		{15, 8},  // still the floor
	}

	for _, tt := range tests {
		got := g.ThroughputAtStudyTime(tt.studyYears)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ThroughputAtStudyTime(%v) = %v, want %v", tt.studyYears, got, tt.want)
		}
	}
}
