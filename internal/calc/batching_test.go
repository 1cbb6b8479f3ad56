package calc

import (
	"math"
	"testing"
)

func TestBatching_Throughput(t *testing.T) {
	b := Batching{BatchSize: 8, ProcessingTime: 0.25, ArrivalRate: 20}
	if got := b.Throughput(); got != 32 {
		t.Errorf("Throughput() = %v, want 32", got)
	}
}

func TestBatching_AvgLatency(t *testing.T) {
	// Batch of 8 filling at 20 req/s: 0.4 s to fill, so 0.2 s average
	// wait, plus 0.25 s processing.
	b := Batching{BatchSize: 8, ProcessingTime: 0.25, ArrivalRate: 20}
	got := b.AvgLatency()
	if math.Abs(got-0.45) > 1e-12 {
		t.Errorf("AvgLatency() = %v, want 0.45", got)
	}
}

func TestBatching_LittlesLaw(t *testing.T) {
	b := Batching{BatchSize: 8, ProcessingTime: 0.25, ArrivalRate: 20}
	// L = λW = 20 * 0.45 = 9.
	got := b.QueueDepth()
	if math.Abs(got-9) > 1e-12 {
		t.Errorf("QueueDepth() = %v, want 9", got)
	}
}

func TestBatching_GPUUtilization(t *testing.T) {
	tests := []struct {
		batch float64
		want  float64
	}{
		{1, 1.0 / 32},
		{8, 0.25},
		{16, 0.5},
		{32, 1},
		{64, 1}, // saturates
	}

	for _, tt := range tests {
		b := Batching{BatchSize: tt.batch, ProcessingTime: 0.25, ArrivalRate: 20}
		got := b.GPUUtilization()
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("GPUUtilization(batch=%v) = %v, want %v", tt.batch, got, tt.want)
		}
	}
}

func TestBatching_BatchOfOne(t *testing.T) {
	// No batching: latency is just processing time plus a negligible
	// fill wait.
	b := Batching{BatchSize: 1, ProcessingTime: 0.05, ArrivalRate: 20}
	got := b.AvgLatency()
	want := 1.0/20/2 + 0.05
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("AvgLatency() = %v, want %v", got, want)
	}
}
