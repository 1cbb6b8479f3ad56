package lesson

import (
	"testing"
	"time"
)

func TestTransfer_CompleteAll(t *testing.T) {
	s, sink, _ := newTestSession("transfer")
	tr := s.Transfer

	if tr.AllCompleted() {
		t.Fatal("AllCompleted() = true before any views")
	}

	for i := 0; i < tr.Len(); i++ {
		if got := tr.NextIncomplete(); got != i {
			t.Errorf("NextIncomplete() = %d, want %d", got, i)
		}
		tr.View(i)
	}

	if !tr.AllCompleted() {
		t.Error("AllCompleted() = false after viewing all entries")
	}
	if got := tr.NextIncomplete(); got != -1 {
		t.Errorf("NextIncomplete() = %d, want -1", got)
	}
	if n := len(sink.ofType(EventTransferCompleted)); n != 1 {
		t.Errorf("transfer_completed events = %d, want 1", n)
	}
	if n := len(sink.ofType(EventApplicationViewed)); n != 4 {
		t.Errorf("application_viewed events = %d, want 4", n)
	}
}

func TestTransfer_Monotonic(t *testing.T) {
	s, _, _ := newTestSession("transfer")
	tr := s.Transfer

	tr.View(2)
	tr.View(2)
	tr.View(2)
	if !tr.Completed(2) {
		t.Error("Completed(2) = false after View(2)")
	}
	// Re-viewing never un-marks.
	for i := 0; i < tr.Len(); i++ {
		if i != 2 && tr.Completed(i) {
			t.Errorf("Completed(%d) = true without a view", i)
		}
	}
}

func TestTransfer_OutOfRangeIgnored(t *testing.T) {
	s, _, _ := newTestSession("transfer")
	tr := s.Transfer

	tr.View(-1)
	tr.View(99)
	if tr.AllCompleted() {
		t.Error("out-of-range views marked entries")
	}
}

func TestSession_TransferGatesTest(t *testing.T) {
	s, _, clock := newTestSession("transfer")

	clock.Advance(time.Second)
	s.Continue()
	if got := s.Phase(); got != PhaseTransfer {
		t.Errorf("Continue() before completion advanced to %q", got)
	}

	for i := 0; i < s.Transfer.Len(); i++ {
		s.Transfer.View(i)
	}
	clock.Advance(time.Second)
	s.Continue()
	if got := s.Phase(); got != PhaseTest {
		t.Errorf("Continue() after completion: phase = %q, want test", got)
	}
}
