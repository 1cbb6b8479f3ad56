package coach

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func waitForRecap(t *testing.T, s *Service) (*Recap, bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		ready := s.ready
		s.mu.Unlock()
		if ready {
			// Ready but nil recap means generation failed.
			recap, ok := s.ConsumeRecap()
			return recap, ok
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for recap")
	return nil, false
}

func TestService_GeneratesRecap(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{
			"headline": "Strong run on DC motors.",
			"takeaway": "Back-EMF rises with speed and chokes off current.",
			"focus_areas": ["stall current"],
			"next_lessons": "Try the thermal expansion lesson next."
		}`),
	})
	s := NewService(mock, DefaultGenConfig())

	s.RequestRecap(context.Background(), RecapInput{
		LessonTitle: "The Spinning Secret of DC Motors",
		Score:       8,
		Total:       10,
		Missed: []MissedQuestion{
			{
				Prompt:       "What limits current at stall?",
				ChosenLabel:  "Back-EMF",
				CorrectLabel: "Winding resistance only",
				Explanation:  "At zero speed there is no back-EMF.",
			},
		},
	})

	recap, ok := waitForRecap(t, s)
	if !ok {
		t.Fatal("expected a recap")
	}
	if recap.Headline == "" || recap.Takeaway == "" {
		t.Errorf("incomplete recap: %+v", recap)
	}
	if len(recap.FocusAreas) != 1 || recap.FocusAreas[0] != "stall current" {
		t.Errorf("focus areas = %v", recap.FocusAreas)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != RecapSchema {
		t.Error("expected recap schema on request")
	}
	if !strings.Contains(req.Messages[0].Content, "8/10") {
		t.Errorf("user message missing score: %q", req.Messages[0].Content)
	}
	if !strings.Contains(req.Messages[0].Content, "Winding resistance only") {
		t.Errorf("user message missing correct answer: %q", req.Messages[0].Content)
	}
}

func TestService_ProviderFailure(t *testing.T) {
	mock := NewMockProvider() // Empty queue returns ErrProviderUnavailable.
	s := NewService(mock, DefaultGenConfig())

	s.RequestRecap(context.Background(), RecapInput{LessonTitle: "X", Score: 10, Total: 10})

	recap, ok := waitForRecap(t, s)
	if ok || recap != nil {
		t.Fatalf("expected no recap on failure, got %+v", recap)
	}
}

func TestService_MalformedResponse(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`not json`)})
	s := NewService(mock, DefaultGenConfig())

	s.RequestRecap(context.Background(), RecapInput{LessonTitle: "X", Score: 10, Total: 10})

	recap, ok := waitForRecap(t, s)
	if ok || recap != nil {
		t.Fatalf("expected no recap on malformed response, got %+v", recap)
	}
}

func TestService_ConsumeClearsPending(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"headline":"h","takeaway":"t","focus_areas":[],"next_lessons":"n"}`),
	})
	s := NewService(mock, DefaultGenConfig())

	s.RequestRecap(context.Background(), RecapInput{LessonTitle: "X", Score: 10, Total: 10})

	if _, ok := waitForRecap(t, s); !ok {
		t.Fatal("expected a recap")
	}
	if _, ok := s.ConsumeRecap(); ok {
		t.Fatal("second consume should return nothing")
	}
}

func TestBuildRecapUserMessage_PerfectScore(t *testing.T) {
	msg := buildRecapUserMessage(RecapInput{LessonTitle: "Thermal", Score: 10, Total: 10})
	if !strings.Contains(msg, "perfect run") {
		t.Errorf("expected perfect-run note, got %q", msg)
	}
}

func TestRecapSchema_AcceptsValidOutput(t *testing.T) {
	valid := json.RawMessage(`{
		"headline": "h",
		"takeaway": "t",
		"focus_areas": ["a", "b"],
		"next_lessons": "n"
	}`)
	if err := validateResponse(RecapSchema, valid); err != nil {
		t.Fatalf("valid recap rejected: %v", err)
	}

	missing := json.RawMessage(`{"headline": "h"}`)
	if err := validateResponse(RecapSchema, missing); err == nil {
		t.Fatal("expected rejection of incomplete recap")
	}
}
