package store

import (
	"context"
	"testing"

	"github.com/anirudh/explainly/internal/lesson"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	repo, err := openTestStore(t).EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases, so
		// journal_mode is only checked with file-backed DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestRecentSessions(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	sessions, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent (empty): %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected no sessions, got %d", len(sessions))
	}

	for i, data := range []SessionEventData{
		{SessionID: "s1", LessonID: "motor", LessonTitle: "Motor", Kind: "started"},
		{SessionID: "s1", LessonID: "motor", LessonTitle: "Motor", Kind: "completed", Score: 8, Total: 10, Passed: true},
		{SessionID: "s2", LessonID: "thermal", LessonTitle: "Thermal", Kind: "completed", Score: 4, Total: 10},
	} {
		if err := repo.AppendSessionEvent(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	sessions, err = repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 completed sessions, got %d", len(sessions))
	}
	// Newest first.
	if sessions[0].SessionID != "s2" || sessions[1].SessionID != "s1" {
		t.Errorf("unexpected order: %v, %v", sessions[0].SessionID, sessions[1].SessionID)
	}
	if sessions[1].Score != 8 || !sessions[1].Passed {
		t.Errorf("s1 summary = %+v", sessions[1])
	}
}

func TestStats(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	seed := []AnswerEventData{
		{SessionID: "s1", LessonID: "motor", QuestionIndex: 0, AnswerID: "b", Correct: true},
		{SessionID: "s1", LessonID: "motor", QuestionIndex: 1, AnswerID: "a", Correct: false},
		{SessionID: "s2", LessonID: "thermal", QuestionIndex: 0, AnswerID: "c", Correct: true},
	}
	for _, data := range seed {
		if err := repo.AppendAnswerEvent(ctx, data); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", LessonID: "motor", LessonTitle: "Motor", Kind: "started",
	}); err != nil {
		t.Fatalf("append session: %v", err)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	byID := make(map[string]LessonStats)
	for _, s := range stats {
		byID[s.LessonID] = s
	}

	motor := byID["motor"]
	if motor.Sessions != 1 || motor.Answers != 2 || motor.Correct != 1 {
		t.Errorf("motor stats = %+v", motor)
	}
	thermal := byID["thermal"]
	if thermal.Answers != 1 || thermal.Correct != 1 {
		t.Errorf("thermal stats = %+v", thermal)
	}
}

func TestEventSink_PersistsLessonFlow(t *testing.T) {
	repo := testRepo(t)
	sink := NewEventSink(repo)
	ctx := context.Background()

	now := func() lesson.Event {
		return lesson.Event{SessionID: "s1", LessonID: "motor", LessonTitle: "Motor"}
	}

	e := now()
	e.Type = lesson.EventLessonStarted
	sink.Emit(e)

	e = now()
	e.Type = lesson.EventPhaseChanged
	e.Details = map[string]any{"new_phase": "predict"}
	sink.Emit(e)

	e = now()
	e.Type = lesson.EventAnswerCorrect
	e.Details = map[string]any{"question": 0, "answer": "b"}
	sink.Emit(e)

	e = now()
	e.Type = lesson.EventGameCompleted
	e.Details = map[string]any{"score": 9, "total": 10}
	sink.Emit(e)

	sessions, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 completed session, got %d", len(sessions))
	}
	if sessions[0].Score != 9 || !sessions[0].Passed {
		t.Errorf("summary = %+v", sessions[0])
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 1 || stats[0].Answers != 1 || stats[0].Correct != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	seq, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new counter: %v", err)
	}

	ctx := context.Background()
	var prev int64 = -1
	for i := 0; i < 5; i++ {
		n, err := seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= prev {
			t.Fatalf("sequence not monotonic: %d after %d", n, prev)
		}
		prev = n
	}
}

func TestCoachUsage(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	events := []CoachEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "recap", InputTokens: 200, OutputTokens: 80, LatencyMs: 400, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "recap", InputTokens: 180, OutputTokens: 60, LatencyMs: 600, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "recap", InputTokens: 150, OutputTokens: 0, LatencyMs: 200, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendCoachEvent(ctx, e); err != nil {
			t.Fatalf("append coach event: %v", err)
		}
	}

	usage, err := repo.CoachUsage(ctx)
	if err != nil {
		t.Fatalf("coach usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("got %d usage rows, want 1", len(usage))
	}

	u := usage[0]
	if u.Purpose != "recap" {
		t.Errorf("purpose = %q, want %q", u.Purpose, "recap")
	}
	if u.Calls != 3 {
		t.Errorf("calls = %d, want 3", u.Calls)
	}
	if u.Succeeded != 2 {
		t.Errorf("succeeded = %d, want 2", u.Succeeded)
	}
	if u.InputTokens != 530 {
		t.Errorf("input tokens = %d, want 530", u.InputTokens)
	}
	if u.OutputTokens != 140 {
		t.Errorf("output tokens = %d, want 140", u.OutputTokens)
	}
	if u.AvgLatencyMs != 400 {
		t.Errorf("avg latency = %d, want 400", u.AvgLatencyMs)
	}
}
