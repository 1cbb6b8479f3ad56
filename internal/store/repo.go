package store

import (
	"context"
	"time"

	"github.com/anirudh/explainly/ent"
)

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID   string
	LessonID    string
	LessonTitle string
	Kind        string // "started", "completed", "restarted", "mastery"
	Score       int
	Total       int
	Passed      bool
}

// PhaseEventData captures one phase transition.
type PhaseEventData struct {
	SessionID string
	LessonID  string
	Phase     string
}

// AnswerEventData captures one submitted quiz answer.
type AnswerEventData struct {
	SessionID     string
	LessonID      string
	QuestionIndex int
	AnswerID      string
	Correct       bool
}

// CoachEventData captures one AI-coach API request.
type CoachEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// SessionSummary is one completed session as shown on the history screen.
type SessionSummary struct {
	SessionID   string
	LessonID    string
	LessonTitle string
	Score       int
	Total       int
	Passed      bool
	Timestamp   time.Time
}

// CoachUsage aggregates coach API usage per purpose.
type CoachUsage struct {
	Purpose      string
	Calls        int
	Succeeded    int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64

	totalLatencyMs int64
}

// LessonStats aggregates answer history per lesson.
type LessonStats struct {
	LessonID  string
	Sessions  int
	Completed int
	Mastered  int
	Answers   int
	Correct   int
}

// EventRepo provides append and query access to the lesson event log.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendPhaseEvent(ctx context.Context, data PhaseEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendCoachEvent(ctx context.Context, data CoachEventData) error

	// RecentSessions returns the most recent completed sessions, newest
	// first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// Stats aggregates per-lesson totals across all history.
	Stats(ctx context.Context) ([]LessonStats, error)

	// CoachUsage aggregates coach request totals per purpose.
	CoachUsage(ctx context.Context) ([]CoachUsage, error)
}

// eventRepo implements EventRepo on the ent client with a shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ EventRepo = (*eventRepo)(nil)
