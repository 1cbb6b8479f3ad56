package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// MissedQuestion is one quiz question the learner got wrong, with
// enough context for the model to explain the misconception.
type MissedQuestion struct {
	Prompt       string
	ChosenLabel  string
	CorrectLabel string
	Explanation  string
}

// RecapInput describes a finished lesson for recap generation.
type RecapInput struct {
	LessonTitle string
	Score       int
	Total       int
	Missed      []MissedQuestion
}

// Recap is a short personalized wrap-up shown on the mastery screen.
type Recap struct {
	Headline    string
	Takeaway    string
	FocusAreas  []string
	NextLessons string
}

// GenConfig tunes recap generation.
type GenConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultGenConfig returns generation defaults for recaps.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		MaxTokens:   600,
		Temperature: 0.4,
	}
}

// Service generates lesson recaps asynchronously.
type Service struct {
	provider Provider
	cfg      GenConfig

	mu      sync.Mutex
	pending *Recap
	err     error
	ready   bool
}

// NewService creates a recap generation service.
func NewService(provider Provider, cfg GenConfig) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestRecap starts async recap generation. Only one recap is in-flight
// at a time; new requests replace pending ones.
func (s *Service) RequestRecap(ctx context.Context, input RecapInput) {
	go func() {
		recap, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = recap
		s.err = err
		s.ready = true
	}()
}

// ConsumeRecap returns the pending recap if one is ready.
// Returns (nil, false) if no recap is ready yet.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumeRecap() (*Recap, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	recap := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return recap, recap != nil
}

type recapOutput struct {
	Headline    string   `json:"headline"`
	Takeaway    string   `json:"takeaway"`
	FocusAreas  []string `json:"focus_areas"`
	NextLessons string   `json:"next_lessons"`
}

func (s *Service) generate(ctx context.Context, input RecapInput) (*Recap, error) {
	ctx = WithPurpose(ctx, "recap")

	req := Request{
		System: recapSystemPrompt,
		Messages: []Message{
			{Role: RoleUser, Content: buildRecapUserMessage(input)},
		},
		Schema:      RecapSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("recap generation: %w", err)
	}

	var out recapOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse recap response: %w", err)
	}

	return &Recap{
		Headline:    out.Headline,
		Takeaway:    out.Takeaway,
		FocusAreas:  out.FocusAreas,
		NextLessons: out.NextLessons,
	}, nil
}

const recapSystemPrompt = `You are a friendly physics and systems tutor wrapping up an interactive lesson.
Given the lesson title, the learner's quiz score, and the questions they missed,
write a short personalized recap. Be specific about the misconceptions behind the
missed questions. Keep every field to one or two sentences. Never scold.`

// buildRecapUserMessage renders the recap request as plain text.
func buildRecapUserMessage(input RecapInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Lesson: %s\n", input.LessonTitle)
	fmt.Fprintf(&b, "Quiz score: %d/%d\n", input.Score, input.Total)

	if len(input.Missed) == 0 {
		b.WriteString("Missed questions: none — a perfect run.\n")
		return b.String()
	}

	b.WriteString("Missed questions:\n")
	for i, m := range input.Missed {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m.Prompt)
		fmt.Fprintf(&b, "   They chose: %s\n", m.ChosenLabel)
		fmt.Fprintf(&b, "   Correct answer: %s\n", m.CorrectLabel)
		if m.Explanation != "" {
			fmt.Fprintf(&b, "   Why: %s\n", m.Explanation)
		}
	}

	return b.String()
}

// RecapSchema is the JSON Schema for recap responses.
var RecapSchema = &Schema{
	Name:        "lesson-recap",
	Description: "A short personalized recap of a finished interactive lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One upbeat sentence summarizing the run",
			},
			"takeaway": map[string]any{
				"type":        "string",
				"description": "The single most important concept from this lesson",
			},
			"focus_areas": map[string]any{
				"type":        "array",
				"description": "Short phrases naming concepts behind missed questions, empty for a perfect score",
				"items": map[string]any{
					"type": "string",
				},
			},
			"next_lessons": map[string]any{
				"type":        "string",
				"description": "One sentence suggesting what to explore next",
			},
		},
		"required":             []any{"headline", "takeaway", "focus_areas", "next_lessons"},
		"additionalProperties": false,
	},
}
