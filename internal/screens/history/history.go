package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/anirudh/explainly/internal/router"
	"github.com/anirudh/explainly/internal/screen"
	"github.com/anirudh/explainly/internal/store"
	"github.com/anirudh/explainly/internal/ui/layout"
	"github.com/anirudh/explainly/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummary
	Stats    []store.LessonStats
	Err      error
}

// HistoryScreen displays past lesson runs and per-lesson totals.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummary
	stats     []store.LessonStats
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := s.eventRepo.RecentSessions(ctx, 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		stats, err := s.eventRepo.Stats(ctx)
		if err != nil {
			return historyLoadedMsg{Sessions: sessions}
		}

		return historyLoadedMsg{Sessions: sessions, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No finished lessons yet. Go run one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.Timestamp.Format("Jan 02, 2006")

		verdict := lipgloss.NewStyle().Foreground(theme.TextDim).Render("—")
		if sess.Passed {
			verdict = lipgloss.NewStyle().Foreground(theme.Success).Render("★ mastered")
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-36s %d/%d  %s",
			prefix, dateStr, sess.LessonTitle, sess.Score, sess.Total, verdict)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	if len(s.stats) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", 60))))
		b.WriteString("\n\n")

		for _, st := range s.stats {
			acc := 0.0
			if st.Answers > 0 {
				acc = float64(st.Correct) / float64(st.Answers) * 100
			}
			line := fmt.Sprintf("%-14s %3d runs  %3d mastered  %.0f%% answer accuracy",
				st.LessonID, st.Sessions, st.Mastered, acc)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
