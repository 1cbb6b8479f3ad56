package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirudh/explainly/internal/coach"
	"github.com/anirudh/explainly/internal/content"
	lcore "github.com/anirudh/explainly/internal/lesson"
	"github.com/anirudh/explainly/internal/router"
	"github.com/anirudh/explainly/internal/screen"
	"github.com/anirudh/explainly/internal/screens/home"
	lessonscreen "github.com/anirudh/explainly/internal/screens/lesson"
	"github.com/anirudh/explainly/internal/store"
	"github.com/anirudh/explainly/internal/ui/layout"
)

// Options wires the host services into the TUI.
type Options struct {
	Repo  store.EventRepo
	Sink  lcore.Sink
	Cue   lcore.CuePlayer
	Coach *coach.Service

	// Packs lists the lessons on offer (content.All() plus any loaded
	// custom pack).
	Packs []content.Pack

	// StartLesson, when set, skips the picker and opens that lesson.
	StartLesson string

	// InitialPhase is the optional phase hint forwarded to new sessions.
	InitialPhase string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel builds the screen stack from options.
func newAppModel(opts Options) AppModel {
	deps := home.Deps{
		Repo:         opts.Repo,
		Sink:         opts.Sink,
		Cue:          opts.Cue,
		Coach:        opts.Coach,
		InitialPhase: opts.InitialPhase,
		Packs:        opts.Packs,
	}

	r := router.New(home.New(deps))

	if opts.StartLesson != "" {
		for _, p := range opts.Packs {
			if p.ID == opts.StartLesson {
				r.Push(lessonscreen.New(p, lessonscreen.Deps{
					Sink:         opts.Sink,
					Cue:          opts.Cue,
					Coach:        opts.Coach,
					InitialPhase: opts.InitialPhase,
				}))
				break
			}
		}
	}

	return AppModel{router: r}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok && active != nil {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	if m.router.Depth() > 1 {
		footerHints = append(footerHints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
