package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirudh/explainly/internal/coach"
	"github.com/anirudh/explainly/internal/content"
	lcore "github.com/anirudh/explainly/internal/lesson"
	"github.com/anirudh/explainly/internal/router"
	"github.com/anirudh/explainly/internal/screen"
	"github.com/anirudh/explainly/internal/screens/history"
	lessonscreen "github.com/anirudh/explainly/internal/screens/lesson"
	"github.com/anirudh/explainly/internal/store"
	"github.com/anirudh/explainly/internal/ui/components"
	"github.com/anirudh/explainly/internal/ui/theme"
)

// Deps carries the host services the home screen hands down to lessons.
type Deps struct {
	Repo         store.EventRepo
	Sink         lcore.Sink
	Cue          lcore.CuePlayer
	Coach        *coach.Service
	InitialPhase string

	// Packs are the lessons on offer. Usually content.All() plus any
	// loaded custom pack.
	Packs []content.Pack
}

// HomeScreen is the lesson picker.
type HomeScreen struct {
	menu components.Menu
	deps Deps
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps Deps) *HomeScreen {
	items := make([]components.MenuItem, 0, len(deps.Packs)+2)

	for _, pack := range deps.Packs {
		p := pack
		items = append(items, components.MenuItem{
			Label: p.Title,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: lessonscreen.New(p, lessonscreen.Deps{
							Sink:         deps.Sink,
							Cue:          deps.Cue,
							Coach:        deps.Coach,
							InitialPhase: deps.InitialPhase,
						}),
					}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:    "History",
		Disabled: deps.Repo == nil,
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Repo)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "Quit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{
		menu: components.NewMenu(items),
		deps: deps,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	banner := theme.Title.Width(width).Render("EXPLAINLY") + "\n" +
		theme.Subtitle.Width(width).Render("interactive explainers for curious engineers")
	sections = append(sections, banner)

	// Concept taglines under each lesson entry would crowd the menu, so
	// show the selected lesson's concept below it instead.
	menuView := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menuView)

	if h.menu.Selected < len(h.deps.Packs) {
		concept := h.deps.Packs[h.menu.Selected].Concept
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Width(54).Render(concept)))
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Lessons"
}

// Status shows how many lessons are loaded.
func (h *HomeScreen) Status() string {
	return fmt.Sprintf("%d lessons", len(h.deps.Packs))
}
