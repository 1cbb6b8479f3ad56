package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirudh/explainly/internal/ui/theme"
)

// Choice is one selectable option identified by a stable id.
type Choice struct {
	ID    string
	Label string
}

// MultiChoice is a multiple-choice selector. Selection moves freely
// until Lock, after which the correct and chosen options are revealed.
type MultiChoice struct {
	Prompt    string
	Choices   []Choice
	CorrectID string
	Selected  int
	Locked    bool
	ChosenID  string
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(prompt string, choices []Choice, correctID string) MultiChoice {
	return MultiChoice{
		Prompt:    prompt,
		Choices:   choices,
		CorrectID: correctID,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Enter locks the current selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Choices)-1 {
			m.Selected++
		}
	case "enter":
		m.Locked = true
		m.ChosenID = m.Choices[m.Selected].ID
	}

	return m, nil
}

// SelectedID returns the id of the highlighted option.
func (m MultiChoice) SelectedID() string {
	if m.Selected < 0 || m.Selected >= len(m.Choices) {
		return ""
	}
	return m.Choices[m.Selected].ID
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(m.Prompt) + "\n\n"

	for i, c := range m.Choices {
		prefix := "  "
		if i == m.Selected && !m.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, c.ID, c.Label)

		if m.Locked {
			switch {
			case c.ID == m.CorrectID:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case c.ID == m.ChosenID:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// IsCorrect returns true if the locked choice is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Locked && m.ChosenID == m.CorrectID
}
