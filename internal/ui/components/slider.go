package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anirudh/explainly/internal/ui/theme"
)

// Slider adjusts a bounded numeric value in fixed steps.
type Slider struct {
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Step    float64
	Value   float64
	Width   int
	Focused bool
}

// NewSlider creates a slider clamped to [min, max].
func NewSlider(label, unit string, min, max, step, value float64, width int) Slider {
	s := Slider{
		Label: label,
		Unit:  unit,
		Min:   min,
		Max:   max,
		Step:  step,
		Width: width,
	}
	s.Value = s.clamp(value)
	return s
}

func (s Slider) clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Update handles left/right adjustment while focused. Returns true when
// the value changed.
func (s Slider) Update(msg tea.Msg) (Slider, bool) {
	if !s.Focused {
		return s, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, false
	}

	old := s.Value
	switch kmsg.String() {
	case "left", "h":
		s.Value = s.clamp(s.Value - s.Step)
	case "right", "l":
		s.Value = s.clamp(s.Value + s.Step)
	case "home":
		s.Value = s.Min
	case "end":
		s.Value = s.Max
	}

	return s, s.Value != old
}

// SetValue clamps and stores v.
func (s *Slider) SetValue(v float64) {
	s.Value = s.clamp(v)
}

// View renders the slider as a filled track with a value readout.
func (s Slider) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if s.Focused {
		labelStyle = labelStyle.Bold(true).Foreground(theme.Primary)
	}

	trackWidth := s.Width - 24
	if trackWidth < 10 {
		trackWidth = 10
	}

	frac := 0.0
	if s.Max > s.Min {
		frac = (s.Value - s.Min) / (s.Max - s.Min)
	}
	filled := int(frac * float64(trackWidth))
	if filled > trackWidth {
		filled = trackWidth
	}
	if filled < 0 {
		filled = 0
	}

	track := theme.SliderFill.Render(strings.Repeat("━", filled)) +
		theme.SliderFill.Render("●") +
		theme.SliderTrack.Render(strings.Repeat("─", trackWidth-filled))

	readout := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("%s %s", formatSliderValue(s.Value), s.Unit))

	return fmt.Sprintf("%-14s %s  %s", labelStyle.Render(s.Label), track, readout)
}

// formatSliderValue trims trailing zeros so 12.0 reads as 12 but 0.45
// keeps its decimals.
func formatSliderValue(v float64) string {
	out := fmt.Sprintf("%.2f", v)
	out = strings.TrimRight(out, "0")
	out = strings.TrimRight(out, ".")
	if out == "" || out == "-" {
		return "0"
	}
	return out
}
