package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/anirudh/explainly/internal/content"
	lcore "github.com/anirudh/explainly/internal/lesson"
	"github.com/anirudh/explainly/internal/ui/components"
	"github.com/anirudh/explainly/internal/ui/theme"
)

var pulseFrames = []string{"◜", "◠", "◝", "◞", "◡", "◟"}

func (s *LessonScreen) View(width, height int) string {
	var body string

	switch s.sess.Phase() {
	case lcore.PhaseHook:
		body = s.renderCopy("Hook", s.pack.Hook, "Press Enter to make a prediction.")
	case lcore.PhasePredict:
		body = s.renderPredict(s.predict, width)
	case lcore.PhasePlay:
		body = s.renderPlay(width, false)
	case lcore.PhaseReview:
		body = s.renderReview(s.pack.Review, s.pack.Predictions, s.sess.Prediction)
	case lcore.PhaseTwistPredict:
		body = s.renderPredict(s.twistPredict, width)
	case lcore.PhaseTwistPlay:
		body = s.renderPlay(width, true)
	case lcore.PhaseTwistReview:
		body = s.renderReview(s.pack.TwistReview, s.pack.TwistPredictions, s.sess.TwistPrediction)
	case lcore.PhaseTransfer:
		body = s.renderTransfer(width)
	case lcore.PhaseTest:
		body = s.renderTest(width)
	case lcore.PhaseMastery:
		body = s.renderMastery(width)
	}

	dots := components.PhaseDots(s.sess.Phase().Index(), len(lcore.AllPhases()))
	header := lipgloss.PlaceHorizontal(width, lipgloss.Center, dots)

	return header + "\n\n" + body
}

func (s *LessonScreen) renderCopy(heading, copyText, hint string) string {
	var b strings.Builder
	b.WriteString("  " + theme.Title.Render(heading) + "\n\n")
	b.WriteString(theme.Body.PaddingLeft(2).Width(76).Render(copyText))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.PaddingLeft(2).Render(hint))
	return b.String()
}

func (s *LessonScreen) renderPredict(mc components.MultiChoice, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(mc.View()))

	if mc.Locked {
		b.WriteString("\n")
		b.WriteString(theme.Hint.PaddingLeft(2).Render(
			"Prediction locked in. Press Enter to find out."))
	}
	return b.String()
}

func (s *LessonScreen) renderPlay(width int, twist bool) string {
	var b strings.Builder

	pulse := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(pulseFrames[s.frame%len(pulseFrames)])
	heading := "Play with the model"
	if twist {
		heading = "Play with the twist"
	}
	b.WriteString(fmt.Sprintf("  %s %s\n\n", pulse, theme.Selected.Render(heading)))

	for _, sl := range s.sliders {
		b.WriteString("  " + sl.View() + "\n")
	}
	b.WriteString("\n")

	if s.editing {
		spec := s.pack.Params[s.focused]
		b.WriteString(fmt.Sprintf("  %s %s\n\n",
			theme.Body.Render(fmt.Sprintf("Set %s (%s):", spec.Label, spec.Unit)),
			s.input.View()))
	}

	// Live readouts, recomputed every render.
	values := s.bind.Values(s.sess.Params, twist)
	for i, v := range values {
		marker := "  "
		if i == s.chartMetric {
			marker = lipgloss.NewStyle().Foreground(theme.Accent).Render("▸ ")
		}
		line := fmt.Sprintf("%s%-20s %s %s", marker, v.Label,
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%10.2f", v.Value)),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(v.Unit))
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")

	if points := s.bind.Curve(s.sess.Params, twist, s.chartMetric); len(points) > 0 {
		spec, _ := s.sess.Params.Spec(s.bind.SweepParam)
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = p.X
			ys[i] = p.Y
		}

		metric := s.bind.Metrics[s.chartMetric]
		chart := components.Chart{
			Title:  fmt.Sprintf("%s vs %s", metric.Label, spec.Label),
			YUnit:  metric.Unit,
			Xs:     xs,
			Ys:     ys,
			MarkX:  s.sess.Params.Get(s.bind.SweepParam),
			Width:  width - 14,
			Height: 6,
		}
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(chart.View()))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *LessonScreen) renderReview(reviewText string, preds []content.Prediction, chosen string) string {
	var b strings.Builder
	b.WriteString("  " + theme.Title.Render("What just happened") + "\n\n")

	if chosen != "" {
		label := chosen
		for _, p := range preds {
			if p.ID == chosen {
				label = p.Label
			}
		}
		b.WriteString(theme.Hint.PaddingLeft(2).Render("Your prediction: " + label))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Body.PaddingLeft(2).Width(76).Render(reviewText))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.PaddingLeft(2).Render("Press Enter to continue."))
	return b.String()
}

func (s *LessonScreen) renderTransfer(width int) string {
	var b strings.Builder
	b.WriteString("  " + theme.Title.Render("Where this shows up") + "\n\n")

	entries := s.sess.Transfer.Entries()
	for i, e := range entries {
		check := lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		if s.sess.Transfer.Completed(i) {
			check = lipgloss.NewStyle().Foreground(theme.Success).Render("●")
		}

		line := fmt.Sprintf("%s %s — %s", check, e.Title, e.Tagline)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "    "
		if i == s.transferSel {
			style = style.Foreground(theme.Primary).Bold(true)
			prefix = "  ▸ "
		}
		b.WriteString(prefix + style.Render(line) + "\n")
	}
	b.WriteString("\n")

	// Detail panel for the selected entry, once read.
	if s.transferSel < len(entries) && s.sess.Transfer.Completed(s.transferSel) {
		b.WriteString(theme.Card.Width(width - 8).MarginLeft(2).
			Render(entries[s.transferSel].Description))
		b.WriteString("\n\n")
	}

	if s.sess.Transfer.AllCompleted() {
		btn := s.testBtn
		btn.Active = true
		b.WriteString(btn.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.PaddingLeft(2).Render("All explored. Press Enter to start the test."))
	} else {
		remaining := 0
		for i := range entries {
			if !s.sess.Transfer.Completed(i) {
				remaining++
			}
		}
		b.WriteString(theme.Hint.PaddingLeft(2).Render(
			fmt.Sprintf("%d left to explore before the test unlocks.", remaining)))
	}

	return b.String()
}

func (s *LessonScreen) renderTest(width int) string {
	var b strings.Builder

	if s.sess.Quiz.Completed() {
		score := s.sess.Quiz.Score()
		b.WriteString("  " + theme.Title.Render("Quiz complete") + "\n\n")
		b.WriteString(theme.Body.PaddingLeft(2).Render(
			fmt.Sprintf("You scored %d out of %d.", score, s.sess.Quiz.Len())))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.PaddingLeft(2).Render("Press Enter for your results."))
		return b.String()
	}

	idx := s.sess.Quiz.Index()
	q := s.sess.Quiz.Current()

	progress := components.PhaseDots(idx, s.sess.Quiz.Len())
	b.WriteString("  " + progress + "\n\n")

	if q.Scenario != "" {
		b.WriteString(theme.Hint.PaddingLeft(2).Width(76).Render(q.Scenario))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.quiz.View()))

	if s.quiz.Locked {
		b.WriteString("\n")
		verdict := theme.Correct.Render("Correct!")
		if !s.quiz.IsCorrect() {
			verdict = theme.Incorrect.Render("Not quite.")
		}
		b.WriteString("  " + verdict + "\n\n")
		b.WriteString(theme.Body.PaddingLeft(2).Width(76).Render(q.Explanation))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.PaddingLeft(2).Render("Press Enter for the next question."))
	}

	return b.String()
}

func (s *LessonScreen) renderMastery(width int) string {
	var b strings.Builder

	score := s.sess.Quiz.Score()
	total := s.sess.Quiz.Len()
	passed := s.sess.Quiz.IsPassing()

	if passed {
		b.WriteString("  " + theme.Correct.Render("★ Mastery achieved") + "\n\n")
	} else {
		b.WriteString("  " + theme.Title.Render("Lesson complete") + "\n\n")
	}

	b.WriteString(theme.Body.PaddingLeft(2).Render(
		fmt.Sprintf("Final score: %d/%d  (pass mark %d)", score, total, lcore.PassThreshold)))
	b.WriteString("\n\n")

	if total > 0 {
		bar := components.NewProgressBar("Score", float64(score)/float64(total), true, width-20)
		b.WriteString("  " + bar.View() + "\n\n")
	}

	switch {
	case s.recap != nil:
		var card strings.Builder
		card.WriteString(theme.Selected.Render(s.recap.Headline) + "\n\n")
		card.WriteString(s.recap.Takeaway)
		if len(s.recap.FocusAreas) > 0 {
			card.WriteString("\n\nWorth another look: " + strings.Join(s.recap.FocusAreas, ", "))
		}
		if s.recap.NextLessons != "" {
			card.WriteString("\n\n" + s.recap.NextLessons)
		}
		b.WriteString(theme.Card.Width(width - 8).MarginLeft(2).Render(card.String()))
		b.WriteString("\n\n")
	case s.recapWaiting:
		pulse := pulseFrames[s.frame%len(pulseFrames)]
		b.WriteString(theme.Hint.PaddingLeft(2).Render(pulse + " Your coach is writing a recap..."))
		b.WriteString("\n\n")
	}

	if !passed {
		b.WriteString(theme.Hint.PaddingLeft(2).Render(
			"Press R to run the lesson again and beat the pass mark."))
	} else {
		b.WriteString(theme.Hint.PaddingLeft(2).Render(
			"Press R to play again, or Esc for another lesson."))
	}

	return b.String()
}
