package lesson

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/anirudh/explainly/internal/coach"
	"github.com/anirudh/explainly/internal/content"
	lcore "github.com/anirudh/explainly/internal/lesson"
	"github.com/anirudh/explainly/internal/screen"
	"github.com/anirudh/explainly/internal/ui/components"
	"github.com/anirudh/explainly/internal/ui/layout"
)

const (
	animInterval  = 150 * time.Millisecond
	recapInterval = 200 * time.Millisecond
)

// Deps carries the injected host services for a lesson run.
type Deps struct {
	Sink         lcore.Sink
	Cue          lcore.CuePlayer
	Coach        *coach.Service
	InitialPhase string
}

// LessonScreen drives one lesson through its ten phases.
type LessonScreen struct {
	sess *lcore.Session
	pack content.Pack
	bind binding
	deps Deps

	predict      components.MultiChoice
	twistPredict components.MultiChoice
	quiz         components.MultiChoice
	quizFor      int // question index the quiz component was built for

	sliders     []components.Slider
	focused     int
	chartMetric int
	input       components.TextInput
	editing     bool

	transferSel  int
	testBtn      components.Button
	twistApplied bool

	frame          int
	recap          *coach.Recap
	recapRequested bool
	recapWaiting   bool
	recapTicks     int
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)
var _ screen.StatusProvider = (*LessonScreen)(nil)

// New starts a session for the given pack and returns its screen.
func New(pack content.Pack, deps Deps) *LessonScreen {
	s := &LessonScreen{
		pack: pack,
		bind: bindingFor(pack.ID),
		deps: deps,
		sess: lcore.NewSession(pack, lcore.SessionConfig{
			InitialPhase: deps.InitialPhase,
			Sink:         deps.Sink,
			Cue:          deps.Cue,
		}),
	}
	s.rebuildComponents()
	return s
}

// rebuildComponents resets the interactive widgets to match a fresh
// session (also used after Restart).
func (s *LessonScreen) rebuildComponents() {
	s.predict = components.NewMultiChoice(
		s.pack.PredictPrompt, predictionChoices(s.pack.Predictions), "")
	s.twistPredict = components.NewMultiChoice(
		s.pack.TwistPrompt, predictionChoices(s.pack.TwistPredictions), "")

	s.sliders = make([]components.Slider, len(s.pack.Params))
	for i, spec := range s.pack.Params {
		s.sliders[i] = components.NewSlider(
			spec.Label, spec.Unit, spec.Min, spec.Max, spec.Step,
			s.sess.Params.Get(spec.Name), 60)
	}
	if len(s.sliders) > 0 {
		s.sliders[0].Focused = true
	}

	s.testBtn = components.NewButton("Take the test", false, func() tea.Cmd {
		s.sess.Continue()
		_, cmd := s.afterPhaseChange()
		return cmd
	})

	s.focused = 0
	s.chartMetric = 0
	s.editing = false
	s.transferSel = 0
	s.twistApplied = false
	s.quizFor = -1
	s.recap = nil
	s.recapRequested = false
	s.recapWaiting = false
	s.recapTicks = 0
	s.syncQuiz()
}

func predictionChoices(preds []content.Prediction) []components.Choice {
	out := make([]components.Choice, len(preds))
	for i, p := range preds {
		out[i] = components.Choice{ID: p.ID, Label: p.Label}
	}
	return out
}

// syncQuiz rebuilds the quiz component when the engine has advanced to
// a new question.
func (s *LessonScreen) syncQuiz() {
	idx := s.sess.Quiz.Index()
	if idx == s.quizFor || s.sess.Quiz.Completed() {
		return
	}
	q := s.sess.Quiz.Current()
	choices := make([]components.Choice, len(q.Options))
	for i, o := range q.Options {
		choices[i] = components.Choice{ID: o.ID, Label: o.Label}
	}
	s.quiz = components.NewMultiChoice(q.Prompt, choices, q.CorrectID())
	s.quizFor = idx
}

func (s *LessonScreen) Init() tea.Cmd {
	return animTick()
}

func animTick() tea.Cmd {
	return tea.Tick(animInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

func recapTick() tea.Cmd {
	return tea.Tick(recapInterval, func(t time.Time) tea.Msg {
		return recapTickMsg(t)
	})
}

func (s *LessonScreen) Title() string {
	return s.pack.Title
}

// Status shows the phase position in the header.
func (s *LessonScreen) Status() string {
	ph := s.sess.Phase()
	return fmt.Sprintf("%s  %d/%d", ph.DisplayName(), ph.Index()+1, len(lcore.AllPhases()))
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	switch s.sess.Phase() {
	case lcore.PhasePlay, lcore.PhaseTwistPlay:
		if s.editing {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Apply"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Knob"},
			{Key: "←→", Description: "Adjust"},
			{Key: "E", Description: "Exact"},
			{Key: "Tab", Description: "Chart"},
			{Key: "Enter", Description: "Continue"},
		}
	case lcore.PhasePredict, lcore.PhaseTwistPredict, lcore.PhaseTest:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Lock in"},
		}
	case lcore.PhaseTransfer:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Browse"},
			{Key: "Enter", Description: "Read"},
		}
		if s.sess.Transfer.AllCompleted() {
			hints = []layout.KeyHint{
				{Key: "↑↓", Description: "Browse"},
				{Key: "Enter", Description: "Take the test"},
			}
		}
		return hints
	case lcore.PhaseMastery:
		return []layout.KeyHint{
			{Key: "R", Description: "Play again"},
			{Key: "Esc", Description: "Home"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case animTickMsg:
		s.frame++
		return s, animTick()

	case recapTickMsg:
		if s.deps.Coach == nil {
			s.recapWaiting = false
			return s, nil
		}
		if recap, ok := s.deps.Coach.ConsumeRecap(); ok {
			s.recap = recap
			s.recapWaiting = false
			return s, nil
		}
		s.recapTicks++
		// Give up quietly once the provider timeout has surely passed.
		if s.recapWaiting && s.recapTicks < 200 {
			return s, recapTick()
		}
		s.recapWaiting = false
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// The exact-value editor owns the keyboard while open.
	if s.editing {
		return s.handleEditKey(msg)
	}

	// Digits jump straight to a phase, 1 = hook through 0 = mastery.
	if ph, ok := phaseForDigit(msg.String()); ok {
		s.sess.Controller.GoToPhase(ph)
		return s.afterPhaseChange()
	}

	switch s.sess.Phase() {
	case lcore.PhaseHook, lcore.PhaseReview, lcore.PhaseTwistReview:
		if msg.String() == "enter" {
			s.sess.Continue()
			return s.afterPhaseChange()
		}

	case lcore.PhasePredict:
		return s.handlePredictKey(msg, &s.predict)

	case lcore.PhaseTwistPredict:
		return s.handlePredictKey(msg, &s.twistPredict)

	case lcore.PhasePlay, lcore.PhaseTwistPlay:
		return s.handlePlayKey(msg)

	case lcore.PhaseTransfer:
		return s.handleTransferKey(msg)

	case lcore.PhaseTest:
		return s.handleTestKey(msg)

	case lcore.PhaseMastery:
		if msg.String() == "r" {
			s.sess.Restart()
			s.rebuildComponents()
			return s, nil
		}
	}

	return s, nil
}

func phaseForDigit(key string) (lcore.Phase, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return "", false
	}
	phases := lcore.AllPhases()
	idx := int(key[0] - '1')
	if key == "0" {
		idx = len(phases) - 1
	}
	if idx < 0 || idx >= len(phases) {
		return "", false
	}
	return phases[idx], true
}

func (s *LessonScreen) handlePredictKey(msg tea.KeyMsg, mc *components.MultiChoice) (screen.Screen, tea.Cmd) {
	if mc.Locked {
		if msg.String() == "enter" {
			s.sess.Continue()
			return s.afterPhaseChange()
		}
		return s, nil
	}

	*mc, _ = mc.Update(msg)
	if mc.Locked {
		s.sess.Predict(mc.ChosenID)
	}
	return s, nil
}

func (s *LessonScreen) handlePlayKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		s.sess.Continue()
		return s.afterPhaseChange()
	case "up", "k":
		s.focusSlider(s.focused - 1)
		return s, nil
	case "down", "j":
		s.focusSlider(s.focused + 1)
		return s, nil
	case "tab":
		if len(s.bind.Metrics) > 0 {
			s.chartMetric = (s.chartMetric + 1) % len(s.bind.Metrics)
		}
		return s, nil
	case "e":
		if s.focused >= 0 && s.focused < len(s.sliders) {
			spec := s.pack.Params[s.focused]
			s.editing = true
			s.input = components.NewTextInput(spec.Label, true, 12)
			return s, s.input.Init()
		}
		return s, nil
	}

	if s.focused >= 0 && s.focused < len(s.sliders) {
		var changed bool
		s.sliders[s.focused], changed = s.sliders[s.focused].Update(msg)
		if changed {
			spec := s.pack.Params[s.focused]
			s.sess.Params.Set(spec.Name, s.sliders[s.focused].Value)
		}
	}
	return s, nil
}

// handleEditKey drives the exact-value overlay. Enter applies the typed
// value clamped to the parameter's range; an empty entry cancels.
func (s *LessonScreen) handleEditKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "enter" {
		if s.input.Value() == "" {
			s.editing = false
			return s, nil
		}
		v, err := s.input.FloatValue()
		if err != nil {
			s.input.Submit(false)
			return s, nil
		}
		spec := s.pack.Params[s.focused]
		if v < spec.Min {
			v = spec.Min
		}
		if v > spec.Max {
			v = spec.Max
		}
		s.sliders[s.focused].Value = v
		s.sess.Params.Set(spec.Name, v)
		s.editing = false
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LessonScreen) focusSlider(i int) {
	if i < 0 || i >= len(s.sliders) {
		return
	}
	if s.focused >= 0 && s.focused < len(s.sliders) {
		s.sliders[s.focused].Focused = false
	}
	s.focused = i
	s.sliders[i].Focused = true
}

func (s *LessonScreen) handleTransferKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.transferSel > 0 {
			s.transferSel--
		}
	case "down", "j":
		if s.transferSel < s.sess.Transfer.Len()-1 {
			s.transferSel++
		}
	case "enter":
		if s.sess.Transfer.AllCompleted() {
			var cmd tea.Cmd
			s.testBtn.Active = true
			s.testBtn, cmd = s.testBtn.Update(msg)
			return s, cmd
		}
		s.sess.Transfer.View(s.transferSel)
		if next := s.sess.Transfer.NextIncomplete(); next >= 0 {
			s.transferSel = next
		}
	case "c":
		s.sess.Continue()
		return s.afterPhaseChange()
	}
	return s, nil
}

func (s *LessonScreen) handleTestKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.sess.Quiz.Completed() {
		if msg.String() == "enter" {
			s.sess.Continue()
			return s.afterPhaseChange()
		}
		return s, nil
	}

	if s.quiz.Locked {
		if msg.String() == "enter" {
			s.sess.Quiz.Next()
			s.syncQuiz()
		}
		return s, nil
	}

	before := s.quiz.SelectedID()
	s.quiz, _ = s.quiz.Update(msg)

	if s.quiz.Locked {
		s.sess.Quiz.Select(s.quiz.ChosenID)
		s.sess.Quiz.Submit()
		return s, nil
	}
	if sel := s.quiz.SelectedID(); sel != before {
		s.sess.Quiz.Select(sel)
	}
	return s, nil
}

// afterPhaseChange applies phase entry side effects: the twist model
// switch and the mastery recap request.
func (s *LessonScreen) afterPhaseChange() (screen.Screen, tea.Cmd) {
	switch s.sess.Phase() {
	case lcore.PhaseTwistPlay:
		if !s.twistApplied {
			s.twistApplied = true
			s.sess.Params.SetBool("twist", true)
		}

	case lcore.PhaseMastery:
		if s.deps.Coach != nil && !s.recapRequested {
			s.recapRequested = true
			s.recapWaiting = true
			s.deps.Coach.RequestRecap(context.Background(), s.recapInput())
			return s, recapTick()
		}
	}
	return s, nil
}

// recapInput assembles the coach request from the finished quiz.
func (s *LessonScreen) recapInput() coach.RecapInput {
	input := coach.RecapInput{
		LessonTitle: s.pack.Title,
		Score:       s.sess.Quiz.Score(),
		Total:       s.sess.Quiz.Len(),
	}

	for i, q := range s.pack.Questions {
		if !s.sess.Quiz.Locked(i) {
			continue
		}
		answer := s.sess.Quiz.Answer(i)
		correct := q.CorrectID()
		if answer == correct {
			continue
		}
		input.Missed = append(input.Missed, coach.MissedQuestion{
			Prompt:       q.Prompt,
			ChosenLabel:  optionLabel(q, answer),
			CorrectLabel: optionLabel(q, correct),
			Explanation:  q.Explanation,
		})
	}
	return input
}

func optionLabel(q content.Question, id string) string {
	for _, o := range q.Options {
		if o.ID == id {
			return o.Label
		}
	}
	return id
}
