package content

// QuestionCount is the fixed number of quiz questions in every lesson pack.
const QuestionCount = 10

// ApplicationCount is the fixed number of real-world application entries
// in every lesson pack.
const ApplicationCount = 4

// Option is one selectable answer for a quiz question.
type Option struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Correct bool   `json:"correct"`
}

// Question is an immutable quiz question: a scenario, a prompt, an ordered
// option list with exactly one correct option, and an explanation revealed
// after the answer is locked in.
type Question struct {
	Scenario    string   `json:"scenario"`
	Prompt      string   `json:"prompt"`
	Options     []Option `json:"options"`
	Explanation string   `json:"explanation"`
}

// CorrectID returns the id of the option flagged correct, or "" if none is.
func (q Question) CorrectID() string {
	for _, o := range q.Options {
		if o.Correct {
			return o.ID
		}
	}
	return ""
}

// Application describes one real-world use of the lesson's concept,
// browsed during the transfer phase.
type Application struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

// ParamSpec declares one slider-bound knob: its valid range, step, and
// default. Values are clamped to [Min, Max] by the input control, not by
// the parameter store.
type ParamSpec struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Unit    string  `json:"unit"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// Prediction is one choice offered during the predict or twist_predict phase.
type Prediction struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Pack bundles the full static content of one lesson. Packs are immutable
// configuration injected at construction time; nothing mutates them at
// runtime.
type Pack struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Concept string `json:"concept"`

	// Hook is the opening copy shown in the hook phase.
	Hook string `json:"hook"`

	PredictPrompt string       `json:"predict_prompt"`
	Predictions   []Prediction `json:"predictions"`

	// Review is the explanation shown after the first play phase.
	Review string `json:"review"`

	TwistPrompt      string       `json:"twist_prompt"`
	TwistPredictions []Prediction `json:"twist_predictions"`
	TwistReview      string       `json:"twist_review"`

	Params       []ParamSpec   `json:"params"`
	Questions    []Question    `json:"questions"`
	Applications []Application `json:"applications"`
}
