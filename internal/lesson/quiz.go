package lesson

import "github.com/anirudh/explainly/internal/content"

// PassThreshold is the minimum score (out of QuestionCount) to pass the
// test phase. Uniform across all lessons.
const PassThreshold = 7

// Quiz walks the fixed ordered list of ten questions, recording one
// answer per question. An answer can be changed until it is submitted;
// submission locks it in and reveals correctness. The answer record
// always has exactly one slot per question.
type Quiz struct {
	questions []content.Question
	answers   []string // selected option id per question, "" = unset
	locked    []bool   // submitted per question
	index     int
	completed bool

	em *emitter
}

func newQuiz(questions []content.Question, em *emitter) *Quiz {
	return &Quiz{
		questions: questions,
		answers:   make([]string, len(questions)),
		locked:    make([]bool, len(questions)),
		em:        em,
	}
}

// Index returns the zero-based index of the current question.
func (q *Quiz) Index() int {
	return q.index
}

// Len returns the number of questions.
func (q *Quiz) Len() int {
	return len(q.questions)
}

// Current returns the question at the current index.
func (q *Quiz) Current() content.Question {
	return q.questions[q.index]
}

// Answer returns the recorded option id for question i ("" if unset).
func (q *Quiz) Answer(i int) string {
	if i < 0 || i >= len(q.answers) {
		return ""
	}
	return q.answers[i]
}

// Locked reports whether question i has been submitted.
func (q *Quiz) Locked(i int) bool {
	if i < 0 || i >= len(q.locked) {
		return false
	}
	return q.locked[i]
}

// Select records optionID as the answer for the current question. Once
// the question is submitted the selection cannot be changed.
func (q *Quiz) Select(optionID string) {
	if q.locked[q.index] {
		return
	}
	q.answers[q.index] = optionID
	q.em.emit(EventAnswerSelected, map[string]any{
		"question": q.index,
		"answer":   optionID,
	})
}

// Submit locks in the current answer and reveals correctness. It returns
// whether the answer was correct. Submitting with no selection, or
// re-submitting, is a no-op returning false.
func (q *Quiz) Submit() bool {
	if q.locked[q.index] || q.answers[q.index] == "" {
		return false
	}
	q.locked[q.index] = true

	correct := q.answers[q.index] == q.questions[q.index].CorrectID()

	q.em.emit(EventAnswerSubmitted, map[string]any{
		"question": q.index,
		"answer":   q.answers[q.index],
	})
	if correct {
		q.em.emit(EventAnswerCorrect, map[string]any{
			"question": q.index,
			"answer":   q.answers[q.index],
		})
	} else {
		q.em.emit(EventAnswerIncorrect, map[string]any{
			"question": q.index,
			"answer":   q.answers[q.index],
		})
	}
	return correct
}

// Next advances to the next question. It requires the current question to
// be submitted first. Advancing past the final question completes the
// quiz, computes the score, and emits game_completed.
func (q *Quiz) Next() {
	if !q.locked[q.index] || q.completed {
		return
	}
	if q.index < len(q.questions)-1 {
		q.index++
		q.em.emit(EventQuestionAdvanced, map[string]any{"question": q.index})
		return
	}
	q.completed = true
	q.em.emit(EventGameCompleted, map[string]any{
		"score": q.Score(),
		"total": len(q.questions),
	})
}

// Completed reports whether all questions have been answered and scored.
func (q *Quiz) Completed() bool {
	return q.completed
}

// Score counts questions whose recorded answer matches the correct option
// id. Deterministic; always in [0, len(questions)].
func (q *Quiz) Score() int {
	score := 0
	for i, qn := range q.questions {
		if q.locked[i] && q.answers[i] == qn.CorrectID() {
			score++
		}
	}
	return score
}

// IsPassing reports whether the score meets the fixed pass threshold.
func (q *Quiz) IsPassing() bool {
	return q.Score() >= PassThreshold
}
