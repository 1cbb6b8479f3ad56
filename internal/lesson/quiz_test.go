package lesson

import "testing"

// answerAll submits the given option id for every question.
func answerAll(q *Quiz, optionID string) {
	for i := 0; i < q.Len(); i++ {
		q.Select(optionID)
		q.Submit()
		q.Next()
	}
}

func TestQuiz_AllCorrect(t *testing.T) {
	s, sink, _ := newTestSession("test")
	answerAll(s.Quiz, "b")

	if got := s.Quiz.Score(); got != 10 {
		t.Errorf("Score() = %d, want 10", got)
	}
	if !s.Quiz.IsPassing() {
		t.Error("IsPassing() = false for perfect score")
	}
	if !s.Quiz.Completed() {
		t.Error("Completed() = false after answering all questions")
	}

	done := sink.ofType(EventGameCompleted)
	if len(done) != 1 {
		t.Fatalf("expected 1 game_completed event, got %d", len(done))
	}
	if done[0].Details["score"] != 10 || done[0].Details["total"] != 10 {
		t.Errorf("game_completed details = %v", done[0].Details)
	}
}

func TestQuiz_AllWrong(t *testing.T) {
	s, _, _ := newTestSession("test")
	answerAll(s.Quiz, "a")

	if got := s.Quiz.Score(); got != 0 {
		t.Errorf("Score() = %d, want 0", got)
	}
	if s.Quiz.IsPassing() {
		t.Error("IsPassing() = true for zero score")
	}
}

func TestQuiz_PassThreshold(t *testing.T) {
	tests := []struct {
		correct int
		passing bool
	}{
		{0, false},
		{6, false},
		{7, true},
		{10, true},
	}

	for _, tt := range tests {
		s, _, _ := newTestSession("test")
		q := s.Quiz
		for i := 0; i < q.Len(); i++ {
			if i < tt.correct {
				q.Select("b")
			} else {
				q.Select("a")
			}
			q.Submit()
			q.Next()
		}
		if got := q.Score(); got != tt.correct {
			t.Errorf("Score() = %d, want %d", got, tt.correct)
		}
		if got := q.IsPassing(); got != tt.passing {
			t.Errorf("%d correct: IsPassing() = %v, want %v", tt.correct, got, tt.passing)
		}
	}
}

func TestQuiz_SubmitLocksAnswer(t *testing.T) {
	s, _, _ := newTestSession("test")
	q := s.Quiz

	q.Select("a")
	q.Select("b") // change of mind before submit is allowed
	if got := q.Answer(0); got != "b" {
		t.Errorf("Answer(0) = %q, want %q", got, "b")
	}

	if !q.Submit() {
		t.Error("Submit() = false for correct answer")
	}
	q.Select("a") // locked; no retraction
	if got := q.Answer(0); got != "b" {
		t.Errorf("post-submit Answer(0) = %q, want %q", got, "b")
	}
	if q.Submit() {
		t.Error("re-Submit() = true")
	}
}

func TestQuiz_NextRequiresSubmission(t *testing.T) {
	s, _, _ := newTestSession("test")
	q := s.Quiz

	q.Next()
	if got := q.Index(); got != 0 {
		t.Errorf("Next() without submission advanced to %d", got)
	}

	q.Select("b")
	q.Next() // selected but not submitted
	if got := q.Index(); got != 0 {
		t.Errorf("Next() without submission advanced to %d", got)
	}

	q.Submit()
	q.Next()
	if got := q.Index(); got != 1 {
		t.Errorf("Next() after submission: index = %d, want 1", got)
	}
}

func TestQuiz_SubmitWithoutSelection(t *testing.T) {
	s, _, _ := newTestSession("test")
	if s.Quiz.Submit() {
		t.Error("Submit() with no selection = true")
	}
	if s.Quiz.Locked(0) {
		t.Error("empty submit locked the question")
	}
}

func TestQuiz_AnswerRecordLengthInvariant(t *testing.T) {
	s, _, _ := newTestSession("test")
	q := s.Quiz

	// Arbitrary interleaving of selects, submits, and nexts.
	q.Select("a")
	q.Select("c")
	q.Submit()
	q.Next()
	q.Select("b")
	q.Submit()
	q.Submit()
	q.Next()
	q.Next()

	if len(q.answers) != 10 || len(q.locked) != 10 {
		t.Errorf("answer record length = %d/%d, want 10/10", len(q.answers), len(q.locked))
	}
}

func TestQuiz_EventsPerAnswer(t *testing.T) {
	s, sink, _ := newTestSession("test")
	q := s.Quiz

	q.Select("b")
	q.Submit()

	if n := len(sink.ofType(EventAnswerSelected)); n != 1 {
		t.Errorf("answer_selected events = %d, want 1", n)
	}
	if n := len(sink.ofType(EventAnswerSubmitted)); n != 1 {
		t.Errorf("answer_submitted events = %d, want 1", n)
	}
	if n := len(sink.ofType(EventAnswerCorrect)); n != 1 {
		t.Errorf("answer_correct events = %d, want 1", n)
	}

	q.Next()
	q.Select("a")
	q.Submit()
	if n := len(sink.ofType(EventAnswerIncorrect)); n != 1 {
		t.Errorf("answer_incorrect events = %d, want 1", n)
	}
}
