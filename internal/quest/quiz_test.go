package quest

import "testing"

// Task 1 is the module-1 warm-up quiz: p1_1 answer=1, p1_2 answer=2.
func openQuizTask(t *testing.T) *Session {
	t.Helper()
	s := NewSession("Alex")
	if _, ok := s.Select(1); !ok {
		t.Fatal("select task 1 failed")
	}
	return s
}

func TestAnswerRecordsChoice(t *testing.T) {
	s := openQuizTask(t)

	if !s.Answer("p1_1", 0) {
		t.Fatal("answer not recorded")
	}
	idx, ok := s.Answered("p1_1")
	if !ok || idx != 0 {
		t.Errorf("Answered = (%d, %v), want (0, true)", idx, ok)
	}
}

func TestAnswersAreImmutableOnceSet(t *testing.T) {
	s := openQuizTask(t)

	s.Answer("p1_1", 0)
	if s.Answer("p1_1", 1) {
		t.Fatal("overwrote a recorded answer")
	}
	if idx, _ := s.Answered("p1_1"); idx != 0 {
		t.Errorf("answer = %d, want the original 0", idx)
	}
}

func TestAnswerGuards(t *testing.T) {
	s := openQuizTask(t)

	if s.Answer("no-such-practice", 0) {
		t.Error("answered an unknown practice")
	}
	if s.Answer("p1_1", -1) || s.Answer("p1_1", 99) {
		t.Error("recorded an out-of-range option")
	}

	// A standard task has no practices to answer.
	s2 := NewSession("Alex")
	completeCurrent(t, s2)
	if _, ok := s2.Select(2); !ok {
		t.Fatal("select task 2 failed")
	}
	if s2.Answer("p1_1", 0) {
		t.Error("answered a question on a non-quiz task")
	}
}

func TestAllAnsweredAllCorrect(t *testing.T) {
	tests := []struct {
		name         string
		answers      map[string]int
		wantAnswered bool
		wantCorrect  bool
	}{
		{"none answered", map[string]int{}, false, false},
		{"partially answered", map[string]int{"p1_1": 1}, false, false},
		{"all correct", map[string]int{"p1_1": 1, "p1_2": 2}, true, true},
		{"all answered one wrong", map[string]int{"p1_1": 0, "p1_2": 2}, true, false},
	}

	for _, tt := range tests {
		s := openQuizTask(t)
		for id, idx := range tt.answers {
			s.Answer(id, idx)
		}
		if got := s.AllAnswered(); got != tt.wantAnswered {
			t.Errorf("%s: AllAnswered = %v, want %v", tt.name, got, tt.wantAnswered)
		}
		if got := s.AllCorrect(); got != tt.wantCorrect {
			t.Errorf("%s: AllCorrect = %v, want %v", tt.name, got, tt.wantCorrect)
		}
	}
}

func TestRetryClearsAnswersOnly(t *testing.T) {
	s := openQuizTask(t)
	s.Answer("p1_1", 0)
	s.Answer("p1_2", 0)

	s.RetryQuiz()

	if len(s.QuizAnswers) != 0 {
		t.Errorf("answers after retry = %v, want empty", s.QuizAnswers)
	}
	if s.Upload != UploadIdle {
		t.Error("upload status not reset")
	}
	if s.StatusByID(1) != StatusActive {
		t.Error("retry changed task status")
	}
	if s.Player.XP != 0 {
		t.Error("retry changed player state")
	}
}

func TestSelectResetsQuizAnswers(t *testing.T) {
	s := openQuizTask(t)
	s.Answer("p1_1", 1)

	s.Select(1) // re-open
	if len(s.QuizAnswers) != 0 {
		t.Errorf("answers after re-open = %v, want empty", s.QuizAnswers)
	}
}

func TestQuizGatingDrivesCanComplete(t *testing.T) {
	s := openQuizTask(t)

	if s.CanComplete() {
		t.Error("claim enabled before answering")
	}

	s.Answer("p1_1", 0) // wrong
	s.Answer("p1_2", 2) // right
	if !s.AllAnswered() {
		t.Fatal("expected all answered")
	}
	if !s.CanComplete() {
		t.Error("claim must be enabled once every explanation was seen, even with wrong answers")
	}

	// "Complete anyway" still works and awards normally.
	c, ok := s.Complete()
	if !ok {
		t.Fatal("complete-anyway failed")
	}
	if c.XP != 15 {
		t.Errorf("xp = %d, want 15", c.XP)
	}
}
