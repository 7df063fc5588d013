package quest

// Quiz engine: operates on the answer map of the currently open quiz
// task. Answers are immutable once recorded; only Retry clears them.

// Answer records a choice for a practice question. It is a no-op when no
// quiz task is open, the practice id is unknown, or the question was
// already answered. Returns true if the answer was recorded.
func (s *Session) Answer(practiceID string, optionIndex int) bool {
	t := s.Open()
	if t == nil || !t.IsQuiz() {
		return false
	}
	p := t.practice(practiceID)
	if p == nil {
		return false
	}
	if optionIndex < 0 || optionIndex >= len(p.Options) {
		return false
	}
	if _, answered := s.QuizAnswers[practiceID]; answered {
		return false
	}
	s.QuizAnswers[practiceID] = optionIndex
	return true
}

// Answered returns the recorded choice for a practice, if any.
func (s *Session) Answered(practiceID string) (int, bool) {
	idx, ok := s.QuizAnswers[practiceID]
	return idx, ok
}

// AllAnswered reports whether every practice of the open quiz task has a
// recorded answer. False when no quiz task is open.
func (s *Session) AllAnswered() bool {
	t := s.Open()
	if t == nil || !t.IsQuiz() {
		return false
	}
	for _, p := range t.Practices {
		if _, ok := s.QuizAnswers[p.ID]; !ok {
			return false
		}
	}
	return true
}

// AllCorrect reports whether every recorded answer matches the
// practice's designated correct option.
func (s *Session) AllCorrect() bool {
	t := s.Open()
	if t == nil || !t.IsQuiz() {
		return false
	}
	for _, p := range t.Practices {
		if idx, ok := s.QuizAnswers[p.ID]; !ok || idx != p.Answer {
			return false
		}
	}
	return true
}

// RetryQuiz clears every recorded answer for the open task and resets
// the upload status. Task status and player state are untouched.
func (s *Session) RetryQuiz() {
	s.QuizAnswers = make(map[string]int)
	s.Upload = UploadIdle
}

func (t *Task) practice(id string) *Practice {
	for i := range t.Practices {
		if t.Practices[i].ID == id {
			return &t.Practices[i]
		}
	}
	return nil
}
