package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T, s *Store) EventRepo {
	t.Helper()
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndSummarize(t *testing.T) {
	s := openTestStore(t)
	repo := testRepo(t, s)
	ctx := context.Background()

	events := []TaskEventData{
		{SessionID: "s1", TaskID: 1, TaskTitle: "Warm-up", Module: "Attendance & Hours", Kind: "quiz", XPAwarded: 15, Badge: "Time Sense Master", QuizAllCorrect: true},
		{SessionID: "s1", TaskID: 2, TaskTitle: "Lateness", Module: "Attendance & Hours", Kind: "standard", XPAwarded: 15},
		{SessionID: "s2", TaskID: 1, TaskTitle: "Warm-up", Module: "Attendance & Hours", Kind: "quiz", XPAwarded: 15, Badge: "Time Sense Master"},
	}
	for i, e := range events {
		if err := repo.AppendTaskCompletion(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if err := repo.AppendAssessment(ctx, AssessmentEventData{
		SessionID: "s2", Action: "accepted",
		PlacedTitle: "Advanced Excel User", PlacedLevel: 5, RecommendedModule: 2,
	}); err != nil {
		t.Fatalf("append assessment: %v", err)
	}
	if err := repo.AppendAssessment(ctx, AssessmentEventData{
		SessionID: "s3", Action: "skipped",
	}); err != nil {
		t.Fatalf("append skipped assessment: %v", err)
	}

	sum, err := repo.Summarize(ctx)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if sum.Sessions != 3 {
		t.Errorf("sessions = %d, want 3", sum.Sessions)
	}
	if sum.TasksCompleted != 3 {
		t.Errorf("tasks completed = %d, want 3", sum.TasksCompleted)
	}
	if sum.TotalXP != 45 {
		t.Errorf("total XP = %d, want 45", sum.TotalXP)
	}
	if sum.BadgesEarned != 2 {
		t.Errorf("badges = %d, want 2", sum.BadgesEarned)
	}
	if sum.QuizzesAllCorrect != 1 {
		t.Errorf("perfect quizzes = %d, want 1", sum.QuizzesAllCorrect)
	}
	if sum.AssessmentsAccepted != 1 || sum.AssessmentsSkipped != 1 {
		t.Errorf("assessments = %d/%d, want 1/1", sum.AssessmentsAccepted, sum.AssessmentsSkipped)
	}
}

func TestSummarizeEmptyJournal(t *testing.T) {
	s := openTestStore(t)
	repo := testRepo(t, s)

	sum, err := repo.Summarize(context.Background())
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if sum != (Summary{}) {
		t.Errorf("summary = %+v, want zero", sum)
	}
}

func TestWipe(t *testing.T) {
	s := openTestStore(t)
	repo := testRepo(t, s)
	ctx := context.Background()

	if err := repo.AppendTaskCompletion(ctx, TaskEventData{
		SessionID: "s1", TaskID: 1, TaskTitle: "Warm-up",
		Module: "Attendance & Hours", Kind: "quiz", XPAwarded: 15,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendAssessment(ctx, AssessmentEventData{SessionID: "s1", Action: "skipped"}); err != nil {
		t.Fatalf("append assessment: %v", err)
	}

	if err := repo.Wipe(ctx); err != nil {
		t.Fatalf("wipe: %v", err)
	}

	sum, err := repo.Summarize(ctx)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if sum.TasksCompleted != 0 || sum.Sessions != 0 {
		t.Errorf("journal not empty after wipe: %+v", sum)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}
