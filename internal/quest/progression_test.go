package quest

import "testing"

// activeCount returns how many tasks currently derive as active.
func activeCount(s *Session) int {
	n := 0
	for i := range s.Tasks {
		if s.Status(i) == StatusActive {
			n++
		}
	}
	return n
}

func completeCurrent(t *testing.T, s *Session) Completion {
	t.Helper()
	active := s.Active()
	if active == nil {
		t.Fatal("no active task")
	}
	if _, ok := s.Select(active.ID); !ok {
		t.Fatalf("select active task %d failed", active.ID)
	}
	c, ok := s.Complete()
	if !ok {
		t.Fatalf("complete task %d failed", active.ID)
	}
	return c
}

func TestFreshSessionHasSingleActiveTask(t *testing.T) {
	s := NewSession("Alex")

	if got := activeCount(s); got != 1 {
		t.Fatalf("active tasks = %d, want 1", got)
	}
	if s.Status(0) != StatusActive {
		t.Errorf("task 1 status = %v, want active", s.Status(0))
	}
	for i := 1; i < len(s.Tasks); i++ {
		if s.Status(i) != StatusLocked {
			t.Errorf("task %d status = %v, want locked", i+1, s.Status(i))
		}
	}
}

func TestSelectLockedTaskWarnsAndChangesNothing(t *testing.T) {
	s := NewSession("Alex")

	notice, ok := s.Select(2)
	if ok {
		t.Fatal("selecting a locked task succeeded")
	}
	if notice.Title == "" {
		t.Error("expected a blocking notice")
	}
	if s.Open() != nil {
		t.Error("locked select opened a task")
	}
	if s.Player.XP != 0 || s.Player.Level != 1 || len(s.Player.Badges) != 0 {
		t.Error("locked select mutated player state")
	}
	if got := activeCount(s); got != 1 {
		t.Errorf("active tasks = %d, want 1", got)
	}
}

func TestCompleteAdvancesCursorAndAwardsXP(t *testing.T) {
	s := NewSession("Alex")

	c := completeCurrent(t, s)

	if c.XP != 15 {
		t.Errorf("awarded XP = %d, want 15", c.XP)
	}
	if c.LevelUp != nil {
		t.Errorf("unexpected level-up: %+v", c.LevelUp)
	}
	if s.Player.XP != 15 || s.Player.Level != 1 {
		t.Errorf("player xp=%d level=%d, want xp=15 level=1", s.Player.XP, s.Player.Level)
	}
	if s.StatusByID(1) != StatusCompleted {
		t.Error("task 1 not completed")
	}
	if s.StatusByID(2) != StatusActive {
		t.Error("task 2 not active")
	}
	if s.Open() != nil {
		t.Error("detail view still open after completion")
	}
}

func TestSecondCompletionTriggersExactlyOneLevelUp(t *testing.T) {
	s := NewSession("Alex")

	completeCurrent(t, s) // task 1: +15, xp 15 < 20
	c := completeCurrent(t, s)

	// task 2: +15, xp 30 >= 20 -> one level-up
	if c.LevelUp == nil {
		t.Fatal("expected a level-up")
	}
	if c.LevelUp.From != 1 || c.LevelUp.To != 2 {
		t.Errorf("level-up %d -> %d, want 1 -> 2", c.LevelUp.From, c.LevelUp.To)
	}
	if s.Player.Level != 2 {
		t.Errorf("level = %d, want 2", s.Player.Level)
	}
	if s.Player.MaxXP != 30 {
		t.Errorf("maxXp = %d, want floor(20*1.5)=30", s.Player.MaxXP)
	}
	if s.Player.Title != "Excel Beginner" {
		t.Errorf("title = %q, want the level-2 title", s.Player.Title)
	}
}

func TestSingleActiveInvariantHoldsAcrossFullRun(t *testing.T) {
	s := NewSession("Alex")

	for !s.Done() {
		if got := activeCount(s); got != 1 {
			t.Fatalf("active tasks = %d before completing task %d, want 1", got, s.Active().ID)
		}
		completeCurrent(t, s)
	}

	if got := activeCount(s); got != 0 {
		t.Errorf("active tasks after final completion = %d, want 0", got)
	}
	if s.Active() != nil {
		t.Error("Active() non-nil in terminal state")
	}
}

func TestCompleteWithNothingOpenIsNoop(t *testing.T) {
	s := NewSession("Alex")

	if _, ok := s.Complete(); ok {
		t.Fatal("Complete succeeded with nothing open")
	}
	if s.Player.XP != 0 || s.Player.Level != 1 || len(s.Player.Badges) != 0 {
		t.Error("player state mutated")
	}
	if s.Completed() != 0 {
		t.Error("cursor moved")
	}
}

func TestReopenedCompletedTaskCannotRecomplete(t *testing.T) {
	s := NewSession("Alex")
	completeCurrent(t, s)

	// Re-open task 1 for review.
	if _, ok := s.Select(1); !ok {
		t.Fatal("re-opening a completed task should succeed")
	}
	xp := s.Player.XP

	if _, ok := s.Complete(); ok {
		t.Fatal("re-completed an already completed task")
	}
	if s.Player.XP != xp {
		t.Errorf("xp = %d after re-complete attempt, want %d", s.Player.XP, xp)
	}
	if s.Completed() != 1 {
		t.Errorf("completed = %d, want 1", s.Completed())
	}
}

func TestBadgeNeverGrantedTwice(t *testing.T) {
	s := NewSession("Alex")

	// Tasks 7 and 12 both carry the "Org Architect" badge; only the
	// first completion may grant it.
	for i := 0; i < 12; i++ {
		completeCurrent(t, s)
	}

	seen := 0
	for _, b := range s.Player.Badges {
		if b.Name == "Org Architect" {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("Org Architect badge held %d times, want 1", seen)
	}
}

func TestCompletionNoticeFallsBackToClearReward(t *testing.T) {
	s := NewSession("Alex")
	s.Tasks[0].BadgeReward = ""

	c := completeCurrent(t, s)

	if c.Badge != "" {
		t.Errorf("badge = %q, want none", c.Badge)
	}
	if want := "Earned 15 XP and a clear reward"; c.Notice.Description != want {
		t.Errorf("notice = %q, want %q", c.Notice.Description, want)
	}
}

func TestApplyPlacementRestoresSingleActiveInvariant(t *testing.T) {
	s := NewSession("Alex")

	notice := s.ApplyPlacement(2, 5, 80, "Advanced Excel User")

	if s.Completed() != 6 {
		t.Errorf("completed = %d, want 6 (all of module 1)", s.Completed())
	}
	if s.StatusByID(7) != StatusActive {
		t.Error("task 7 not active after placement")
	}
	if got := activeCount(s); got != 1 {
		t.Errorf("active tasks = %d, want 1", got)
	}
	if s.Player.Level != 5 || s.Player.XP != 80 {
		t.Errorf("player level=%d xp=%d, want level=5 xp=80", s.Player.Level, s.Player.XP)
	}
	if s.Player.Title != "Advanced Excel User" {
		t.Errorf("title = %q", s.Player.Title)
	}
	if notice.Description == "" {
		t.Error("expected a placement notice")
	}
}
