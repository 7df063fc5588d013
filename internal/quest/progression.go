package quest

import (
	"fmt"

	"github.com/kaiwen/hrquest/internal/notify"
)

// Completion reports what a successful Complete awarded.
type Completion struct {
	Task    Task
	XP      int
	Badge   string // badge actually granted; empty if none or already held
	LevelUp *LevelUp
	Notice  notify.Notice
}

// CanComplete reports whether the open task is ready to claim: the
// active quiz task with every question answered, or the active standard
// task with a passed upload check.
func (s *Session) CanComplete() bool {
	t := s.Open()
	if t == nil || s.open != s.cursor {
		return false
	}
	if t.IsQuiz() {
		return s.AllAnswered()
	}
	return s.Upload == UploadSuccess
}

// Complete finishes the active task: advances the cursor (unlocking the
// next task, or reaching the terminal state), awards XP with at most one
// level increment, grants the badge if not already held, and clears the
// open-task state. Calling it with no open task, or with a completed
// task open for review, mutates nothing.
func (s *Session) Complete() (Completion, bool) {
	t := s.Open()
	if t == nil || s.open != s.cursor {
		return Completion{}, false
	}

	task := *t
	s.cursor++

	levelUp := s.Player.AwardXP(task.XPReward)

	var badge string
	if s.Player.GrantBadge(task.BadgeReward, task.BadgeIcon) {
		badge = task.BadgeReward
	}

	s.Close()
	s.Upload = UploadIdle

	label := task.BadgeReward
	if label == "" {
		label = "a clear reward"
	}
	return Completion{
		Task:    task,
		XP:      task.XPReward,
		Badge:   badge,
		LevelUp: levelUp,
		Notice: notify.Success(
			"Task complete!",
			fmt.Sprintf("Earned %d XP and %s", task.XPReward, label),
		),
	}, true
}

// ApplyPlacement is the bulk progression override used by the skill
// assessment: every task before the recommended module is marked
// completed, its first task becomes active, and the player state is set
// directly, bypassing the normal award path. This is the only mutation
// outside Complete, and the cursor representation keeps the
// single-active invariant intact by construction.
func (s *Session) ApplyPlacement(recommendedModule, level, xp int, title string) notify.Notice {
	k := TasksBeforeModule(s.Tasks, recommendedModule)
	s.cursor = k
	s.open = -1
	s.epoch++

	s.Player.Level = level
	s.Player.XP = xp
	s.Player.Title = title

	return notify.Info(
		"Learning path customized",
		fmt.Sprintf("The first %d basic tasks are already cleared!", k),
	)
}
