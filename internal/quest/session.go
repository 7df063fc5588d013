package quest

import (
	"github.com/google/uuid"

	"github.com/kaiwen/hrquest/internal/countdown"
	"github.com/kaiwen/hrquest/internal/notify"
)

// Session is the single owner of all quest state for one app launch:
// the task catalog, the player, the progression cursor, and the
// ephemeral state of the task currently open in the detail view.
//
// The active task is the cursor position. Statuses derive from it, so
// two simultaneously active tasks are unrepresentable.
type Session struct {
	ID     string
	Tasks  []Task
	Player PlayerState

	// cursor indexes the active task; len(Tasks) means everything is done.
	cursor int

	// open indexes the task shown in the detail view, -1 when closed.
	// Completed tasks may be re-opened for review but never re-completed.
	open int

	// epoch invalidates delayed callbacks (timer ticks, upload checks)
	// scheduled for a previous task interaction.
	epoch int

	// Ephemeral per-open-task state, reset by Open.
	QuizAnswers   map[string]int
	Upload        UploadStatus
	HasDownloaded bool
	Timer         countdown.Countdown
}

// NewSession builds a fresh session over the full catalog with a
// level-1 player. Task 1 is active, everything else locked.
func NewSession(playerName string) *Session {
	return &Session{
		ID:          uuid.NewString(),
		Tasks:       Catalog(),
		Player:      NewPlayer(playerName),
		open:        -1,
		QuizAnswers: make(map[string]int),
	}
}

// Status returns the derived status of the task at index i.
func (s *Session) Status(i int) Status {
	switch {
	case i < s.cursor:
		return StatusCompleted
	case i == s.cursor:
		return StatusActive
	default:
		return StatusLocked
	}
}

// StatusByID returns the derived status of the task with the given id.
func (s *Session) StatusByID(id int) Status {
	return s.Status(id - 1)
}

// Active returns the active task, or nil once every task is completed.
func (s *Session) Active() *Task {
	if s.cursor >= len(s.Tasks) {
		return nil
	}
	return &s.Tasks[s.cursor]
}

// Open returns the task currently open in the detail view, or nil.
func (s *Session) Open() *Task {
	if s.open < 0 || s.open >= len(s.Tasks) {
		return nil
	}
	return &s.Tasks[s.open]
}

// Epoch identifies the current task interaction. Delayed callbacks carry
// the epoch they were scheduled under and are dropped when it has moved on.
func (s *Session) Epoch() int {
	return s.epoch
}

// Select opens the task with the given id. Selecting a locked task is a
// no-op that returns a blocking warning notice. Opening a task resets
// all per-task ephemeral state and invalidates pending callbacks.
func (s *Session) Select(id int) (notify.Notice, bool) {
	i := id - 1
	if i < 0 || i >= len(s.Tasks) {
		return notify.Notice{}, false
	}
	if s.Status(i) == StatusLocked {
		return notify.Warning(
			"Task still locked",
			"Complete the previous task to unlock this one!",
		), false
	}

	s.open = i
	s.epoch++
	s.QuizAnswers = make(map[string]int)
	s.Upload = UploadIdle
	s.HasDownloaded = false
	s.Timer = countdown.Countdown{}
	return notify.Notice{}, true
}

// Close dismisses the detail view. The timer stops and any in-flight
// delayed callback for this interaction is invalidated.
func (s *Session) Close() {
	s.open = -1
	s.epoch++
	s.Timer.Stop()
}

// Tick advances the countdown by one second. Ticks scheduled under an
// older epoch, or arriving with no open task, are dropped.
func (s *Session) Tick(epoch int) {
	if epoch != s.epoch || s.open < 0 {
		return
	}
	s.Timer.Tick()
}

// Completed reports how many tasks have been completed.
func (s *Session) Completed() int {
	return s.cursor
}

// Done reports whether the final task has been completed.
func (s *Session) Done() bool {
	return s.cursor >= len(s.Tasks)
}
