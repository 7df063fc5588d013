// Package quest holds the task catalog, the player, and the progression
// rules that connect them. All state is in-memory and owned by a single
// Session; nothing here touches the terminal.
package quest

// Status is the display state of a task on the quest map.
type Status int

const (
	StatusLocked Status = iota
	StatusActive
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	default:
		return "locked"
	}
}

// Kind distinguishes inline-quiz tasks from file-submission tasks.
type Kind int

const (
	KindStandard Kind = iota
	KindQuiz
)

// Practice is one multiple-choice question inside a quiz task.
// Practices are immutable once the catalog is built.
type Practice struct {
	ID          string
	Question    string
	Options     []string
	Answer      int // index into Options
	Explanation string
}

// SkillNode is reference material attached to a task: a named technique,
// the formula it centers on, and the tutorial video covering it.
// Inert to progression logic.
type SkillNode struct {
	Name       string
	Formula    string
	Context    string
	VideoTitle string
}

// Task is one unit of work on the quest map. Status is not stored on the
// task; it derives from the session's progression cursor.
type Task struct {
	ID           int // unique, ascending, contiguous from 1
	Module       string
	Kind         Kind
	Title        string
	Scenario     string
	Desc         string
	XPReward     int
	BadgeReward  string // empty = no badge
	BadgeIcon    BadgeIcon
	Requirements []string
	SkillNodes   []SkillNode
	Practices    []Practice // quiz tasks only
	DownloadFile string     // standard tasks only
	TimeLimit    int        // seconds; 0 = untimed
	Boss         bool       // cosmetic flag, no differing logic
}

// IsQuiz reports whether the task completes through the inline quiz.
func (t Task) IsQuiz() bool {
	return t.Kind == KindQuiz && len(t.Practices) > 0
}
