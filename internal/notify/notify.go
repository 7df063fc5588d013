package notify

import "time"

// Level controls toast styling and auto-clear duration.
type Level int

const (
	LevelInfo    Level = iota // transient, auto-clears 4s
	LevelSuccess              // green styled, auto-clears 4s
	LevelWarning              // yellow, auto-clears 8s
	LevelError                // red, auto-clears 12s
)

// TTL returns the auto-clear duration for the level.
func (l Level) TTL() time.Duration {
	switch l {
	case LevelWarning:
		return 8 * time.Second
	case LevelError:
		return 12 * time.Second
	default:
		return 4 * time.Second
	}
}

// Notice is a user-facing notification.
type Notice struct {
	Title       string
	Description string
	Level       Level
}

// Msg delivers a notice to the app model for toast display.
type Msg struct {
	Notice Notice
}

// DismissMsg clears the toast it was scheduled for. Seq guards against
// an old timer clearing a newer toast.
type DismissMsg struct {
	Seq int
}

func Info(title, description string) Notice {
	return Notice{Title: title, Description: description, Level: LevelInfo}
}

func Success(title, description string) Notice {
	return Notice{Title: title, Description: description, Level: LevelSuccess}
}

func Warning(title, description string) Notice {
	return Notice{Title: title, Description: description, Level: LevelWarning}
}

func Error(title, description string) Notice {
	return Notice{Title: title, Description: description, Level: LevelError}
}
