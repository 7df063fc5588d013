package store

import (
	"context"
)

// TaskEventData captures one task completion for the journal.
type TaskEventData struct {
	SessionID      string
	TaskID         int
	TaskTitle      string
	Module         string
	Kind           string
	XPAwarded      int
	Badge          string
	QuizAllCorrect bool
}

// AssessmentEventData captures the placement outcome for the journal.
type AssessmentEventData struct {
	SessionID         string
	Action            string // "skipped" or "accepted"
	PlacedTitle       string
	PlacedLevel       int
	RecommendedModule int
}

// Summary aggregates the journal for the stats command.
type Summary struct {
	Sessions            int
	TasksCompleted      int
	TotalXP             int
	BadgesEarned        int
	QuizzesAllCorrect   int
	AssessmentsAccepted int
	AssessmentsSkipped  int
}

// EventRepo provides append and aggregate access to journal events.
type EventRepo interface {
	// AppendTaskCompletion records a completed task.
	AppendTaskCompletion(ctx context.Context, data TaskEventData) error

	// AppendAssessment records a placement outcome.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// Summarize aggregates all journal events.
	Summarize(ctx context.Context) (Summary, error)

	// Wipe deletes every journal event.
	Wipe(ctx context.Context) error
}
