package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendTaskCompletion(ctx context.Context, data TaskEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TaskEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTaskID(data.TaskID).
		SetTaskTitle(data.TaskTitle).
		SetModule(data.Module).
		SetKind(data.Kind).
		SetXpAwarded(data.XPAwarded).
		SetBadge(data.Badge).
		SetQuizAllCorrect(data.QuizAllCorrect).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save task event: %w", err)
	}
	return nil
}

// Summarize folds the whole journal into aggregate counts. The journal
// of a single user stays small, so it reads both tables in full.
func (r *eventRepo) Summarize(ctx context.Context) (Summary, error) {
	var sum Summary
	sessions := make(map[string]bool)

	tasks, err := r.client.TaskEvent.Query().All(ctx)
	if err != nil {
		return sum, fmt.Errorf("query task events: %w", err)
	}
	for _, e := range tasks {
		sessions[e.SessionID] = true
		sum.TasksCompleted++
		sum.TotalXP += e.XpAwarded
		if e.Badge != "" {
			sum.BadgesEarned++
		}
		if e.QuizAllCorrect {
			sum.QuizzesAllCorrect++
		}
	}

	assessments, err := r.client.AssessmentEvent.Query().All(ctx)
	if err != nil {
		return sum, fmt.Errorf("query assessment events: %w", err)
	}
	for _, e := range assessments {
		sessions[e.SessionID] = true
		switch e.Action {
		case "accepted":
			sum.AssessmentsAccepted++
		case "skipped":
			sum.AssessmentsSkipped++
		}
	}

	sum.Sessions = len(sessions)
	return sum, nil
}

func (r *eventRepo) Wipe(ctx context.Context) error {
	if _, err := r.client.TaskEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete task events: %w", err)
	}
	if _, err := r.client.AssessmentEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete assessment events: %w", err)
	}
	return nil
}
