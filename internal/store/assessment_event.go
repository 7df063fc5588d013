package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetPlacedTitle(data.PlacedTitle).
		SetPlacedLevel(data.PlacedLevel).
		SetRecommendedModule(data.RecommendedModule).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}
