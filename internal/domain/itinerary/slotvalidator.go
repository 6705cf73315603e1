package itinerary

import (
	"context"
	"fmt"
	"time"

	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/domain/shared"
)

// SlotValidator applies the plan-relative scheduling rules in a fixed order:
// overlap with other entries, then plan bounds, then the scheduling horizon.
type SlotValidator struct {
	repo Repository
}

func NewSlotValidator(repo Repository) *SlotValidator {
	return &SlotValidator{repo: repo}
}

// Validate checks [start, end) against p. excludeID is the entry being
// rescheduled, or 0 for a new entry.
func (v *SlotValidator) Validate(ctx context.Context, p *plan.Plan, start, end time.Time, excludeID uint, now time.Time) error {
	overlapping, err := v.repo.ExistsOverlapping(ctx, p.ID(), start, end, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check overlapping entries: %w", err)
	}
	if overlapping {
		return ErrTimeConflict
	}
	if !p.Covers(start, end) {
		return ErrOutsidePlan
	}
	if start.After(shared.SchedulingHorizon(now)) {
		return ErrBeyondHorizon
	}
	return nil
}
