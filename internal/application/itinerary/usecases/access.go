package usecases

import (
	"context"
	"fmt"

	"github.com/tripline/tripline/internal/application/collaboration/services"
	"github.com/tripline/tripline/internal/domain/place"
	"github.com/tripline/tripline/internal/domain/plan"
)

// planAccess loads a plan and checks that the caller is an ACCEPTED member.
// Writers lock the plan row so concurrent itinerary writes on the same plan
// serialize before the overlap check.
type planAccess struct {
	planRepo    plan.Repository
	membership  *services.MembershipService
	lockOnWrite bool
}

func (a *planAccess) load(ctx context.Context, planID uint, forWrite bool) (*plan.Plan, error) {
	var (
		p   *plan.Plan
		err error
	)
	if forWrite && a.lockOnWrite {
		p, err = a.planRepo.GetByIDForUpdate(ctx, planID)
	} else {
		p, err = a.planRepo.GetByID(ctx, planID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if p == nil {
		return nil, plan.ErrPlanNotFound
	}
	return p, nil
}

func (a *planAccess) authorize(ctx context.Context, planID, memberID uint, forWrite bool) (*plan.Plan, error) {
	p, err := a.load(ctx, planID, forWrite)
	if err != nil {
		return nil, err
	}
	if err := a.membership.RequireAccepted(ctx, p.ID(), memberID); err != nil {
		return nil, err
	}
	return p, nil
}

func requirePlace(ctx context.Context, places place.Lookup, placeID uint) (*place.Place, error) {
	p, err := places.GetByID(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load place: %w", err)
	}
	if p == nil {
		return nil, place.ErrPlaceNotFound
	}
	return p, nil
}
