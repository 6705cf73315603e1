package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tripline/tripline/internal/application/collaboration/services"
	"github.com/tripline/tripline/internal/application/itinerary/dto"
	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/shared/biztime"
	"github.com/tripline/tripline/internal/shared/logger"
)

type ListEntriesQuery struct {
	PlanID   uint
	MemberID uint
}

type ListEntriesUseCase struct {
	access    planAccess
	entryRepo itinerary.Repository
	assembler *dto.Assembler
	logger    logger.Interface
	now       func() time.Time
}

func NewListEntriesUseCase(
	planRepo plan.Repository,
	entryRepo itinerary.Repository,
	membership *services.MembershipService,
	assembler *dto.Assembler,
	logger logger.Interface,
) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		access:    planAccess{planRepo: planRepo, membership: membership},
		entryRepo: entryRepo,
		assembler: assembler,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *ListEntriesUseCase) WithClock(now func() time.Time) *ListEntriesUseCase {
	uc.now = now
	return uc
}

// Execute lists the whole itinerary ordered by start time.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, query ListEntriesQuery) ([]*dto.PlanDetailDTO, error) {
	entries, err := uc.list(ctx, query)
	if err != nil {
		return nil, err
	}
	return uc.assembler.ToDTOs(entries), nil
}

// ExecuteToday keeps entries that touch the current business day:
// end > today 00:00 and start < today 23:59:59.999999999.
func (uc *ListEntriesUseCase) ExecuteToday(ctx context.Context, query ListEntriesQuery) ([]*dto.PlanDetailDTO, error) {
	entries, err := uc.list(ctx, query)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	from, to := biztime.StartOfDayUTC(now), biztime.EndOfDayUTC(now)
	today := make([]*itinerary.Entry, 0, len(entries))
	for _, e := range entries {
		if e.OccursWithin(from, to) {
			today = append(today, e)
		}
	}
	return uc.assembler.ToDTOs(today), nil
}

func (uc *ListEntriesUseCase) list(ctx context.Context, query ListEntriesQuery) ([]*itinerary.Entry, error) {
	p, err := uc.access.authorize(ctx, query.PlanID, query.MemberID, false)
	if err != nil {
		return nil, err
	}
	entries, err := uc.entryRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		uc.logger.Errorw("failed to list plan details", "plan_id", p.ID(), "error", err)
		return nil, fmt.Errorf("failed to list plan details: %w", err)
	}
	return entries, nil
}
