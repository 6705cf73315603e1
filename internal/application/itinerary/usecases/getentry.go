package usecases

import (
	"context"
	"fmt"

	"github.com/tripline/tripline/internal/application/collaboration/services"
	"github.com/tripline/tripline/internal/application/itinerary/dto"
	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/domain/place"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/shared/logger"
)

type GetEntryQuery struct {
	EntryID  uint
	MemberID uint
}

type GetEntryUseCase struct {
	access    planAccess
	entryRepo itinerary.Repository
	places    place.Lookup
	assembler *dto.Assembler
	logger    logger.Interface
}

func NewGetEntryUseCase(
	planRepo plan.Repository,
	entryRepo itinerary.Repository,
	places place.Lookup,
	membership *services.MembershipService,
	assembler *dto.Assembler,
	logger logger.Interface,
) *GetEntryUseCase {
	return &GetEntryUseCase{
		access:    planAccess{planRepo: planRepo, membership: membership},
		entryRepo: entryRepo,
		places:    places,
		assembler: assembler,
		logger:    logger,
	}
}

// Execute returns the entry with its place attached when the catalog still
// has it.
func (uc *GetEntryUseCase) Execute(ctx context.Context, query GetEntryQuery) (*dto.PlanDetailDTO, error) {
	e, err := uc.entryRepo.GetByID(ctx, query.EntryID)
	if err != nil {
		uc.logger.Errorw("failed to load plan detail", "plan_detail_id", query.EntryID, "error", err)
		return nil, fmt.Errorf("failed to load plan detail: %w", err)
	}
	if e == nil {
		return nil, itinerary.ErrEntryNotFound
	}
	if _, err := uc.access.authorize(ctx, e.PlanID(), query.MemberID, false); err != nil {
		return nil, err
	}

	result := uc.assembler.ToDTO(e)
	p, err := uc.places.GetByID(ctx, e.PlaceID())
	if err != nil {
		uc.logger.Warnw("failed to load place for plan detail", "place_id", e.PlaceID(), "error", err)
	}
	result.Place = p
	return result, nil
}
