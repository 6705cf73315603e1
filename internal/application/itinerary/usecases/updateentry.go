package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tripline/tripline/internal/application/collaboration/services"
	"github.com/tripline/tripline/internal/application/itinerary/dto"
	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/domain/place"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/shared/biztime"
	"github.com/tripline/tripline/internal/shared/db"
	"github.com/tripline/tripline/internal/shared/errors"
	"github.com/tripline/tripline/internal/shared/logger"
)

// UpdateEntryCommand replaces every mutable field of an entry. PlanID must
// be the plan the entry already belongs to.
type UpdateEntryCommand struct {
	EntryID   uint
	PlanID    uint
	MemberID  uint
	PlaceID   uint
	Title     string
	Content   string
	StartTime time.Time
	EndTime   time.Time
}

type UpdateEntryUseCase struct {
	access    planAccess
	entryRepo itinerary.Repository
	places    place.Lookup
	validator *itinerary.SlotValidator
	assembler *dto.Assembler
	txMgr     db.TxRunner
	logger    logger.Interface
	now       func() time.Time
}

func NewUpdateEntryUseCase(
	planRepo plan.Repository,
	entryRepo itinerary.Repository,
	places place.Lookup,
	membership *services.MembershipService,
	assembler *dto.Assembler,
	txMgr db.TxRunner,
	logger logger.Interface,
) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		access:    planAccess{planRepo: planRepo, membership: membership, lockOnWrite: true},
		entryRepo: entryRepo,
		places:    places,
		validator: itinerary.NewSlotValidator(entryRepo),
		assembler: assembler,
		txMgr:     txMgr,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *UpdateEntryUseCase) WithClock(now func() time.Time) *UpdateEntryUseCase {
	uc.now = now
	return uc
}

func (uc *UpdateEntryUseCase) WithPlanLock(enabled bool) *UpdateEntryUseCase {
	uc.access.lockOnWrite = enabled
	return uc
}

// Execute excludes the entry itself from the overlap check.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, cmd UpdateEntryCommand) (*dto.PlanDetailDTO, error) {
	uc.logger.Infow("executing update plan detail use case",
		"plan_detail_id", cmd.EntryID,
		"plan_id", cmd.PlanID,
		"member_id", cmd.MemberID,
	)

	var updated *itinerary.Entry
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.access.authorize(txCtx, cmd.PlanID, cmd.MemberID, true)
		if err != nil {
			return err
		}

		e, err := uc.entryRepo.GetByID(txCtx, cmd.EntryID)
		if err != nil {
			return fmt.Errorf("failed to load plan detail: %w", err)
		}
		if e == nil {
			return itinerary.ErrEntryNotFound
		}
		if e.PlanID() != p.ID() {
			return itinerary.ErrEntryNotInPlan
		}
		if _, err := requirePlace(txCtx, uc.places, cmd.PlaceID); err != nil {
			return err
		}

		now := uc.now()
		if err := e.Replace(itinerary.Slot{
			PlaceID:   cmd.PlaceID,
			Title:     cmd.Title,
			Content:   cmd.Content,
			StartTime: cmd.StartTime,
			EndTime:   cmd.EndTime,
		}, now); err != nil {
			return errors.AsAppError(err)
		}
		if err := uc.validator.Validate(txCtx, p, e.StartTime(), e.EndTime(), e.ID(), now); err != nil {
			return err
		}
		if err := uc.entryRepo.Update(txCtx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to update plan detail", "plan_detail_id", cmd.EntryID, "error", err)
		return nil, err
	}

	uc.logger.Infow("plan detail updated successfully", "plan_detail_id", updated.ID())
	return uc.assembler.ToDTO(updated), nil
}
