package usecases

import (
	"context"
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

type AddEntryCommand struct {
	PlanID    uint
	MemberID  uint
	PlaceID   uint
	Title     string
	Content   string
	StartTime time.Time
	EndTime   time.Time
}

type AddEntryUseCase struct {
	access    planAccess
	entryRepo itinerary.Repository
	places    place.Lookup
	validator *itinerary.SlotValidator
	assembler *dto.Assembler
	txMgr     db.TxRunner
	logger    logger.Interface
	now       func() time.Time
}

func NewAddEntryUseCase(
	planRepo plan.Repository,
	entryRepo itinerary.Repository,
	places place.Lookup,
	membership *services.MembershipService,
	assembler *dto.Assembler,
	txMgr db.TxRunner,
	logger logger.Interface,
) *AddEntryUseCase {
	return &AddEntryUseCase{
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

func (uc *AddEntryUseCase) WithClock(now func() time.Time) *AddEntryUseCase {
	uc.now = now
	return uc
}

// WithPlanLock toggles the plan row lock taken before the overlap check.
func (uc *AddEntryUseCase) WithPlanLock(enabled bool) *AddEntryUseCase {
	uc.access.lockOnWrite = enabled
	return uc
}

// Execute checks, in order: plan exists, caller is an accepted member, place
// exists, then the slot rules (overlap, plan bounds, horizon).
func (uc *AddEntryUseCase) Execute(ctx context.Context, cmd AddEntryCommand) (*dto.PlanDetailDTO, error) {
	uc.logger.Infow("executing add plan detail use case",
		"plan_id", cmd.PlanID,
		"member_id", cmd.MemberID,
		"place_id", cmd.PlaceID,
	)

	var created *itinerary.Entry
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.access.authorize(txCtx, cmd.PlanID, cmd.MemberID, true)
		if err != nil {
			return err
		}
		if _, err := requirePlace(txCtx, uc.places, cmd.PlaceID); err != nil {
			return err
		}

		now := uc.now()
		e, err := itinerary.NewEntry(p.ID(), cmd.MemberID, itinerary.Slot{
			PlaceID:   cmd.PlaceID,
			Title:     cmd.Title,
			Content:   cmd.Content,
			StartTime: cmd.StartTime,
			EndTime:   cmd.EndTime,
		}, now)
		if err != nil {
			return errors.AsAppError(err)
		}
		if err := uc.validator.Validate(txCtx, p, e.StartTime(), e.EndTime(), 0, now); err != nil {
			return err
		}
		if err := uc.entryRepo.Create(txCtx, e); err != nil {
			return err
		}
		created = e
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to add plan detail", "plan_id", cmd.PlanID, "member_id", cmd.MemberID, "error", err)
		return nil, err
	}

	uc.logger.Infow("plan detail added successfully", "plan_detail_id", created.ID(), "plan_id", created.PlanID())
	return uc.assembler.ToDTO(created), nil
}
