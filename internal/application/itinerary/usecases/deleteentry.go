package usecases

import (
	"context"
	"fmt"

	"github.com/tripline/tripline/internal/application/collaboration/services"
	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/shared/db"
	"github.com/tripline/tripline/internal/shared/logger"
)

type DeleteEntryCommand struct {
	EntryID  uint
	MemberID uint
}

type DeleteEntryUseCase struct {
	access    planAccess
	entryRepo itinerary.Repository
	txMgr     db.TxRunner
	logger    logger.Interface
}

func NewDeleteEntryUseCase(
	planRepo plan.Repository,
	entryRepo itinerary.Repository,
	membership *services.MembershipService,
	txMgr db.TxRunner,
	logger logger.Interface,
) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		access:    planAccess{planRepo: planRepo, membership: membership, lockOnWrite: true},
		entryRepo: entryRepo,
		txMgr:     txMgr,
		logger:    logger,
	}
}

func (uc *DeleteEntryUseCase) WithPlanLock(enabled bool) *DeleteEntryUseCase {
	uc.access.lockOnWrite = enabled
	return uc
}

func (uc *DeleteEntryUseCase) Execute(ctx context.Context, cmd DeleteEntryCommand) error {
	uc.logger.Infow("executing delete plan detail use case", "plan_detail_id", cmd.EntryID, "member_id", cmd.MemberID)

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		e, err := uc.entryRepo.GetByID(txCtx, cmd.EntryID)
		if err != nil {
			return fmt.Errorf("failed to load plan detail: %w", err)
		}
		if e == nil {
			return itinerary.ErrEntryNotFound
		}
		if _, err := uc.access.authorize(txCtx, e.PlanID(), cmd.MemberID, true); err != nil {
			return err
		}
		return uc.entryRepo.Delete(txCtx, e.ID())
	})
	if err != nil {
		uc.logger.Warnw("failed to delete plan detail", "plan_detail_id", cmd.EntryID, "error", err)
		return err
	}

	uc.logger.Infow("plan detail deleted successfully", "plan_detail_id", cmd.EntryID)
	return nil
}
