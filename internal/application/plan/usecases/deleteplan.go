package usecases

import (
	"context"
	"fmt"

	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/shared/db"
	"github.com/tripline/tripline/internal/shared/logger"
)

type DeletePlanCommand struct {
	PlanID   uint
	CallerID uint
}

type DeletePlanUseCase struct {
	planRepo   plan.Repository
	memberRepo plan.MemberRepository
	entryRepo  itinerary.Repository
	txMgr      db.TxRunner
	logger     logger.Interface
}

func NewDeletePlanUseCase(
	planRepo plan.Repository,
	memberRepo plan.MemberRepository,
	entryRepo itinerary.Repository,
	txMgr db.TxRunner,
	logger logger.Interface,
) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo:   planRepo,
		memberRepo: memberRepo,
		entryRepo:  entryRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

// Execute removes memberships, then itinerary entries, then the plan, all in
// one transaction. Only the owner may delete.
func (uc *DeletePlanUseCase) Execute(ctx context.Context, cmd DeletePlanCommand) error {
	uc.logger.Infow("executing delete plan use case", "plan_id", cmd.PlanID, "caller_id", cmd.CallerID)

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.planRepo.GetByIDForUpdate(txCtx, cmd.PlanID)
		if err != nil {
			return fmt.Errorf("failed to load plan: %w", err)
		}
		if p == nil {
			return plan.ErrPlanNotFound
		}
		if !p.IsOwnedBy(cmd.CallerID) {
			return plan.ErrNotPlanOwner
		}

		if err := uc.memberRepo.DeleteByPlan(txCtx, p.ID()); err != nil {
			return err
		}
		if err := uc.entryRepo.DeleteByPlan(txCtx, p.ID()); err != nil {
			return err
		}
		return uc.planRepo.Delete(txCtx, p.ID())
	})
	if err != nil {
		uc.logger.Warnw("failed to delete plan", "plan_id", cmd.PlanID, "error", err)
		return err
	}

	uc.logger.Infow("plan deleted successfully", "plan_id", cmd.PlanID)
	return nil
}
