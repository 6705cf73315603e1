package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tripline/tripline/internal/application/plan/dto"
	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/shared/biztime"
	"github.com/tripline/tripline/internal/shared/db"
	"github.com/tripline/tripline/internal/shared/errors"
	"github.com/tripline/tripline/internal/shared/logger"
)

// UpdatePlanCommand carries a partial update; nil fields are left unchanged.
type UpdatePlanCommand struct {
	PlanID      uint
	CallerID    uint
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
}

type UpdatePlanUseCase struct {
	planRepo  plan.Repository
	entryRepo itinerary.Repository
	txMgr     db.TxRunner
	logger    logger.Interface
	now       func() time.Time
}

func NewUpdatePlanUseCase(
	planRepo plan.Repository,
	entryRepo itinerary.Repository,
	txMgr db.TxRunner,
	logger logger.Interface,
) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo:  planRepo,
		entryRepo: entryRepo,
		txMgr:     txMgr,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *UpdatePlanUseCase) WithClock(now func() time.Time) *UpdatePlanUseCase {
	uc.now = now
	return uc
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	uc.logger.Infow("executing update plan use case", "plan_id", cmd.PlanID, "caller_id", cmd.CallerID)

	var updated *plan.Plan
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

		datesChanged := cmd.StartDate != nil || cmd.EndDate != nil
		if err := p.Apply(plan.Changes{
			Title:       cmd.Title,
			Description: cmd.Description,
			StartDate:   cmd.StartDate,
			EndDate:     cmd.EndDate,
		}, uc.now()); err != nil {
			return errors.AsAppError(err)
		}

		if datesChanged {
			outside, err := uc.entryRepo.ExistsOutside(txCtx, p.ID(), p.StartDate(), p.EndDate())
			if err != nil {
				return fmt.Errorf("failed to check itinerary bounds: %w", err)
			}
			if outside {
				return itinerary.ErrEntriesOutside
			}
		}

		if err := uc.planRepo.Update(txCtx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to update plan", "plan_id", cmd.PlanID, "error", err)
		return nil, err
	}

	uc.logger.Infow("plan updated successfully", "plan_id", updated.ID())
	return dto.ToPlanDTO(updated), nil
}
