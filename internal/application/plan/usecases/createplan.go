package usecases

import (
	"context"
	"time"

	"github.com/tripline/tripline/internal/application/plan/dto"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/shared/biztime"
	"github.com/tripline/tripline/internal/shared/db"
	"github.com/tripline/tripline/internal/shared/errors"
	"github.com/tripline/tripline/internal/shared/logger"
)

type CreatePlanCommand struct {
	OwnerID     uint
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

type CreatePlanUseCase struct {
	planRepo   plan.Repository
	memberRepo plan.MemberRepository
	txMgr      db.TxRunner
	logger     logger.Interface
	now        func() time.Time
}

func NewCreatePlanUseCase(
	planRepo plan.Repository,
	memberRepo plan.MemberRepository,
	txMgr db.TxRunner,
	logger logger.Interface,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo:   planRepo,
		memberRepo: memberRepo,
		txMgr:      txMgr,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (uc *CreatePlanUseCase) WithClock(now func() time.Time) *CreatePlanUseCase {
	uc.now = now
	return uc
}

// Execute creates the plan and the owner's ACCEPTED membership atomically.
func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	uc.logger.Infow("executing create plan use case", "owner_id", cmd.OwnerID, "title", cmd.Title)

	now := uc.now()
	p, err := plan.NewPlan(cmd.OwnerID, cmd.Title, cmd.Description, cmd.StartDate, cmd.EndDate, now)
	if err != nil {
		uc.logger.Warnw("invalid create plan command", "owner_id", cmd.OwnerID, "error", err)
		return nil, errors.AsAppError(err)
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.planRepo.Create(txCtx, p); err != nil {
			return err
		}
		owner, err := plan.NewOwnerMembership(p.ID(), p.OwnerID(), now)
		if err != nil {
			return err
		}
		return uc.memberRepo.Create(txCtx, owner)
	})
	if err != nil {
		uc.logger.Errorw("failed to create plan", "owner_id", cmd.OwnerID, "error", err)
		return nil, err
	}

	uc.logger.Infow("plan created successfully", "plan_id", p.ID(), "owner_id", p.OwnerID())
	return dto.ToPlanDTO(p), nil
}
