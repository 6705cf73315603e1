package usecases

import (
	"context"
	"fmt"

	"github.com/tripline/tripline/internal/application/collaboration/services"
	"github.com/tripline/tripline/internal/application/plan/dto"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/shared/logger"
)

type GetPlanQuery struct {
	PlanID   uint
	CallerID uint
}

type GetPlanUseCase struct {
	planRepo   plan.Repository
	memberRepo plan.MemberRepository
	membership *services.MembershipService
	logger     logger.Interface
}

func NewGetPlanUseCase(
	planRepo plan.Repository,
	memberRepo plan.MemberRepository,
	membership *services.MembershipService,
	logger logger.Interface,
) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo:   planRepo,
		memberRepo: memberRepo,
		membership: membership,
		logger:     logger,
	}
}

// Execute is open to anyone holding a membership row, including pending
// invitees.
func (uc *GetPlanUseCase) Execute(ctx context.Context, query GetPlanQuery) (*dto.PlanDetailDTO, error) {
	p, err := uc.planRepo.GetByID(ctx, query.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "plan_id", query.PlanID, "error", err)
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if p == nil {
		return nil, plan.ErrPlanNotFound
	}
	if !p.IsOwnedBy(query.CallerID) {
		if err := uc.membership.RequireAnyMembership(ctx, p.ID(), query.CallerID); err != nil {
			return nil, err
		}
	}

	members, err := uc.memberRepo.ListByPlan(ctx, p.ID())
	if err != nil {
		uc.logger.Errorw("failed to list plan members", "plan_id", p.ID(), "error", err)
		return nil, fmt.Errorf("failed to list plan members: %w", err)
	}
	return dto.ToPlanDetailDTO(p, members), nil
}
