package usecases

import (
	"context"
	"fmt"

	"github.com/tripline/tripline/internal/application/collaboration/dto"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/shared/logger"
)

type ListInvitationsQuery struct {
	MemberID uint
}

type ListInvitationsUseCase struct {
	planRepo   plan.Repository
	memberRepo plan.MemberRepository
	logger     logger.Interface
}

func NewListInvitationsUseCase(
	planRepo plan.Repository,
	memberRepo plan.MemberRepository,
	logger logger.Interface,
) *ListInvitationsUseCase {
	return &ListInvitationsUseCase{
		planRepo:   planRepo,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// Execute lists every membership of the caller in any status, with the
// plan's title and dates.
func (uc *ListInvitationsUseCase) Execute(ctx context.Context, query ListInvitationsQuery) ([]dto.InvitationDTO, error) {
	memberships, err := uc.memberRepo.ListByMember(ctx, query.MemberID)
	if err != nil {
		uc.logger.Errorw("failed to list memberships", "member_id", query.MemberID, "error", err)
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	planIDs := make([]uint, 0, len(memberships))
	for _, m := range memberships {
		planIDs = append(planIDs, m.PlanID())
	}
	plans, err := uc.planRepo.GetByIDs(ctx, planIDs)
	if err != nil {
		uc.logger.Errorw("failed to load invited plans", "member_id", query.MemberID, "error", err)
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}
	byID := make(map[uint]*plan.Plan, len(plans))
	for _, p := range plans {
		byID[p.ID()] = p
	}

	result := make([]dto.InvitationDTO, 0, len(memberships))
	for _, m := range memberships {
		p, ok := byID[m.PlanID()]
		if !ok {
			continue
		}
		result = append(result, dto.ToInvitationDTO(m, p))
	}
	return result, nil
}
