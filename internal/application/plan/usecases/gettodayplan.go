package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tripline/tripline/internal/application/plan/dto"
	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/shared/biztime"
	"github.com/tripline/tripline/internal/shared/logger"
)

type GetTodayPlanQuery struct {
	OwnerID uint
}

type GetTodayPlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
	now      func() time.Time
}

func NewGetTodayPlanUseCase(planRepo plan.Repository, logger logger.Interface) *GetTodayPlanUseCase {
	return &GetTodayPlanUseCase{planRepo: planRepo, logger: logger, now: biztime.NowUTC}
}

func (uc *GetTodayPlanUseCase) WithClock(now func() time.Time) *GetTodayPlanUseCase {
	uc.now = now
	return uc
}

// Execute returns the caller's plan whose start date is exactly today 00:00.
func (uc *GetTodayPlanUseCase) Execute(ctx context.Context, query GetTodayPlanQuery) (*dto.PlanDTO, error) {
	today := biztime.StartOfDayUTC(uc.now())
	p, err := uc.planRepo.GetByOwnerAndStart(ctx, query.OwnerID, today)
	if err != nil {
		uc.logger.Errorw("failed to load today's plan", "owner_id", query.OwnerID, "error", err)
		return nil, fmt.Errorf("failed to load today's plan: %w", err)
	}
	if p == nil {
		return nil, plan.ErrTodayPlanNotFound
	}
	return dto.ToPlanDTO(p), nil
}
