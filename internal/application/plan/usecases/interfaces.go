package usecases

import (
	"context"

	"github.com/tripline/tripline/internal/application/plan/dto"
)

type CreatePlanExecutor interface {
	Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error)
}

type UpdatePlanExecutor interface {
	Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error)
}

type DeletePlanExecutor interface {
	Execute(ctx context.Context, cmd DeletePlanCommand) error
}

type GetPlanExecutor interface {
	Execute(ctx context.Context, query GetPlanQuery) (*dto.PlanDetailDTO, error)
}

type ListPlansExecutor interface {
	Execute(ctx context.Context, query ListPlansQuery) ([]*dto.PlanDTO, error)
}

type GetTodayPlanExecutor interface {
	Execute(ctx context.Context, query GetTodayPlanQuery) (*dto.PlanDTO, error)
}

type ExportPlanExecutor interface {
	Execute(ctx context.Context, query ExportPlanQuery) (*ExportPlanResult, error)
}
