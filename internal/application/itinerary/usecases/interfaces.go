package usecases

import (
	"context"

	"github.com/tripline/tripline/internal/application/itinerary/dto"
)

type AddEntryExecutor interface {
	Execute(ctx context.Context, cmd AddEntryCommand) (*dto.PlanDetailDTO, error)
}

type UpdateEntryExecutor interface {
	Execute(ctx context.Context, cmd UpdateEntryCommand) (*dto.PlanDetailDTO, error)
}

type DeleteEntryExecutor interface {
	Execute(ctx context.Context, cmd DeleteEntryCommand) error
}

type GetEntryExecutor interface {
	Execute(ctx context.Context, query GetEntryQuery) (*dto.PlanDetailDTO, error)
}

type ListEntriesExecutor interface {
	Execute(ctx context.Context, query ListEntriesQuery) ([]*dto.PlanDetailDTO, error)
	ExecuteToday(ctx context.Context, query ListEntriesQuery) ([]*dto.PlanDetailDTO, error)
}
