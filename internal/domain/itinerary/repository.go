package itinerary

import (
	"context"
	"time"
)

// Repository is the itinerary store. GetByID returns (nil, nil) when absent.
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	Update(ctx context.Context, e *Entry) error
	Delete(ctx context.Context, entryID uint) error
	GetByID(ctx context.Context, entryID uint) (*Entry, error)
	// ListByPlan orders by start time.
	ListByPlan(ctx context.Context, planID uint) ([]*Entry, error)
	// ExistsOverlapping ignores excludeID; pass 0 to consider every entry.
	ExistsOverlapping(ctx context.Context, planID uint, start, end time.Time, excludeID uint) (bool, error)
	// ExistsOutside reports entries not contained in [start, end].
	ExistsOutside(ctx context.Context, planID uint, start, end time.Time) (bool, error)
	DeleteByPlan(ctx context.Context, planID uint) error
}
