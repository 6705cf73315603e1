package plan

import (
	"context"
	"time"
)

// Repository persists plans. Getters return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, p *Plan) error
	Update(ctx context.Context, p *Plan) error
	Delete(ctx context.Context, planID uint) error
	GetByID(ctx context.Context, planID uint) (*Plan, error)
	// GetByIDForUpdate locks the plan row until the surrounding transaction
	// ends, serialising itinerary writes on the same plan.
	GetByIDForUpdate(ctx context.Context, planID uint) (*Plan, error)
	GetByIDs(ctx context.Context, planIDs []uint) ([]*Plan, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*Plan, error)
	GetByOwnerAndStart(ctx context.Context, ownerID uint, startDate time.Time) (*Plan, error)
}

// MemberRepository is the membership directory.
type MemberRepository interface {
	Create(ctx context.Context, m *PlanMember) error
	Update(ctx context.Context, m *PlanMember) error
	GetByPlanAndMember(ctx context.Context, planID, memberID uint) (*PlanMember, error)
	ListByMember(ctx context.Context, memberID uint) ([]*PlanMember, error)
	ListByPlan(ctx context.Context, planID uint) ([]*PlanMember, error)
	ExistsAccepted(ctx context.Context, planID, memberID uint) (bool, error)
	DeleteByPlan(ctx context.Context, planID uint) error
}
