package plan

import (
	"fmt"
	"time"

	vo "github.com/tripline/tripline/internal/domain/plan/valueobjects"
)

// PlanMember admits one member to one plan. There is at most one per pair.
type PlanMember struct {
	id        uint
	planID    uint
	memberID  uint
	status    vo.InvitationStatus
	createdAt time.Time
	updatedAt time.Time
}

// NewOwnerMembership is created alongside the plan and starts ACCEPTED.
func NewOwnerMembership(planID, ownerID uint, now time.Time) (*PlanMember, error) {
	return newPlanMember(planID, ownerID, vo.StatusAccepted, now)
}

// NewInvitation creates a PENDING membership for an invitee.
func NewInvitation(planID, inviteeID uint, now time.Time) (*PlanMember, error) {
	return newPlanMember(planID, inviteeID, vo.StatusPending, now)
}

func newPlanMember(planID, memberID uint, status vo.InvitationStatus, now time.Time) (*PlanMember, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	return &PlanMember{
		planID:    planID,
		memberID:  memberID,
		status:    status,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPlanMember(id, planID, memberID uint, status vo.InvitationStatus, createdAt, updatedAt time.Time) (*PlanMember, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan member ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid invitation status %q", status)
	}
	return &PlanMember{
		id:        id,
		planID:    planID,
		memberID:  memberID,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (m *PlanMember) ID() uint { return m.id }
func (m *PlanMember) PlanID() uint { return m.planID }
func (m *PlanMember) MemberID() uint { return m.memberID }
func (m *PlanMember) Status() vo.InvitationStatus { return m.status }
func (m *PlanMember) CreatedAt() time.Time { return m.createdAt }
func (m *PlanMember) UpdatedAt() time.Time { return m.updatedAt }

func (m *PlanMember) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("plan member ID is already set")
	}
	m.id = id
	return nil
}

func (m *PlanMember) IsAccepted() bool {
	return m.status == vo.StatusAccepted
}

func (m *PlanMember) Accept(now time.Time) error {
	return m.transition(vo.StatusAccepted, now)
}

func (m *PlanMember) Deny(now time.Time) error {
	return m.transition(vo.StatusDenied, now)
}

func (m *PlanMember) transition(next vo.InvitationStatus, now time.Time) error {
	if !m.status.CanTransitionTo(next) {
		return ErrInvitationResolved
	}
	m.status = next
	m.updatedAt = now
	return nil
}
