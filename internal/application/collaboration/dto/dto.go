package dto

import (
	"time"

	"github.com/tripline/tripline/internal/domain/plan"
)

type MembershipDTO struct {
	ID       uint   `json:"id"`
	PlanID   uint   `json:"plan_id"`
	MemberID uint   `json:"member_id"`
	Status   string `json:"status"`
}

// InvitationDTO is a membership as seen by the invitee.
type InvitationDTO struct {
	MembershipID uint      `json:"membership_id"`
	PlanID       uint      `json:"plan_id"`
	PlanTitle    string    `json:"plan_title"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
}

func ToMembershipDTO(m *plan.PlanMember) *MembershipDTO {
	if m == nil {
		return nil
	}
	return &MembershipDTO{
		ID:       m.ID(),
		PlanID:   m.PlanID(),
		MemberID: m.MemberID(),
		Status:   m.Status().String(),
	}
}

func ToInvitationDTO(m *plan.PlanMember, p *plan.Plan) InvitationDTO {
	return InvitationDTO{
		MembershipID: m.ID(),
		PlanID:       p.ID(),
		PlanTitle:    p.Title(),
		StartDate:    p.StartDate(),
		EndDate:      p.EndDate(),
		Status:       m.Status().String(),
	}
}
