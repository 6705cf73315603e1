package dto

import (
	"time"

	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/shared/mapper"
)

type PlanDTO struct {
	ID          uint      `json:"id" yaml:"id"`
	OwnerID     uint      `json:"owner_id" yaml:"owner_id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	StartDate   time.Time `json:"start_date" yaml:"start_date"`
	EndDate     time.Time `json:"end_date" yaml:"end_date"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

type MemberDTO struct {
	ID       uint   `json:"id"`
	MemberID uint   `json:"member_id"`
	Status   string `json:"status"`
}

// PlanDetailDTO is a plan together with everyone invited to it.
type PlanDetailDTO struct {
	PlanDTO
	Members []MemberDTO `json:"members"`
}

func ToPlanDTO(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:          p.ID(),
		OwnerID:     p.OwnerID(),
		Title:       p.Title(),
		Description: p.Description(),
		StartDate:   p.StartDate(),
		EndDate:     p.EndDate(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func ToPlanDTOs(plans []*plan.Plan) []*PlanDTO {
	return mapper.MapSlice(plans, ToPlanDTO)
}

func ToMemberDTO(m *plan.PlanMember) MemberDTO {
	return MemberDTO{
		ID:       m.ID(),
		MemberID: m.MemberID(),
		Status:   m.Status().String(),
	}
}

func ToPlanDetailDTO(p *plan.Plan, members []*plan.PlanMember) *PlanDetailDTO {
	return &PlanDetailDTO{
		PlanDTO: *ToPlanDTO(p),
		Members: mapper.MapSlice(members, ToMemberDTO),
	}
}

// ExportDocument is the portable form of a plan and its itinerary.
type ExportDocument struct {
	Plan    PlanDTO       `json:"plan" yaml:"plan"`
	Entries []ExportEntry `json:"entries" yaml:"entries"`
}

type ExportEntry struct {
	ID        uint      `json:"id" yaml:"id"`
	PlaceID   uint      `json:"place_id" yaml:"place_id"`
	MemberID  uint      `json:"member_id" yaml:"member_id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	StartTime time.Time `json:"start_time" yaml:"start_time"`
	EndTime   time.Time `json:"end_time" yaml:"end_time"`
}
