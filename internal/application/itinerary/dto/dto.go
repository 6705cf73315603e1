package dto

import (
	"time"

	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/domain/place"
	"github.com/tripline/tripline/internal/shared/logger"
	"github.com/tripline/tripline/internal/shared/mapper"
	"github.com/tripline/tripline/internal/shared/services/markdown"
)

type PlanDetailDTO struct {
	ID          uint         `json:"id"`
	PlanID      uint         `json:"plan_id"`
	PlaceID     uint         `json:"place_id"`
	MemberID    uint         `json:"member_id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	ContentHTML string       `json:"content_html"`
	StartTime   time.Time    `json:"start_time"`
	EndTime     time.Time    `json:"end_time"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Place       *place.Place `json:"place,omitempty"`
}

// Assembler builds PlanDetailDTOs with rendered content.
type Assembler struct {
	renderer markdown.Renderer
	logger   logger.Interface
}

func NewAssembler(renderer markdown.Renderer, logger logger.Interface) *Assembler {
	return &Assembler{renderer: renderer, logger: logger}
}

// ToDTO leaves ContentHTML empty if rendering fails; the raw content is
// always returned.
func (a *Assembler) ToDTO(e *itinerary.Entry) *PlanDetailDTO {
	if e == nil {
		return nil
	}
	html, err := a.renderer.Render(e.Content())
	if err != nil {
		a.logger.Warnw("failed to render plan detail content", "plan_detail_id", e.ID(), "error", err)
		html = ""
	}
	return &PlanDetailDTO{
		ID:          e.ID(),
		PlanID:      e.PlanID(),
		PlaceID:     e.PlaceID(),
		MemberID:    e.MemberID(),
		Title:       e.Title(),
		Content:     e.Content(),
		ContentHTML: html,
		StartTime:   e.StartTime(),
		EndTime:     e.EndTime(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

func (a *Assembler) ToDTOs(entries []*itinerary.Entry) []*PlanDetailDTO {
	return mapper.MapSlice(entries, a.ToDTO)
}
