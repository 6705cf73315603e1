package mappers

import (
	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/infrastructure/persistence/models"
)

type PlanDetailMapper interface {
	ToModel(e *itinerary.Entry) *models.PlanDetailModel
	ToEntity(model *models.PlanDetailModel) (*itinerary.Entry, error)
	ToEntities(ms []models.PlanDetailModel) ([]*itinerary.Entry, error)
}

type planDetailMapper struct{}

func NewPlanDetailMapper() PlanDetailMapper {
	return &planDetailMapper{}
}

func (m *planDetailMapper) ToModel(e *itinerary.Entry) *models.PlanDetailModel {
	return &models.PlanDetailModel{
		ID:        e.ID(),
		PlanID:    e.PlanID(),
		PlaceID:   e.PlaceID(),
		MemberID:  e.MemberID(),
		Title:     e.Title(),
		Content:   e.Content(),
		StartTime: DBTime(e.StartTime()),
		EndTime:   DBTime(e.EndTime()),
		CreatedAt: DBTime(e.CreatedAt()),
		UpdatedAt: DBTime(e.UpdatedAt()),
	}
}

func (m *planDetailMapper) ToEntity(model *models.PlanDetailModel) (*itinerary.Entry, error) {
	if model == nil {
		return nil, nil
	}
	return itinerary.ReconstructEntry(
		model.ID,
		model.PlanID,
		model.PlaceID,
		model.MemberID,
		model.Title,
		model.Content,
		fromDBTime(model.StartTime),
		fromDBTime(model.EndTime),
		fromDBTime(model.CreatedAt),
		fromDBTime(model.UpdatedAt),
	)
}

func (m *planDetailMapper) ToEntities(ms []models.PlanDetailModel) ([]*itinerary.Entry, error) {
	out := make([]*itinerary.Entry, 0, len(ms))
	for i := range ms {
		e, err := m.ToEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
