package mappers

import (
	"github.com/tripline/tripline/internal/domain/plan"
	vo "github.com/tripline/tripline/internal/domain/plan/valueobjects"
	"github.com/tripline/tripline/internal/infrastructure/persistence/models"
)

// PlanMapper converts between plan aggregates and their persistence models.
type PlanMapper interface {
	ToModel(p *plan.Plan) *models.PlanModel
	ToEntity(model *models.PlanModel) (*plan.Plan, error)
	ToEntities(ms []models.PlanModel) ([]*plan.Plan, error)

	MemberToModel(m *plan.PlanMember) *models.PlanMemberModel
	MemberToEntity(model *models.PlanMemberModel) (*plan.PlanMember, error)
	MembersToEntities(ms []models.PlanMemberModel) ([]*plan.PlanMember, error)
}

type planMapper struct{}

func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToModel(p *plan.Plan) *models.PlanModel {
	return &models.PlanModel{
		ID:          p.ID(),
		OwnerID:     p.OwnerID(),
		Title:       p.Title(),
		Description: p.Description(),
		StartDate:   DBTime(p.StartDate()),
		EndDate:     DBTime(p.EndDate()),
		CreatedAt:   DBTime(p.CreatedAt()),
		UpdatedAt:   DBTime(p.UpdatedAt()),
	}
}

func (m *planMapper) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}
	return plan.ReconstructPlan(
		model.ID,
		model.OwnerID,
		model.Title,
		model.Description,
		fromDBTime(model.StartDate),
		fromDBTime(model.EndDate),
		fromDBTime(model.CreatedAt),
		fromDBTime(model.UpdatedAt),
	)
}

func (m *planMapper) ToEntities(ms []models.PlanModel) ([]*plan.Plan, error) {
	out := make([]*plan.Plan, 0, len(ms))
	for i := range ms {
		p, err := m.ToEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *planMapper) MemberToModel(pm *plan.PlanMember) *models.PlanMemberModel {
	return &models.PlanMemberModel{
		ID:        pm.ID(),
		PlanID:    pm.PlanID(),
		MemberID:  pm.MemberID(),
		Status:    pm.Status().String(),
		CreatedAt: DBTime(pm.CreatedAt()),
		UpdatedAt: DBTime(pm.UpdatedAt()),
	}
}

func (m *planMapper) MemberToEntity(model *models.PlanMemberModel) (*plan.PlanMember, error) {
	if model == nil {
		return nil, nil
	}
	return plan.ReconstructPlanMember(
		model.ID,
		model.PlanID,
		model.MemberID,
		vo.InvitationStatus(model.Status),
		fromDBTime(model.CreatedAt),
		fromDBTime(model.UpdatedAt),
	)
}

func (m *planMapper) MembersToEntities(ms []models.PlanMemberModel) ([]*plan.PlanMember, error) {
	out := make([]*plan.PlanMember, 0, len(ms))
	for i := range ms {
		pm, err := m.MemberToEntity(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, pm)
	}
	return out, nil
}
