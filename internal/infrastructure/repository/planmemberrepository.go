package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tripline/tripline/internal/domain/plan"
	vo "github.com/tripline/tripline/internal/domain/plan/valueobjects"
	"github.com/tripline/tripline/internal/infrastructure/persistence/mappers"
	"github.com/tripline/tripline/internal/infrastructure/persistence/models"
	"github.com/tripline/tripline/internal/shared/db"
	apperrors "github.com/tripline/tripline/internal/shared/errors"
	"github.com/tripline/tripline/internal/shared/logger"
)

type PlanMemberRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanMemberRepository(db *gorm.DB, logger logger.Interface) plan.MemberRepository {
	return &PlanMemberRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

// Create maps a unique-key violation on (plan_id, member_id) to
// plan.ErrAlreadyInvited.
func (r *PlanMemberRepositoryImpl) Create(ctx context.Context, m *plan.PlanMember) error {
	model := r.mapper.MemberToModel(m)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return plan.ErrAlreadyInvited
		}
		r.logger.Errorw("failed to create plan member", "error", err, "plan_id", m.PlanID(), "member_id", m.MemberID())
		return fmt.Errorf("failed to create plan member: %w", err)
	}
	return m.SetID(model.ID)
}

func (r *PlanMemberRepositoryImpl) Update(ctx context.Context, m *plan.PlanMember) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PlanMemberModel{}).
		Where("id = ?", m.ID()).
		Update("status", m.Status().String()).Error
	if err != nil {
		r.logger.Errorw("failed to update plan member", "error", err, "plan_member_id", m.ID())
		return fmt.Errorf("failed to update plan member: %w", err)
	}
	return nil
}

func (r *PlanMemberRepositoryImpl) GetByPlanAndMember(ctx context.Context, planID, memberID uint) (*plan.PlanMember, error) {
	var model models.PlanMemberModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("plan_id = ? AND member_id = ?", planID, memberID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan member: %w", err)
	}
	return r.mapper.MemberToEntity(&model)
}

func (r *PlanMemberRepositoryImpl) ListByMember(ctx context.Context, memberID uint) ([]*plan.PlanMember, error) {
	var ms []models.PlanMemberModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("member_id = ?", memberID).
		Order("id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return r.mapper.MembersToEntities(ms)
}

func (r *PlanMemberRepositoryImpl) ListByPlan(ctx context.Context, planID uint) ([]*plan.PlanMember, error) {
	var ms []models.PlanMemberModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("plan_id = ?", planID).
		Order("id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list plan members: %w", err)
	}
	return r.mapper.MembersToEntities(ms)
}

func (r *PlanMemberRepositoryImpl) ExistsAccepted(ctx context.Context, planID, memberID uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PlanMemberModel{}).
		Where("plan_id = ? AND member_id = ? AND status = ?", planID, memberID, vo.StatusAccepted.String()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return count > 0, nil
}

func (r *PlanMemberRepositoryImpl) DeleteByPlan(ctx context.Context, planID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("plan_id = ?", planID).
		Delete(&models.PlanMemberModel{}).Error
	if err != nil {
		r.logger.Errorw("failed to delete plan members", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to delete plan members: %w", err)
	}
	return nil
}
