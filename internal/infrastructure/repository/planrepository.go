package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tripline/tripline/internal/domain/plan"
	"github.com/tripline/tripline/internal/infrastructure/persistence/mappers"
	"github.com/tripline/tripline/internal/infrastructure/persistence/models"
	"github.com/tripline/tripline/internal/shared/db"
	"github.com/tripline/tripline/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) plan.Repository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, p *plan.Plan) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan", "error", err, "owner_id", p.OwnerID())
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return p.SetID(model.ID)
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, p *plan.Plan) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	// Explicit columns so an emptied description is written too.
	result := tx.Model(&models.PlanModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "start_date", "end_date", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "error", result.Error, "plan_id", p.ID())
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, planID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.PlanModel{}, planID).Error; err != nil {
		r.logger.Errorw("failed to delete plan", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, planID uint) (*plan.Plan, error) {
	return r.first(ctx, db.GetTxFromContext(ctx, r.db), planID)
}

func (r *PlanRepositoryImpl) GetByIDForUpdate(ctx context.Context, planID uint) (*plan.Plan, error) {
	return r.first(ctx, db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), planID)
}

func (r *PlanRepositoryImpl) first(_ context.Context, q *gorm.DB, planID uint) (*plan.Plan, error) {
	var model models.PlanModel
	if err := q.First(&model, planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan", "error", err, "plan_id", planID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) GetByIDs(ctx context.Context, planIDs []uint) ([]*plan.Plan, error) {
	if len(planIDs) == 0 {
		return []*plan.Plan{}, nil
	}
	var ms []models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", planIDs).Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("failed to get plans by IDs: %w", err)
	}
	return r.mapper.ToEntities(ms)
}

func (r *PlanRepositoryImpl) ListByOwner(ctx context.Context, ownerID uint) ([]*plan.Plan, error) {
	var ms []models.PlanModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("start_date DESC").
		Order("id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return r.mapper.ToEntities(ms)
}

func (r *PlanRepositoryImpl) GetByOwnerAndStart(ctx context.Context, ownerID uint, startDate time.Time) (*plan.Plan, error) {
	var model models.PlanModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("owner_id = ? AND start_date = ?", ownerID, mappers.DBTime(startDate)).
		Order("id ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan by start date: %w", err)
	}
	return r.mapper.ToEntity(&model)
}
