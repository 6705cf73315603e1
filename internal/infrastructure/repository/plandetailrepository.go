package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tripline/tripline/internal/domain/itinerary"
	"github.com/tripline/tripline/internal/infrastructure/persistence/mappers"
	"github.com/tripline/tripline/internal/infrastructure/persistence/models"
	"github.com/tripline/tripline/internal/shared/db"
	"github.com/tripline/tripline/internal/shared/logger"
)

type PlanDetailRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanDetailMapper
	logger logger.Interface
}

func NewPlanDetailRepository(db *gorm.DB, logger logger.Interface) itinerary.Repository {
	return &PlanDetailRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanDetailMapper(),
		logger: logger,
	}
}

func (r *PlanDetailRepositoryImpl) Create(ctx context.Context, e *itinerary.Entry) error {
	model := r.mapper.ToModel(e)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan detail", "error", err, "plan_id", e.PlanID())
		return fmt.Errorf("failed to create plan detail: %w", err)
	}
	return e.SetID(model.ID)
}

func (r *PlanDetailRepositoryImpl) Update(ctx context.Context, e *itinerary.Entry) error {
	model := r.mapper.ToModel(e)
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PlanDetailModel{}).
		Where("id = ?", model.ID).
		Select("place_id", "title", "content", "start_time", "end_time", "updated_at").
		Updates(model).Error
	if err != nil {
		r.logger.Errorw("failed to update plan detail", "error", err, "plan_detail_id", e.ID())
		return fmt.Errorf("failed to update plan detail: %w", err)
	}
	return nil
}

// Delete returns itinerary.ErrEntryNotFound when no row was removed.
func (r *PlanDetailRepositoryImpl) Delete(ctx context.Context, entryID uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PlanDetailModel{}, entryID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan detail", "error", result.Error, "plan_detail_id", entryID)
		return fmt.Errorf("failed to delete plan detail: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return itinerary.ErrEntryNotFound
	}
	return nil
}

func (r *PlanDetailRepositoryImpl) GetByID(ctx context.Context, entryID uint) (*itinerary.Entry, error) {
	var model models.PlanDetailModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan detail: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PlanDetailRepositoryImpl) ListByPlan(ctx context.Context, planID uint) ([]*itinerary.Entry, error) {
	var ms []models.PlanDetailModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("plan_id = ?", planID).
		Order("start_time ASC").
		Find(&ms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list plan details: %w", err)
	}
	return r.mapper.ToEntities(ms)
}

// ExistsOverlapping uses half-open intersection: start < end' and end > start'.
func (r *PlanDetailRepositoryImpl) ExistsOverlapping(ctx context.Context, planID uint, start, end time.Time, excludeID uint) (bool, error) {
	q := db.GetTxFromContext(ctx, r.db).
		Model(&models.PlanDetailModel{}).
		Where("plan_id = ? AND start_time < ? AND end_time > ?", planID, mappers.DBTime(end), mappers.DBTime(start))
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check overlapping plan details: %w", err)
	}
	return count > 0, nil
}

func (r *PlanDetailRepositoryImpl) ExistsOutside(ctx context.Context, planID uint, start, end time.Time) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PlanDetailModel{}).
		Where("plan_id = ? AND (start_time < ? OR end_time > ?)", planID, mappers.DBTime(start), mappers.DBTime(end)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check plan details outside window: %w", err)
	}
	return count > 0, nil
}

func (r *PlanDetailRepositoryImpl) DeleteByPlan(ctx context.Context, planID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("plan_id = ?", planID).
		Delete(&models.PlanDetailModel{}).Error
	if err != nil {
		r.logger.Errorw("failed to delete plan details", "error", err, "plan_id", planID)
		return fmt.Errorf("failed to delete plan details: %w", err)
	}
	return nil
}
