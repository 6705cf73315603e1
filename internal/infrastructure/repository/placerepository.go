package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tripline/tripline/internal/domain/place"
	"github.com/tripline/tripline/internal/infrastructure/persistence/mappers"
	"github.com/tripline/tripline/internal/infrastructure/persistence/models"
	"github.com/tripline/tripline/internal/shared/db"
)

// PlaceRepository reads the place catalog table.
type PlaceRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

func (r *PlaceRepository) GetByID(ctx context.Context, placeID uint) (*place.Place, error) {
	var model models.PlaceModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, placeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get place: %w", err)
	}
	return mappers.PlaceFromModel(&model), nil
}
