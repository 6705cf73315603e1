package models

import "github.com/tripline/tripline/internal/shared/constants"

// PlaceModel mirrors the place catalog table. The service only reads it.
type PlaceModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:200;not null"`
	Address   string  `gorm:"size:500"`
	Category  string  `gorm:"size:50;index"`
	Latitude  float64 `gorm:"not null;default:0"`
	Longitude float64 `gorm:"not null;default:0"`
}

func (PlaceModel) TableName() string {
	return constants.TablePlaces
}
