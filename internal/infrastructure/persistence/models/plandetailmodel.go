package models

import (
	"time"

	"github.com/tripline/tripline/internal/shared/constants"
)

type PlanDetailModel struct {
	ID        uint      `gorm:"primaryKey"`
	PlanID    uint      `gorm:"not null;index:idx_plan_details_plan_start,priority:1"`
	PlaceID   uint      `gorm:"not null;index"`
	MemberID  uint      `gorm:"not null"`
	Title     string    `gorm:"size:100;not null"`
	Content   string    `gorm:"type:text;not null"`
	StartTime time.Time `gorm:"precision:3;not null;index:idx_plan_details_plan_start,priority:2"`
	EndTime   time.Time `gorm:"precision:3;not null"`
	CreatedAt time.Time `gorm:"precision:3;not null"`
	UpdatedAt time.Time `gorm:"precision:3;not null"`
}

func (PlanDetailModel) TableName() string {
	return constants.TablePlanDetails
}
