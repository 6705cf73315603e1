package models

import (
	"time"

	"github.com/tripline/tripline/internal/shared/constants"
)

// PlanModel is the persistence shape of a plan. Times are stored in UTC at
// millisecond precision.
type PlanModel struct {
	ID          uint      `gorm:"primaryKey"`
	OwnerID     uint      `gorm:"not null;index:idx_plans_owner_start,priority:1"`
	Title       string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text"`
	StartDate   time.Time `gorm:"precision:3;not null;index:idx_plans_owner_start,priority:2"`
	EndDate     time.Time `gorm:"precision:3;not null"`
	CreatedAt   time.Time `gorm:"precision:3;not null"`
	UpdatedAt   time.Time `gorm:"precision:3;not null"`

	// No foreign keys: members and details are removed by the application
	// in a fixed order before the plan row.
}

func (PlanModel) TableName() string {
	return constants.TablePlans
}

// PlanMemberModel holds one (plan, member) admission record.
type PlanMemberModel struct {
	ID        uint      `gorm:"primaryKey"`
	PlanID    uint      `gorm:"not null;uniqueIndex:uk_plan_members_plan_member,priority:1"`
	MemberID  uint      `gorm:"not null;uniqueIndex:uk_plan_members_plan_member,priority:2;index:idx_plan_members_member"`
	Status    string    `gorm:"size:20;not null"`
	CreatedAt time.Time `gorm:"precision:3;not null"`
	UpdatedAt time.Time `gorm:"precision:3;not null"`
}

func (PlanMemberModel) TableName() string {
	return constants.TablePlanMembers
}
