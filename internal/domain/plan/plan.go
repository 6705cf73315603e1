// Package plan models a trip and the members admitted to it.
package plan

import (
	"fmt"
	"time"

	"github.com/tripline/tripline/internal/domain/shared"
	"github.com/tripline/tripline/internal/shared/biztime"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 2000
)

// Plan is a trip owned by one member with an inclusive date window.
type Plan struct {
	id          uint
	ownerID     uint
	title       string
	description string
	startDate   time.Time
	endDate     time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// Changes holds the proposed values of an edit. Nil fields are unchanged.
type Changes struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
}

func NewPlan(ownerID uint, title, description string, startDate, endDate, now time.Time) (*Plan, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	title, err := shared.RequireText("title", title, maxTitleLength)
	if err != nil {
		return nil, err
	}
	description, err = shared.OptionalText("description", description, maxDescriptionLength)
	if err != nil {
		return nil, err
	}
	startDate, endDate = startDate.UTC(), endDate.UTC()
	if err := ValidateDates(startDate, endDate, now); err != nil {
		return nil, err
	}

	return &Plan{
		ownerID:     ownerID,
		title:       title,
		description: description,
		startDate:   startDate,
		endDate:     endDate,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructPlan rebuilds a persisted plan without re-running the
// time-relative checks, which only apply at write time.
func ReconstructPlan(id, ownerID uint, title, description string, startDate, endDate, createdAt, updatedAt time.Time) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if startDate.After(endDate) {
		return nil, fmt.Errorf("plan %d has start after end", id)
	}
	return &Plan{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		description: description,
		startDate:   startDate.UTC(),
		endDate:     endDate.UTC(),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ValidateDates checks a proposed window: start ≤ end, start no earlier than
// one second before today's midnight, end within the scheduling horizon.
func ValidateDates(startDate, endDate, now time.Time) error {
	if startDate.After(endDate) {
		return ErrPlanDatesInverted
	}
	earliest := biztime.StartOfDayUTC(now).Add(-time.Second)
	if startDate.Before(earliest) {
		return ErrPlanStartsInPast
	}
	if endDate.After(shared.SchedulingHorizon(now)) {
		return ErrPlanEndsTooLate
	}
	return nil
}

func (p *Plan) ID() uint { return p.id }
func (p *Plan) OwnerID() uint { return p.ownerID }
func (p *Plan) Title() string { return p.title }
func (p *Plan) Description() string { return p.description }
func (p *Plan) StartDate() time.Time { return p.startDate }
func (p *Plan) EndDate() time.Time { return p.endDate }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Plan) IsOwnedBy(memberID uint) bool {
	return p.ownerID == memberID
}

// Apply validates the proposed values as a whole and only then mutates p.
func (p *Plan) Apply(c Changes, now time.Time) error {
	title, description := p.title, p.description
	startDate, endDate := p.startDate, p.endDate

	var err error
	if c.Title != nil {
		if title, err = shared.RequireText("title", *c.Title, maxTitleLength); err != nil {
			return err
		}
	}
	if c.Description != nil {
		if description, err = shared.OptionalText("description", *c.Description, maxDescriptionLength); err != nil {
			return err
		}
	}
	if c.StartDate != nil {
		startDate = c.StartDate.UTC()
	}
	if c.EndDate != nil {
		endDate = c.EndDate.UTC()
	}
	if err := ValidateDates(startDate, endDate, now); err != nil {
		return err
	}

	p.title, p.description = title, description
	p.startDate, p.endDate = startDate, endDate
	p.updatedAt = now
	return nil
}

// Covers reports whether [start, end) lies inside the plan window.
func (p *Plan) Covers(start, end time.Time) bool {
	return !start.Before(p.startDate) && !end.After(p.endDate)
}

// StartsOn reports whether the plan begins exactly at dayStart.
func (p *Plan) StartsOn(dayStart time.Time) bool {
	return p.startDate.Equal(dayStart)
}
