// Package itinerary models the time-boxed activities scheduled inside a plan.
package itinerary

import (
	"fmt"
	"time"

	"github.com/tripline/tripline/internal/domain/shared"
)

const (
	maxTitleLength   = 100
	maxContentLength = 5000
)

// Entry occupies the half-open interval [start, end) of its plan, at a place.
type Entry struct {
	id        uint
	planID    uint
	placeID   uint
	memberID  uint
	title     string
	content   string
	startTime time.Time
	endTime   time.Time
	createdAt time.Time
	updatedAt time.Time
}

// Slot is the mutable part of an entry, as submitted by a client.
type Slot struct {
	PlaceID   uint
	Title     string
	Content   string
	StartTime time.Time
	EndTime   time.Time
}

func (s Slot) normalize() (Slot, error) {
	if s.PlaceID == 0 {
		return s, fmt.Errorf("place ID is required")
	}
	title, err := shared.RequireText("title", s.Title, maxTitleLength)
	if err != nil {
		return s, err
	}
	content, err := shared.RequireText("content", s.Content, maxContentLength)
	if err != nil {
		return s, err
	}
	s.Title, s.Content = title, content
	s.StartTime, s.EndTime = s.StartTime.UTC(), s.EndTime.UTC()
	if !s.StartTime.Before(s.EndTime) {
		return s, ErrEmptyInterval
	}
	return s, nil
}

// NewEntry checks the entry on its own. Plan-relative rules are enforced by
// SlotValidator.
func NewEntry(planID, memberID uint, slot Slot, now time.Time) (*Entry, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	slot, err := slot.normalize()
	if err != nil {
		return nil, err
	}
	return &Entry{
		planID:    planID,
		placeID:   slot.PlaceID,
		memberID:  memberID,
		title:     slot.Title,
		content:   slot.Content,
		startTime: slot.StartTime,
		endTime:   slot.EndTime,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructEntry(id, planID, placeID, memberID uint, title, content string, startTime, endTime, createdAt, updatedAt time.Time) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan detail ID cannot be zero")
	}
	return &Entry{
		id:        id,
		planID:    planID,
		placeID:   placeID,
		memberID:  memberID,
		title:     title,
		content:   content,
		startTime: startTime.UTC(),
		endTime:   endTime.UTC(),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (e *Entry) ID() uint { return e.id }
func (e *Entry) PlanID() uint { return e.planID }
func (e *Entry) PlaceID() uint { return e.placeID }
func (e *Entry) MemberID() uint { return e.memberID }
func (e *Entry) Title() string { return e.title }
func (e *Entry) Content() string { return e.content }
func (e *Entry) StartTime() time.Time { return e.startTime }
func (e *Entry) EndTime() time.Time { return e.endTime }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time { return e.updatedAt }

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("plan detail ID is already set")
	}
	e.id = id
	return nil
}

// Replace overwrites the slot. The plan never changes.
func (e *Entry) Replace(slot Slot, now time.Time) error {
	slot, err := slot.normalize()
	if err != nil {
		return err
	}
	e.placeID = slot.PlaceID
	e.title, e.content = slot.Title, slot.Content
	e.startTime, e.endTime = slot.StartTime, slot.EndTime
	e.updatedAt = now
	return nil
}

// Intersects applies half-open semantics: touching intervals do not overlap.
func (e *Entry) Intersects(start, end time.Time) bool {
	return Overlaps(e.startTime, e.endTime, start, end)
}

// OccursWithin reports whether the entry touches the window [from, to]:
// end > from and start < to.
func (e *Entry) OccursWithin(from, to time.Time) bool {
	return e.endTime.After(from) && e.startTime.Before(to)
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share an instant.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
