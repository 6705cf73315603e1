// Package bookmark models a member's saved places. Bookmarks are soft
// deleted and revived in place rather than duplicated.
package bookmark

import (
	"fmt"
	"time"
)

type Bookmark struct {
	id        uint
	memberID  uint
	placeID   uint
	createdAt time.Time
	deletedAt *time.Time
}

func NewBookmark(memberID, placeID uint, now time.Time) (*Bookmark, error) {
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	if placeID == 0 {
		return nil, fmt.Errorf("place ID is required")
	}
	return &Bookmark{memberID: memberID, placeID: placeID, createdAt: now}, nil
}

func ReconstructBookmark(id, memberID, placeID uint, createdAt time.Time, deletedAt *time.Time) (*Bookmark, error) {
	if id == 0 {
		return nil, fmt.Errorf("bookmark ID cannot be zero")
	}
	return &Bookmark{
		id:        id,
		memberID:  memberID,
		placeID:   placeID,
		createdAt: createdAt,
		deletedAt: deletedAt,
	}, nil
}

func (b *Bookmark) ID() uint { return b.id }
func (b *Bookmark) MemberID() uint { return b.memberID }
func (b *Bookmark) PlaceID() uint { return b.placeID }
func (b *Bookmark) CreatedAt() time.Time { return b.createdAt }
func (b *Bookmark) DeletedAt() *time.Time { return b.deletedAt }

func (b *Bookmark) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("bookmark ID is already set")
	}
	b.id = id
	return nil
}

func (b *Bookmark) IsActive() bool {
	return b.deletedAt == nil
}

func (b *Bookmark) IsOwnedBy(memberID uint) bool {
	return b.memberID == memberID
}

// SoftDelete marks the bookmark deleted. It reports false if it already was.
func (b *Bookmark) SoftDelete(now time.Time) bool {
	if b.deletedAt != nil {
		return false
	}
	t := now
	b.deletedAt = &t
	return true
}

// Reactivate clears the deletion marker and refreshes the creation time.
func (b *Bookmark) Reactivate(now time.Time) error {
	if b.IsActive() {
		return ErrBookmarkExists
	}
	b.deletedAt = nil
	b.createdAt = now
	return nil
}
