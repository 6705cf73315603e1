package models

import (
	"time"

	"github.com/tripline/tripline/internal/shared/constants"
)

// BookmarkModel keeps soft-deleted rows addressable by (member, place) so
// they can be revived. DeletedAt is a plain column filtered with
// db.NotDeleted, not gorm.DeletedAt.
type BookmarkModel struct {
	ID        uint       `gorm:"primaryKey"`
	MemberID  uint       `gorm:"not null;uniqueIndex:uk_bookmarks_member_place,priority:1"`
	PlaceID   uint       `gorm:"not null;uniqueIndex:uk_bookmarks_member_place,priority:2"`
	CreatedAt time.Time  `gorm:"precision:3;not null"`
	DeletedAt *time.Time `gorm:"precision:3;index"`
}

func (BookmarkModel) TableName() string {
	return constants.TableBookmarks
}
