package dto

import (
	"time"

	"github.com/tripline/tripline/internal/domain/bookmark"
	"github.com/tripline/tripline/internal/shared/mapper"
)

type BookmarkDTO struct {
	ID        uint      `json:"id"`
	MemberID  uint      `json:"member_id"`
	PlaceID   uint      `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
}

type BookmarkListDTO struct {
	Items    []*BookmarkDTO `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

func ToBookmarkDTO(b *bookmark.Bookmark) *BookmarkDTO {
	if b == nil {
		return nil
	}
	return &BookmarkDTO{
		ID:        b.ID(),
		MemberID:  b.MemberID(),
		PlaceID:   b.PlaceID(),
		CreatedAt: b.CreatedAt(),
	}
}

func ToBookmarkDTOs(items []*bookmark.Bookmark) []*BookmarkDTO {
	return mapper.MapSlice(items, ToBookmarkDTO)
}
