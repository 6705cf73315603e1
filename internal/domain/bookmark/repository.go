package bookmark

import (
	"context"

	"github.com/tripline/tripline/internal/shared/query"
)

// Repository lookups include soft-deleted rows unless named Active.
// Getters return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, b *Bookmark) error
	Update(ctx context.Context, b *Bookmark) error
	GetByID(ctx context.Context, bookmarkID uint) (*Bookmark, error)
	GetByMemberAndPlace(ctx context.Context, memberID, placeID uint) (*Bookmark, error)
	ListActiveByMember(ctx context.Context, memberID uint, page query.PageFilter) ([]*Bookmark, int64, error)
}
