package mappers

import (
	"github.com/tripline/tripline/internal/domain/bookmark"
	"github.com/tripline/tripline/internal/domain/place"
	"github.com/tripline/tripline/internal/infrastructure/persistence/models"
)

type BookmarkMapper interface {
	ToModel(b *bookmark.Bookmark) *models.BookmarkModel
	ToEntity(model *models.BookmarkModel) (*bookmark.Bookmark, error)
}

type bookmarkMapper struct{}

func NewBookmarkMapper() BookmarkMapper {
	return &bookmarkMapper{}
}

func (m *bookmarkMapper) ToModel(b *bookmark.Bookmark) *models.BookmarkModel {
	return &models.BookmarkModel{
		ID:        b.ID(),
		MemberID:  b.MemberID(),
		PlaceID:   b.PlaceID(),
		CreatedAt: DBTime(b.CreatedAt()),
		DeletedAt: dbTimePtr(b.DeletedAt()),
	}
}

func (m *bookmarkMapper) ToEntity(model *models.BookmarkModel) (*bookmark.Bookmark, error) {
	if model == nil {
		return nil, nil
	}
	return bookmark.ReconstructBookmark(
		model.ID,
		model.MemberID,
		model.PlaceID,
		fromDBTime(model.CreatedAt),
		fromDBTimePtr(model.DeletedAt),
	)
}

// PlaceFromModel has no error path: places are read-only catalog rows.
func PlaceFromModel(model *models.PlaceModel) *place.Place {
	if model == nil {
		return nil
	}
	return &place.Place{
		ID:        model.ID,
		Name:      model.Name,
		Address:   model.Address,
		Category:  model.Category,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
	}
}
