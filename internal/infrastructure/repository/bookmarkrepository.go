package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tripline/tripline/internal/domain/bookmark"
	"github.com/tripline/tripline/internal/infrastructure/persistence/mappers"
	"github.com/tripline/tripline/internal/infrastructure/persistence/models"
	"github.com/tripline/tripline/internal/shared/db"
	apperrors "github.com/tripline/tripline/internal/shared/errors"
	"github.com/tripline/tripline/internal/shared/logger"
	"github.com/tripline/tripline/internal/shared/query"
)

type BookmarkRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.BookmarkMapper
	logger logger.Interface
}

func NewBookmarkRepository(db *gorm.DB, logger logger.Interface) bookmark.Repository {
	return &BookmarkRepositoryImpl{
		db:     db,
		mapper: mappers.NewBookmarkMapper(),
		logger: logger,
	}
}

func (r *BookmarkRepositoryImpl) Create(ctx context.Context, b *bookmark.Bookmark) error {
	model := r.mapper.ToModel(b)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return bookmark.ErrBookmarkExists
		}
		r.logger.Errorw("failed to create bookmark", "error", err, "member_id", b.MemberID(), "place_id", b.PlaceID())
		return fmt.Errorf("failed to create bookmark: %w", err)
	}
	return b.SetID(model.ID)
}

// Update writes created_at and deleted_at, including a cleared deleted_at.
func (r *BookmarkRepositoryImpl) Update(ctx context.Context, b *bookmark.Bookmark) error {
	model := r.mapper.ToModel(b)
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.BookmarkModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"created_at": model.CreatedAt,
			"deleted_at": model.DeletedAt,
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update bookmark", "error", err, "bookmark_id", b.ID())
		return fmt.Errorf("failed to update bookmark: %w", err)
	}
	return nil
}

func (r *BookmarkRepositoryImpl) GetByID(ctx context.Context, bookmarkID uint) (*bookmark.Bookmark, error) {
	var model models.BookmarkModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, bookmarkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *BookmarkRepositoryImpl) GetByMemberAndPlace(ctx context.Context, memberID, placeID uint) (*bookmark.Bookmark, error) {
	var model models.BookmarkModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("member_id = ? AND place_id = ?", memberID, placeID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *BookmarkRepositoryImpl) ListActiveByMember(ctx context.Context, memberID uint, page query.PageFilter) ([]*bookmark.Bookmark, int64, error) {
	q := db.GetTxFromContext(ctx, r.db).
		Model(&models.BookmarkModel{}).
		Scopes(db.NotDeleted()).
		Where("member_id = ?", memberID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookmarks: %w", err)
	}

	page = page.Normalize()
	var ms []models.BookmarkModel
	err := q.Order("created_at DESC").Order("id DESC").
		Scopes(db.Paginate(page.Page, page.PageSize)).
		Find(&ms).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	out := make([]*bookmark.Bookmark, 0, len(ms))
	for i := range ms {
		b, err := r.mapper.ToEntity(&ms[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, nil
}
