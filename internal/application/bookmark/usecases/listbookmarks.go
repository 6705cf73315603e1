package usecases

import (
	"context"
	"fmt"

	"github.com/tripline/tripline/internal/application/bookmark/dto"
	"github.com/tripline/tripline/internal/domain/bookmark"
	"github.com/tripline/tripline/internal/shared/logger"
	"github.com/tripline/tripline/internal/shared/query"
)

type ListBookmarksQuery struct {
	MemberID uint
	Page     query.PageFilter
}

type ListBookmarksUseCase struct {
	bookmarkRepo bookmark.Repository
	logger       logger.Interface
}

func NewListBookmarksUseCase(bookmarkRepo bookmark.Repository, logger logger.Interface) *ListBookmarksUseCase {
	return &ListBookmarksUseCase{bookmarkRepo: bookmarkRepo, logger: logger}
}

// Execute lists active bookmarks, newest first.
func (uc *ListBookmarksUseCase) Execute(ctx context.Context, q ListBookmarksQuery) (*dto.BookmarkListDTO, error) {
	page := q.Page.Normalize()
	items, total, err := uc.bookmarkRepo.ListActiveByMember(ctx, q.MemberID, page)
	if err != nil {
		uc.logger.Errorw("failed to list bookmarks", "member_id", q.MemberID, "error", err)
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return &dto.BookmarkListDTO{
		Items:    dto.ToBookmarkDTOs(items),
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}
