package usecases

import (
	"context"

	"github.com/tripline/tripline/internal/application/bookmark/dto"
)

type CreateBookmarkExecutor interface {
	Execute(ctx context.Context, cmd CreateBookmarkCommand) (*dto.BookmarkDTO, error)
}

type ListBookmarksExecutor interface {
	Execute(ctx context.Context, q ListBookmarksQuery) (*dto.BookmarkListDTO, error)
}

type DeleteBookmarkExecutor interface {
	Execute(ctx context.Context, cmd DeleteBookmarkCommand) error
}
