package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tripline/tripline/internal/domain/bookmark"
	"github.com/tripline/tripline/internal/shared/biztime"
	"github.com/tripline/tripline/internal/shared/db"
	"github.com/tripline/tripline/internal/shared/logger"
)

type DeleteBookmarkCommand struct {
	BookmarkID uint
	MemberID   uint
}

type DeleteBookmarkUseCase struct {
	bookmarkRepo bookmark.Repository
	txMgr        db.TxRunner
	logger       logger.Interface
	now          func() time.Time
}

func NewDeleteBookmarkUseCase(
	bookmarkRepo bookmark.Repository,
	txMgr db.TxRunner,
	logger logger.Interface,
) *DeleteBookmarkUseCase {
	return &DeleteBookmarkUseCase{
		bookmarkRepo: bookmarkRepo,
		txMgr:        txMgr,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

func (uc *DeleteBookmarkUseCase) WithClock(now func() time.Time) *DeleteBookmarkUseCase {
	uc.now = now
	return uc
}

// Execute soft-deletes the bookmark. Deleting an already deleted bookmark is
// a no-op.
func (uc *DeleteBookmarkUseCase) Execute(ctx context.Context, cmd DeleteBookmarkCommand) error {
	uc.logger.Infow("executing delete bookmark use case", "bookmark_id", cmd.BookmarkID, "member_id", cmd.MemberID)

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		b, err := uc.bookmarkRepo.GetByID(txCtx, cmd.BookmarkID)
		if err != nil {
			return fmt.Errorf("failed to load bookmark: %w", err)
		}
		if b == nil {
			return bookmark.ErrBookmarkNotFound
		}
		if !b.IsOwnedBy(cmd.MemberID) {
			return bookmark.ErrNotOwner
		}
		if !b.SoftDelete(uc.now()) {
			return nil
		}
		return uc.bookmarkRepo.Update(txCtx, b)
	})
	if err != nil {
		uc.logger.Warnw("failed to delete bookmark", "bookmark_id", cmd.BookmarkID, "error", err)
		return err
	}

	uc.logger.Infow("bookmark deleted", "bookmark_id", cmd.BookmarkID)
	return nil
}
