package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tripline/tripline/internal/application/bookmark/dto"
	"github.com/tripline/tripline/internal/domain/bookmark"
	"github.com/tripline/tripline/internal/domain/place"
	"github.com/tripline/tripline/internal/shared/biztime"
	"github.com/tripline/tripline/internal/shared/db"
	"github.com/tripline/tripline/internal/shared/errors"
	"github.com/tripline/tripline/internal/shared/logger"
)

type CreateBookmarkCommand struct {
	MemberID uint
	PlaceID  uint
}

type CreateBookmarkUseCase struct {
	bookmarkRepo bookmark.Repository
	places       place.Lookup
	txMgr        db.TxRunner
	logger       logger.Interface
	now          func() time.Time
}

func NewCreateBookmarkUseCase(
	bookmarkRepo bookmark.Repository,
	places place.Lookup,
	txMgr db.TxRunner,
	logger logger.Interface,
) *CreateBookmarkUseCase {
	return &CreateBookmarkUseCase{
		bookmarkRepo: bookmarkRepo,
		places:       places,
		txMgr:        txMgr,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

func (uc *CreateBookmarkUseCase) WithClock(now func() time.Time) *CreateBookmarkUseCase {
	uc.now = now
	return uc
}

// Execute reactivates a soft-deleted bookmark for the same place instead of
// inserting a second row.
func (uc *CreateBookmarkUseCase) Execute(ctx context.Context, cmd CreateBookmarkCommand) (*dto.BookmarkDTO, error) {
	uc.logger.Infow("executing create bookmark use case", "member_id", cmd.MemberID, "place_id", cmd.PlaceID)

	var result *bookmark.Bookmark
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.places.GetByID(txCtx, cmd.PlaceID)
		if err != nil {
			return fmt.Errorf("failed to load place: %w", err)
		}
		if p == nil {
			return place.ErrPlaceNotFound
		}

		now := uc.now()
		existing, err := uc.bookmarkRepo.GetByMemberAndPlace(txCtx, cmd.MemberID, cmd.PlaceID)
		if err != nil {
			return fmt.Errorf("failed to load bookmark: %w", err)
		}
		if existing != nil {
			if err := existing.Reactivate(now); err != nil {
				return err
			}
			if err := uc.bookmarkRepo.Update(txCtx, existing); err != nil {
				return err
			}
			result = existing
			return nil
		}

		b, err := bookmark.NewBookmark(cmd.MemberID, cmd.PlaceID, now)
		if err != nil {
			return errors.AsAppError(err)
		}
		if err := uc.bookmarkRepo.Create(txCtx, b); err != nil {
			return err
		}
		result = b
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to create bookmark", "member_id", cmd.MemberID, "place_id", cmd.PlaceID, "error", err)
		return nil, err
	}

	uc.logger.Infow("bookmark saved", "bookmark_id", result.ID(), "member_id", cmd.MemberID)
	return dto.ToBookmarkDTO(result), nil
}
