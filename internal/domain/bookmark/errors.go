package bookmark

import "github.com/tripline/tripline/internal/shared/errors"

var (
	ErrBookmarkNotFound = errors.NewNotFoundError("bookmark not found")
	ErrBookmarkExists   = errors.NewDuplicateError("place is already bookmarked")
	ErrNotOwner         = errors.NewForbiddenError("bookmark belongs to another member")
)
