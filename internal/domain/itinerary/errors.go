package itinerary

import "github.com/tripline/tripline/internal/shared/errors"

var (
	ErrEntryNotFound  = errors.NewNotFoundError("plan detail not found")
	ErrEntryNotInPlan = errors.NewNotFoundError("plan detail does not belong to this plan")

	ErrTimeConflict   = errors.NewTimeConflictError("itinerary entry overlaps another entry of the plan")
	ErrEmptyInterval  = errors.NewInvalidDateRangeError("itinerary entry must end after it starts")
	ErrOutsidePlan    = errors.NewInvalidDateRangeError("itinerary entry must lie within the plan dates")
	ErrBeyondHorizon  = errors.NewInvalidDateRangeError("itinerary entry cannot start more than 10 years from now")
	ErrEntriesOutside = errors.NewInvalidDateRangeError("plan dates would leave existing itinerary entries outside the plan")
)
