package plan

import "github.com/tripline/tripline/internal/shared/errors"

var (
	ErrPlanNotFound      = errors.NewNotFoundError("plan not found")
	ErrTodayPlanNotFound = errors.NewNotFoundError("no plan starts today")
	ErrNotPlanOwner      = errors.NewForbiddenError("only the plan owner can do this")

	ErrPlanDatesInverted = errors.NewInvalidDateRangeError("plan start date must not be after its end date")
	ErrPlanStartsInPast  = errors.NewInvalidDateRangeError("plan cannot start before today")
	ErrPlanEndsTooLate   = errors.NewInvalidDateRangeError("plan cannot end more than 10 years from now")

	ErrMembershipNotFound = errors.NewNotFoundError("plan membership not found")
	ErrNotAcceptedMember  = errors.NewForbiddenError("not an accepted member of this plan")
	ErrNotPlanMember      = errors.NewForbiddenError("not a member of this plan")
	ErrAlreadyInvited     = errors.NewDuplicateError("member already has a membership on this plan")
	ErrInvitationResolved = errors.NewConflictError("invitation already resolved")
)
