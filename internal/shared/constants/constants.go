package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Gin context keys set by middleware.
	ContextKeyMemberID  = "member_id"
	ContextKeyRole      = "member_role"
	ContextKeyRequestID = "request_id"

	RoleMember = "member"
	RoleAdmin  = "admin"

	TablePlans       = "plans"
	TablePlanMembers = "plan_members"
	TablePlanDetails = "plan_details"
	TableBookmarks   = "bookmarks"
	TablePlaces      = "places"

	// MaxFutureYears bounds how far ahead plans and entries may be scheduled.
	MaxFutureYears = 10

	ErrMsgInternalServerError = "Internal server error occurred"
)
