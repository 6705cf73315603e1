package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline/internal/shared/constants"
	"github.com/tripline/tripline/internal/shared/errors"
)

// SetMemberContext records the authenticated caller on the request.
func SetMemberContext(c *gin.Context, memberID uint, role string) {
	c.Set(constants.ContextKeyMemberID, memberID)
	c.Set(constants.ContextKeyRole, role)
}

// GetMemberIDFromContext returns the caller set by the auth middleware.
func GetMemberIDFromContext(c *gin.Context) (uint, error) {
	v, exists := c.Get(constants.ContextKeyMemberID)
	if !exists {
		return 0, errors.NewUnauthorizedError("member not authenticated")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.NewUnauthorizedError("member not authenticated")
	}
	return id, nil
}

// GetRoleFromContext returns "" when no role was set.
func GetRoleFromContext(c *gin.Context) string {
	return c.GetString(constants.ContextKeyRole)
}
