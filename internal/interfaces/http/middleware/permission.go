package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline/internal/shared/logger"
	"github.com/tripline/tripline/internal/shared/utils"
)

// RouteEnforcer decides whether a role may call method on path.
type RouteEnforcer interface {
	Enforce(role string, path string, method string) (bool, error)
}

type PermissionMiddleware struct {
	enforcer RouteEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer RouteEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequireRoutePermission checks the request path against casbin route
// policies. It must run after RequireAuth.
func (m *PermissionMiddleware) RequireRoutePermission() gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, err := utils.GetMemberIDFromContext(c)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "member not authenticated")
			c.Abort()
			return
		}

		role := utils.GetRoleFromContext(c)
		path := c.Request.URL.Path
		method := c.Request.Method

		allowed, err := m.enforcer.Enforce(role, path, method)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "member_id", memberID, "path", path, "method", method)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "member_id", memberID, "role", role, "path", path, "method", method)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
