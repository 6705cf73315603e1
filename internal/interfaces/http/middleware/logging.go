package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline/internal/shared/constants"
	"github.com/tripline/tripline/internal/shared/logger"
)

// RequestLogger writes one access line per request. Routes are logged by
// their pattern so plan and entry ids stay out of the route field.
func RequestLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		fields := []any{
			"request_id", c.GetString(constants.ContextKeyRequestID),
			"method", c.Request.Method,
			"route", route,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"bytes", c.Writer.Size(),
			"client_ip", c.ClientIP(),
		}
		if memberID, ok := c.Get(constants.ContextKeyMemberID); ok {
			fields = append(fields, "member_id", memberID, "role", c.GetString(constants.ContextKeyRole))
		}
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			fields = append(fields, "errors", errs.String())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", fields...)
		case status >= 400:
			log.Warnw("request rejected", fields...)
		default:
			log.Infow("request served", fields...)
		}
	}
}
