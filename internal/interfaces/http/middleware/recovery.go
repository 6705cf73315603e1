package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/tripline/tripline/internal/shared/constants"
	"github.com/tripline/tripline/internal/shared/logger"
	"github.com/tripline/tripline/internal/shared/utils"
)

// Recovery turns a handler panic into a 500 envelope. Panics caused by the
// client hanging up are logged without a response.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		fields := []any{
			"request_id", c.GetString(constants.ContextKeyRequestID),
			"method", c.Request.Method,
			"route", c.FullPath(),
			"panic", recovered,
		}

		if clientGone(recovered) {
			log.Warnw("client connection lost during request", fields...)
			c.Abort()
			return
		}

		if memberID, ok := c.Get(constants.ContextKeyMemberID); ok {
			fields = append(fields, "member_id", memberID)
		}
		fields = append(fields, "stack", string(debug.Stack()))
		log.Errorw("panic recovered", fields...)

		utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
	})
}

func clientGone(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, http.ErrAbortHandler)
}

// ErrorHandler writes the envelope for errors handlers attached with c.Error
// but did not answer themselves.
func ErrorHandler(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log.Warnw("unhandled handler error",
			"request_id", c.GetString(constants.ContextKeyRequestID),
			"route", c.FullPath(),
			"error", err)
		utils.ErrorResponseWithError(c, err)
	}
}
