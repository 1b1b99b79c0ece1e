package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed with c.Error. Messages of 5xx
// errors never reach the client; the cause is logged instead.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		code := http.StatusInternalServerError
		if appErr != nil {
			code = appErr.Code
		}
		logger.Log.Error().
			Err(err).
			Str("request_id", response.RequestID(c)).
			Str("path", c.FullPath()).
			Msg("request failed")
		response.Error(c, code, "An unexpected error occurred. Please try again later.")
	}
}
