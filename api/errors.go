package api

import (
	"errors"
	"net/http"

	"github.com/chxlky/taskboard-api/internal/apperror"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorResponse struct {
	Status   int            `json:"status"`
	Error    string         `json:"error"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Details  []fieldError   `json:"details,omitempty"`
}

// ErrorHandler renders the last error a handler attached with c.Error.
// Domain errors keep their status and message; anything else becomes a bare
// 500 so no internal detail reaches the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var reqErr *requestError
		if errors.As(err, &reqErr) {
			c.JSON(http.StatusBadRequest, errorResponse{
				Status:  http.StatusBadRequest,
				Error:   "Validation error",
				Details: reqErr.details(),
			})
			return
		}

		if appErr, ok := apperror.As(err); ok {
			status := appErr.StatusCode()
			if status >= http.StatusInternalServerError {
				zap.L().Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
			} else {
				zap.L().Debug("Request rejected", zap.String("path", c.FullPath()), zap.String("kind", appErr.Kind.String()), zap.Error(err))
			}
			c.JSON(status, errorResponse{
				Status:   status,
				Error:    appErr.Message,
				Metadata: appErr.Metadata,
			})
			return
		}

		zap.L().Error("Unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{
			Status: http.StatusInternalServerError,
			Error:  "Internal server error",
		})
	}
}
