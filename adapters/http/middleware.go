package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/predusk/profile-api/pkg/apperror"
	"github.com/predusk/profile-api/pkg/logger"
)

const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware tags every request with an id, echoing a caller-supplied
// one when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Set("request_id", id)
		c.Next()
	}
}

// ErrorMiddleware translates errors collected via c.Error into HTTP
// responses. Not-found never reaches this point as an error; handlers raise
// apperror.NewNotFound explicitly when a service reports absence.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		requestID := c.GetString("request_id")

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("request failed", appErr,
					zap.String("path", c.FullPath()),
					zap.String("request_id", requestID),
				)
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("unhandled error", err,
			zap.String("path", c.FullPath()),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
