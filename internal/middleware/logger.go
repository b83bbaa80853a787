package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/project-tracker/internal/constants"
	"go.uber.org/zap"
)

// RequestID tags every request with an id, reusing an incoming X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(constants.ContextKeyRequestID, id)
		c.Header(constants.HeaderRequestID, id)
		c.Next()
	}
}

// ZapLogger logs requests with zap. Server errors log at error level, health
// checks at debug level, everything else at info level.
func ZapLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start)

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", dur.String(),
			"clientIP", c.ClientIP(),
			"requestID", c.GetString(constants.ContextKeyRequestID),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Sugar().Errorw("HTTP", fields...)
		case c.Request.URL.Path == "/health":
			log.Sugar().Debugw("HTTP", fields...)
		default:
			log.Sugar().Infow("HTTP", fields...)
		}
	}
}
