package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"lessonbox/src/app/http/response"
	"lessonbox/src/infra/logger"
)

// Recovery turns a panic in any later handler into a 500 with the
// unclassified kind, logging the stack. Register it after Logging and
// Metrics so they observe the 500.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)

				logger.Error(logger.WithRequestID(log, requestID), "panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"stack", string(debug.Stack()),
				)

				_ = c.Error(fmt.Errorf("panic: %v", err))
				response.InternalError(c, requestID)
				c.Abort()
			}
		}()

		c.Next()
	}
}

