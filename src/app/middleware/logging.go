package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"lessonbox/src/core/domain"
	"lessonbox/src/infra/logger"
)

// maxLoggedBody caps how much of a request or response body is logged.
const maxLoggedBody = 2048

// Logging emits one structured line per request. The level follows the
// status code, and any error a handler attached to the context is logged
// with its domain kind.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		var reqBodyBytes []byte
		if c.Request.Body != nil {
			reqBodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBodyBytes))
		}

		rec := &responseCapture{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		status := c.Writer.Status()
		reqLog := logger.WithRequestID(log, GetRequestID(c))
		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration", time.Since(start),
		}
		if query != "" {
			attrs = append(attrs, "query", query)
		}
		if len(reqBodyBytes) > 0 {
			attrs = append(attrs, "request", truncate(string(reqBodyBytes)))
		}
		if rec.body.Len() > 0 {
			attrs = append(attrs, "response", truncate(rec.body.String()))
		}
		if err := c.Errors.Last(); err != nil {
			attrs = append(attrs, "kind", domain.KindOf(err.Err), "error", err.Err.Error())
		}

		switch {
		case status >= 500:
			logger.Error(reqLog, "request handled", attrs...)
		case status >= 400:
			logger.Warn(reqLog, "request handled", attrs...)
		default:
			logger.Info(reqLog, "request handled", attrs...)
		}
	}
}

// responseCapture captures response body while delegating to original writer.
type responseCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *responseCapture) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseCapture) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

func truncate(s string) string {
	if len(s) <= maxLoggedBody {
		return s
	}
	return s[:maxLoggedBody] + "...(truncated)"
}
