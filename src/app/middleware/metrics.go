package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lessonbox/src/infra/metrics"
)

// Metrics records request count and latency by route template, and counts
// every error a handler attached to the context under its failure kind.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
		for _, e := range c.Errors {
			m.RecordFailure("http", e.Err)
		}
	}
}
