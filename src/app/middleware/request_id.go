// Package middleware contains HTTP middleware for the Gin router.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the HTTP header used for request tracing.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the context key for storing the request ID.
const RequestIDKey = "request_id"

// Longer incoming IDs are replaced rather than echoed.
const maxRequestIDLength = 128

// RequestID reuses an incoming X-Request-ID header or generates a UUID,
// stores it in the context and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)

		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID retrieves the request ID from the Gin context.
// Returns empty string if not set.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDKey); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}

