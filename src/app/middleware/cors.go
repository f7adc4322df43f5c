package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS adds basic CORS headers and short-circuits OPTIONS preflight requests.
// Any origin is allowed; the API carries no credentials.
func CORS() gin.HandlerFunc {
	const (
		allowedOrigin  = "*"
		allowedMethods = "GET, POST, PUT, OPTIONS"
		allowedHeaders = "Content-Type, X-Request-ID"
		maxAge         = "600"
	)

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Methods", allowedMethods)
		c.Header("Access-Control-Allow-Headers", allowedHeaders)
		c.Header("Access-Control-Max-Age", maxAge)

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}

		c.Next()
	}
}

