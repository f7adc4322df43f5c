package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lessonbox/src/app/http/response"
)

// UUIDParam rejects requests whose path parameter name is not a UUID. On
// success the parsed value is stored in the context under the same name.
func UUIDParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(name)
		id, err := uuid.Parse(raw)
		if err != nil {
			response.ValidationError(c, name, "must be a UUID", GetRequestID(c))
			c.Abort()
			return
		}
		c.Set(name, id)
		c.Next()
	}
}

// GetUUID returns the UUID stored by UUIDParam, or uuid.Nil.
func GetUUID(c *gin.Context, name string) uuid.UUID {
	if v, ok := c.Get(name); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
