package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aioseoassistant/SMSApp/internal/constant"
)

// RequestID tags every request with an id for log correlation, honoring one
// supplied by the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constant.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(constant.RequestIDKey, id)
		c.Header(constant.RequestIDHeader, id)
		c.Next()
	}
}
