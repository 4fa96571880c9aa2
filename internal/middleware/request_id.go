package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request ID in both directions
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
	maxRequestIDLen = 64
)

// RequestID keeps a caller supplied request ID or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request ID set by RequestID, if any
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
