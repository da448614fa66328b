package logger

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is echoed on every response and honoured when a caller sends one.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware puts a request ID into the request context so that
// WithContext can tag every log line of the request with it.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Request = c.Request.WithContext(WithRequestID(c.Request.Context(), requestID))
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
