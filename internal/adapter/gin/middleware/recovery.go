package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-post-service/pkg/logger"
)

// Recovery turns a handler panic into a 500 JSON response.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithContext(c.Request.Context(), log).Error("panic recovered",
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"statusCode": http.StatusInternalServerError,
					"error":      http.StatusText(http.StatusInternalServerError),
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
