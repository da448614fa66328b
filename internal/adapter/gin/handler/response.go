package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	pkgerrors "user-post-service/pkg/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// abortWithError writes an ErrorResponse with the given status
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		StatusCode: status,
		Error:      http.StatusText(status),
		Message:    message,
	})
}

// handleError converts usecase errors to HTTP responses
func handleError(c *gin.Context, log *zap.Logger, err error) {
	status := pkgerrors.StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
		abortWithError(c, status, "Internal server error")
		return
	}
	abortWithError(c, status, err.Error())
}

// parseID reads a numeric path or query value. It writes the 400 response
// itself and reports false when the value is not an integer.
func parseID(c *gin.Context, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation failed (numeric string is expected)")
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body into dst. An empty body leaves dst at
// its zero value.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
