package client

import (
	"errors"
	"fmt"
)

// Messages used when the server gave nothing better.
const (
	MsgNoResponse = "No response from server. Please check your connection."
	MsgUnexpected = "An unexpected error occurred"
)

// APIError is the single error type returned by Client. Status is the HTTP
// status code, or 0 when no response was received.
type APIError struct {
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return e.Message
}

// HasStatus reports whether the server responded at all.
func (e *APIError) HasStatus() bool {
	return e.Status != 0
}

func statusError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("Request failed with status %d", status)
	}
	return &APIError{Message: message, Status: status}
}

func noResponseError() *APIError {
	return &APIError{Message: MsgNoResponse}
}

// unexpectedError covers failures before a request was sent or after a
// response could not be decoded.
func unexpectedError(err error) *APIError {
	if err == nil || err.Error() == "" {
		return &APIError{Message: MsgUnexpected}
	}
	return &APIError{Message: err.Error()}
}

// AsAPIError converts any error to an *APIError.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return unexpectedError(err)
}
