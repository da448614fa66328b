package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common application errors
var (
	ErrNotFound        = NewNotFoundError("resource", 0)
	ErrInvalidArgument = NewValidationError("", "invalid argument")
	ErrInternal        = NewInternalError("internal server error", nil)
)

// HTTPStatuser is implemented by errors that know which HTTP status they map to.
type HTTPStatuser interface {
	HTTPStatus() int
}

// ValidationError represents a malformed request with optional field-level detail
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// HTTPStatus returns the HTTP status for this error
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// NotFoundError is returned when no entity with the given id exists.
type NotFoundError struct {
	Resource string
	ID       int64
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, id int64) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// HTTPStatus returns the HTTP status for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// Is lets errors.Is(err, ErrNotFound) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status for this error
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StatusOf returns the HTTP status carried by err, or 500 when none is.
func StatusOf(err error) int {
	var s HTTPStatuser
	if errors.As(err, &s) {
		return s.HTTPStatus()
	}
	return http.StatusInternalServerError
}
