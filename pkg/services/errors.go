package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized is returned when an API key is missing, unknown, or inactive
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited is returned when a key exceeds its per-minute request budget
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrQuotaExceeded is returned when an account is over its monthly token cap
	ErrQuotaExceeded = errors.New("quota_exceeded")

	// ErrForbidden is returned when a caller asks for a resource owned by
	// another account
	ErrForbidden = errors.New("forbidden")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
