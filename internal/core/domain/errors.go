package domain

import (
	"errors"
	"strings"
)

// Common domain errors
var (
	ErrItemNotFound    = errors.New("item not found")
	ErrRequestNotFound = errors.New("request not found")
	ErrItemUnavailable = errors.New("item not available")
)

// Request lifecycle errors
var (
	ErrInvalidRequestStatus = errors.New("invalid request status for this action")
)

// ValidationError aggregates every field violation from a single
// validation pass so the caller can fix all of them at once.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// NewValidationError builds a ValidationError from one or more violations
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// IsValidation reports whether err is a ValidationError and returns it
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
