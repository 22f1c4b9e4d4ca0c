package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation error")
	ErrConflict         = errors.New("conflict")
)

// ErrRoleMismatch is returned by login when the credentials are valid but
// the requested role differs from the stored one. It wraps
// ErrNotAuthenticated so transports treat it as an authentication failure.
var ErrRoleMismatch = fmt.Errorf("%w: role mismatch", ErrNotAuthenticated)

// Messages shared by request and entity validation.
const (
	MsgRequired = "is required"
	MsgNotEmpty = "must not be empty"
)

// ValidationError reports the first field that failed validation.
// Validation is fail-fast: callers stop at the first failing field, so a
// single field and message are carried. Use errors.Is(err, ErrValidation)
// for simple checks, or errors.As(err, &verr) for the field details.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Message)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation.Error(), e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
