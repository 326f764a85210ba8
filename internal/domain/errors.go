package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers. Callers match them with errors.Is;
// the kind must survive every wrapping layer up to the transport.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// Change-control outcomes.
	ErrAlreadyDecided  = errors.New("change already decided")
	ErrStaleChange     = errors.New("entity changed since proposal")
	ErrPolicyViolation = errors.New("policy violation")

	// Alert lifecycle.
	ErrAlreadyResolved = errors.New("alert already resolved")

	// ErrStorageUnavailable is transient; the whole operation may be retried.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrApply means an approved mutation could not be materialised even though
	// validation passed. It signals a lost invariant and is never retried.
	ErrApply = errors.New("apply failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// PolicyError explains which segregation-of-duties rule a decision broke.
type PolicyError struct {
	Rule   string
	Reason string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("policy %s: %s", e.Rule, e.Reason)
}

func (e *PolicyError) Unwrap() error { return ErrPolicyViolation }
