package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrIntegrity     = errors.New("data integrity violation")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
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

// WithPrefix returns a copy of e with every field path nested under prefix.
func (e *ValidationError) WithPrefix(prefix string) *ValidationError {
	out := make([]FieldError, len(e.Errors))
	for i, fe := range e.Errors {
		out[i] = FieldError{Field: JoinPath(prefix, fe.Field), Message: fe.Message}
	}
	return &ValidationError{Errors: out}
}

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

// JoinPath joins two field path segments. Index segments such as "[2]"
// attach without a dot.
func JoinPath(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "":
		return prefix
	case field[0] == '[':
		return prefix + field
	default:
		return prefix + "." + field
	}
}

// AuthorizationError is returned when a resource does not exist or the
// identity lacks the capability it needs. Both cases look the same to the
// caller.
type AuthorizationError struct {
	Scope     string
	ID        uuid.UUID
	Anonymous bool
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("not authorized: %s %s", e.Scope, e.ID)
}

func (e *AuthorizationError) Unwrap() error { return ErrForbidden }

// NewAuthorizationError creates an AuthorizationError for a scope.
func NewAuthorizationError(scope string, id uuid.UUID, identity Identity) *AuthorizationError {
	return &AuthorizationError{Scope: scope, ID: id, Anonymous: identity.IsAnonymous()}
}

// IntegrityError reports stored data that no longer satisfies its metric
// definition, such as a value that fails its kind's validator.
type IntegrityError struct {
	MetricID uuid.UUID
	Reason   string
	Err      error
}

func (e *IntegrityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("integrity: metric %s: %s: %v", e.MetricID, e.Reason, e.Err)
	}
	return fmt.Sprintf("integrity: metric %s: %s", e.MetricID, e.Reason)
}

func (e *IntegrityError) Unwrap() error { return ErrIntegrity }
