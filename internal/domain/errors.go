package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks request values the engine refuses to compute on.
// Business outcomes like "no trucks available" are not errors; they are
// reported inside the result value.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError carries a stable, developer-facing message.
// The HTTP layer maps it to a 4xx; the engine never logs it.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string { return e.Msg }

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

func NewInvalidInput(msg string) error { return &InvalidInputError{Msg: msg} }

// Sentinel errors for customer record normalization failures.
var (
	ErrMissingName       = errors.New("name is required")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidPostalCode = errors.New("invalid postal code")
)

// ValidationError wraps a sentinel with the field that failed.
type ValidationError struct {
	Field   string
	Value   string
	Wrapped error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s (value=%q)", e.Wrapped, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Wrapped }

func NewValidationError(field, value string, wrapped error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Wrapped: wrapped}
}
