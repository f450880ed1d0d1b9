package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
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

// QueryError reports a failed read. Views treat it passively: the previous
// data stays on screen with an error flag.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// MutationError reports a failed write. Views surface it as a blocking
// notification.
type MutationError struct {
	Op  string
	Err error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("mutation %s: %v", e.Op, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

// AuthError is a sign-in, sign-up or reset failure. Message is shown to the
// user verbatim.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

// Unwrap returns the underlying cause, or ErrUnauthorized if none was given.
func (e *AuthError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnauthorized
}

// NewAuthError creates an AuthError with the given user-facing message.
func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

// QueryFailed wraps err as a QueryError unless it is nil or already one.
func QueryFailed(op string, err error) error {
	if err == nil {
		return nil
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return err
	}
	return &QueryError{Op: op, Err: err}
}

// MutationFailed wraps err as a MutationError unless it is nil or already one.
func MutationFailed(op string, err error) error {
	if err == nil {
		return nil
	}
	var me *MutationError
	if errors.As(err, &me) {
		return err
	}
	return &MutationError{Op: op, Err: err}
}
