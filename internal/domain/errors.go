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
	ErrMarkup        = errors.New("markup error")
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
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
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

// MarkupError reports malformed author-supplied structured-data markup,
// such as an extra-JSON payload that does not parse or is not an object.
// Rendering stops on the first one; there are no partial documents.
type MarkupError struct {
	Field   string
	Message string
	Err     error
}

func (e *MarkupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("markup: %s — %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("markup: %s — %s", e.Field, e.Message)
}

func (e *MarkupError) Unwrap() error { return ErrMarkup }

// NewMarkupError creates a MarkupError for a single field. err may be nil
// when the payload parsed but had the wrong shape.
func NewMarkupError(field, message string, err error) *MarkupError {
	return &MarkupError{Field: field, Message: message, Err: err}
}
