package forms

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a field problem
type ErrorType int

const (
	// ErrTypeRequired indicates a required field was left empty
	ErrTypeRequired ErrorType = iota
	// ErrTypeFormat indicates the value does not match the expected shape
	ErrTypeFormat
	// ErrTypeLength indicates the value is too short or too long
	ErrTypeLength
	// ErrTypeWarning indicates an advisory problem that does not block submission
	ErrTypeWarning
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeRequired:
		return "Required"
	case ErrTypeFormat:
		return "Invalid Format"
	case ErrTypeLength:
		return "Length"
	case ErrTypeWarning:
		return "Warning"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// FieldError describes a problem with a single form field
type FieldError struct {
	Type    ErrorType // Category of problem
	Field   string    // Field label as shown on screen (e.g. "Card Number")
	Message string    // Human-readable message
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewRequiredError creates an error for an empty required field
func NewRequiredError(field string) *FieldError {
	return &FieldError{Type: ErrTypeRequired, Field: field, Message: "is required"}
}

// NewFormatError creates an error for a malformed value
func NewFormatError(field, message string) *FieldError {
	return &FieldError{Type: ErrTypeFormat, Field: field, Message: message}
}

// NewLengthError creates an error for a value outside its length bounds
func NewLengthError(field, message string) *FieldError {
	return &FieldError{Type: ErrTypeLength, Field: field, Message: message}
}

// NewWarning creates an advisory, non-blocking field problem
func NewWarning(field, message string) *FieldError {
	return &FieldError{Type: ErrTypeWarning, Field: field, Message: message}
}

// IsValidationError checks if an error is a blocking field error
func IsValidationError(err error) bool {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Type != ErrTypeWarning
	}
	return false
}

// IsWarning checks if an error is an advisory field problem
func IsWarning(err error) bool {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Type == ErrTypeWarning
	}
	return false
}

// FieldOf returns the field label carried by err, or "" if err is not a FieldError
func FieldOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}
