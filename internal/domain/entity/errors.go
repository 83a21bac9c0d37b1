package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrTypeMismatch indicates that a reference does not resolve to an entity of the required kind
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrOutOfRange indicates that a string value violates a length or non-emptiness constraint
	ErrOutOfRange = errors.New("value out of range")
)

// Kind classifies a ValidationError.
type Kind int

const (
	// KindRange is a length or non-emptiness violation.
	KindRange Kind = iota
	// KindType is a reference to something other than the required entity kind.
	KindType
)

// String returns the label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindRange:
		return "range"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and unwraps to ErrTypeMismatch or ErrOutOfRange
// depending on its Kind.
type ValidationError struct {
	Field   string
	Kind    Kind
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap returns the sentinel matching the error kind.
func (e *ValidationError) Unwrap() error {
	if e.Kind == KindType {
		return ErrTypeMismatch
	}
	return ErrOutOfRange
}

func rangeError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Kind: KindRange, Message: message}
}

// TypeError builds a KindType ValidationError for field.
func TypeError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Kind: KindType, Message: message}
}
