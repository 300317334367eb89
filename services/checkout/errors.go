package checkout

import (
	"errors"
	"fmt"
	"strings"
)

// FieldErrorKind classifies a single field validation failure.
type FieldErrorKind string

const (
	Valid         FieldErrorKind = ""
	Missing       FieldErrorKind = "MISSING"
	InvalidFormat FieldErrorKind = "INVALID_FORMAT"
	InvalidLength FieldErrorKind = "INVALID_LENGTH"
	NotAgreed     FieldErrorKind = "NOT_AGREED"
)

// FieldError pairs a form field with its failure kind.
type FieldError struct {
	Field string         `json:"field"`
	Kind  FieldErrorKind `json:"kind"`
}

// ValidationError carries every failed field of a step submission, in the
// order the fields appear on the form. The session is left untouched when
// one of these is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s:%s", f.Field, f.Kind))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// StateError reports an operation invoked from a state that does not
// permit it, e.g. going back from the terminal state.
type StateError struct {
	Op    string
	State string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s not permitted in state %s", e.Op, e.State)
}

// IncompleteContextError means a later step was invoked before an earlier
// one completed. This is an integration defect, not a user error; handlers
// surface it as an internal error.
type IncompleteContextError struct {
	Detail string
}

func (e *IncompleteContextError) Error() string {
	return "incomplete booking context: " + e.Detail
}

var (
	// ErrTermsNotAccepted blocks the payment step before any card field is
	// evaluated.
	ErrTermsNotAccepted = errors.New("terms and conditions not accepted")

	// ErrInvalidDateRange is returned when check-out is not after check-in.
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")

	// ErrSessionNotFound is returned when a checkout session is unknown or
	// has expired from the cache.
	ErrSessionNotFound = errors.New("checkout session not found or expired")
)
