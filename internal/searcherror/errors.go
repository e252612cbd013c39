// Package searcherror defines the error types returned when loading and
// querying proposal data.
package searcherror

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput marks a taxonomy or tabular source with an unexpected shape.
	ErrMalformedInput = errors.New("malformed input")
	// ErrMissingField marks a field name that is not part of the proposal schema.
	ErrMissingField = errors.New("missing field")
	// ErrUnknownFilter marks a structured filter key that is not recognized.
	ErrUnknownFilter = errors.New("unknown filter")
)

// MalformedInputError represents a source that does not match the expected shape.
type MalformedInputError struct {
	Source string
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed input in %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed input in %s: %s", e.Source, e.Reason)
}

// Is reports ErrMalformedInput so callers can use errors.Is.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// MissingFieldError represents a request for a field absent from the schema.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field '%s' does not exist in the proposal schema", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// UnknownFilterError represents a structured filter key outside the
// recognized set.
type UnknownFilterError struct {
	Key     string
	Allowed []string
}

func (e *UnknownFilterError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("unknown filter '%s'", e.Key)
	}
	return fmt.Sprintf("unknown filter '%s' (allowed: %v)", e.Key, e.Allowed)
}

func (e *UnknownFilterError) Is(target error) bool {
	return target == ErrUnknownFilter
}
