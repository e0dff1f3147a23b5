package domain

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrFieldRequired indicates a settings field was left empty
	ErrFieldRequired = errors.New("value is required")

	// ErrFieldNotDigits indicates a settings field contains something other than 0-9
	ErrFieldNotDigits = errors.New("digits only")

	// ErrFieldOutOfRange indicates a settings field does not fit in an int
	ErrFieldOutOfRange = errors.New("value is too large")

	// ErrJournalClosed indicates the cycle journal was used after Close
	ErrJournalClosed = errors.New("cycle journal is closed")
)

// Field names a settings form input
type Field string

const (
	FieldMinutes Field = "minutes"
	FieldSeconds Field = "seconds"
)

// ValidationError collects per-field failures of a settings submission.
// Each field is validated independently, so both may be present.
type ValidationError struct {
	Fields map[Field]error
}

// Add records err against field
func (e *ValidationError) Add(field Field, err error) {
	if e.Fields == nil {
		e.Fields = make(map[Field]error)
	}
	e.Fields[field] = err
}

// Field returns the error for one field, or nil
func (e *ValidationError) Field(field Field) error {
	if e == nil {
		return nil
	}
	return e.Fields[field]
}

// Empty reports whether no field failed
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, string(f))
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + e.Fields[Field(name)].Error()
	}
	return "invalid settings: " + strings.Join(parts, "; ")
}

// Unwrap exposes the field errors to errors.Is
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields))
	for _, err := range e.Fields {
		errs = append(errs, err)
	}
	return errs
}
