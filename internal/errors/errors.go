// Package errors defines the error taxonomy for the boolean index engine:
// typed, contextual errors for the phases of build, persistence, and query.
package errors

import (
	"fmt"
	"time"
)

// ErrorType classifies the phase in which an error originated.
type ErrorType string

const (
	// ErrorTypeSource marks a failure reading or extracting the input corpus.
	ErrorTypeSource ErrorType = "source"
	// ErrorTypeIndex marks a failure building, writing, or reading the
	// persistent binary index.
	ErrorTypeIndex ErrorType = "index"
	// ErrorTypeQuery is reserved for completeness; per the query syntax
	// contract (unbalanced parens and unknown operators recover silently)
	// the parser never constructs one.
	ErrorTypeQuery ErrorType = "query"
	// ErrorTypeConfig marks a failure loading or validating configuration.
	ErrorTypeConfig ErrorType = "config"
)

// SourceError represents a failure reading or extracting the input corpus.
type SourceError struct {
	Operation  string
	Path       string
	Underlying error
	Timestamp  time.Time
}

// NewSourceError creates a new source error with context.
func NewSourceError(op, path string, err error) *SourceError {
	return &SourceError{
		Operation:  op,
		Path:       path,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("source %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
	}
	return fmt.Sprintf("source %s failed: %v", e.Operation, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *SourceError) Unwrap() error {
	return e.Underlying
}

// IndexError represents a failure building, writing, or reading the
// persistent binary index.
type IndexError struct {
	Operation  string
	Path       string
	Underlying error
	Timestamp  time.Time
}

// NewIndexError creates a new index error with context.
func NewIndexError(op, path string, err error) *IndexError {
	return &IndexError{
		Operation:  op,
		Path:       path,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("index %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
	}
	return fmt.Sprintf("index %s failed: %v", e.Operation, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *IndexError) Unwrap() error {
	return e.Underlying
}

// ConfigError represents a configuration load or validation failure.
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error.
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
	}
	return fmt.Sprintf("config error for field %s: %v", e.Field, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// MultiError aggregates multiple errors from a single operation, such as a
// batch build over several source files.
type MultiError struct {
	Errors []error
}

// NewMultiError creates a MultiError, dropping any nil entries.
func NewMultiError(errs []error) *MultiError {
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

// Error implements the error interface.
func (e *MultiError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	default:
		return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
	}
}

// Unwrap returns all wrapped errors.
func (e *MultiError) Unwrap() []error {
	return e.Errors
}
