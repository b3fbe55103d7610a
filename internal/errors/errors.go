// Package errors provides a lightweight structured error type
// (PunchClockError) for category-based classification in the CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a punchclock error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Punch-log storage errors
	CategoryStorage ErrorCategory = "storage"
	CategoryParse   ErrorCategory = "parse"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// PunchClockError is a structured error with category, severity, and context
type PunchClockError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for PunchClockError
type ContextFields map[string]any

// Error implements the error interface
func (e *PunchClockError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *PunchClockError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *PunchClockError) WithContext(key string, value any) *PunchClockError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new PunchClockError
func New(category ErrorCategory, severity ErrorSeverity, message string) *PunchClockError {
	return &PunchClockError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new PunchClockError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *PunchClockError {
	return &PunchClockError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if pce, ok := err.(*PunchClockError); ok {
		return pce.Category == category
	}
	return false
}
