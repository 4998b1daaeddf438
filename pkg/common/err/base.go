package err

import (
	"errors"
	"strings"
)

// Error is the base error type shared across packages. It carries the
// originating package, a machine-readable code, the operation that
// failed, and an optional wrapped error.
//
// Package-specific errors embed this type and add their own fields;
// codes let callers categorize failures without matching on message
// text.
type Error struct {
	// Package identifies the originating package (e.g., "config")
	Package string

	// Code is a machine-readable error code for categorization.
	// Use the Code* constants below.
	Code string

	// Op is the operation being performed when the error occurred,
	// e.g., "read", "parse", "discover".
	Op string

	// Message provides brief human-readable context
	Message string

	// Err is the underlying wrapped error, nil for leaf errors
	Err error
}

// Error implements the error interface.
// Format: [package][code] operation: message: wrapped_error
func (e *Error) Error() string {
	var parts []string

	var prefix strings.Builder
	if e.Package != "" {
		prefix.WriteString("[")
		prefix.WriteString(e.Package)
		prefix.WriteString("]")
	}
	if e.Code != "" {
		prefix.WriteString("[")
		prefix.WriteString(e.Code)
		prefix.WriteString("]")
	}
	if prefix.Len() > 0 {
		parts = append(parts, prefix.String())
	}

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	result := strings.Join(parts, ": ")
	if e.Err != nil {
		if result != "" {
			result += ": " + e.Err.Error()
		} else {
			result = e.Err.Error()
		}
	}
	return result
}

// Unwrap returns the underlying error for errors.Is() and errors.As() support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables error matching by code for errors.Is() checks.
// Two errors match if they have the same non-empty code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// New creates a new base error with the specified fields.
func New(pkg, code, op, message string, err error) *Error {
	return &Error{
		Package: pkg,
		Code:    code,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Wrap wraps an error with package and operation context.
// Returns nil if err is nil.
func Wrap(err error, pkg, op string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Package: pkg,
		Op:      op,
		Err:     err,
	}
}

// Standard error codes shared across packages
const (
	// CodeNotFound indicates a requested file or key does not exist
	CodeNotFound = "NOT_FOUND"

	// CodeInvalidFormat indicates data could not be parsed
	CodeInvalidFormat = "INVALID_FORMAT"

	// CodeInvalidValue indicates a parsed value is out of range or malformed
	CodeInvalidValue = "INVALID_VALUE"

	// CodeIO indicates a filesystem operation failed
	CodeIO = "IO"
)

// IsCode checks if an error has a specific error code.
// Works with wrapped errors.
func IsCode(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error.
// Returns empty string if the error is not a base Error.
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
