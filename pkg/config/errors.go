package config

import (
	"fmt"

	"github.com/joffroy59/icoforge/pkg/common/err"
)

const (
	pkgName = "config"

	// Package-specific error codes
	CodeNotFoundErr      = err.CodeNotFound
	CodeInvalidFormatErr = err.CodeInvalidFormat
	CodeInvalidValueErr  = err.CodeInvalidValue
	CodeIOErr            = err.CodeIO
)

// ConfigError represents a configuration-related error with the file
// path it concerns.
type ConfigError struct {
	base *err.Error
	Path string
}

// NewConfigError creates a new ConfigError
func NewConfigError(op, code, path string, underlying error) *ConfigError {
	return &ConfigError{
		base: err.New(pkgName, code, op, "", underlying),
		Path: path,
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	msg := e.base.Error()
	if e.Path != "" {
		msg += fmt.Sprintf(" [path=%s]", e.Path)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.base
}

// IsNotFound returns true if the error carries the not-found code
func IsNotFound(e error) bool {
	return err.IsCode(e, CodeNotFoundErr)
}

// IsInvalidFormat returns true if the error carries the invalid-format code
func IsInvalidFormat(e error) bool {
	return err.IsCode(e, CodeInvalidFormatErr)
}

// IsInvalidValue returns true if the error carries the invalid-value code
func IsInvalidValue(e error) bool {
	return err.IsCode(e, CodeInvalidValueErr)
}
