// Package err provides the shared base error type for the project.
//
// Packages that need more than a sentinel define their own error type
// embedding *err.Error and add domain fields:
//
//	type ConfigError struct {
//	    base *err.Error
//	    Path string
//	}
//
// Codes categorize failures so callers can branch without matching on
// message text:
//
//	if err.IsCode(e, err.CodeNotFound) {
//	    // fall back to defaults
//	}
//
// Codes follow the UPPER_SNAKE_CASE convention; packages may define
// additional codes beyond the shared constants.
package err
