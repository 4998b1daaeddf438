package icon

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySizeSet indicates a size set with no entries was supplied
	ErrEmptySizeSet = errors.New("size set is empty")

	// ErrNonPositiveSize indicates a size that is not a positive integer
	ErrNonPositiveSize = errors.New("sizes must be positive integers")

	// ErrExhaustedCandidates indicates the resolver ran out of sources while
	// sizes remained unassigned. The base catch-all bounds the full set, so
	// this only happens when caller invariants are broken.
	ErrExhaustedCandidates = errors.New("exhausted candidates")
)

// ResolutionError reports a failed render-plan construction for one base icon
type ResolutionError struct {
	Base string // Base icon file name
	Err  error  // Underlying error
}

// Error implements the error interface
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s: %v", e.Base, e.Err)
}

// Unwrap returns the underlying error
func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// NewResolutionError creates a new ResolutionError
func NewResolutionError(base string, err error) error {
	return &ResolutionError{Base: base, Err: err}
}
