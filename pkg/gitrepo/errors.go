package gitrepo

import (
	"errors"
	"fmt"
)

// Common error variables for type checking with errors.Is()
var (
	// ErrNotARepository is returned when a directory is not inside a git working tree
	ErrNotARepository = errors.New("not a git repository")
)

// GitError represents a failed git invocation. It wraps the underlying
// process error with the subcommand, full argument list, and captured
// standard error output.
type GitError struct {
	// Op is the git subcommand that failed (e.g., "status", "push")
	Op string
	// Args is the full argument list passed to git
	Args []string
	// Stderr is the captured standard error output, trimmed
	Stderr string
	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *GitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s: %v: %s", e.Op, e.Err, e.Stderr)
	}
	return fmt.Sprintf("git %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *GitError) Unwrap() error {
	return e.Err
}

// NewGitError creates a new GitError
func NewGitError(op string, args []string, stderr string, err error) *GitError {
	return &GitError{
		Op:     op,
		Args:   args,
		Stderr: stderr,
		Err:    err,
	}
}
