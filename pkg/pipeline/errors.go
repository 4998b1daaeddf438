package pipeline

import (
	"fmt"
)

// SyncError represents a failed repository synchronization step.
type SyncError struct {
	// Repo is the directory of the repository being synchronized
	Repo string
	// Op is the step that failed: "open", "stage", "status", "commit", "push"
	Op string
	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s: %s: %v", e.Repo, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError
func NewSyncError(repo, op string, err error) *SyncError {
	return &SyncError{
		Repo: repo,
		Op:   op,
		Err:  err,
	}
}
