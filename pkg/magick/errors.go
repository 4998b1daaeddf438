package magick

import (
	"errors"
	"fmt"
)

// Common error variables for type checking with errors.Is()
var (
	// ErrNoRasters is returned when packing is requested with no inputs
	ErrNoRasters = errors.New("no raster inputs to pack")
)

// Conversion stages reported in ToolError
const (
	StageRasterize = "rasterize"
	StagePack      = "pack"
)

// ToolError represents a failed image tool invocation. It carries the
// conversion stage, the file being produced or consumed, and the tool's
// standard error output.
type ToolError struct {
	// Stage is the conversion stage, StageRasterize or StagePack
	Stage string
	// Source is the input file for rasterize, the output file for pack
	Source string
	// Stderr is the captured standard error output, trimmed
	Stderr string
	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *ToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s %s: %v: %s", e.Stage, e.Source, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Source, e.Err)
}

// Unwrap returns the underlying error
func (e *ToolError) Unwrap() error {
	return e.Err
}

// NewToolError creates a new ToolError
func NewToolError(stage, source, stderr string, err error) *ToolError {
	return &ToolError{
		Stage:  stage,
		Source: source,
		Stderr: stderr,
		Err:    err,
	}
}
