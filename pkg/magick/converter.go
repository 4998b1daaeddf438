// Package magick drives the ImageMagick CLI to render vector sources
// into raster artifacts and pack them into multi-resolution containers.
package magick

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/joffroy59/icoforge/pkg/common/logger"
)

const binaryName = "magick"

// Runner executes the image tool with the given arguments and returns
// its captured standard error output. Implementations other than the
// real binary exist for tests.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

type execRunner struct{}

// NewRunner returns a Runner backed by the magick binary on PATH.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, binaryName, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}

// Converter renders vector icons through the external image tool. Both
// operations are all-or-nothing: a non-zero exit means no trustworthy
// output was written.
type Converter struct {
	runner Runner
	logger *slog.Logger
}

// Option configures a Converter
type Option func(*Converter)

// WithRunner replaces the image tool runner, used by tests
func WithRunner(r Runner) Option {
	return func(c *Converter) {
		c.runner = r
	}
}

// NewConverter creates a Converter backed by the real image tool unless
// an option replaces it.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		runner: NewRunner(),
		logger: logger.With("component", "magick"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rasterize renders source onto a transparent background at size x size
// pixels, writing the raster to out.
func (c *Converter) Rasterize(ctx context.Context, source string, size int, out string) error {
	args := []string{
		"-background", "transparent",
		source,
		"-resize", fmt.Sprintf("%dx%d", size, size),
		out,
	}

	c.logger.Debug("rasterizing", "source", source, "size", size, "out", out)
	if stderr, err := c.runner.Run(ctx, args...); err != nil {
		return NewToolError(StageRasterize, source, stderr, err)
	}
	return nil
}

// Pack combines the rasters, in order, into one multi-resolution
// container written to out.
func (c *Converter) Pack(ctx context.Context, rasters []string, out string) error {
	if len(rasters) == 0 {
		return NewToolError(StagePack, out, "", ErrNoRasters)
	}

	args := []string{"-background", "transparent"}
	args = append(args, rasters...)
	args = append(args, out)

	c.logger.Debug("packing", "rasters", len(rasters), "out", out)
	if stderr, err := c.runner.Run(ctx, args...); err != nil {
		return NewToolError(StagePack, out, stderr, err)
	}
	return nil
}
