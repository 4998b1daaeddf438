package gitrepo

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// Runner executes git with the given arguments in a working directory
// and returns its standard output. Implementations other than the real
// binary exist for tests.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

type execRunner struct{}

// NewRunner returns a Runner backed by the git binary on PATH.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", NewGitError(args[0], args, strings.TrimSpace(stderr.String()), err)
	}
	return stdout.String(), nil
}
