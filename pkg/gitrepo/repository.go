package gitrepo

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/joffroy59/icoforge/pkg/common/logger"
)

// Repository runs git operations against one working tree. The root is
// resolved once at open time. Read queries execute at the root so their
// paths resolve consistently; write operations execute in the opened
// directory, which scopes staging to that subtree when the repository
// root lies above it.
//
// Repository is safe for concurrent use: it holds no mutable state and
// each operation is a single git invocation.
type Repository struct {
	root    string
	workDir string
	runner  Runner
	logger  *slog.Logger
}

// Option configures a Repository during Open
type Option func(*Repository)

// WithRunner replaces the git process runner, used by tests
func WithRunner(r Runner) Option {
	return func(repo *Repository) {
		repo.runner = r
	}
}

// Open locates the repository containing dir by asking git for the
// working tree root. A directory outside any working tree yields an
// error matching ErrNotARepository.
func Open(ctx context.Context, dir string, opts ...Option) (*Repository, error) {
	repo := &Repository{
		runner: NewRunner(),
		logger: logger.With("component", "gitrepo"),
	}
	for _, opt := range opts {
		opt(repo)
	}

	out, err := repo.runner.Run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	repo.root = strings.TrimSpace(out)
	repo.workDir = dir
	repo.logger.Debug("repository opened", "root", repo.root, "dir", dir)
	return repo, nil
}

// Root returns the absolute path of the working tree root
func (r *Repository) Root() string {
	return r.root
}

// ChangedPaths returns every path that differs from the last commit:
// unstaged edits, staged edits, and untracked files. The three queries
// run concurrently. Returned paths are joined to the repository root
// and cleaned.
func (r *Repository) ChangedPaths(ctx context.Context) (ChangeSet, error) {
	queries := [][]string{
		{"diff", "--name-only"},
		{"diff", "--name-only", "--cached"},
		{"ls-files", "--others", "--exclude-standard"},
	}

	results := make([][]string, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	for i, args := range queries {
		i, args := i, args // shadow: per-iteration copies for the goroutine (pre-1.22 loopvar)
		g.Go(func() error {
			out, err := r.runner.Run(ctx, r.root, args...)
			if err != nil {
				return fmt.Errorf("list changes (%s): %w", strings.Join(args, " "), err)
			}
			results[i] = splitLines(out)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := make(ChangeSet)
	for _, lines := range results {
		for _, line := range lines {
			set.Add(filepath.Clean(filepath.Join(r.root, line)))
		}
	}
	r.logger.Debug("collected changed paths", "count", set.Len())
	return set, nil
}

// WorkingTreeStatus returns the parsed short-format status of the
// working tree.
func (r *Repository) WorkingTreeStatus(ctx context.Context) (Status, error) {
	out, err := r.runner.Run(ctx, r.workDir, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("working tree status: %w", err)
	}
	return ParseStatus(out), nil
}

// StageAll stages every change under the opened directory
func (r *Repository) StageAll(ctx context.Context) error {
	if _, err := r.runner.Run(ctx, r.workDir, "add", "."); err != nil {
		return fmt.Errorf("stage changes: %w", err)
	}
	return nil
}

// Commit records the staged changes with the given message
func (r *Repository) Commit(ctx context.Context, message string) error {
	if _, err := r.runner.Run(ctx, r.workDir, "commit", "-m", message); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Push pushes the current branch to its upstream
func (r *Repository) Push(ctx context.Context) error {
	if _, err := r.runner.Run(ctx, r.workDir, "push"); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
