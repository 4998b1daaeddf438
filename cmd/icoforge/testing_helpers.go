package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/joffroy59/icoforge/pkg/gitrepo"
	"github.com/joffroy59/icoforge/pkg/pipeline"
)

// TestHelper provides utilities for CLI command testing
type TestHelper struct {
	t       *testing.T
	baseDir string
}

// NewTestHelper creates a helper rooted in a fresh temp directory
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	return &TestHelper{
		t:       t,
		baseDir: t.TempDir(),
	}
}

// BaseDir returns the helper's root directory
func (th *TestHelper) BaseDir() string {
	return th.baseDir
}

// WriteFile creates a test file under the base directory, parent
// directories included
func (th *TestHelper) WriteFile(name, content string) string {
	th.t.Helper()

	path := filepath.Join(th.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		th.t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		th.t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteSVG creates a minimal vector source in the given folder
func (th *TestHelper) WriteSVG(folder, name string) string {
	th.t.Helper()

	return th.WriteFile(filepath.Join(folder, name),
		`<svg xmlns="http://www.w3.org/2000/svg"/>`)
}

// Chdir moves into the base directory and restores the previous one on
// cleanup. Commands anchor their configuration at os.Getwd(), which can
// differ from the temp path through symlinks, so the helper re-reads it.
func (th *TestHelper) Chdir() {
	th.t.Helper()

	orig, err := os.Getwd()
	if err != nil {
		th.t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(th.baseDir); err != nil {
		th.t.Fatalf("failed to chdir to %s: %v", th.baseDir, err)
	}
	th.t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			th.t.Errorf("failed to restore working directory: %v", err)
		}
	})

	resolved, err := os.Getwd()
	if err != nil {
		th.t.Fatalf("failed to get working directory: %v", err)
	}
	th.baseDir = resolved
}

// fakeConverter records conversion calls instead of invoking ImageMagick
type fakeConverter struct {
	mu         sync.Mutex
	rasterized map[string][]int
	packed     map[string][]string
}

func newFakeConverter() *fakeConverter {
	return &fakeConverter{
		rasterized: make(map[string][]int),
		packed:     make(map[string][]string),
	}
}

func (f *fakeConverter) Rasterize(ctx context.Context, source string, size int, out string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rasterized[source] = append(f.rasterized[source], size)
	return nil
}

func (f *fakeConverter) Pack(ctx context.Context, rasters []string, out string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.packed[out] = append([]string(nil), rasters...)
	return nil
}

// sizesFor returns the sizes rasterized from one source, ascending
func (f *fakeConverter) sizesFor(source string) []int {
	f.mu.Lock()
	defer f.mu.Unlock()

	sizes := append([]int(nil), f.rasterized[source]...)
	sort.Ints(sizes)
	return sizes
}

// packedOutputs returns every container path packed so far, sorted
func (f *fakeConverter) packedOutputs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	outs := make([]string, 0, len(f.packed))
	for out := range f.packed {
		outs = append(outs, out)
	}
	sort.Strings(outs)
	return outs
}

// fakeSyncRepo is an in-memory pipeline.Repo for sync command tests
type fakeSyncRepo struct {
	root    string
	status  gitrepo.Status
	pushErr error

	staged  bool
	commits []string
	pushes  int
}

func (f *fakeSyncRepo) Root() string { return f.root }

func (f *fakeSyncRepo) ChangedPaths(ctx context.Context) (gitrepo.ChangeSet, error) {
	return gitrepo.NewChangeSet(), nil
}

func (f *fakeSyncRepo) WorkingTreeStatus(ctx context.Context) (gitrepo.Status, error) {
	return f.status, nil
}

func (f *fakeSyncRepo) StageAll(ctx context.Context) error {
	f.staged = true
	return nil
}

func (f *fakeSyncRepo) Commit(ctx context.Context, message string) error {
	f.commits = append(f.commits, message)
	return nil
}

func (f *fakeSyncRepo) Push(ctx context.Context) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushes++
	return nil
}

// fakeOpener maps directories to fake repositories; unknown directories
// report no repository
func fakeOpener(repos map[string]*fakeSyncRepo) pipeline.RepoOpener {
	return func(ctx context.Context, dir string) (pipeline.Repo, error) {
		if repo, ok := repos[dir]; ok {
			return repo, nil
		}
		return nil, gitrepo.ErrNotARepository
	}
}
