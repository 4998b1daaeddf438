package pipeline

import (
	"context"

	"github.com/joffroy59/icoforge/pkg/gitrepo"
)

// Converter renders vector sources into rasters and packs them into
// containers. Satisfied by magick.Converter.
type Converter interface {
	Rasterize(ctx context.Context, source string, size int, out string) error
	Pack(ctx context.Context, rasters []string, out string) error
}

// Repo is the repository behavior the driver needs. Satisfied by
// gitrepo.Repository.
type Repo interface {
	Root() string
	ChangedPaths(ctx context.Context) (gitrepo.ChangeSet, error)
	WorkingTreeStatus(ctx context.Context) (gitrepo.Status, error)
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context) error
}

// RepoOpener locates the repository containing dir
type RepoOpener func(ctx context.Context, dir string) (Repo, error)

// IconFailure records one base icon that could not be converted
type IconFailure struct {
	// Base is the base icon file name
	Base string
	// Err is what went wrong
	Err error
}

// FolderReport summarizes the conversion of one input folder.
type FolderReport struct {
	// InputDir is the folder that was scanned
	InputDir string
	// OutputDir is where containers were written
	OutputDir string
	// BaseCount is the number of base icons discovered
	BaseCount int
	// Selected is the number of base icons after change filtering
	Selected int
	// Converted is the number of containers successfully written
	Converted int
	// Failures lists the base icons that failed
	Failures []IconFailure
	// Err is set when the folder could not be processed at all
	Err error
}

// SyncReport summarizes the synchronization of one repository.
type SyncReport struct {
	// Dir is the repository directory
	Dir string
	// Message is the commit message used, empty when nothing was committed
	Message string
	// Synced is true when a commit was pushed
	Synced bool
	// Clean is true when there was nothing to commit
	Clean bool
	// Err is set when a synchronization step failed
	Err error
}
