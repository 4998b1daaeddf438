// Package pipeline orchestrates the conversion flow: scan an input
// folder, classify its vector sources, optionally restrict to changed
// icons, resolve each base icon's render plan, rasterize and pack it,
// then synchronize the configured repositories.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/joffroy59/icoforge/pkg/common/logger"
	"github.com/joffroy59/icoforge/pkg/config"
	"github.com/joffroy59/icoforge/pkg/gitrepo"
	"github.com/joffroy59/icoforge/pkg/icon"
	"github.com/joffroy59/icoforge/pkg/magick"
)

const tempDirName = "temp_pngs"

// Driver runs the conversion pipeline for a resolved configuration.
// Folders are processed sequentially; icons within a folder run on a
// worker pool capped at the configured job count. One icon failing
// never stops the others.
type Driver struct {
	cfg          *config.Config
	converter    Converter
	openRepo     RepoOpener
	outputDir    string
	showProgress bool
	logger       *slog.Logger
}

// Option configures a Driver
type Option func(*Driver)

// WithConverter replaces the image converter, used by tests
func WithConverter(c Converter) Option {
	return func(d *Driver) {
		d.converter = c
	}
}

// WithRepoOpener replaces the repository opener, used by tests
func WithRepoOpener(open RepoOpener) Option {
	return func(d *Driver) {
		d.openRepo = open
	}
}

// WithOutputDir forces every folder's output into one directory,
// bypassing the configured folder mapping
func WithOutputDir(dir string) Option {
	return func(d *Driver) {
		d.outputDir = dir
	}
}

// WithProgress enables the terminal progress bar
func WithProgress(show bool) Option {
	return func(d *Driver) {
		d.showProgress = show
	}
}

// New creates a Driver for the configuration
func New(cfg *config.Config, opts ...Option) *Driver {
	d := &Driver{
		cfg:       cfg,
		converter: magick.NewConverter(),
		openRepo:  openGitRepo,
		logger:    logger.With("component", "pipeline"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func openGitRepo(ctx context.Context, dir string) (Repo, error) {
	repo, err := gitrepo.Open(ctx, dir)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// ConvertAll processes every resolved input folder in order. A folder
// failing outright is recorded in its report and the remaining folders
// still run.
func (d *Driver) ConvertAll(ctx context.Context, incremental bool) ([]FolderReport, error) {
	inputs, err := d.cfg.InputDirs()
	if err != nil {
		return nil, err
	}

	reports := make([]FolderReport, 0, len(inputs))
	for _, inputDir := range inputs {
		outputDir := d.outputDir
		if outputDir == "" {
			outputDir = d.cfg.OutputDirFor(inputDir)
		}

		report := d.ConvertFolder(ctx, inputDir, outputDir, incremental)
		if report.Err != nil {
			d.logger.Warn("folder failed", "dir", inputDir, "error", report.Err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// ConvertFolder converts one input folder into outputDir. Failures of
// individual icons land in the report; Err is set only when the folder
// itself could not be processed.
func (d *Driver) ConvertFolder(ctx context.Context, inputDir, outputDir string, incremental bool) FolderReport {
	report := FolderReport{InputDir: inputDir, OutputDir: outputDir}

	names, err := listFileNames(inputDir)
	if err != nil {
		report.Err = fmt.Errorf("scan %s: %w", inputDir, err)
		return report
	}

	baseFiles, overrides := icon.Classify(names)
	report.BaseCount = len(baseFiles)
	d.logger.Info("classified sources",
		"dir", inputDir, "base", len(baseFiles), "overrides", len(overrides))

	if incremental {
		baseFiles = d.filterChanged(ctx, inputDir, baseFiles, overrides)
	}
	report.Selected = len(baseFiles)

	if len(baseFiles) == 0 {
		return report
	}

	tempDir := filepath.Join(d.cfg.BaseDir, tempDirName)
	for _, dir := range []string{tempDir, outputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			report.Err = fmt.Errorf("create %s: %w", dir, err)
			return report
		}
	}

	var bar *progressbar.ProgressBar
	if d.showProgress {
		bar = progressbar.Default(int64(len(baseFiles)), "converting")
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Jobs)
	for _, base := range baseFiles {
		base := base // shadow: per-iteration copy for the goroutine (pre-1.22 loopvar)
		g.Go(func() error {
			convErr := d.convertIcon(gctx, inputDir, outputDir, tempDir, base, overrides)

			mu.Lock()
			if convErr != nil {
				d.logger.Error("icon failed", "base", base.Name, "error", convErr)
				report.Failures = append(report.Failures, IconFailure{Base: base.Name, Err: convErr})
			} else {
				report.Converted++
			}
			mu.Unlock()

			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return report
}

// PlanFolder computes the render plans for one folder without touching
// the converter.
func (d *Driver) PlanFolder(ctx context.Context, inputDir string, incremental bool) ([]icon.RenderPlan, error) {
	names, err := listFileNames(inputDir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", inputDir, err)
	}

	baseFiles, overrides := icon.Classify(names)
	if incremental {
		baseFiles = d.filterChanged(ctx, inputDir, baseFiles, overrides)
	}

	plans := make([]icon.RenderPlan, 0, len(baseFiles))
	for _, base := range baseFiles {
		plan, err := icon.Resolve(base, overrides, d.cfg.Sizes, inputDir)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// filterChanged restricts baseFiles to icons whose sources changed. Any
// repository failure degrades to converting everything.
func (d *Driver) filterChanged(ctx context.Context, inputDir string, baseFiles, overrides []icon.SourceFile) []icon.SourceFile {
	repo, err := d.openRepo(ctx, inputDir)
	if err != nil {
		d.logger.Warn("change filter unavailable, converting everything",
			"dir", inputDir, "error", err)
		return baseFiles
	}

	changed, err := repo.ChangedPaths(ctx)
	if err != nil {
		d.logger.Warn("change filter unavailable, converting everything",
			"dir", inputDir, "error", err)
		return baseFiles
	}

	kept := icon.FilterChanged(baseFiles, overrides, changed, inputDir, d.cfg.Sizes)
	d.logger.Info("change filter applied",
		"dir", inputDir, "kept", len(kept), "of", len(baseFiles))
	return kept
}

// convertIcon resolves one base icon and drives the two conversion
// stages: one raster per requested size, then a single pack. Rasters
// are named <stem>-<index>.png by ascending size index.
func (d *Driver) convertIcon(ctx context.Context, inputDir, outputDir, tempDir string, base icon.SourceFile, overrides []icon.SourceFile) error {
	plan, err := icon.Resolve(base, overrides, d.cfg.Sizes, inputDir)
	if err != nil {
		return err
	}

	rasters := make([]string, 0, len(d.cfg.Sizes))
	for _, entry := range plan.Entries {
		for _, size := range entry.Sizes {
			raster := filepath.Join(tempDir, fmt.Sprintf("%s-%d.png", base.Stem(), len(rasters)))
			if err := d.converter.Rasterize(ctx, entry.Source, size, raster); err != nil {
				return err
			}
			rasters = append(rasters, raster)
		}
	}

	target := filepath.Join(outputDir, base.Stem()+icon.ContainerExt)
	if err := d.converter.Pack(ctx, rasters, target); err != nil {
		return err
	}

	d.logger.Debug("icon converted", "base", base.Name, "target", target)
	return nil
}

func listFileNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
