// Package config resolves the tool's run configuration. Built-in
// defaults come first, an optional JSON file beside the base directory
// overrides them, and the command layer applies flag values on top.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/joffroy59/icoforge/pkg/icon"
)

// FileName is the configuration file looked up beside the base directory.
const FileName = "icoforge.json"

const (
	defaultOutputRoot = "../Folder-Ico"
	defaultJobs       = 1
)

var (
	defaultSizes       = []int{16, 32, 48, 64, 256}
	defaultExclusions  = []string{"svg_original"}
	defaultSyncTargets = []string{"../Folder11", "../Folder-Ico"}
)

// Config is the resolved run configuration. BaseDir anchors every
// relative path in it.
type Config struct {
	// BaseDir is the directory discovery and relative paths resolve against
	BaseDir string
	// Sizes are the container resolutions to render, ascending
	Sizes icon.SizeSet
	// InputFolders lists explicit input directories; empty enables discovery
	InputFolders []string
	// ExcludeFolders are directory names skipped during discovery
	ExcludeFolders []string
	// OutputRoot is the directory output folders are created under
	OutputRoot string
	// FolderMapping derives each output folder name from its input folder
	FolderMapping bool
	// SyncTargets are the repositories synchronized after conversion
	SyncTargets []string
	// Jobs caps concurrent icon conversions
	Jobs int
}

// fileSettings is the JSON shape of the configuration file. Absent
// fields keep their defaults; present-but-empty lists clear them.
type fileSettings struct {
	Sizes          []int    `json:"sizes"`
	InputFolders   []string `json:"input_folders"`
	ExcludeFolders []string `json:"exclude_folders"`
	OutputRoot     string   `json:"output_root"`
	FolderMapping  *bool    `json:"folder_mapping"`
	SyncTargets    []string `json:"sync_targets"`
	Jobs           int      `json:"jobs"`
}

// Default returns the built-in configuration anchored at baseDir.
func Default(baseDir string) *Config {
	sizes, _ := icon.NewSizeSet(defaultSizes...)
	return &Config{
		BaseDir:        baseDir,
		Sizes:          sizes,
		ExcludeFolders: append([]string(nil), defaultExclusions...),
		OutputRoot:     filepath.Join(baseDir, defaultOutputRoot),
		FolderMapping:  true,
		SyncTargets:    append([]string(nil), defaultSyncTargets...),
		Jobs:           defaultJobs,
	}
}

// Load resolves the configuration for baseDir. With explicitPath empty
// the default file beside baseDir is merged when it exists; an explicit
// path must exist.
func Load(baseDir, explicitPath string) (*Config, error) {
	cfg := Default(baseDir)

	path := explicitPath
	required := explicitPath != ""
	if path == "" {
		path = filepath.Join(baseDir, FileName)
	}

	data, readErr := os.ReadFile(path)
	switch {
	case readErr == nil:
	case errors.Is(readErr, os.ErrNotExist) && !required:
		return cfg, nil
	case errors.Is(readErr, os.ErrNotExist):
		return nil, NewConfigError("read", CodeNotFoundErr, path, readErr)
	default:
		return nil, NewConfigError("read", CodeIOErr, path, readErr)
	}

	var settings fileSettings
	if jsonErr := json.Unmarshal(data, &settings); jsonErr != nil {
		return nil, NewConfigError("parse", CodeInvalidFormatErr, path, jsonErr)
	}
	if applyErr := cfg.apply(settings, path); applyErr != nil {
		return nil, applyErr
	}
	return cfg, nil
}

func (c *Config) apply(s fileSettings, path string) error {
	if len(s.Sizes) > 0 {
		sizes, sizeErr := icon.NewSizeSet(s.Sizes...)
		if sizeErr != nil {
			return NewConfigError("validate sizes", CodeInvalidValueErr, path, sizeErr)
		}
		c.Sizes = sizes
	}
	if len(s.InputFolders) > 0 {
		c.InputFolders = s.InputFolders
	}
	if s.ExcludeFolders != nil {
		c.ExcludeFolders = s.ExcludeFolders
	}
	if s.OutputRoot != "" {
		c.OutputRoot = c.resolve(s.OutputRoot)
	}
	if s.FolderMapping != nil {
		c.FolderMapping = *s.FolderMapping
	}
	if s.SyncTargets != nil {
		c.SyncTargets = s.SyncTargets
	}
	if s.Jobs < 0 {
		return NewConfigError("validate jobs", CodeInvalidValueErr, path,
			errors.New("jobs must not be negative"))
	}
	if s.Jobs > 0 {
		c.Jobs = s.Jobs
	}
	return nil
}

// SyncDirs returns the sync targets resolved against BaseDir.
func (c *Config) SyncDirs() []string {
	dirs := make([]string, 0, len(c.SyncTargets))
	for _, target := range c.SyncTargets {
		dirs = append(dirs, c.resolve(target))
	}
	return dirs
}

// resolve anchors a relative path at BaseDir and cleans it.
func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(c.BaseDir, p))
}
