package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	inputDirName   = "svg"
	inputDirPrefix = "svg_"
	outputDirName  = "ico"
)

// InputDirs resolves the directories to convert. An explicit list wins;
// otherwise every directory under BaseDir named "svg" or "svg_*" minus
// the exclusions, in lexicographic order, falling back to BaseDir/svg
// when nothing matches.
func (c *Config) InputDirs() ([]string, error) {
	if len(c.InputFolders) > 0 {
		dirs := make([]string, 0, len(c.InputFolders))
		for _, folder := range c.InputFolders {
			dirs = append(dirs, c.resolve(folder))
		}
		return dirs, nil
	}

	entries, readErr := os.ReadDir(c.BaseDir)
	if readErr != nil {
		return nil, NewConfigError("discover inputs", CodeIOErr, c.BaseDir, readErr)
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name != inputDirName && !strings.HasPrefix(name, inputDirPrefix) {
			continue
		}
		if c.excluded(name) {
			continue
		}
		dirs = append(dirs, filepath.Join(c.BaseDir, name))
	}

	if len(dirs) == 0 {
		dirs = []string{filepath.Join(c.BaseDir, inputDirName)}
	}
	return dirs, nil
}

// OutputDirFor returns the output directory for one input folder. With
// folder mapping on, the input folder's name with its first "svg"
// replaced by "ico"; otherwise the fixed "ico" subdirectory of the
// output root.
func (c *Config) OutputDirFor(inputDir string) string {
	if !c.FolderMapping {
		return filepath.Join(c.OutputRoot, outputDirName)
	}
	mapped := strings.Replace(filepath.Base(inputDir), inputDirName, outputDirName, 1)
	return filepath.Join(c.OutputRoot, mapped)
}

func (c *Config) excluded(name string) bool {
	for _, excluded := range c.ExcludeFolders {
		if name == excluded {
			return true
		}
	}
	return false
}
