package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/joffroy59/icoforge/cmd/ui"
	"github.com/joffroy59/icoforge/pkg/config"
	"github.com/joffroy59/icoforge/pkg/icon"
	"github.com/joffroy59/icoforge/pkg/pipeline"
)

// loadConfig resolves the run configuration anchored at the current
// directory, merging the config file when present
func loadConfig(configPath string) (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.Load(cwd, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// applySizes overrides the configured sizes from a flag value. Blank
// keeps the configuration.
func applySizes(cfg *config.Config, value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	sizes, err := icon.ParseSizeSet(value)
	if err != nil {
		return fmt.Errorf("invalid sizes %q: %w", value, err)
	}
	cfg.Sizes = sizes
	return nil
}

// applyStrict pins the input to exactly one folder that must already
// exist as a directory.
func applyStrict(cfg *config.Config, dir string) error {
	resolved := dir
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(cfg.BaseDir, resolved)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fmt.Errorf("strict input folder %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("strict input folder %q is not a directory", dir)
	}

	cfg.InputFolders = []string{dir}
	return nil
}

// promptForRun interactively confirms the run settings. A blank answer
// keeps the current value.
func promptForRun(cfg *config.Config, output *string) error {
	inputDefault := ""
	if len(cfg.InputFolders) > 0 {
		inputDefault = cfg.InputFolders[0]
	}
	inputDir, err := promptString("Input folder (blank discovers svg folders)", inputDefault)
	if err != nil {
		return err
	}
	if strings.TrimSpace(inputDir) != "" {
		cfg.InputFolders = []string{inputDir}
	}

	outputDir, err := promptString("Output folder (blank keeps folder mapping)", *output)
	if err != nil {
		return err
	}
	if strings.TrimSpace(outputDir) != "" {
		*output = outputDir
	}

	sizeValue, err := promptSizes("Output sizes", cfg.Sizes.String())
	if err != nil {
		return err
	}
	if strings.TrimSpace(sizeValue) != "" {
		sizes, parseErr := icon.ParseSizeSet(sizeValue)
		if parseErr != nil {
			return fmt.Errorf("invalid sizes %q: %w", sizeValue, parseErr)
		}
		cfg.Sizes = sizes
	}
	return nil
}

func promptString(label, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   defaultValue,
		AllowEdit: true,
	}

	value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt aborted: %w", err)
	}
	return value, nil
}

func promptSizes(label, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   defaultValue,
		AllowEdit: true,
		Validate:  validateSizes,
	}

	value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt aborted: %w", err)
	}
	return value, nil
}

// validateSizes accepts a blank answer or a space-separated list of
// positive integers
func validateSizes(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	_, err := icon.ParseSizeSet(input)
	return err
}

// displaySyncReports prints one line per repository and returns how
// many of them failed
func displaySyncReports(reports []pipeline.SyncReport) int {
	fmt.Println(ui.Header(" Repository Sync "))

	failed := 0
	for _, report := range reports {
		switch {
		case report.Err != nil:
			failed++
			fmt.Println(ui.FormatSyncFailed(report.Dir, report.Err))
		case report.Clean:
			fmt.Println(ui.FormatSyncClean(report.Dir))
		default:
			fmt.Println(ui.FormatSynced(report.Dir, report.Message))
		}
	}
	return failed
}
