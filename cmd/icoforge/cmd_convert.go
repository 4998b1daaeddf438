package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/joffroy59/icoforge/cmd/ui"
	"github.com/joffroy59/icoforge/pkg/pipeline"
)

func newConvertCmd(opts ...pipeline.Option) *cobra.Command {
	var (
		inputs     []string
		output     string
		sizesFlag  string
		ask        bool
		changed    bool
		strictDir  string
		jobs       int
		noSync     bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert SVG icon folders into multi-resolution ICO files",
		Long: `Convert every SVG icon folder into ICO containers.
Each base icon is rasterized once per requested size, picking a
size-tagged override (<name>-<N>px.svg) when one covers the size,
and the rasters are packed into a single <name>.ico file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			if len(inputs) > 0 {
				cfg.InputFolders = inputs
			}
			if strictDir != "" {
				if err := applyStrict(cfg, strictDir); err != nil {
					return err
				}
			}
			if err := applySizes(cfg, sizesFlag); err != nil {
				return err
			}
			if jobs > 0 {
				cfg.Jobs = jobs
			}
			if ask {
				if err := promptForRun(cfg, &output); err != nil {
					return err
				}
			}

			driverOpts := append([]pipeline.Option{pipeline.WithProgress(true)}, opts...)
			if output != "" {
				driverOpts = append(driverOpts, pipeline.WithOutputDir(output))
			}

			ctx := context.Background()
			driver := pipeline.New(cfg, driverOpts...)

			reports, err := driver.ConvertAll(ctx, changed)
			if err != nil {
				return fmt.Errorf("failed to convert: %w", err)
			}

			displayFolderReports(reports)

			if !noSync {
				displaySyncReports(driver.SyncAll(ctx, ""))
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "Input folder to convert (repeatable; disables discovery)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write every ICO into this folder instead of the mapped one")
	cmd.Flags().StringVarP(&sizesFlag, "sizes", "s", "", "Space-separated output sizes, e.g. \"16 32 48 256\"")
	cmd.Flags().BoolVar(&ask, "ask", false, "Interactively confirm input, output, and sizes")
	cmd.Flags().BoolVar(&changed, "changed", false, "Only convert icons whose sources changed in git")
	cmd.Flags().StringVar(&strictDir, "strict", "", "Convert exactly this folder; fail if it does not exist")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Concurrent icon conversions (default from config)")
	cmd.Flags().BoolVar(&noSync, "no-sync", false, "Skip repository synchronization after converting")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration file")

	return cmd
}

// displayFolderReports renders the per-folder summary table followed by
// any folder or icon failures
func displayFolderReports(reports []pipeline.FolderReport) {
	fmt.Println(ui.Header(" Conversion Results "))
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Folder", "Icons", "Selected", "Converted", "Failed")

	totalConverted := 0
	totalFailed := 0
	for _, report := range reports {
		failedCell := strconv.Itoa(len(report.Failures))
		if len(report.Failures) > 0 {
			failedCell = ui.Red(failedCell)
		}

		table.Append(
			filepath.Base(report.InputDir),
			strconv.Itoa(report.BaseCount),
			strconv.Itoa(report.Selected),
			ui.Green(strconv.Itoa(report.Converted)),
			failedCell,
		)

		totalConverted += report.Converted
		totalFailed += len(report.Failures)
	}
	table.Render()

	for _, report := range reports {
		if report.Err != nil {
			fmt.Println(ui.ErrorMessage(fmt.Sprintf("%s: %v", report.InputDir, report.Err)))
		}
		for _, failure := range report.Failures {
			fmt.Println(ui.FormatFailed(fmt.Sprintf("%s: %v", failure.Base, failure.Err)))
		}
	}

	fmt.Println()
	if totalFailed == 0 {
		fmt.Println(ui.SuccessMessage("conversion complete", fmt.Sprintf("%d icons", totalConverted)))
	} else {
		fmt.Println(ui.WarningMessage(fmt.Sprintf("conversion finished with %d failed icons", totalFailed)))
	}
}
