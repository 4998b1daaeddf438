package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/joffroy59/icoforge/cmd/ui"
	"github.com/joffroy59/icoforge/pkg/icon"
	"github.com/joffroy59/icoforge/pkg/pipeline"
)

func newPlanCmd() *cobra.Command {
	var (
		inputs     []string
		sizesFlag  string
		configPath string
		useTable   bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show which source services each output size",
		Long: `Resolve the render plan for every base icon without converting.
Each plan lists the vector sources that would be rasterized and the
output sizes every source covers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			if len(inputs) > 0 {
				cfg.InputFolders = inputs
			}
			if err := applySizes(cfg, sizesFlag); err != nil {
				return err
			}

			dirs, err := cfg.InputDirs()
			if err != nil {
				return err
			}

			ctx := context.Background()
			driver := pipeline.New(cfg)

			for _, dir := range dirs {
				plans, err := driver.PlanFolder(ctx, dir, false)
				if err != nil {
					return fmt.Errorf("failed to plan %s: %w", dir, err)
				}

				fmt.Println(ui.FolderInfo(dir, cfg.OutputDirFor(dir)))
				fmt.Println()

				if len(plans) == 0 {
					fmt.Println(ui.WarningMessage("no base icons found"))
					continue
				}

				if useTable {
					displayPlansAsTable(plans)
				} else {
					displayPlansDetailed(plans)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "Input folder to plan (repeatable; disables discovery)")
	cmd.Flags().StringVarP(&sizesFlag, "sizes", "s", "", "Space-separated output sizes, e.g. \"16 32 48 256\"")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration file")
	cmd.Flags().BoolVarP(&useTable, "table", "t", false, "Display plans in table format")

	return cmd
}

// displayPlansDetailed shows one box per base icon with a line per source
func displayPlansDetailed(plans []icon.RenderPlan) {
	for _, plan := range plans {
		info := ui.PlanInfo{Base: plan.Base.Name}
		for _, entry := range plan.Entries {
			info.Entries = append(info.Entries, ui.PlanEntryInfo{
				Source: filepath.Base(entry.Source),
				Sizes:  formatSizes(entry.Sizes),
			})
		}
		fmt.Println(ui.FormatPlanDetailed(info))
	}
}

// displayPlansAsTable shows one row per source assignment
func displayPlansAsTable(plans []icon.RenderPlan) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Icon", "Source", "Max", "Sizes")

	for _, plan := range plans {
		for _, entry := range plan.Entries {
			table.Append(
				ui.Yellow(plan.Base.Stem()),
				ui.Cyan(filepath.Base(entry.Source)),
				strconv.Itoa(entry.MaxSize),
				formatSizes(entry.Sizes),
			)
		}
	}

	table.Render()
}

func formatSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, size := range sizes {
		parts[i] = strconv.Itoa(size)
	}
	return strings.Join(parts, " ")
}
