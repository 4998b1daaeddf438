package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joffroy59/icoforge/pkg/pipeline"
)

func newSyncCmd(opts ...pipeline.Option) *cobra.Command {
	var (
		message    string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "sync [ROOT...]",
		Short: "Stage, commit, and push the configured repositories",
		Long: `Synchronize every configured repository root, or the given ones.
All pending changes are staged; the commit message is synthesized from
the staged status unless one is given with -m. Clean trees are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				cfg.SyncTargets = args
			}

			ctx := context.Background()
			driver := pipeline.New(cfg, opts...)

			failed := displaySyncReports(driver.SyncAll(ctx, message))
			if failed > 0 {
				return fmt.Errorf("%d of %d repositories failed to sync", failed, len(cfg.SyncTargets))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message (default synthesized from the status)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration file")

	return cmd
}
