package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joffroy59/icoforge/pkg/common/logger"
)

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	CommitSHA = "unknown"
)

var (
	logLevel  string
	logFormat string
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "icoforge",
		Short:   "icoforge - SVG icon sets into multi-resolution ICO files",
		Long:    getBanner(),
		Version: fmt.Sprintf("%s (built: %s, commit: %s)", Version, BuildTime, CommitSHA),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (sets log level to debug)")

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newSyncCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getBanner() string {
	return `
╔════════════════════════════════════════════════════════════════════╗
║                                                                    ║
║   ██╗ ██████╗ ██████╗ ███████╗ ██████╗ ██████╗  ██████╗ ███████╗   ║
║   ██║██╔════╝██╔═══██╗██╔════╝██╔═══██╗██╔══██╗██╔════╝ ██╔════╝   ║
║   ██║██║     ██║   ██║█████╗  ██║   ██║██████╔╝██║  ███╗█████╗     ║
║   ██║██║     ██║   ██║██╔══╝  ██║   ██║██╔══██╗██║   ██║██╔══╝     ║
║   ██║╚██████╗╚██████╔╝██║     ╚██████╔╝██║  ██║╚██████╔╝███████╗   ║
║   ╚═╝ ╚═════╝ ╚═════╝ ╚═╝      ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚══════╝   ║
║                                                                    ║
╚════════════════════════════════════════════════════════════════════╝

  🎨 Batch conversion of SVG icon sets into multi-resolution ICO files

  📦 Size-tagged overrides (<name>-<N>px.svg) picked per resolution
  ⚡ Incremental rebuilds of only the icons that changed in git
  🔧 Commit messages synthesized from the working tree status
  💻 Built with Go for performance

  Convert your icons with: icoforge convert
  Preview render plans:    icoforge plan
  Need help? Run:          icoforge --help

`
}

func setupLogging() {
	level := logger.ParseLevel(logLevel)
	if verbose {
		level = logger.LevelDebug
	}

	format := logger.FormatText
	if logFormat == "json" {
		format = logger.FormatJSON
	}

	logger.Default = logger.New(logger.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	})
}
