// Package cli implements the ewb command-line interface: a windowed
// browser (open) and a headless snapshot renderer (shot).
package cli

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the ewb CLI and returns an error if any command fails.
func Execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "ewb",
		Short:        "ewb is a minimal document-to-pixels text browser",
		Long:         "ewb fetches a document, lays its text out against a fixed viewport, and renders the scrollable result, in a window or straight to PNG.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")

	root.AddCommand(newOpenCmd(&configPath))
	root.AddCommand(newShotCmd(&configPath))

	return root.Execute()
}
