// Package cli provides the Cobra command structure for xmlnav.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/xmlnav/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root xmlnav command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "xmlnav",
		Short: "An interactive, zero-copy XML tree navigator",
		Long: `xmlnav is an interactive terminal navigator for XML documents.

It reads the whole document once, keeps it as a single immutable buffer,
and walks the element tree lazily: levels are tokenized on demand the
first time they are entered and cached by byte offset afterwards. Even
large documents open instantly because nothing ahead of the cursor is
ever parsed.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newBrowseCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
