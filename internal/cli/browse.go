package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yaklabco/xmlnav/internal/logging"
	"github.com/yaklabco/xmlnav/internal/tui"
	"github.com/yaklabco/xmlnav/internal/ui/pretty"
	"github.com/yaklabco/xmlnav/pkg/explore"
	"github.com/yaklabco/xmlnav/pkg/nav"
	"github.com/yaklabco/xmlnav/pkg/source"
)

func newBrowseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse an XML document interactively",
		Long: `Open an XML document in the interactive tree navigator.

The document is read once and never copied. Levels of the tree are
tokenized the first time they are entered and cached by byte offset, so
navigation stays instant regardless of document size.

Examples:
  xmlnav browse catalog.xml
  xmlnav browse --color never feed.xml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, args[0])
		},
	}

	return cmd
}

func runBrowse(cmd *cobra.Command, path string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("cannot browse: %w", ErrNotTerminal)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Keep the alternate screen clean: only errors reach stderr while
	// the TUI owns the terminal.
	logging.SetLevel("error")

	buf, err := source.Load(path)
	if err != nil {
		return err
	}

	logger := logging.Default()
	logger.Debug("document loaded", logging.FieldPath, path, logging.FieldBytes, len(buf))

	navigator := nav.New(explore.New(buf))
	navigator.SetPageSize(cfg.PageSize)

	colorEnabled := pretty.IsColorEnabled(effectiveColor(cmd, cfg), os.Stdout)
	return tui.Run(navigator, cfg, colorEnabled)
}
