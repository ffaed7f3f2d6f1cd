package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/xmlnav/internal/logging"
	"github.com/yaklabco/xmlnav/internal/ui/pretty"
	"github.com/yaklabco/xmlnav/pkg/source"
	"github.com/yaklabco/xmlnav/pkg/stats"
)

func newStatsCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Print document statistics",
		Long: `Scan the whole document once and print per-depth element counts,
distinct tag names, maximum depth and scan throughput.

Examples:
  xmlnav stats catalog.xml
  xmlnav stats --width 100 catalog.xml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args[0], width)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "report width in columns (0 = terminal width)")

	return cmd
}

func runStats(cmd *cobra.Command, path string, width int) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	buf, err := source.Load(path)
	if err != nil {
		return err
	}

	report := stats.Collect(buf)

	logger := logging.Default()
	logger.Debug("document scanned",
		logging.FieldPath, path,
		logging.FieldBytes, report.Bytes,
		logging.FieldTagCount, report.TagCount,
		logging.FieldMaxDepth, report.MaxDepth,
	)

	out := cmd.OutOrStdout()
	colorEnabled := pretty.IsColorEnabled(effectiveColor(cmd, cfg), os.Stdout)
	styles := pretty.NewStyles(colorEnabled)
	fmt.Fprint(out, styles.FormatReport(report, width))

	return nil
}
