package pretty

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/xmlnav/pkg/stats"
)

const (
	reportDividerWidth = 40
	fallbackTermWidth  = 80
	tagIndent          = "    "
)

// FormatReport renders a structural report as a summary block followed by
// the per-depth breakdown. width bounds line wrapping for the tag lists;
// pass 0 to detect the terminal width.
func (s *Styles) FormatReport(report stats.Report, width int) string {
	if width <= 0 {
		width = terminalWidth()
	}

	var builder strings.Builder

	builder.WriteString(s.Title.Render("XML structure"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", reportDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Tags processed: " + s.Value.Render(strconv.Itoa(report.TagCount)) + "\n")
	builder.WriteString("  Max depth:      " + s.Value.Render(strconv.Itoa(report.MaxDepth)) + "\n")
	builder.WriteString("  File size:      " + s.Value.Render(strconv.Itoa(report.Bytes)) + " bytes\n")
	builder.WriteString("  Scan time:      " + s.Value.Render(report.Elapsed.String()))
	if mbps := report.MBPerSec(); mbps > 0 {
		builder.WriteString(s.Throughput.Render(fmt.Sprintf("  (%.2f MB/s)", mbps)))
	}
	builder.WriteString("\n")

	if len(report.Levels) == 0 {
		builder.WriteString("\n" + s.Dim.Render("No elements found") + "\n")
		return builder.String()
	}

	builder.WriteString("\n")
	builder.WriteString(s.Title.Render("Elements per depth"))
	builder.WriteString("\n")
	for _, level := range report.Levels {
		name := "Root level"
		if level.Depth > 0 {
			name = "Depth " + strconv.Itoa(level.Depth)
		}
		word := "elements"
		if level.Elements == 1 {
			word = "element"
		}
		builder.WriteString("  " + s.Label.Render(name+":") + " " +
			s.Value.Render(strconv.Itoa(level.Elements)) + " " + word + "\n")
		s.writeTagList(&builder, level.Tags, width)
	}

	return builder.String()
}

// writeTagList writes the sorted distinct tag names, wrapped to width.
func (s *Styles) writeTagList(builder *strings.Builder, tags []string, width int) {
	if len(tags) == 0 {
		return
	}

	line := tagIndent
	lineLen := len(tagIndent)
	for i, tag := range tags {
		sep := ""
		if i > 0 {
			sep = ", "
		}
		if lineLen+len(sep)+len(tag) > width && lineLen > len(tagIndent) {
			builder.WriteString(line + "\n")
			line = tagIndent
			lineLen = len(tagIndent)
			sep = ""
		}
		line += sep + s.TagName.Render(tag)
		lineLen += len(sep) + len(tag)
	}
	builder.WriteString(line + "\n")
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackTermWidth
}
