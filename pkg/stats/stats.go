// Package stats builds a one-pass structural summary of an XML buffer:
// tag counts, nesting depth and the distinct tag names seen at each
// depth. It consumes the token stream directly and carries no navigation
// state.
package stats

import (
	"sort"
	"time"

	"github.com/yaklabco/xmlnav/pkg/xmlscan"
)

// DepthLevel summarizes one nesting depth of the document.
type DepthLevel struct {
	// Depth is 0 for the root level.
	Depth int

	// Elements is the number of elements opened at this depth.
	Elements int

	// Tags holds the distinct tag names seen at this depth, sorted.
	Tags []string
}

// Report is the aggregated structural summary.
type Report struct {
	// TagCount counts start and end tags together; a self-closing tag
	// contributes one of each.
	TagCount int

	// MaxDepth is the deepest nesting level reached.
	MaxDepth int

	// Bytes is the size of the scanned buffer.
	Bytes int

	// Elapsed is the wall time the scan took.
	Elapsed time.Duration

	// Levels lists every depth that holds at least one element, in
	// ascending depth order.
	Levels []DepthLevel
}

// MBPerSec returns the scan throughput in megabytes per second.
func (r Report) MBPerSec() float64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(r.Bytes) / secs / 1e6
}

// Collect tokenizes buf once and aggregates the report. Unmatched end
// tags clamp the depth at zero instead of underflowing, matching the
// scanner's leniency toward malformed input.
func Collect(buf []byte) Report {
	start := time.Now()

	var (
		depth, maxDepth, tagCount int

		elements []int
		tagSets  []map[string]struct{}
	)

	grow := func(d int) {
		for len(elements) <= d {
			elements = append(elements, 0)
			tagSets = append(tagSets, make(map[string]struct{}))
		}
	}

	xmlscan.Scan(buf, func(tok xmlscan.Token) xmlscan.Action {
		switch tok.Kind {
		case xmlscan.TokStartTag:
			grow(depth)
			elements[depth]++
			tagSets[depth][string(tok.Name)] = struct{}{}
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
			tagCount++
		case xmlscan.TokEndTag:
			if depth > 0 {
				depth--
			}
			tagCount++
		case xmlscan.TokText:
			// Text runs do not contribute to structure.
		}
		return xmlscan.Continue
	})

	report := Report{
		TagCount: tagCount,
		MaxDepth: maxDepth,
		Bytes:    len(buf),
		Elapsed:  time.Since(start),
	}
	for d, count := range elements {
		if count == 0 {
			continue
		}
		tags := make([]string, 0, len(tagSets[d]))
		for tag := range tagSets[d] {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		report.Levels = append(report.Levels, DepthLevel{Depth: d, Elements: count, Tags: tags})
	}
	return report
}
