package nav

import (
	"bytes"
	"unicode/utf8"
)

// Entry is one row of the current level as handed to the renderer.
type Entry struct {
	Tag string

	// Text is the node's first direct text run, "" when absent.
	Text string

	// AttrPreview is a truncated rendering of the node's raw attribute
	// text, "" when the node has none or previews are disabled.
	AttrPreview string
}

// ViewModel is the read-only per-frame snapshot consumed by the rendering
// layer. The renderer never mutates it and never re-derives any of it
// behind the explorer's back.
type ViewModel struct {
	// Tag is the entered element's name; "" at the synthetic root.
	Tag string

	// Path is the tag trail from the root down to the current level.
	Path []string

	Entries  []Entry
	Selected int
	Count    int

	// Detail is non-nil while the detail view is open.
	Detail *Detail
}

// View snapshots the current level. previewWidth bounds the attribute
// preview per entry; 0 disables previews.
func (n *Navigator) View(previewWidth int) ViewModel {
	level := n.current()

	vm := ViewModel{
		Tag:      string(level.Tag),
		Selected: n.selected,
		Count:    len(level.Children),
		Detail:   n.detail,
	}

	for _, frame := range n.stack[1:] {
		vm.Path = append(vm.Path, string(frame.Tag))
	}

	vm.Entries = make([]Entry, len(level.Children))
	for i, child := range level.Children {
		entry := Entry{Tag: string(child.Tag), Text: string(child.Text)}
		if previewWidth > 0 {
			entry.AttrPreview = truncate(string(bytes.TrimSpace(child.RawAttrs)), previewWidth)
		}
		vm.Entries[i] = entry
	}
	return vm
}

// truncate shortens s to at most width runes, marking the cut with an
// ellipsis. The buffer is valid UTF-8, so rune counting is safe.
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
