// Package nav implements the depth-first navigation state machine over an
// explored XML document: a stack of levels, a selection cursor and an
// on-demand detail view. It consumes an explore.Explorer and produces a
// view model for the rendering layer; it performs no I/O of its own.
package nav

import (
	"github.com/yaklabco/xmlnav/pkg/explore"
	"github.com/yaklabco/xmlnav/pkg/xmlscan"
)

// Level is one frame of the navigation stack: the children of the element
// the user has entered, plus the cursor position to restore when they
// come back up.
type Level struct {
	// Tag is the entered element's name; nil only for the synthetic root
	// level at the bottom of the stack.
	Tag []byte

	// Children are the level's entries in document order.
	Children []explore.Node

	// LastSelected is written when the user descends out of this level
	// and read when they ascend back into it.
	LastSelected int
}

// Detail holds the inspection data for the selected node while the detail
// view is open. It is fetched on toggle and discarded on toggle-off; the
// explorer's memo makes refetching cheap.
type Detail struct {
	Attrs      []xmlscan.Attr
	ChildCount int
}

// Navigator walks the document one level at a time. The stack is never
// empty, and every transition is total: with nothing to act on it
// degrades to a no-op rather than failing.
type Navigator struct {
	ex       *explore.Explorer
	stack    []Level
	selected int
	pageSize int
	detail   *Detail
}

const defaultPageSize = 10

// New builds a navigator positioned at the synthetic root level, whose
// single child is the document's top-level element. An elementless buffer
// yields a root level with no children, on which all transitions are
// no-ops.
func New(ex *explore.Explorer) *Navigator {
	var children []explore.Node
	if root, ok := ex.Root(); ok {
		children = []explore.Node{root}
	}
	return &Navigator{
		ex:       ex,
		stack:    []Level{{Children: children}},
		pageSize: defaultPageSize,
	}
}

func (n *Navigator) current() *Level { return &n.stack[len(n.stack)-1] }

// Depth returns the number of completed descents.
func (n *Navigator) Depth() int { return len(n.stack) - 1 }

// Selected returns the current selection index.
func (n *Navigator) Selected() int { return n.selected }

// SelectedNode returns the node under the cursor, if any.
func (n *Navigator) SelectedNode() (explore.Node, bool) {
	level := n.current()
	if n.selected < len(level.Children) {
		return level.Children[n.selected], true
	}
	return explore.Node{}, false
}

// DetailOpen reports whether the detail view is currently showing.
func (n *Navigator) DetailOpen() bool { return n.detail != nil }

// SetPageSize sets the stride used by PageUp and PageDown, typically the
// number of visible rows. Values below 1 are ignored.
func (n *Navigator) SetPageSize(size int) {
	if size >= 1 {
		n.pageSize = size
	}
}

// MoveDown moves the cursor one entry down; at the last entry it stays.
func (n *Navigator) MoveDown() { n.moveTo(n.selected + 1) }

// MoveUp moves the cursor one entry up; at the first entry it stays.
func (n *Navigator) MoveUp() { n.moveTo(n.selected - 1) }

// PageDown moves the cursor a page down, clamped to the last entry.
func (n *Navigator) PageDown() { n.moveTo(n.selected + n.pageSize) }

// PageUp moves the cursor a page up, clamped to the first entry.
func (n *Navigator) PageUp() { n.moveTo(n.selected - n.pageSize) }

// First jumps to the first entry.
func (n *Navigator) First() { n.moveTo(0) }

// Last jumps to the last entry.
func (n *Navigator) Last() { n.moveTo(len(n.current().Children) - 1) }

func (n *Navigator) moveTo(idx int) {
	n.selected = n.clamp(idx)
	n.refreshDetail()
}

// Descend enters the selected child: the current level remembers its
// cursor, the child's resolved children become the new top level and the
// cursor resets to the first entry.
func (n *Navigator) Descend() {
	node, ok := n.SelectedNode()
	if !ok {
		return
	}
	n.current().LastSelected = n.selected
	n.stack = append(n.stack, Level{Tag: node.Tag, Children: n.ex.Children(node)})
	n.selected = 0
	n.refreshDetail()
}

// Ascend pops the top level and restores the cursor to exactly where it
// was before the matching descent. At the root level it is a no-op.
func (n *Navigator) Ascend() {
	if len(n.stack) <= 1 {
		return
	}
	n.stack = n.stack[:len(n.stack)-1]
	n.selected = n.clamp(n.current().LastSelected)
	n.refreshDetail()
}

// ToggleDetail opens or closes the detail view for the selected node.
// Opening fetches attributes and child count on demand; closing discards
// them. With no selectable node, opening does nothing.
func (n *Navigator) ToggleDetail() {
	if n.detail != nil {
		n.detail = nil
		return
	}
	n.detail = n.fetchDetail()
}

func (n *Navigator) fetchDetail() *Detail {
	node, ok := n.SelectedNode()
	if !ok {
		return nil
	}
	return &Detail{
		Attrs:      n.ex.Attributes(node),
		ChildCount: len(n.ex.Children(node)),
	}
}

// refreshDetail keeps an open detail view pointed at the current
// selection across transitions.
func (n *Navigator) refreshDetail() {
	if n.detail != nil {
		n.detail = n.fetchDetail()
	}
}

func (n *Navigator) clamp(idx int) int {
	last := len(n.current().Children) - 1
	if last < 0 || idx < 0 {
		return 0
	}
	if idx > last {
		return last
	}
	return idx
}
