// Package explore resolves parent/child relationships in an XML buffer on
// demand. Instead of building a tree up front it re-scans bounded byte
// ranges and memoizes each result by element offset, so revisiting a
// subtree is O(1) after the first visit.
package explore

import (
	"bytes"

	"github.com/yaklabco/xmlnav/pkg/xmlscan"
)

// Explorer borrows the source buffer and owns the children memo.
//
// The memo is a pure memoization of a deterministic function: the buffer
// is immutable for the process lifetime, entries are inserted at most
// once per offset and never invalidated, so hits are always correct.
// Explorer is not safe for concurrent use; the navigation loop is its
// sole owner.
type Explorer struct {
	buf   []byte
	cache map[int][]Node
	scans int
}

// New creates an explorer over buf. The buffer must stay alive and
// unmodified for as long as the explorer and any Node derived from it.
func New(buf []byte) *Explorer {
	return &Explorer{buf: buf, cache: make(map[int][]Node)}
}

// Buffer returns the source buffer the explorer reads from.
func (e *Explorer) Buffer() []byte { return e.buf }

// Root scans from the start of the buffer to the first start tag and
// returns the document's top-level element. ok is false when the buffer
// contains no elements.
func (e *Explorer) Root() (root Node, ok bool) {
	xmlscan.Scan(e.buf, func(tok xmlscan.Token) xmlscan.Action {
		if tok.Kind == xmlscan.TokStartTag {
			root = Node{Tag: tok.Name, Offset: tok.Offset, RawAttrs: tok.RawAttrs}
			ok = true
			return xmlscan.Stop
		}
		return xmlscan.Continue
	})
	return root, ok
}

// Children returns the direct child elements of parent in document order.
// The first call for a given offset scans the parent's subtree; later
// calls return the memoized slice. Callers must not mutate the returned
// slice: it is shared with every subsequent caller.
//
// A direct child whose tag equals the parent's own tag is
// indistinguishable from the parent's closing tag under this grammar and
// ends the scan early; same-named immediate nesting is not resolved.
func (e *Explorer) Children(parent Node) []Node {
	if kids, hit := e.cache[parent.Offset]; hit {
		return kids
	}
	kids := e.resolveChildren(parent)
	e.cache[parent.Offset] = kids
	return kids
}

// Attributes parses and returns n's key/value attributes in document
// order. Results are not cached; attribute parsing is cheap and only
// requested when a node's details are displayed.
func (e *Explorer) Attributes(n Node) []xmlscan.Attr {
	return xmlscan.AttributesAt(e.buf, n.Offset)
}

// Scans reports how many subtree scans have run, counting cache misses
// only. Tests use it to observe that memoization holds.
func (e *Explorer) Scans() int { return e.scans }

// resolveChildren tokenizes the parent's subtree with a local depth
// counter, collecting elements that sit directly under the parent. The
// scan starts at the parent's '<' and stops at its closing tag, so cost
// is proportional to the subtree, not the remaining document.
func (e *Explorer) resolveChildren(parent Node) []Node {
	if parent.Offset < 0 || parent.Offset >= len(e.buf) {
		// Defensive: a stale or out-of-range offset resolves to no
		// children rather than failing.
		return nil
	}
	e.scans++

	var (
		children   []Node
		depth      int
		inside     bool
		current    Node
		collecting bool
	)

	xmlscan.Scan(e.buf[parent.Offset:], func(tok xmlscan.Token) xmlscan.Action {
		switch tok.Kind {
		case xmlscan.TokStartTag:
			if !inside {
				// The first start tag matching the parent's own name is
				// the parent's opening tag, not a child.
				if bytes.Equal(tok.Name, parent.Tag) {
					inside = true
				}
				return xmlscan.Continue
			}
			if depth == 0 {
				current = Node{
					Tag:      tok.Name,
					Offset:   parent.Offset + tok.Offset,
					RawAttrs: tok.RawAttrs,
				}
				collecting = true
			}
			depth++

		case xmlscan.TokEndTag:
			if !inside {
				return xmlscan.Continue
			}
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				if bytes.Equal(tok.Name, parent.Tag) {
					// The parent's closing tag: the subtree is fully
					// scanned.
					return xmlscan.Stop
				}
				if collecting {
					children = append(children, current)
					collecting = false
				}
			}

		case xmlscan.TokText:
			// Text counts only when it sits directly under the candidate
			// child (depth 1), and only the first run is kept.
			if collecting && depth == 1 && current.Text == nil {
				current.Text = tok.Text
			}
		}
		return xmlscan.Continue
	})

	return children
}
