package explore

// Node is a resolved element occurrence: everything navigation needs
// without materializing a tree. All slices alias the explorer's source
// buffer, so a Node is freely copyable and cheap to hold.
type Node struct {
	// Tag is the element name.
	Tag []byte

	// Text is the first direct text run of the element, or nil. Elements
	// with several disjoint text runs expose only the first; this is an
	// intentional simplification, not an oversight.
	Text []byte

	// Offset is the byte position of the element's opening '<' in the
	// source buffer. An offset uniquely and stably identifies an element
	// occurrence for the buffer's lifetime, which makes it the only safe
	// cache key: tag names repeat, offsets do not.
	Offset int

	// RawAttrs is the unparsed attribute region of the start tag.
	RawAttrs []byte
}
