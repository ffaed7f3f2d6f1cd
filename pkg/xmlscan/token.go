package xmlscan

// Action is returned by a Scan consumer after every token and decides
// whether the scan proceeds. Returning Stop is how callers bound a scan
// to the part of the document they care about.
type Action int

const (
	// Continue proceeds to the next token.
	Continue Action = iota

	// Stop ends the scan before the end of the buffer.
	Stop
)

// TokenKind classifies a structural event in the XML source.
type TokenKind uint8

const (
	// TokStartTag is the opening of an element: `<name ...>` or `<name .../>`.
	TokStartTag TokenKind = iota

	// TokEndTag is the close of an element: `</name>`. A self-closing tag
	// produces a synthetic TokEndTag immediately after its TokStartTag,
	// carrying the identical name slice.
	TokEndTag

	// TokText is a run of character data, trimmed of ASCII whitespace.
	// Runs that are empty after trimming are never emitted.
	TokText
)

// Token is one structural event produced by Scan. Every byte slice in a
// Token aliases the scanned buffer; a Token is valid only as long as the
// buffer is. Tokens are handed to the consumer one at a time and never
// retained by the scanner.
type Token struct {
	Kind TokenKind

	// Offset is the byte position of the token's first byte in the
	// scanned buffer: the '<' for tags, the first non-space byte for
	// text. For the synthetic end tag of a self-closing element it is the
	// '<' of that element.
	Offset int

	// Name is the tag name for TokStartTag and TokEndTag.
	Name []byte

	// RawAttrs is the unparsed attribute region of a TokStartTag:
	// everything between the tag name and the closing '>' (or the '/' of
	// a self-closing tag). Parse it lazily with AttributesAt.
	RawAttrs []byte

	// Text is the trimmed character data for TokText.
	Text []byte
}
