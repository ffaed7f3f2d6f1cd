// Package xmlscan provides a zero-copy streaming tokenizer for XML byte
// buffers. It turns a contiguous buffer into a sequence of start-tag,
// end-tag and text events without allocating, and lets the consumer stop
// the scan at any point.
//
// The grammar is deliberately lenient: no entity decoding, no DOCTYPE or
// namespace handling, and truncated input ends the scan instead of
// raising an error. Callers that need strict validation must add it
// themselves.
package xmlscan

import "bytes"

// Scan tokenizes buf in a single left-to-right pass, invoking fn once per
// token in document order. fn's return value controls the scan: Stop ends
// it immediately, which is what bounds a consumer's cost to the byte
// range it actually needs.
//
// Comments, CDATA and declarations (`<!...>`) and processing instructions
// (`<?...?>`) are skipped without emitting a token. An unterminated
// construct ends the scan silently; no byte is ever read out of bounds
// and no partial token is emitted. A '/' immediately before '>' marks a
// tag self-closing even when it is legitimately the last byte of an
// unquoted attribute value; this is an accepted limitation of the
// simplified grammar.
func Scan(buf []byte, fn func(Token) Action) {
	pos := 0
	n := len(buf)

	for pos < n {
		for pos < n && isSpace(buf[pos]) {
			pos++
		}
		if pos >= n {
			return
		}

		if buf[pos] != '<' {
			// Character data: everything up to the next '<' or the end of
			// the buffer, trimmed in place.
			end := n
			if rel := bytes.IndexByte(buf[pos:], '<'); rel >= 0 {
				end = pos + rel
			}
			start, stop := trim(buf, pos, end)
			if stop > start {
				if fn(Token{Kind: TokText, Offset: start, Text: buf[start:stop]}) == Stop {
					return
				}
			}
			pos = end
			continue
		}

		switch {
		case pos+1 < n && buf[pos+1] == '/':
			// End tag: </name>
			nameStart := pos + 2
			rel := bytes.IndexByte(buf[nameStart:], '>')
			if rel < 0 {
				return
			}
			if fn(Token{Kind: TokEndTag, Offset: pos, Name: buf[nameStart : nameStart+rel]}) == Stop {
				return
			}
			pos = nameStart + rel + 1

		case pos+1 < n && buf[pos+1] == '!':
			// Comment, CDATA or declaration: invisible to consumers.
			rel := bytes.IndexByte(buf[pos+2:], '>')
			if rel < 0 {
				return
			}
			pos += 2 + rel + 1

		case pos+1 < n && buf[pos+1] == '?':
			// Processing instruction: skip to the matching '?>'.
			rel := bytes.Index(buf[pos+2:], []byte("?>"))
			if rel < 0 {
				return
			}
			pos += 2 + rel + 2

		default:
			// Start tag.
			start := pos + 1
			rel := bytes.IndexByte(buf[start:], '>')
			if rel < 0 {
				return
			}
			end := start + rel
			selfClosing := end > start && buf[end-1] == '/'

			nameEnd := start
			for nameEnd < end && !isSpace(buf[nameEnd]) && buf[nameEnd] != '/' {
				nameEnd++
			}
			name := buf[start:nameEnd]

			attrEnd := end
			if selfClosing {
				attrEnd = end - 1
			}
			var raw []byte
			if nameEnd < attrEnd {
				raw = buf[nameEnd:attrEnd]
			}

			if fn(Token{Kind: TokStartTag, Offset: pos, Name: name, RawAttrs: raw}) == Stop {
				return
			}
			if selfClosing {
				if fn(Token{Kind: TokEndTag, Offset: pos, Name: name}) == Stop {
					return
				}
			}
			pos = end + 1
		}
	}
}

// trim narrows [start, end) past leading and trailing ASCII whitespace.
func trim(buf []byte, start, end int) (int, int) {
	for start < end && isSpace(buf[start]) {
		start++
	}
	for end > start && isSpace(buf[end-1]) {
		end--
	}
	return start, end
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
