package xmlscan

// Attr is one key/value pair from a start tag. Both slices alias the
// source buffer. Values are raw substrings with the quotes stripped;
// entities and escapes are never decoded.
type Attr struct {
	Key   []byte
	Value []byte
}

// AttributesAt parses the attributes of the start tag whose '<' sits at
// offset, returning them in document order. Attribute parsing cost is
// paid only here, never during tree-shape discovery.
//
// Values may be double-quoted, single-quoted or unquoted (ending at
// whitespace, '>' or '/'). An attribute token with no '=' is skipped,
// consistent with the scanner's leniency on malformed input. An offset
// outside the buffer yields nil.
func AttributesAt(buf []byte, offset int) []Attr {
	n := len(buf)
	if offset < 0 || offset >= n {
		return nil
	}

	pos := offset
	if buf[pos] == '<' {
		pos++
	}
	for pos < n && !isSpace(buf[pos]) && buf[pos] != '>' && buf[pos] != '/' {
		pos++
	}

	var attrs []Attr
	for {
		for pos < n && isSpace(buf[pos]) {
			pos++
		}
		if pos >= n || buf[pos] == '>' || buf[pos] == '/' {
			return attrs
		}

		keyStart := pos
		for pos < n && buf[pos] != '=' && !isSpace(buf[pos]) && buf[pos] != '>' && buf[pos] != '/' {
			pos++
		}
		key := buf[keyStart:pos]

		for pos < n && isSpace(buf[pos]) {
			pos++
		}
		if pos >= n || buf[pos] != '=' {
			// Bare token without a value: skip it.
			continue
		}
		pos++
		for pos < n && isSpace(buf[pos]) {
			pos++
		}
		if pos >= n {
			return attrs
		}

		var value []byte
		if quote := buf[pos]; quote == '"' || quote == '\'' {
			pos++
			valStart := pos
			for pos < n && buf[pos] != quote {
				pos++
			}
			value = buf[valStart:pos]
			if pos < n {
				pos++
			}
		} else {
			valStart := pos
			for pos < n && !isSpace(buf[pos]) && buf[pos] != '>' && buf[pos] != '/' {
				pos++
			}
			value = buf[valStart:pos]
		}
		attrs = append(attrs, Attr{Key: key, Value: value})
	}
}
