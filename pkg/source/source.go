// Package source acquires the document buffer that the rest of the
// program borrows from: one contiguous, immutable, valid-UTF-8 byte
// slice for the whole document.
package source

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidEncoding reports a document that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("document is not valid UTF-8")

// Load reads the file at path into memory and verifies the encoding.
// Encoding problems are fatal here, once at startup; downstream code
// assumes validity and never re-checks per token.
func Load(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(buf) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	return buf, nil
}
