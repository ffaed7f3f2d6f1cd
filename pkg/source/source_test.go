package source_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/xmlnav/pkg/source"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.xml")
	content := []byte("<a><b>1</b></a>")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	buf, err := source.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(buf) != string(content) {
		t.Errorf("Load() = %q, want %q", buf, content)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := source.Load(filepath.Join(t.TempDir(), "absent.xml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestLoad_InvalidEncoding(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "latin1.xml")
	if err := os.WriteFile(path, []byte{'<', 'a', '>', 0xff, 0xfe, '<', '/', 'a', '>'}, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := source.Load(path)
	if !errors.Is(err, source.ErrInvalidEncoding) {
		t.Errorf("expected ErrInvalidEncoding, got %v", err)
	}
}
