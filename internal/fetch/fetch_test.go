package fetch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jameslittle/stork/internal/domain"
)

func TestRead_Contents(t *testing.T) {
	r := NewHTTPReader()
	got, err := r.Read(domain.Contents("hello world"), "")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "hello world" {
		t.Errorf("Read() = %q, want %q", got, "hello world")
	}
}

func TestRead_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("file contents"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewHTTPReader()
	got, err := r.Read(domain.File("doc.txt"), dir)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "file contents" {
		t.Errorf("Read() = %q, want %q", got, "file contents")
	}
}

func TestRead_FileMissingReturnsError(t *testing.T) {
	r := NewHTTPReader()
	if _, err := r.Read(domain.File("does-not-exist.txt"), t.TempDir()); err == nil {
		t.Error("Read() expected error for missing file, got nil")
	}
}
