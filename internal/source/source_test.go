package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileReadReturnsContents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("VideoGeneration:\n  Model: \"m1\"\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src := NewFile(path)
	if src.Location() != path {
		t.Fatalf("expected location %s, got %s", path, src.Location())
	}

	data, err := src.Read(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "VideoGeneration:\n  Model: \"m1\"\n" {
		t.Fatalf("unexpected contents %q", data)
	}
}

func TestFileExistsRejectsMissingPath(t *testing.T) {
	t.Parallel()

	src := NewFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err := src.Exists(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := src.Read(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from Read, got %v", err)
	}
}

func TestFileExistsRejectsDirectory(t *testing.T) {
	t.Parallel()

	src := NewFile(t.TempDir())
	if err := src.Exists(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for directory, got %v", err)
	}
}

func TestFileReadHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewFile(path).Read(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
