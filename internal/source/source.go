package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	// ErrNotFound indicates the configuration document does not exist or is not a regular file.
	ErrNotFound = errors.New("configuration document not found")
)

// Source provides access to the raw bytes of a configuration document.
type Source interface {
	Exists() error
	Read(ctx context.Context) ([]byte, error)
	Location() string
}

// File reads a configuration document from the local filesystem.
type File struct {
	path string
}

// NewFile returns a Source backed by the file at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Location returns the path the document is read from.
func (f *File) Location() string {
	return f.path
}

// Exists reports ErrNotFound unless the path names a regular file.
func (f *File) Exists() error {
	info, err := os.Stat(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, f.path)
		}
		return fmt.Errorf("stat %s: %w", f.path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrNotFound, f.path)
	}
	return nil
}

// Read returns the full contents of the document.
func (f *File) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.Exists(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}
