package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by a Backend when no history document exists yet.
var ErrNotFound = errors.New("history document not found")

// Backend reads and writes the serialized history document.
type Backend interface {
	// Read returns the stored document, or ErrNotFound.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored document.
	Write(ctx context.Context, data []byte) error
}

// FileBackend stores the history document in a single local file.
type FileBackend struct {
	Path string
}

// NewFileBackend creates a FileBackend. An empty path resolves to
// DefaultPath().
func NewFileBackend(path string) *FileBackend {
	if path == "" {
		path = DefaultPath()
	}
	return &FileBackend{Path: path}
}

// DefaultPath returns the per-user cache location of the history file,
// falling back to a relative ".dash" directory when no cache dir is known.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".dash", "history.yaml")
	}
	return filepath.Join(dir, "dash", "history.yaml")
}

// Read implements Backend.
func (f *FileBackend) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	return data, nil
}

// Write implements Backend. The document is written to a temporary file
// in the same directory and renamed over the target.
func (f *FileBackend) Write(ctx context.Context, data []byte) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure history directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary history file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write history file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close history file: %w", err)
	}
	if err := os.Rename(tmpPath, f.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}
