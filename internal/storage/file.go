package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// recordExt is appended to every key to form its file name.
const recordExt = ".json"

// FileBackend stores each record as <dir>/<key>.json. Keys may use '/' to group
// records into subdirectories.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a FileBackend rooted at dir. The directory is created lazily
// on the first write.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// Dir returns the root directory of the backend.
func (b *FileBackend) Dir() string {
	return b.dir
}

// Path returns the file path that holds key.
func (b *FileBackend) Path(key string) (string, error) {
	if !fs.ValidPath(key) || key == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(b.dir, filepath.FromSlash(key)+recordExt), nil
}

// Read returns the bytes stored under key.
func (b *FileBackend) Read(key string) ([]byte, error) {
	path, err := b.Path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return data, err
}

// Write replaces the record under key.
// Uses atomic write pattern (write to temp file, then rename) so a crash never leaves a
// half-written record behind.
func (b *FileBackend) Write(key string, data []byte) error {
	path, err := b.Path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	return nil
}

// Close is a no-op; FileBackend holds no open handles.
func (b *FileBackend) Close() error {
	return nil
}
