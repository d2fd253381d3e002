package workout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xolan/wl/internal/storage"
)

// fakeTemplates is a templates.Source backed by a map.
type fakeTemplates map[string]string

func (f fakeTemplates) Lookup(title string) ([]byte, bool) {
	data, ok := f[title]
	if !ok {
		return nil, false
	}
	return []byte(data), true
}

func newTestStore(t *testing.T) (*storage.Store, string) {
	t.Helper()
	dir := t.TempDir()
	return storage.New(storage.NewFileBackend(dir), nil), dir
}

func writeRecord(t *testing.T, dir, key, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(key)+".json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create record dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write record: %v", err)
	}
}

func readRecord(t *testing.T, dir, key string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)+".json"))
	if err != nil {
		t.Fatalf("failed to read record %q: %v", key, err)
	}
	return string(data)
}

func recordExists(dir, key string) bool {
	_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(key)+".json"))
	return err == nil
}
