// Package templates provides the read-only default entry lists that seed a workout the
// first time it is opened.
package templates

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/xolan/wl/internal/storage"
)

//go:embed defaults/*.json
var bundled embed.FS

// Source looks up the template for a workout title. The returned bytes use the
// persisted entry list format.
type Source interface {
	Lookup(title string) ([]byte, bool)
}

// FS is a Source reading <Name(title)>.json from one or more file systems in order.
type FS struct {
	layers []fs.FS
}

// New returns the bundled templates, overridden by dir when it is non-empty.
func New(dir string) *FS {
	var layers []fs.FS
	if dir != "" {
		layers = append(layers, os.DirFS(dir))
	}
	layers = append(layers, Bundled())
	return &FS{layers: layers}
}

// Bundled returns the templates compiled into the binary.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "defaults")
	if err != nil {
		// "defaults" is a fixed, embedded directory
		panic(err)
	}
	return sub
}

// Lookup returns the first template found for title.
func (t *FS) Lookup(title string) ([]byte, bool) {
	name := storage.Name(title) + ".json"
	for _, layer := range t.layers {
		data, err := fs.ReadFile(layer, name)
		if err == nil {
			return data, true
		}
	}
	return nil, false
}

// Titles lists the titles that have a bundled template.
func Titles() []string {
	entries, err := fs.ReadDir(Bundled(), ".")
	if err != nil {
		return nil
	}
	titles := make([]string, 0, len(entries))
	for _, e := range entries {
		if name := e.Name(); path.Ext(name) == ".json" {
			titles = append(titles, name[:len(name)-len(".json")])
		}
	}
	return titles
}
