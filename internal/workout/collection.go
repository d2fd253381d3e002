package workout

import (
	"slices"
	"strings"
	"sync"

	"github.com/xolan/wl/internal/storage"
)

// Collection is the ordered set of workout titles. Titles are unique and kept in the
// order they were added.
type Collection struct {
	mu     sync.Mutex
	store  *storage.Store
	titles []string
	subs   subscribers
}

// LoadCollection reads the title collection from store. On first run, when no record
// exists, the collection starts with defaultTitle and is persisted immediately. A
// corrupt record also yields defaultTitle but is left on disk until the next change.
func LoadCollection(store *storage.Store, defaultTitle string) *Collection {
	c := &Collection{store: store}

	var initial []string
	if defaultTitle = strings.TrimSpace(defaultTitle); defaultTitle != "" {
		initial = []string{defaultTitle}
	}

	titles, ok := storage.Read[[]string](store, storage.TitlesKey)
	switch {
	case ok:
		c.titles = dedupe(titles)
	case !store.Exists(storage.TitlesKey):
		c.titles = initial
		c.persist()
	default:
		c.titles = initial
	}
	return c
}

// dedupe drops blank and repeated titles, keeping the first occurrence.
func dedupe(titles []string) []string {
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		t = strings.TrimSpace(t)
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Titles returns a copy of the titles in display order.
func (c *Collection) Titles() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.titles)
}

// Len returns the number of titles.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.titles)
}

// Contains reports whether title is in the collection.
func (c *Collection) Contains(title string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Contains(c.titles, title)
}

// Add trims name and appends it. Empty and already-present titles are rejected.
func (c *Collection) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyTitle
	}

	c.mu.Lock()
	if slices.Contains(c.titles, name) {
		c.mu.Unlock()
		return ErrDuplicateTitle
	}
	c.titles = append(c.titles, name)
	c.persist()
	c.mu.Unlock()

	c.subs.notify()
	return nil
}

// Remove deletes the title at index and returns it. The workout's entry record is
// kept, so adding the title again brings its entries back.
func (c *Collection) Remove(index int) (string, error) {
	c.mu.Lock()
	if index < 0 || index >= len(c.titles) {
		c.mu.Unlock()
		return "", ErrIndexOutOfRange
	}
	title := c.titles[index]
	c.titles = slices.Delete(c.titles, index, index+1)
	c.persist()
	c.mu.Unlock()

	c.subs.notify()
	return title, nil
}

// Subscribe registers fn to be called after every change.
func (c *Collection) Subscribe(fn func()) (cancel func()) {
	return c.subs.add(fn)
}

// persist writes the whole collection. Callers hold c.mu.
func (c *Collection) persist() {
	if c.titles == nil {
		c.titles = []string{}
	}
	c.store.Save(storage.TitlesKey, c.titles)
}
