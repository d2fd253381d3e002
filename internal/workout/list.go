package workout

import (
	"encoding/json"
	"slices"
	"sync"

	"github.com/xolan/wl/internal/storage"
	"github.com/xolan/wl/internal/templates"
)

// List is the ordered entry list of one workout. It is loaded when the workout is
// opened and rewritten in full on every change.
type List struct {
	mu        sync.Mutex
	title     string
	key       string
	store     *storage.Store
	templates templates.Source
	entries   []Entry
	editing   bool
	subs      subscribers
}

// Open loads the entry list for title.
//
// A stored record wins. When none exists yet, the bundled template for the title
// becomes the initial list and is persisted right away, so later template changes
// never touch a workout the user already has. A stored record that cannot be decoded
// falls back to the template, or to an empty list, without being overwritten. tpl may
// be nil.
func Open(store *storage.Store, tpl templates.Source, title string) *List {
	l := &List{
		title:     title,
		key:       storage.EntriesKey(title),
		store:     store,
		templates: tpl,
	}

	if entries, ok := storage.Read[[]Entry](store, l.key); ok {
		l.entries = entries
		if assignMissingIDs(l.entries) {
			l.persist()
		}
		return l
	}

	l.entries = l.template()
	if !store.Exists(l.key) {
		l.persist()
	}
	return l
}

// template decodes the template for the list's title. An absent or undecodable
// template is an empty list.
func (l *List) template() []Entry {
	if l.templates == nil {
		return []Entry{}
	}
	data, ok := l.templates.Lookup(l.title)
	if !ok {
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil || entries == nil {
		return []Entry{}
	}
	assignMissingIDs(entries)
	return entries
}

// assignMissingIDs gives hand-written records without ids a fresh one.
func assignMissingIDs(entries []Entry) bool {
	changed := false
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = NewID()
			changed = true
		}
	}
	return changed
}

// Title returns the workout title the list belongs to.
func (l *List) Title() string {
	return l.title
}

// Entries returns a copy of the entries in display order.
func (l *List) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.entries)
}

// Len returns the number of entries.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Get returns the entry with the given id.
func (l *List) Get(id string) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i := l.indexOf(id); i >= 0 {
		return l.entries[i], true
	}
	return Entry{}, false
}

// At returns the entry at index.
func (l *List) At(index int) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[index], true
}

func (l *List) indexOf(id string) int {
	return slices.IndexFunc(l.entries, func(e Entry) bool { return e.ID == id })
}

// Add appends a new entry with a fresh id.
func (l *List) Add(label, value string, kind Kind) (Entry, error) {
	if label == "" || value == "" {
		return Entry{}, ErrEmptyField
	}

	e := Entry{ID: NewID(), Label: label, Value: value, Kind: kind}
	err := l.change(func() error {
		l.entries = append(l.entries, e)
		return nil
	})
	return e, err
}

// Update changes the label and/or value of the entry with id in place. A nil
// argument leaves that field unchanged.
func (l *List) Update(id string, label, value *string) error {
	if (label != nil && *label == "") || (value != nil && *value == "") {
		return ErrEmptyField
	}

	return l.change(func() error {
		i := l.indexOf(id)
		if i < 0 {
			return ErrEntryNotFound
		}
		if label != nil {
			l.entries[i].Label = *label
		}
		if value != nil {
			l.entries[i].Value = *value
		}
		return nil
	})
}

// Delete removes the entry at index.
func (l *List) Delete(index int) error {
	return l.change(func() error {
		if index < 0 || index >= len(l.entries) {
			return ErrIndexOutOfRange
		}
		l.entries = slices.Delete(l.entries, index, index+1)
		return nil
	})
}

// Move relocates the entry at from so that it ends up at index to. Every other entry
// keeps its relative order.
func (l *List) Move(from, to int) error {
	return l.change(func() error {
		n := len(l.entries)
		if from < 0 || from >= n || to < 0 || to >= n {
			return ErrIndexOutOfRange
		}
		e := l.entries[from]
		l.entries = slices.Insert(slices.Delete(l.entries, from, from+1), to, e)
		return nil
	})
}

// SetEditing switches editing mode, which gates ResetToTemplate.
func (l *List) SetEditing(editing bool) {
	l.mu.Lock()
	l.editing = editing
	l.mu.Unlock()
}

// Editing reports whether the list is in editing mode.
func (l *List) Editing() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.editing
}

// ResetToTemplate throws away every local edit and replaces the list with the
// workout's template (empty when the title has none). It only works in editing mode.
// It does not ask for confirmation; callers must do that first.
func (l *List) ResetToTemplate() error {
	return l.change(func() error {
		if !l.editing {
			return ErrNotEditing
		}
		l.entries = l.template()
		return nil
	})
}

// Subscribe registers fn to be called after every change.
func (l *List) Subscribe(fn func()) (cancel func()) {
	return l.subs.add(fn)
}

// change runs fn under the lock. When fn succeeds the list is persisted before the
// lock is released and subscribers are notified afterwards; when it fails nothing is
// written.
func (l *List) change(fn func() error) error {
	l.mu.Lock()
	if err := fn(); err != nil {
		l.mu.Unlock()
		return err
	}
	l.persist()
	l.mu.Unlock()

	l.subs.notify()
	return nil
}

// persist rewrites the whole record. Callers hold l.mu.
func (l *List) persist() {
	if l.entries == nil {
		l.entries = []Entry{}
	}
	l.store.Save(l.key, l.entries)
}
