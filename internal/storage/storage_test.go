package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// failingBackend fails every operation with err.
type failingBackend struct {
	err    error
	writes int
}

func (b *failingBackend) Read(string) ([]byte, error) { return nil, b.err }

func (b *failingBackend) Write(string, []byte) error {
	b.writes++
	return b.err
}

func (b *failingBackend) Close() error { return nil }

// backends returns a fresh instance of every Backend implementation.
func backends(t *testing.T) map[string]Backend {
	t.Helper()
	dir := t.TempDir()

	bolt, err := OpenBolt(filepath.Join(dir, BoltFile))
	if err != nil {
		t.Fatalf("OpenBolt() returned unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = bolt.Close() })

	return map[string]Backend{
		"file": NewFileBackend(filepath.Join(dir, "records")),
		"bolt": bolt,
	}
}

func TestBackends_ReadWrite(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := backend.Read("missing"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Read(missing) error = %v, expected ErrNotFound", err)
			}

			if err := backend.Write("workouts/Legs", []byte(`["a"]`)); err != nil {
				t.Fatalf("Write() returned unexpected error: %v", err)
			}
			if err := backend.Write("workouts/Legs", []byte(`["b"]`)); err != nil {
				t.Fatalf("Write() overwrite returned unexpected error: %v", err)
			}

			data, err := backend.Read("workouts/Legs")
			if err != nil {
				t.Fatalf("Read() returned unexpected error: %v", err)
			}
			if string(data) != `["b"]` {
				t.Errorf("Read() = %s, expected %s", data, `["b"]`)
			}

			if err := backend.Write("", []byte("x")); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Write(\"\") error = %v, expected ErrInvalidKey", err)
			}
		})
	}
}

func TestFileBackend_Layout(t *testing.T) {
	dir := t.TempDir()
	b := NewFileBackend(dir)

	if err := b.Write("workouts/Push Day", []byte("[]")); err != nil {
		t.Fatalf("Write() returned unexpected error: %v", err)
	}

	expected := filepath.Join(dir, "workouts", "Push Day.json")
	if _, err := os.Stat(expected); err != nil {
		t.Errorf("expected record file at %s: %v", expected, err)
	}
	if _, err := os.Stat(expected + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}
}

func TestFileBackend_RejectsEscapingKeys(t *testing.T) {
	b := NewFileBackend(t.TempDir())

	for _, key := range []string{"../outside", "/abs", "a/../../b", "."} {
		t.Run(key, func(t *testing.T) {
			if err := b.Write(key, []byte("[]")); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Write(%q) error = %v, expected ErrInvalidKey", key, err)
			}
			if _, err := b.Read(key); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Read(%q) error = %v, expected ErrInvalidKey", key, err)
			}
		})
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(backend, nil)
			in := []record{{"squat", 5}, {"plank", 60}, {"squat", 5}}

			s.Save("records", in)
			out := Load(s, "records", []record{})

			if len(out) != len(in) {
				t.Fatalf("Load() returned %d records, expected %d", len(out), len(in))
			}
			for i := range in {
				if out[i] != in[i] {
					t.Errorf("record %d = %+v, expected %+v", i, out[i], in[i])
				}
			}
			if !s.Exists("records") {
				t.Error("Exists() should be true after Save")
			}
		})
	}
}

func TestStore_LoadFallback(t *testing.T) {
	dir := t.TempDir()
	b := NewFileBackend(dir)
	s := New(b, nil)
	fallback := []string{"Workout"}

	t.Run("missing record", func(t *testing.T) {
		got := Load(s, "titles", fallback)
		if len(got) != 1 || got[0] != "Workout" {
			t.Errorf("Load() = %v, expected fallback", got)
		}
		if s.Exists("titles") {
			t.Error("Exists() should be false for a missing record")
		}
	})

	t.Run("corrupted record", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "titles.json"), []byte(`{"not": "a list"`), 0644); err != nil {
			t.Fatalf("failed to write corrupt record: %v", err)
		}
		got := Load(s, "titles", fallback)
		if len(got) != 1 || got[0] != "Workout" {
			t.Errorf("Load() = %v, expected fallback", got)
		}
		if !s.Exists("titles") {
			t.Error("Exists() should be true for a corrupt record")
		}
		if _, ok := Read[[]string](s, "titles"); ok {
			t.Error("Read() should report a corrupt record as not ok")
		}
	})

	t.Run("backend error", func(t *testing.T) {
		failing := New(&failingBackend{err: errors.New("disk on fire")}, nil)
		got := Load(failing, "titles", fallback)
		if len(got) != 1 || got[0] != "Workout" {
			t.Errorf("Load() = %v, expected fallback", got)
		}
	})
}

func TestStore_SaveIsBestEffort(t *testing.T) {
	backend := &failingBackend{err: errors.New("read-only filesystem")}
	s := New(backend, nil)

	// Must not panic or surface the error.
	s.Save("titles", []string{"Workout"})
	if backend.writes != 1 {
		t.Errorf("expected 1 write attempt, got %d", backend.writes)
	}

	// Values that can't be encoded never reach the backend.
	s.Save("titles", make(chan int))
	if backend.writes != 1 {
		t.Errorf("unencodable value should not be written, got %d writes", backend.writes)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"legs", "legs"},
		{"push-day_2", "push-day_2"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Key(tt.title); got != tt.expected {
				t.Errorf("Key(%q) = %q, expected %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestKey_Readable(t *testing.T) {
	tests := []struct {
		title  string
		prefix string
	}{
		{"Workout", "workout."},
		{"Push Day", "push_day."},
		{"../../etc/passwd", "______etc_passwd."},
		{"Bauch & Rücken", "bauch___r_cken."},
		{"", "_."},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := Key(tt.title)
			if !strings.HasPrefix(got, tt.prefix) || len(got) != len(tt.prefix)+16 {
				t.Errorf("Key(%q) = %q, expected %q followed by a 16 digit hash", tt.title, got, tt.prefix)
			}
			if !fs.ValidPath(got) || strings.ContainsAny(got, "/ ") || strings.ToLower(got) != got {
				t.Errorf("Key(%q) = %q is not a single lowercase path element", tt.title, got)
			}
		})
	}
}

func TestKey_DistinctTitles(t *testing.T) {
	pairs := [][2]string{
		{"Push/Pull", "Push?Pull"},
		{"Legs", "legs"},
		{"Legs.", "Legs"},
		{"A!", "A?"},
		{"legs", "Legs"},
		{" Core", "Core"},
		{"_", ""},
	}

	for _, p := range pairs {
		t.Run(p[0]+"|"+p[1], func(t *testing.T) {
			if a, b := Key(p[0]), Key(p[1]); a == b {
				t.Errorf("Key(%q) and Key(%q) are both %q", p[0], p[1], a)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Workout", "Workout"},
		{"Push Day", "Push Day"},
		{"legs/arms", "legs_arms"},
		{"../../etc/passwd", "_.._etc_passwd"},
		{"  .hidden  ", "hidden"},
		{"5x5 v1.2", "5x5 v1.2"},
		{"Bauch & Rücken", "Bauch _ Rücken"},
		{"", "_"},
		{"...", "_"},
		{"a:b*c?", "a_b_c_"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Name(tt.title); got != tt.expected {
				t.Errorf("Name(%q) = %q, expected %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestEntriesKey(t *testing.T) {
	if got := EntriesKey("legs"); got != "workouts/legs" {
		t.Errorf("EntriesKey(legs) = %q", got)
	}
	if EntriesKey("titles") == TitlesKey {
		t.Error("entry keys must never collide with the titles key")
	}
}
