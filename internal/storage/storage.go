// Package storage persists wl's records. Every record is a JSON document stored under a
// string key in a Backend; Store layers a best-effort contract on top: saves never
// fail loudly and loads fall back to a caller-supplied default.
package storage

import (
	"encoding/json"
	"errors"
	"log/slog"
)

var (
	// ErrNotFound is returned by backends when no record exists for a key.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidKey is returned by backends for keys that are not clean relative paths.
	ErrInvalidKey = errors.New("invalid record key")
)

// Backend stores raw record bytes by key.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Close() error
}

// Store is the best-effort record store used by the workout package.
// Persistence failures are logged at debug level and never returned.
type Store struct {
	backend Backend
	log     *slog.Logger
}

// New creates a Store over backend. A nil logger discards log output.
func New(backend Backend, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{backend: backend, log: log}
}

// Save encodes v as JSON and writes it under key.
// On any encoding or write failure the record is simply not persisted this time.
func (s *Store) Save(key string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.log.Debug("encode record", "key", key, "error", err)
		return
	}
	if err := s.backend.Write(key, data); err != nil {
		s.log.Debug("write record", "key", key, "error", err)
	}
}

// Exists reports whether a record is stored under key, decodable or not.
func (s *Store) Exists(key string) bool {
	_, err := s.backend.Read(key)
	return err == nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Read decodes the record under key into a T. ok is false when the record is missing,
// unreadable or does not decode.
func Read[T any](s *Store, key string) (v T, ok bool) {
	data, err := s.backend.Read(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Debug("read record", "key", key, "error", err)
		}
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		s.log.Debug("decode record", "key", key, "error", err)
		var zero T
		return zero, false
	}
	return v, true
}

// Load returns the record under key, or fallback if it cannot be read or decoded.
func Load[T any](s *Store, key string, fallback T) T {
	if v, ok := Read[T](s, key); ok {
		return v
	}
	return fallback
}
