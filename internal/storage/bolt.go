package storage

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	// BoltFile is the database file name used inside the data directory.
	BoltFile = "wl.bolt"

	boltBucketRecords = "records" // key: record key -> JSON document
)

// BoltBackend stores every record in a single bbolt database.
type BoltBackend struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) the bbolt database at path.
func OpenBolt(path string) (*BoltBackend, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt database: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketRecords))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltBackend{db: db}, nil
}

// Read returns a copy of the bytes stored under key.
func (b *BoltBackend) Read(key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	var data []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketRecords)).Get([]byte(key))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		// v is only valid for the lifetime of the transaction
		data = append([]byte(nil), v...)
		return nil
	})
	return data, err
}

// Write replaces the record under key.
func (b *BoltBackend) Write(key string, data []byte) error {
	if key == "" {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketRecords)).Put([]byte(key), data)
	})
}

// Close closes the database.
func (b *BoltBackend) Close() error {
	return b.db.Close()
}
