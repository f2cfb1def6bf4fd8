package host

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var bucketState = []byte("state")

// BoltStore is a bbolt-backed KVStore for persistent deployments.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ KVStore = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("host: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("host: open bolt db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("host: create bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// Get returns the value for key and whether it exists.
func (s *BoltStore) Get(key []byte) ([]byte, bool, error) {
	var out []byte
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketState).Get(key)
		if v == nil {
			return nil
		}
		found = true
		out = make([]byte, len(v))
		copy(out, v)
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("host: bolt get: %w", err)
	}
	return out, found, nil
}

// Put stores value under key.
func (s *BoltStore) Put(key, value []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketState).Put(key, value)
	})
	if err != nil {
		return fmt.Errorf("host: bolt put: %w", err)
	}
	return nil
}

// Has reports whether key exists.
func (s *BoltStore) Has(key []byte) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(bucketState).Get(key) != nil
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("host: bolt has: %w", err)
	}
	return found, nil
}
