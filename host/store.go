package host

import "sync"

// KVStore is the keyed instance storage consumed by contracts. Values are
// opaque byte slices; there are no transactions beyond what the Journal
// layers on top.
type KVStore interface {
	// Get returns the value for key and whether it exists.
	Get(key []byte) ([]byte, bool, error)

	// Put stores value under key, replacing any existing value.
	Put(key, value []byte) error

	// Has reports whether key exists.
	Has(key []byte) (bool, error)
}

// MemStore is an in-memory KVStore for tests and simulation.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// Compile-time interface check.
var _ KVStore = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

// Get returns the value for key and whether it exists.
func (s *MemStore) Get(key []byte) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[string(key)]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Put stores value under key.
func (s *MemStore) Put(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[string(key)] = v
	return nil
}

// Has reports whether key exists.
func (s *MemStore) Has(key []byte) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[string(key)]
	return ok, nil
}

// Len returns the number of stored keys.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
