package host

// Journal is a write-buffering overlay over a KVStore. Each open frame
// collects writes without touching the backing store; Commit folds the top
// frame into its parent (or flushes to the backing store at depth one) and
// Discard drops it. Frames nest, so an aborted inner contract call rolls
// back without disturbing the outer call's buffered writes.
//
// The host serializes calls, so Journal is not safe for concurrent use.
type Journal struct {
	base   KVStore
	frames []map[string][]byte
}

// Compile-time interface check.
var _ KVStore = (*Journal)(nil)

// NewJournal wraps base in an empty journal.
func NewJournal(base KVStore) *Journal {
	return &Journal{base: base}
}

// Begin opens a new write frame.
func (j *Journal) Begin() {
	j.frames = append(j.frames, make(map[string][]byte))
}

// Depth returns the number of open frames.
func (j *Journal) Depth() int { return len(j.frames) }

// Commit folds the top frame into its parent, or writes it through to the
// backing store if it is the only frame.
func (j *Journal) Commit() error {
	n := len(j.frames)
	if n == 0 {
		return ErrNoFrame
	}
	top := j.frames[n-1]
	j.frames = j.frames[:n-1]
	if n == 1 {
		for k, v := range top {
			if err := j.base.Put([]byte(k), v); err != nil {
				return err
			}
		}
		return nil
	}
	parent := j.frames[n-2]
	for k, v := range top {
		parent[k] = v
	}
	return nil
}

// Discard drops the top frame and all writes buffered in it.
func (j *Journal) Discard() error {
	if len(j.frames) == 0 {
		return ErrNoFrame
	}
	j.frames = j.frames[:len(j.frames)-1]
	return nil
}

// Get returns the most recently written value for key, searching open frames
// from newest to oldest before falling back to the backing store.
func (j *Journal) Get(key []byte) ([]byte, bool, error) {
	for i := len(j.frames) - 1; i >= 0; i-- {
		if v, ok := j.frames[i][string(key)]; ok {
			out := make([]byte, len(v))
			copy(out, v)
			return out, true, nil
		}
	}
	return j.base.Get(key)
}

// Put buffers the write in the top frame, or writes through to the backing
// store when no frame is open.
func (j *Journal) Put(key, value []byte) error {
	if len(j.frames) == 0 {
		return j.base.Put(key, value)
	}
	v := make([]byte, len(value))
	copy(v, value)
	j.frames[len(j.frames)-1][string(key)] = v
	return nil
}

// Has reports whether key exists in any open frame or the backing store.
func (j *Journal) Has(key []byte) (bool, error) {
	for i := len(j.frames) - 1; i >= 0; i-- {
		if _, ok := j.frames[i][string(key)]; ok {
			return true, nil
		}
	}
	return j.base.Has(key)
}
