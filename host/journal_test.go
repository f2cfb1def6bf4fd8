package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal_WriteThroughWithoutFrame(t *testing.T) {
	base := NewMemStore()
	j := NewJournal(base)

	require.NoError(t, j.Put([]byte("k"), []byte("v")))

	v, ok, err := base.Get([]byte("k"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), v)
}

func TestJournal_CommitFlushesToBase(t *testing.T) {
	base := NewMemStore()
	j := NewJournal(base)

	j.Begin()
	require.NoError(t, j.Put([]byte("k"), []byte("v")))

	// Buffered write is visible through the journal but not in the base yet.
	v, ok, err := j.Get([]byte("k"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), v)

	_, ok, err = base.Get([]byte("k"))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, j.Commit())

	v, ok, err = base.Get([]byte("k"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), v)
}

func TestJournal_DiscardDropsWrites(t *testing.T) {
	base := NewMemStore()
	require.NoError(t, base.Put([]byte("k"), []byte("old")))
	j := NewJournal(base)

	j.Begin()
	require.NoError(t, j.Put([]byte("k"), []byte("new")))
	require.NoError(t, j.Discard())

	v, ok, err := j.Get([]byte("k"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("old"), v)
}

func TestJournal_NestedFrames(t *testing.T) {
	base := NewMemStore()
	j := NewJournal(base)

	j.Begin()
	require.NoError(t, j.Put([]byte("outer"), []byte("1")))

	j.Begin()
	require.NoError(t, j.Put([]byte("inner"), []byte("2")))
	assert.Equal(t, 2, j.Depth())

	// Discarding the inner frame keeps the outer write.
	require.NoError(t, j.Discard())
	_, ok, err := j.Get([]byte("inner"))
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := j.Get([]byte("outer"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("1"), v)

	// Inner commit folds into the outer frame, not the base.
	j.Begin()
	require.NoError(t, j.Put([]byte("inner"), []byte("3")))
	require.NoError(t, j.Commit())

	_, ok, err = base.Get([]byte("inner"))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, j.Commit())
	v, ok, err = base.Get([]byte("inner"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("3"), v)
	assert.Equal(t, 0, j.Depth())
}

func TestJournal_CommitWithoutFrame(t *testing.T) {
	j := NewJournal(NewMemStore())
	assert.ErrorIs(t, j.Commit(), ErrNoFrame)
	assert.ErrorIs(t, j.Discard(), ErrNoFrame)
}

func TestJournal_HasSeesFramesAndBase(t *testing.T) {
	base := NewMemStore()
	require.NoError(t, base.Put([]byte("base"), []byte("v")))
	j := NewJournal(base)

	j.Begin()
	require.NoError(t, j.Put([]byte("frame"), []byte("v")))

	for _, key := range []string{"base", "frame"} {
		ok, err := j.Has([]byte(key))
		require.NoError(t, err)
		assert.True(t, ok, key)
	}
	ok, err := j.Has([]byte("missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}
