package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-mvcc/index"
	"github.com/tarantool/go-mvcc/kv"
)

func compactAll(ix *index.Index, floor int64, limit int) int {
	var (
		cursor  []byte
		removed int
	)

	for {
		res := ix.Compact(floor, cursor, limit)
		removed += res.Removed

		if res.Done {
			return removed
		}

		cursor = res.Next
	}
}

func TestIndex_Compact(t *testing.T) {
	t.Parallel()

	ix := index.New()

	// a: live with superseded history.
	ix.Put([]byte("a"), []byte("1"), rev(1, 0))
	ix.Put([]byte("a"), []byte("2"), rev(2, 0))
	ix.Put([]byte("a"), []byte("3"), rev(4, 0))
	// b: deleted below the floor.
	ix.Put([]byte("b"), []byte("1"), rev(1, 1))
	ix.Delete([]byte("b"), rev(2, 1))
	// c: deleted and re-created across the floor.
	ix.Put([]byte("c"), []byte("1"), rev(1, 2))
	ix.Delete([]byte("c"), rev(2, 2))
	ix.Put([]byte("c"), []byte("2"), rev(4, 1))
	// d: untouched since creation.
	ix.Put([]byte("d"), []byte("1"), rev(1, 3))

	require.Equal(t, 9, ix.Records())

	removed := compactAll(ix, 3, 1)
	assert.Equal(t, 5, removed)
	assert.Equal(t, 4, ix.Records())
	assert.Equal(t, 3, ix.Len())
	assert.Equal(t, int64(3), ix.PhysicalFloor())

	_, _, err := ix.Get([]byte("a"), 2)
	require.ErrorIs(t, err, kv.ErrCompacted)

	for _, test := range []struct {
		key   string
		at    int64
		found bool
		value string
	}{
		{"a", 3, true, "2"},
		{"a", 4, true, "3"},
		{"b", 3, false, ""},
		{"c", 3, false, ""},
		{"c", 4, true, "2"},
		{"d", 3, true, "1"},
	} {
		rec, ok, err := ix.Get([]byte(test.key), test.at)
		require.NoError(t, err)
		assert.Equal(t, test.found, ok, "%s at %d", test.key, test.at)

		if test.found {
			assert.Equal(t, test.value, string(rec.Value), "%s at %d", test.key, test.at)
		}
	}

	c, ok, err := ix.Get([]byte("c"), 4)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), c.Version)
	assert.Equal(t, rev(4, 1), c.Create)

	// Compacting again to the same floor finds nothing.
	assert.Equal(t, 0, compactAll(ix, 3, 10))
}

func TestIndex_CompactBatches(t *testing.T) {
	t.Parallel()

	ix := index.New()
	for i, key := range []string{"a", "b", "c", "d", "e"} {
		ix.Put([]byte(key), []byte("1"), rev(int64(i+1), 0))
		ix.Put([]byte(key), []byte("2"), rev(int64(i+10), 0))
	}

	res := ix.Compact(20, nil, 2)
	assert.False(t, res.Done)
	assert.Equal(t, []byte("b"), res.Next)
	assert.Equal(t, 2, res.Removed)

	res = ix.Compact(20, res.Next, 2)
	assert.False(t, res.Done)
	assert.Equal(t, []byte("d"), res.Next)

	res = ix.Compact(20, res.Next, 2)
	assert.True(t, res.Done)
	assert.Equal(t, 1, res.Removed)
	assert.Equal(t, 5, ix.Records())
}

func TestIndex_CompactOnlyRaisesFloor(t *testing.T) {
	t.Parallel()

	ix := index.New()
	ix.Put([]byte("a"), []byte("1"), rev(1, 0))
	ix.Put([]byte("a"), []byte("2"), rev(2, 0))

	res := ix.Compact(2, nil, 0)
	assert.True(t, res.Done)
	assert.Equal(t, 0, res.Removed)
	assert.Equal(t, int64(2), ix.PhysicalFloor())
	assert.Equal(t, 2, ix.Records())

	assert.False(t, ix.RaiseFloor(1))
	assert.True(t, ix.RaiseFloor(5))
	assert.Equal(t, int64(5), ix.PhysicalFloor())
}

// A scan started before compaction keeps reading the history it cloned.
func TestIndex_ScanSurvivesCompaction(t *testing.T) {
	t.Parallel()

	ix := index.New()
	ix.Put([]byte("a"), []byte("1"), rev(1, 0))
	ix.Put([]byte("b"), []byte("1"), rev(1, 1))
	ix.Put([]byte("a"), []byte("2"), rev(2, 0))
	ix.Put([]byte("b"), []byte("2"), rev(2, 1))

	var values []string

	err := ix.Ascend([]byte("a"), nil, 1, func(_ []byte, rec index.Record) bool {
		compactAll(ix, 2, 10)

		values = append(values, string(rec.Value))

		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1"}, values)
}
