package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-mvcc/index"
	"github.com/tarantool/go-mvcc/kv"
	"github.com/tarantool/go-mvcc/revision"
)

func rev(main, sub int64) revision.Revision {
	return revision.Revision{Main: main, Sub: sub}
}

func TestIndex_PutVersions(t *testing.T) {
	t.Parallel()

	ix := index.New()

	rec := ix.Put([]byte("a"), []byte("1"), rev(1, 0))
	assert.Equal(t, int64(1), rec.Version)
	assert.Equal(t, rev(1, 0), rec.Create)

	rec = ix.Put([]byte("a"), []byte("2"), rev(2, 0))
	assert.Equal(t, int64(2), rec.Version)
	assert.Equal(t, rev(1, 0), rec.Create)
	assert.Equal(t, rev(2, 0), rec.Mod)

	prev, ok := ix.Delete([]byte("a"), rev(3, 0))
	require.True(t, ok)
	assert.Equal(t, []byte("2"), prev.Value)

	_, ok = ix.Delete([]byte("a"), rev(4, 0))
	assert.False(t, ok, "deleting a deleted key is a no-op")

	rec = ix.Put([]byte("a"), []byte("3"), rev(5, 0))
	assert.Equal(t, int64(1), rec.Version)
	assert.Equal(t, rev(5, 0), rec.Create)

	assert.Equal(t, 4, ix.Records())
	assert.Equal(t, 1, ix.Len())
}

func TestIndex_PutCopiesInput(t *testing.T) {
	t.Parallel()

	ix := index.New()

	key, value := []byte("k"), []byte("v")
	ix.Put(key, value, rev(1, 0))

	key[0], value[0] = 'x', 'x'

	rec, ok, err := ix.Get([]byte("k"), 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), rec.Value)
}

func TestIndex_RevisionMustIncrease(t *testing.T) {
	t.Parallel()

	ix := index.New()
	ix.Put([]byte("a"), []byte("1"), rev(2, 1))

	require.Panics(t, func() { ix.Put([]byte("a"), []byte("2"), rev(2, 1)) })
	require.Panics(t, func() { ix.Put([]byte("a"), []byte("2"), rev(2, 0)) })
	require.NotPanics(t, func() { ix.Put([]byte("a"), []byte("2"), rev(2, 2)) })
}

func TestIndex_GetAt(t *testing.T) {
	t.Parallel()

	ix := index.New()
	ix.Put([]byte("a"), []byte("1"), rev(1, 0))
	ix.Put([]byte("a"), []byte("2"), rev(3, 0))
	ix.Delete([]byte("a"), rev(5, 0))

	tests := []struct {
		at    int64
		found bool
		value string
	}{
		{0, false, ""},
		{1, true, "1"},
		{2, true, "1"},
		{3, true, "2"},
		{4, true, "2"},
		{5, false, ""},
		{9, false, ""},
	}

	for _, test := range tests {
		rec, ok, err := ix.Get([]byte("a"), test.at)
		require.NoError(t, err)
		assert.Equal(t, test.found, ok, "at %d", test.at)

		if test.found {
			assert.Equal(t, test.value, string(rec.Value), "at %d", test.at)
		}
	}

	_, ok, err := ix.Get([]byte("missing"), 9)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIndex_Latest(t *testing.T) {
	t.Parallel()

	ix := index.New()

	_, ok := ix.Latest([]byte("a"))
	assert.False(t, ok)

	ix.Put([]byte("a"), []byte("1"), rev(1, 0))

	rec, ok := ix.Latest([]byte("a"))
	require.True(t, ok)
	assert.Equal(t, []byte("1"), rec.Value)

	ix.Delete([]byte("a"), rev(2, 0))

	_, ok = ix.Latest([]byte("a"))
	assert.False(t, ok)
}

func TestIndex_ScanRange(t *testing.T) {
	t.Parallel()

	ix := index.New()
	for i, key := range []string{"b", "d", "a", "c", "e"} {
		ix.Put([]byte(key), []byte(key), rev(int64(i+1), 0))
	}

	ix.Delete([]byte("c"), rev(6, 0))

	keys := func(items []kv.KeyValue) []string {
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, string(item.Key))
		}

		return out
	}

	items, err := ix.ScanRange([]byte("a"), []byte("e"), 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d"}, keys(items))

	items, err = ix.ScanRange([]byte("a"), []byte("e"), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, keys(items))

	items, err = ix.ScanRange([]byte("b"), nil, 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d", "e"}, keys(items))

	items, err = ix.ScanRange([]byte("a"), []byte("z"), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d"}, keys(items))

	items, err = ix.ScanRange([]byte("d"), []byte("b"), 6)
	require.NoError(t, err)
	assert.Empty(t, items)
}

// A scan works on a copy-on-write clone and does not observe writes that
// happen while it runs.
func TestIndex_AscendIsolatedFromWriters(t *testing.T) {
	t.Parallel()

	ix := index.New()
	ix.Put([]byte("a"), []byte("1"), rev(1, 0))
	ix.Put([]byte("c"), []byte("1"), rev(2, 0))

	var seen []string

	err := ix.Ascend([]byte("a"), nil, 10, func(key []byte, rec index.Record) bool {
		seen = append(seen, string(key)+"="+string(rec.Value))

		if string(key) == "a" {
			ix.Put([]byte("b"), []byte("new"), rev(3, 0))
			ix.Put([]byte("c"), []byte("2"), rev(3, 1))
		}

		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a=1", "c=1"}, seen)

	rec, ok, err := ix.Get([]byte("c"), 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("2"), rec.Value)
}

func TestIndex_AscendStop(t *testing.T) {
	t.Parallel()

	ix := index.New()
	for i, key := range []string{"a", "b", "c"} {
		ix.Put([]byte(key), nil, rev(int64(i+1), 0))
	}

	visited := 0

	err := ix.Ascend([]byte("a"), nil, 3, func([]byte, index.Record) bool {
		visited++
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, visited)
}

func TestIndex_WalkIncludesInvisibleKeys(t *testing.T) {
	t.Parallel()

	ix := index.New()
	ix.Put([]byte("a"), []byte("1"), rev(1, 0))
	ix.Put([]byte("b"), []byte("2"), rev(2, 0))
	ix.Delete([]byte("a"), rev(3, 0))
	ix.Put([]byte("c"), []byte("3"), rev(4, 0))

	var seen []string

	err := ix.Walk([]byte("a"), nil, 3, func(key []byte, rec index.Record, visible bool) bool {
		if visible {
			seen = append(seen, string(key)+"="+string(rec.Value))
		} else {
			seen = append(seen, string(key))
		}

		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b=2", "c"}, seen)

	ix.Compact(3, nil, 10)

	err = ix.Walk([]byte("a"), nil, 2, func([]byte, index.Record, bool) bool { return true })
	require.ErrorIs(t, err, kv.ErrCompacted)
}
