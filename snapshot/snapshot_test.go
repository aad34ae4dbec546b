package snapshot_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-mvcc/kv"
	"github.com/tarantool/go-mvcc/snapshot"
)

func TestRegistry_AcquireRelease(t *testing.T) {
	t.Parallel()

	reg := snapshot.NewRegistry()

	_, ok := reg.Oldest()
	assert.False(t, ok)

	s5, err := reg.Acquire(5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), s5.Revision())

	s3a, err := reg.Acquire(3)
	require.NoError(t, err)

	s3b, err := reg.Acquire(3)
	require.NoError(t, err)

	assert.Equal(t, 3, reg.Active())

	oldest, ok := reg.Oldest()
	require.True(t, ok)
	assert.Equal(t, int64(3), oldest)

	s3a.Release()
	s3a.Release()

	oldest, _ = reg.Oldest()
	assert.Equal(t, int64(3), oldest, "second holder of 3 is still open")

	s3b.Release()

	oldest, _ = reg.Oldest()
	assert.Equal(t, int64(5), oldest)

	s5.Release()
	assert.Equal(t, 0, reg.Active())

	_, ok = reg.Oldest()
	assert.False(t, ok)
}

func TestRegistry_Floor(t *testing.T) {
	t.Parallel()

	reg := snapshot.NewRegistry()
	assert.Equal(t, int64(0), reg.Floor())

	assert.True(t, reg.Advance(4))
	assert.False(t, reg.Advance(4))
	assert.False(t, reg.Advance(2))
	assert.Equal(t, int64(4), reg.Floor())

	_, err := reg.Acquire(3)
	require.ErrorIs(t, err, kv.ErrCompacted)

	snap, err := reg.Acquire(4)
	require.NoError(t, err)
	snap.Release()
}

// Snapshots opened before the floor moves keep their revision registered.
func TestRegistry_HeldAcrossAdvance(t *testing.T) {
	t.Parallel()

	reg := snapshot.NewRegistry()

	snap, err := reg.Acquire(2)
	require.NoError(t, err)

	reg.Advance(10)

	oldest, ok := reg.Oldest()
	require.True(t, ok)
	assert.Equal(t, int64(2), oldest)

	snap.Release()
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	reg := snapshot.NewRegistry()

	var wg sync.WaitGroup

	for i := range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := range 100 {
				snap, err := reg.Acquire(int64(i*100 + j))
				if err == nil {
					snap.Release()
				}
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, 0, reg.Active())
}
