package kv_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-mvcc/kv"
)

func TestRevisionErrors(t *testing.T) {
	t.Parallel()

	err := kv.NewCompactedError(3, 5)
	require.ErrorIs(t, err, kv.ErrCompacted)
	require.NotErrorIs(t, err, kv.ErrFutureRevision)

	var revErr kv.RevisionError
	require.ErrorAs(t, err, &revErr)
	assert.Equal(t, int64(3), revErr.Requested)
	assert.Equal(t, int64(5), revErr.Bound)
	assert.Contains(t, err.Error(), kv.ErrCompacted.Error())

	err = kv.NewFutureRevisionError(9, 4)
	require.ErrorIs(t, err, kv.ErrFutureRevision)
	require.ErrorAs(t, err, &revErr)
	assert.Equal(t, int64(9), revErr.Requested)
	assert.Equal(t, int64(4), revErr.Bound)
}

func TestInvalidRangeError(t *testing.T) {
	t.Parallel()

	err := kv.NewInvalidRangeError(nil, []byte("z"), "key is not provided")
	require.ErrorIs(t, err, kv.ErrInvalidRange)

	var rangeErr kv.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Empty(t, rangeErr.Key)
	assert.Equal(t, []byte("z"), rangeErr.RangeEnd)
	assert.Contains(t, err.Error(), "key is not provided")
}

func TestCancelledError(t *testing.T) {
	t.Parallel()

	require.NoError(t, kv.NewCancelledError(nil))

	err := kv.NewCancelledError(context.Canceled)
	require.ErrorIs(t, err, kv.ErrCancelled)
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, context.DeadlineExceeded)

	err = kv.NewCancelledError(context.DeadlineExceeded)
	require.ErrorIs(t, err, kv.ErrCancelled)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, errors.Is(err, kv.ErrCancelled))
}
