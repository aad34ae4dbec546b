package mvcc_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"
	"go.uber.org/zap/zaptest"

	mvcc "github.com/tarantool/go-mvcc"
	"github.com/tarantool/go-mvcc/backup"
	"github.com/tarantool/go-mvcc/crypto"
	"github.com/tarantool/go-mvcc/kv"
	"github.com/tarantool/go-mvcc/query"
)

func TestStore_SaveRestore(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	for i := range 12 {
		mustApply(t, store, put(fmt.Sprintf("k%d", i%4), fmt.Sprint(i)))
	}

	mustApply(t, store, del("k1"))
	require.NoError(t, store.Compact(context.Background(), 6, false))

	var buf bytes.Buffer
	require.NoError(t, store.Save(&buf))

	restored, err := mvcc.Restore(&buf, mvcc.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	assert.Equal(t, store.CurrentRevision(), restored.CurrentRevision())
	assert.Equal(t, store.CompactionFloor(), restored.CompactionFloor())

	for at := int64(6); at <= store.CurrentRevision(); at++ {
		assert.Equal(t, mustRange(t, store, rangeAll(at)), mustRange(t, restored, rangeAll(at)), "revision %d", at)
	}

	_, err = restored.Range(context.Background(), query.Request{ //nolint:exhaustruct
		Key:      []byte("k0"),
		Revision: option.Some[int64](5),
	})
	require.ErrorIs(t, err, kv.ErrCompacted)

	// The restored store keeps counting from the saved revision.
	rev := mustApply(t, restored, put("k1", "back"))
	assert.Equal(t, store.CurrentRevision()+1, rev)

	res := mustRange(t, restored, query.Request{Key: []byte("k1")}) //nolint:exhaustruct
	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(1), res.Items[0].Version)
	assert.Equal(t, rev, res.Items[0].CreateRevision)
}

func TestStore_SaveRestoreEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, newStore(t).Save(&buf))

	restored, err := mvcc.Restore(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(0), restored.CurrentRevision())
	assert.Empty(t, mustRange(t, restored, rangeAll(0)).Items)
}

func TestRestore_Corrupted(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	mustApply(t, store, put("key", "xxxxxxxx"))

	var buf bytes.Buffer
	require.NoError(t, store.Save(&buf))

	data := bytes.Replace(buf.Bytes(), []byte("xxxxxxxx"), []byte("yyyyyyyy"), 1)

	_, err := mvcc.Restore(bytes.NewReader(data))
	require.ErrorIs(t, err, backup.ErrChecksumMismatch)
}

func TestStore_SaveRestoreSigned(t *testing.T) {
	t.Parallel()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	signer := crypto.NewRSAPSS(*key, key.PublicKey)

	store := mvcc.New(mvcc.WithBackupSigner(signer))
	mustApply(t, store, put("key", "value"))

	var signed bytes.Buffer
	require.NoError(t, store.Save(&signed))

	restored, err := mvcc.Restore(bytes.NewReader(signed.Bytes()), mvcc.WithBackupSigner(signer))
	require.NoError(t, err)
	assert.Equal(t, int64(1), restored.CurrentRevision())

	var unsigned bytes.Buffer
	require.NoError(t, newStore(t).Save(&unsigned))

	_, err = mvcc.Restore(&unsigned, mvcc.WithBackupSigner(signer))
	require.ErrorIs(t, err, backup.ErrUnsigned)
}
