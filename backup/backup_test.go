package backup_test

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-mvcc/backup"
	"github.com/tarantool/go-mvcc/crypto"
	"github.com/tarantool/go-mvcc/hasher"
	"github.com/tarantool/go-mvcc/index"
	"github.com/tarantool/go-mvcc/revision"
)

func rev(main, sub int64) revision.Revision {
	return revision.Revision{Main: main, Sub: sub}
}

func testImage() backup.Image {
	return backup.Image{
		Format:   0,
		Revision: 4,
		Floor:    2,
		Keys: []backup.Key{
			{
				Key: []byte("a"),
				History: []index.Record{
					{Value: []byte("1"), Create: rev(2, 0), Mod: rev(2, 0), Version: 1, Tombstone: false},
					{Value: []byte("2"), Create: rev(2, 0), Mod: rev(3, 1), Version: 2, Tombstone: false},
				},
			},
			{
				Key: []byte("b"),
				History: []index.Record{
					{Value: []byte("x"), Create: rev(1, 0), Mod: rev(1, 0), Version: 1, Tombstone: false},
					{Value: nil, Create: rev(0, 0), Mod: rev(4, 0), Version: 0, Tombstone: true},
				},
			},
		},
	}
}

func TestWriteRead(t *testing.T) {
	t.Parallel()

	for _, h := range []hasher.Hasher{hasher.NewSHA256Hasher(), hasher.NewSHA1Hasher()} {
		t.Run(h.Name(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			require.NoError(t, backup.Write(&buf, testImage(), h))

			img, err := backup.Read(&buf)
			require.NoError(t, err)

			expected := testImage()
			expected.Format = backup.FormatVersion
			assert.Equal(t, expected, img)
		})
	}
}

func TestRead_Corrupted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, backup.Write(&buf, testImage(), hasher.NewSHA256Hasher()))

	data := buf.Bytes()
	// The payload is the last field of the envelope, flip a byte of the last key.
	idx := bytes.LastIndex(data, []byte("x"))
	require.Positive(t, idx)
	data[idx] = 'y'

	_, err := backup.Read(bytes.NewReader(data))
	require.ErrorIs(t, err, backup.ErrChecksumMismatch)
}

func TestRead_Garbage(t *testing.T) {
	t.Parallel()

	_, err := backup.Read(bytes.NewReader([]byte("not a backup")))
	require.Error(t, err)
}

func TestRead_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, backup.Write(&buf, backup.Image{Format: 0, Revision: 0, Floor: 0, Keys: nil},
		hasher.NewSHA256Hasher()))

	img, err := backup.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(0), img.Revision)
	assert.Empty(t, img.Keys)
}

func newSigner(t *testing.T) crypto.RSAPSS {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return crypto.NewRSAPSS(*key, key.PublicKey)
}

func TestWriteRead_Signed(t *testing.T) {
	t.Parallel()

	signer := newSigner(t)

	var buf bytes.Buffer
	require.NoError(t, backup.Write(&buf, testImage(), hasher.NewSHA256Hasher(), backup.WithSigner(signer)))

	data := buf.Bytes()

	img, err := backup.Read(bytes.NewReader(data), backup.WithVerifier(signer))
	require.NoError(t, err)
	assert.Equal(t, int64(4), img.Revision)

	// Reading without a verifier ignores the signature.
	_, err = backup.Read(bytes.NewReader(data))
	require.NoError(t, err)

	_, err = backup.Read(bytes.NewReader(data), backup.WithVerifier(newSigner(t)))
	require.ErrorIs(t, err, backup.ErrSignature)
}

func TestRead_Unsigned(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, backup.Write(&buf, testImage(), hasher.NewSHA256Hasher()))

	_, err := backup.Read(&buf, backup.WithVerifier(newSigner(t)))
	require.ErrorIs(t, err, backup.ErrUnsigned)
}
