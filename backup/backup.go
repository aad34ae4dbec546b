// Package backup writes and reads point-in-time images of a store.
//
// A backup is a MessagePack envelope carrying the encoded image together
// with its checksum and the name of the hasher that produced it, optionally
// signed.
package backup

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tarantool/go-mvcc/crypto"
	"github.com/tarantool/go-mvcc/hasher"
	"github.com/tarantool/go-mvcc/internal/options"
	"github.com/tarantool/go-mvcc/marshaller"
)

// FormatVersion is the image layout written by [Write].
const FormatVersion = 1

// Image is the complete retained state of a store.
type Image struct {
	Format int `msgpack:"format"`
	// Revision is the last committed main revision.
	Revision int64 `msgpack:"revision"`
	// Floor is the compaction floor; history below it is already pruned.
	Floor int64 `msgpack:"floor"`
	Keys  []Key `msgpack:"keys"`
}

type envelope struct {
	Hasher    string `msgpack:"hasher"`
	Checksum  []byte `msgpack:"checksum"`
	Signer    string `msgpack:"signer,omitempty"`
	Signature []byte `msgpack:"signature,omitempty"`
	Payload   []byte `msgpack:"payload"`
}

type backupOptions struct {
	signer   crypto.Signer
	verifier crypto.Verifier
}

// Option configures [Write] and [Read].
type Option = options.OptionCallback[backupOptions]

// WithSigner signs written backups with s.
func WithSigner(s crypto.Signer) Option {
	return func(opts *backupOptions) {
		opts.signer = s
	}
}

// WithVerifier makes [Read] accept only backups with a valid signature.
func WithVerifier(v crypto.Verifier) Option {
	return func(opts *backupOptions) {
		opts.verifier = v
	}
}

//nolint:gochecknoglobals
var (
	imageMarshaller    = marshaller.NewTypedMsgpackMarshaller[Image]()
	envelopeMarshaller = marshaller.NewTypedMsgpackMarshaller[envelope]()
)

// Write encodes img, checksums it with h and writes the result to w.
func Write(w io.Writer, img Image, h hasher.Hasher, opts ...Option) error {
	o := options.ApplyOptions(nil, opts)
	img.Format = FormatVersion

	payload, err := imageMarshaller.Marshal(img)
	if err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}

	checksum, err := h.Hash(payload)
	if err != nil {
		return fmt.Errorf("failed to checksum image: %w", err)
	}

	env := envelope{Hasher: h.Name(), Checksum: checksum, Signer: "", Signature: nil, Payload: payload}

	if o.signer != nil {
		env.Signer = o.signer.Name()

		env.Signature, err = o.signer.Sign(payload)
		if err != nil {
			return fmt.Errorf("failed to sign image: %w", err)
		}
	}

	data, err := envelopeMarshaller.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	return nil
}

// Read reads a backup written by [Write] and verifies its checksum and,
// with [WithVerifier], its signature.
func Read(r io.Reader, opts ...Option) (Image, error) {
	o := options.ApplyOptions(nil, opts)

	data, err := io.ReadAll(r)
	if err != nil {
		return Image{}, fmt.Errorf("failed to read backup: %w", err)
	}

	env, err := envelopeMarshaller.Unmarshal(data)
	if err != nil {
		return Image{}, fmt.Errorf("failed to decode envelope: %w", err)
	}

	h, err := hasher.ByName(env.Hasher)
	if err != nil {
		return Image{}, fmt.Errorf("failed to verify backup: %w", err)
	}

	checksum, err := h.Hash(env.Payload)
	if err != nil {
		return Image{}, fmt.Errorf("failed to verify backup: %w", err)
	}

	if !bytes.Equal(checksum, env.Checksum) {
		return Image{}, ErrChecksumMismatch
	}

	if err = verify(o.verifier, env); err != nil {
		return Image{}, err
	}

	img, err := imageMarshaller.Unmarshal(env.Payload)
	if err != nil {
		return Image{}, fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Format != FormatVersion {
		return Image{}, fmt.Errorf("%w: %d", ErrUnsupportedFormat, img.Format)
	}

	return img, nil
}

func verify(v crypto.Verifier, env envelope) error {
	switch {
	case v == nil:
		return nil
	case len(env.Signature) == 0:
		return ErrUnsigned
	case env.Signer != v.Name():
		return fmt.Errorf("%w: signed with %q, expected %q", ErrSignature, env.Signer, v.Name())
	}

	if err := v.Verify(env.Payload, env.Signature); err != nil {
		return fmt.Errorf("%w: %w", ErrSignature, err)
	}

	return nil
}
