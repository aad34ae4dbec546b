// Package hasher computes the checksums that guard store backups.
package hasher

import (
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
)

var (
	// ErrDataIsNil is returned if the passed data is nil.
	ErrDataIsNil = errors.New("data is nil")
	// ErrUnknownHasher is returned by [ByName] for unsupported algorithms.
	ErrUnknownHasher = errors.New("unknown hasher")
)

// Hasher calculates a digest of a byte slice.
// Implementations are safe for concurrent use.
type Hasher interface {
	Name() string
	Hash(data []byte) ([]byte, error)
}

type digestHasher struct {
	name    string
	newHash func() hash.Hash
}

// Name implements Hasher interface.
func (h digestHasher) Name() string {
	return h.name
}

// Hash implements Hasher interface. Every call starts a fresh digest.
func (h digestHasher) Hash(data []byte) ([]byte, error) {
	if data == nil {
		return nil, ErrDataIsNil
	}

	digest := h.newHash()

	n, err := digest.Write(data)
	if n < len(data) || err != nil {
		return nil, fmt.Errorf("failed to write data: %w", err)
	}

	return digest.Sum(nil), nil
}

// NewSHA256Hasher creates a sha256 hasher.
func NewSHA256Hasher() Hasher {
	return digestHasher{name: "sha256", newHash: sha256.New}
}

// NewSHA1Hasher creates a sha1 hasher, kept for reading old backups.
func NewSHA1Hasher() Hasher {
	return digestHasher{name: "sha1", newHash: sha1.New} //nolint:gosec
}

// ByName returns the hasher with the given [Hasher.Name].
func ByName(name string) (Hasher, error) {
	switch name {
	case "sha256":
		return NewSHA256Hasher(), nil
	case "sha1":
		return NewSHA1Hasher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
	}
}
