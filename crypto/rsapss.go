package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/tarantool/go-mvcc/hasher"
)

var (
	// ErrNoPEMBlock is returned when the key data holds no PEM block.
	ErrNoPEMBlock = errors.New("no PEM block found")
	// ErrNotRSAKey is returned for PEM keys of other algorithms.
	ErrNotRSAKey = errors.New("key is not an RSA key")
)

// RSAPSS signs with RSASSA-PSS over a SHA-256 digest.
type RSAPSS struct {
	publicKey  rsa.PublicKey
	privateKey rsa.PrivateKey
	hash       crypto.Hash
	hasher     hasher.Hasher
}

var _ SignerVerifier = RSAPSS{} //nolint:exhaustruct

// NewRSAPSS creates an RSAPSS from a key pair.
func NewRSAPSS(privKey rsa.PrivateKey, pubKey rsa.PublicKey) RSAPSS {
	return RSAPSS{
		publicKey:  pubKey,
		privateKey: privKey,
		hash:       crypto.SHA256,
		hasher:     hasher.NewSHA256Hasher(),
	}
}

// ParseRSAPSS creates an RSAPSS from a PEM encoded PKCS #1 or PKCS #8
// private key.
func ParseRSAPSS(data []byte) (RSAPSS, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return RSAPSS{}, ErrNoPEMBlock
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return NewRSAPSS(*key, key.PublicKey), nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return RSAPSS{}, fmt.Errorf("failed to parse private key: %w", err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return RSAPSS{}, fmt.Errorf("%w: %T", ErrNotRSAKey, parsed)
	}

	return NewRSAPSS(*key, key.PublicKey), nil
}

// Name implements Signer and Verifier.
func (r RSAPSS) Name() string {
	return "RSASSA-PSS"
}

func (r RSAPSS) options() *rsa.PSSOptions {
	return &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
		Hash:       r.hash,
	}
}

// Sign signs the SHA-256 digest of data.
func (r RSAPSS) Sign(data []byte) ([]byte, error) {
	digest, err := r.hasher.Hash(data)
	if err != nil {
		return nil, fmt.Errorf("failed to get hash: %w", err)
	}

	signature, err := rsa.SignPSS(rand.Reader, &r.privateKey, r.hash, digest, r.options())
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}

	return signature, nil
}

// Verify checks signature against the SHA-256 digest of data.
func (r RSAPSS) Verify(data []byte, signature []byte) error {
	digest, err := r.hasher.Hash(data)
	if err != nil {
		return fmt.Errorf("failed to get hash: %w", err)
	}

	err = rsa.VerifyPSS(&r.publicKey, r.hash, digest, signature, r.options())
	if err != nil {
		return fmt.Errorf("failed to verify: %w", err)
	}

	return nil
}
