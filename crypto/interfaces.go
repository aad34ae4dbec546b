// Package crypto signs and verifies store backups.
package crypto

// Signer signs backup payloads.
type Signer interface {
	// Name returns the name of the signature algorithm.
	Name() string
	// Sign returns the signature of data.
	Sign(data []byte) ([]byte, error)
}

// Verifier checks backup signatures.
type Verifier interface {
	// Name returns the name of the signature algorithm.
	Name() string
	// Verify checks that signature was made over data.
	Verify(data []byte, signature []byte) error
}

// SignerVerifier both signs and verifies.
type SignerVerifier interface {
	Signer
	Verifier
}
