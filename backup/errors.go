package backup

import (
	"errors"
	"fmt"
)

var (
	// ErrChecksumMismatch is returned when the payload does not match its checksum.
	ErrChecksumMismatch = errors.New("backup checksum mismatch")
	// ErrUnsupportedFormat is returned for backups written by an unknown format version.
	ErrUnsupportedFormat = errors.New("unsupported backup format")
	// ErrMalformed is returned when the payload layout is not the expected one.
	ErrMalformed = errors.New("malformed backup")
	// ErrUnsigned is returned when a signature is required but the backup has none.
	ErrUnsigned = errors.New("backup is not signed")
	// ErrSignature is returned when the backup signature does not verify.
	ErrSignature = errors.New("invalid backup signature")
)

// DecodingError is returned when a part of the backup payload cannot be decoded.
type DecodingError struct {
	Text string
	Err  error
}

func errDecoding(text string, err error) error {
	return DecodingError{Text: text, Err: err}
}

func (e DecodingError) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Text, e.Err)
}

func (e DecodingError) Unwrap() error {
	return e.Err
}

// EncodingError is returned when a part of the backup payload cannot be encoded.
type EncodingError struct {
	Text string
	Err  error
}

func errEncoding(text string, err error) error {
	return EncodingError{Text: text, Err: err}
}

func (e EncodingError) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Text, e.Err)
}

func (e EncodingError) Unwrap() error {
	return e.Err
}
