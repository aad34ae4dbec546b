package marshaller

import (
	"fmt"
)

// Formats reported by marshalling errors.
const (
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
)

// MarshalError is returned when a value cannot be encoded.
type MarshalError struct {
	Format string
	parent error
}

func errMarshal(format string, parent error) error {
	if parent == nil {
		return nil
	}

	return MarshalError{Format: format, parent: parent}
}

func (e MarshalError) Unwrap() error {
	return e.parent
}

func (e MarshalError) Error() string {
	return fmt.Sprintf("failed to marshal %s: %s", e.Format, e.parent)
}

// UnmarshalError is returned when data cannot be decoded, for example a
// truncated backup or a malformed config file.
type UnmarshalError struct {
	Format string
	parent error
}

func errUnmarshal(format string, parent error) error {
	if parent == nil {
		return nil
	}

	return UnmarshalError{Format: format, parent: parent}
}

func (e UnmarshalError) Unwrap() error {
	return e.parent
}

func (e UnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal %s: %s", e.Format, e.parent)
}
