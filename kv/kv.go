// Package kv provides key-value data structures and error kinds shared by the
// versioned index, the range evaluator and the store.
// It defines the core KeyValue type returned by range reads.
package kv

// KeyValue represents a key-value pair with revision metadata.
// Revisions are main revisions, matching the etcd wire representation.
type KeyValue struct {
	// Key is the raw key.
	Key []byte
	// Value is the raw value, nil for keys-only reads.
	Value []byte

	// CreateRevision is the revision of the last creation of this key.
	CreateRevision int64
	// ModRevision is the revision number of the last modification to this key.
	ModRevision int64
	// Version is the number of modifications since the key was created.
	Version int64
}
