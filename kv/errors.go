package kv

import (
	"errors"
	"fmt"
)

var (
	// ErrCompacted is returned when the requested revision is below the compaction floor.
	// It is not retryable without choosing a newer revision.
	ErrCompacted = errors.New("required revision has been compacted")
	// ErrFutureRevision is returned when the requested revision is not committed yet.
	ErrFutureRevision = errors.New("required revision is a future revision")
	// ErrInvalidRange is returned for malformed key and range end combinations.
	ErrInvalidRange = errors.New("invalid key range")
	// ErrCancelled is returned when the caller withdrew the request mid-scan.
	ErrCancelled = errors.New("request cancelled")
)

// RevisionError describes a request refused because of its revision.
type RevisionError struct {
	// Requested is the revision the caller asked for.
	Requested int64
	// Bound is the compaction floor or the current revision that was violated.
	Bound int64

	parent error
}

// Error returns a string representation of the revision error.
func (e RevisionError) Error() string {
	return fmt.Sprintf("%s: requested %d, bound %d", e.parent, e.Requested, e.Bound)
}

// Unwrap returns ErrCompacted or ErrFutureRevision.
func (e RevisionError) Unwrap() error {
	return e.parent
}

// NewCompactedError returns an ErrCompacted error for a read at requested below floor.
func NewCompactedError(requested, floor int64) error {
	return RevisionError{Requested: requested, Bound: floor, parent: ErrCompacted}
}

// NewFutureRevisionError returns an ErrFutureRevision error for a read at requested above current.
func NewFutureRevisionError(requested, current int64) error {
	return RevisionError{Requested: requested, Bound: current, parent: ErrFutureRevision}
}

// InvalidRangeError describes a rejected key or range end.
type InvalidRangeError struct {
	Key      []byte
	RangeEnd []byte
	Problem  string
}

// Error returns a string representation of the range error.
func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("%s [%q, %q): %s", ErrInvalidRange, e.Key, e.RangeEnd, e.Problem)
}

// Unwrap returns ErrInvalidRange.
func (e InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}

// NewInvalidRangeError returns an ErrInvalidRange error for the given range.
func NewInvalidRangeError(key, rangeEnd []byte, problem string) error {
	return InvalidRangeError{Key: key, RangeEnd: rangeEnd, Problem: problem}
}

// CancelledError wraps the context error that interrupted a scan.
type CancelledError struct {
	parent error
}

// NewCancelledError returns an ErrCancelled error wrapping the context error,
// or nil if parent is nil.
func NewCancelledError(parent error) error {
	if parent == nil {
		return nil
	}

	return CancelledError{parent: parent}
}

// Error returns a string representation of the cancellation.
func (e CancelledError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCancelled, e.parent)
}

// Is reports ErrCancelled as a match.
func (e CancelledError) Is(target error) bool {
	return target == ErrCancelled //nolint:errorlint
}

// Unwrap returns the context error.
func (e CancelledError) Unwrap() error {
	return e.parent
}
