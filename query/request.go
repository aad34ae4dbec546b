// Package query evaluates etcd-style range reads against a versioned index
// snapshot: filtering by revision bounds, ordering, counting and pagination.
package query

import (
	"bytes"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-mvcc/index"
	"github.com/tarantool/go-mvcc/kv"
)

// SortOrder is the requested result order.
type SortOrder int

const (
	// SortNone keeps the natural ascending key order.
	SortNone SortOrder = iota
	// SortAscend orders by the sort target, lowest first.
	SortAscend
	// SortDescend orders by the sort target, highest first.
	SortDescend
)

func (o SortOrder) String() string {
	switch o {
	case SortNone:
		return "None"
	case SortAscend:
		return "Ascend"
	case SortDescend:
		return "Descend"
	default:
		return "Unknown"
	}
}

// SortTarget is the record field results are ordered by.
type SortTarget int

const (
	// SortByKey orders by key.
	SortByKey SortTarget = iota
	// SortByVersion orders by version.
	SortByVersion
	// SortByCreate orders by create revision.
	SortByCreate
	// SortByMod orders by mod revision.
	SortByMod
	// SortByValue orders by value bytes.
	SortByValue
)

func (t SortTarget) String() string {
	switch t {
	case SortByKey:
		return "Key"
	case SortByVersion:
		return "Version"
	case SortByCreate:
		return "Create"
	case SortByMod:
		return "Mod"
	case SortByValue:
		return "Value"
	default:
		return "Unknown"
	}
}

// AllKeys is the range end (and, paired with itself as key, the key) that
// selects every key greater than or equal to the start key.
var AllKeys = []byte{0} //nolint:gochecknoglobals

// Request is a single range read.
type Request struct {
	// Key is the first key of the range, required.
	Key []byte
	// RangeEnd is empty for a single-key lookup, AllKeys for every key >= Key,
	// otherwise the exclusive end of [Key, RangeEnd).
	RangeEnd []byte

	// Revision is the snapshot revision, the latest committed one when unset
	// or not positive.
	Revision option.Generic[int64]
	// Limit bounds the number of returned items, 0 means unbounded.
	Limit int64

	SortOrder  SortOrder
	SortTarget SortTarget

	// KeysOnly strips values from the returned items.
	KeysOnly bool
	// CountOnly returns the count without items.
	CountOnly bool

	// Inclusive bounds on the records' revisions.
	MinModRevision    option.Generic[int64]
	MaxModRevision    option.Generic[int64]
	MinCreateRevision option.Generic[int64]
	MaxCreateRevision option.Generic[int64]
}

// Validate checks the key and range end combination.
func (r Request) Validate() error {
	if len(r.Key) == 0 {
		return kv.NewInvalidRangeError(r.Key, r.RangeEnd, "key is not provided")
	}

	return nil
}

// ResolveRevision returns the snapshot revision the request reads at, given
// the current committed revision and the compaction floor.
func (r Request) ResolveRevision(current, floor int64) (int64, error) {
	rev, ok := r.Revision.Get()
	if !ok || rev <= 0 {
		return current, nil
	}

	switch {
	case rev > current:
		return 0, kv.NewFutureRevisionError(rev, current)
	case rev < floor:
		return 0, kv.NewCompactedError(rev, floor)
	}

	return rev, nil
}

// span returns the index scan bounds of the request; empty reports a range
// that cannot contain any key.
func (r Request) span() ([]byte, []byte, bool) {
	switch {
	case len(r.RangeEnd) == 0:
		// [key, key\x00) holds exactly key.
		end := make([]byte, len(r.Key)+1)
		copy(end, r.Key)

		return r.Key, end, false
	case bytes.Equal(r.RangeEnd, AllKeys):
		return r.Key, nil, false
	case bytes.Compare(r.RangeEnd, r.Key) <= 0:
		return nil, nil, true
	default:
		return r.Key, r.RangeEnd, false
	}
}

// matches applies the revision bound filters.
func (r Request) matches(rec index.Record) bool {
	if v, ok := r.MinModRevision.Get(); ok && rec.Mod.Main < v {
		return false
	}

	if v, ok := r.MaxModRevision.Get(); ok && rec.Mod.Main > v {
		return false
	}

	if v, ok := r.MinCreateRevision.Get(); ok && rec.Create.Main < v {
		return false
	}

	if v, ok := r.MaxCreateRevision.Get(); ok && rec.Create.Main > v {
		return false
	}

	return true
}

// sorted reports whether the result must be reordered after the scan.
func (r Request) sorted() bool {
	switch r.SortOrder {
	case SortNone:
		return false
	case SortAscend:
		return r.SortTarget != SortByKey
	default:
		return true
	}
}
