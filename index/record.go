package index

import (
	"bytes"
	"sort"

	"github.com/tarantool/go-mvcc/kv"
	"github.com/tarantool/go-mvcc/revision"
)

// Record is the immutable state of a key at one revision.
type Record struct {
	// Value is nil for tombstones.
	Value []byte
	// Create is the revision of the key's last creation.
	Create revision.Revision
	// Mod is the revision of this record.
	Mod revision.Revision
	// Version counts modifications since creation, 0 for tombstones.
	Version int64
	// Tombstone marks a deletion.
	Tombstone bool
}

// KeyValue converts the record to its wire representation. The key and value
// are copied, the result does not share memory with the index.
func (r Record) KeyValue(key []byte) kv.KeyValue {
	return kv.KeyValue{
		Key:            bytes.Clone(key),
		Value:          bytes.Clone(r.Value),
		CreateRevision: r.Create.Main,
		ModRevision:    r.Mod.Main,
		Version:        r.Version,
	}
}

// keyIndex is the append-only history of one key, ordered by Mod.
// A keyIndex stored in the tree is never mutated in place, writers replace it.
type keyIndex struct {
	key     []byte
	history []Record
}

func (ki *keyIndex) last() (Record, bool) {
	if ki == nil || len(ki.history) == 0 {
		return Record{}, false
	}

	return ki.history[len(ki.history)-1], true
}

// position returns the index of the latest record with Mod.Main <= at, or -1.
func (ki *keyIndex) position(at int64) int {
	return sort.Search(len(ki.history), func(i int) bool {
		return ki.history[i].Mod.Main > at
	}) - 1
}

// at returns the visible record at main revision at.
func (ki *keyIndex) at(at int64) (Record, bool) {
	pos := ki.position(at)
	if pos < 0 || ki.history[pos].Tombstone {
		return Record{}, false
	}

	return ki.history[pos], true
}

// trim returns the history that keeps the state at floor derivable and the
// number of records dropped. An empty result means the key can be removed.
func (ki *keyIndex) trim(floor int64) ([]Record, int) {
	pos := ki.position(floor)
	if pos < 0 {
		return ki.history, 0
	}

	start := pos
	if ki.history[pos].Tombstone {
		// Absence at floor is implied by having no record at or below it.
		start = pos + 1
	}

	if start == 0 {
		return ki.history, 0
	}

	kept := make([]Record, len(ki.history)-start)
	copy(kept, ki.history[start:])

	return kept, start
}

func lessKeyIndex(a, b *keyIndex) bool {
	return compareKeys(a.key, b.key) < 0
}
