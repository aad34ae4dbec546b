// Package index implements the versioned index: an ordered map from keys to
// their append-only history of revisions.
//
// Readers clone the underlying btree under a short structural lock and scan
// the copy-on-write clone without holding any lock, so long range scans never
// block writers and writers never disturb a scan in progress.
package index

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/google/btree"

	"github.com/tarantool/go-mvcc/kv"
	"github.com/tarantool/go-mvcc/revision"
)

const (
	// btreeDegree is the branching factor of the key tree.
	btreeDegree = 32
)

func compareKeys(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Index is the versioned index. It is safe for concurrent use; callers are
// expected to serialize writers themselves.
type Index struct {
	mu    sync.RWMutex
	tree  *btree.BTreeG[*keyIndex]
	floor int64 // physical compaction floor
	count int   // number of records across all keys
}

// New creates an empty index.
func New() *Index {
	return &Index{
		mu:    sync.RWMutex{},
		tree:  btree.NewG(btreeDegree, lessKeyIndex),
		floor: 0,
		count: 0,
	}
}

func probe(key []byte) *keyIndex {
	return &keyIndex{key: key, history: nil}
}

// Put appends a record for key at rev and returns it.
// The create revision is kept while the key is live and reset to rev when
// the key is created or re-created after a deletion.
func (ix *Index) Put(key, value []byte, rev revision.Revision) Record {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	rec := Record{
		Value:     bytes.Clone(value),
		Create:    rev,
		Mod:       rev,
		Version:   1,
		Tombstone: false,
	}

	prev, _ := ix.tree.Get(probe(key))
	if last, ok := prev.last(); ok {
		mustFollow(key, last.Mod, rev)

		if !last.Tombstone {
			rec.Create = last.Create
			rec.Version = last.Version + 1
		}
	}

	ix.append(prev, key, rec)

	return rec
}

// Delete appends a tombstone for key at rev if the key is live.
// It returns the record that was deleted.
func (ix *Index) Delete(key []byte, rev revision.Revision) (Record, bool) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	prev, _ := ix.tree.Get(probe(key))

	last, ok := prev.last()
	if !ok || last.Tombstone {
		return Record{}, false
	}

	mustFollow(key, last.Mod, rev)

	ix.append(prev, key, Record{
		Value:     nil,
		Create:    revision.Revision{},
		Mod:       rev,
		Version:   0,
		Tombstone: true,
	})

	return last, true
}

// append must be called with mu held.
func (ix *Index) append(prev *keyIndex, key []byte, rec Record) {
	next := &keyIndex{key: nil, history: nil}
	if prev != nil {
		next.key = prev.key
		// Clones taken by readers keep their own slice header, so growing
		// the shared backing array is invisible to them.
		next.history = append(prev.history, rec) //nolint:gocritic
	} else {
		next.key = bytes.Clone(key)
		next.history = []Record{rec}
	}

	ix.tree.ReplaceOrInsert(next)
	ix.count++
}

func mustFollow(key []byte, last, rev revision.Revision) {
	if !rev.GreaterThan(last) {
		panic(fmt.Sprintf("index: revision %s of key %q does not follow %s", rev, key, last))
	}
}

// Get returns the record of key visible at main revision at.
func (ix *Index) Get(key []byte, at int64) (Record, bool, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if at < ix.floor {
		return Record{}, false, kv.NewCompactedError(at, ix.floor)
	}

	ki, ok := ix.tree.Get(probe(key))
	if !ok {
		return Record{}, false, nil
	}

	rec, ok := ki.at(at)

	return rec, ok, nil
}

// Latest returns the newest live record of key, including records appended
// by a batch that is not committed yet. Callers must serialize it with writers.
func (ix *Index) Latest(key []byte) (Record, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	ki, _ := ix.tree.Get(probe(key))

	last, ok := ki.last()
	if !ok || last.Tombstone {
		return Record{}, false
	}

	return last, true
}

// VisitFunc is called for every visible key of a scan, in ascending key order.
// Returning false stops the scan.
type VisitFunc func(key []byte, rec Record) bool

// WalkFunc is called for every key of a walk, in ascending key order. The
// record is meaningful only when visible is true. Returning false stops the
// walk.
type WalkFunc func(key []byte, rec Record, visible bool) bool

// Walk calls walk for every key in [start, end) known to the index, including
// keys that are deleted or not yet created at main revision at. An empty end
// means all keys greater than or equal to start.
func (ix *Index) Walk(start, end []byte, at int64, walk WalkFunc) error {
	tree, floor := ix.clone()
	if at < floor {
		return kv.NewCompactedError(at, floor)
	}

	iter := func(ki *keyIndex) bool {
		rec, ok := ki.at(at)

		return walk(ki.key, rec, ok)
	}

	if len(end) == 0 {
		tree.AscendGreaterOrEqual(probe(start), iter)
	} else if compareKeys(start, end) < 0 {
		tree.AscendRange(probe(start), probe(end), iter)
	}

	return nil
}

// Ascend visits the keys in [start, end) that are visible at main revision
// at. An empty end means all keys greater than or equal to start.
func (ix *Index) Ascend(start, end []byte, at int64, visit VisitFunc) error {
	return ix.Walk(start, end, at, func(key []byte, rec Record, visible bool) bool {
		if !visible {
			return true
		}

		return visit(key, rec)
	})
}

// ScanRange returns all keys in [start, end) visible at main revision at.
func (ix *Index) ScanRange(start, end []byte, at int64) ([]kv.KeyValue, error) {
	var out []kv.KeyValue

	err := ix.Ascend(start, end, at, func(key []byte, rec Record) bool {
		out = append(out, rec.KeyValue(key))
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (ix *Index) clone() (*btree.BTreeG[*keyIndex], int64) {
	// Clone marks the shared nodes copy-on-write, which is a mutation.
	ix.mu.Lock()
	defer ix.mu.Unlock()

	return ix.tree.Clone(), ix.floor
}

// PhysicalFloor returns the revision below which history may have been removed.
func (ix *Index) PhysicalFloor() int64 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return ix.floor
}

// Len returns the number of keys with any retained history.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return ix.tree.Len()
}

// Records returns the number of retained records across all keys.
func (ix *Index) Records() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return ix.count
}
