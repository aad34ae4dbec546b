// Package snapshot tracks the revisions held by in-flight reads and the
// logical compaction floor that new reads are checked against.
//
// The compactor never physically removes history a registered snapshot may
// still need: its physical target is the lower of the logical floor and the
// oldest active snapshot.
package snapshot

import (
	"sync"

	"github.com/tarantool/go-mvcc/kv"
)

// Registry is a reference-counted set of open read revisions.
type Registry struct {
	mu    sync.Mutex
	floor int64
	refs  map[int64]int
}

// NewRegistry creates a registry with a zero floor.
func NewRegistry() *Registry {
	return &Registry{
		mu:    sync.Mutex{},
		floor: 0,
		refs:  make(map[int64]int),
	}
}

// Snapshot is a registered read at a fixed revision.
type Snapshot struct {
	registry *Registry
	revision int64
	once     sync.Once
}

// Revision returns the main revision the snapshot reads at.
func (s *Snapshot) Revision() int64 {
	return s.revision
}

// Release unregisters the snapshot. It is safe to call more than once.
func (s *Snapshot) Release() {
	s.once.Do(func() {
		s.registry.release(s.revision)
	})
}

// Acquire registers a read at rev. It fails with kv.ErrCompacted if rev is
// below the logical floor; the check and the registration are atomic with
// respect to Advance.
func (r *Registry) Acquire(rev int64) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rev < r.floor {
		return nil, kv.NewCompactedError(rev, r.floor)
	}

	r.refs[rev]++

	return &Snapshot{registry: r, revision: rev, once: sync.Once{}}, nil
}

func (r *Registry) release(rev int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch n := r.refs[rev]; {
	case n <= 0:
		panic("snapshot: release of unregistered revision")
	case n == 1:
		delete(r.refs, rev)
	default:
		r.refs[rev] = n - 1
	}
}

// Advance raises the logical floor. It is a no-op returning false when floor
// is not higher than the current one.
func (r *Registry) Advance(floor int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if floor <= r.floor {
		return false
	}

	r.floor = floor

	return true
}

// Floor returns the logical compaction floor.
func (r *Registry) Floor() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.floor
}

// Oldest returns the lowest revision held by an active snapshot.
func (r *Registry) Oldest() (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		oldest int64
		found  bool
	)

	for rev := range r.refs {
		if !found || rev < oldest {
			oldest, found = rev, true
		}
	}

	return oldest, found
}

// Active returns the number of open snapshots.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, n := range r.refs {
		total += n
	}

	return total
}
