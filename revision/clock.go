package revision

import (
	"sync"
	"sync/atomic"
)

// Clock issues strictly increasing revisions. It is owned by a single store
// and shared explicitly with its writers.
//
// A batch is opened with Begin, extended with Next and published with Commit.
// Current only ever reports committed main revisions.
type Clock struct {
	mu      sync.Mutex
	open    bool
	pending Revision

	committed atomic.Int64
}

// NewClock creates a clock whose last committed revision is zero.
func NewClock() *Clock {
	return &Clock{}
}

// Begin opens a new batch and returns its first revision (committed+1, 0).
// Calling Begin while a batch is open is a bug.
func (c *Clock) Begin() Revision {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open {
		panic("revision: batch is already open")
	}

	c.open = true
	c.pending = Revision{Main: c.committed.Load() + 1, Sub: 0}

	return c.pending
}

// Next returns the next revision of the open batch, incrementing only sub.
func (c *Clock) Next() Revision {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		panic("revision: no open batch")
	}

	c.pending.Sub++

	return c.pending
}

// Commit publishes the open batch's main revision.
func (c *Clock) Commit() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		panic("revision: no open batch")
	}

	c.open = false
	c.committed.Store(c.pending.Main)

	return c.pending.Main
}

// Current returns the last committed main revision.
func (c *Clock) Current() int64 {
	return c.committed.Load()
}

// Restore seeds the committed revision, used when loading a backup into a
// fresh store. It must not be called concurrently with writers.
func (c *Clock) Restore(main int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open {
		panic("revision: restore with open batch")
	}

	if main > c.committed.Load() {
		c.committed.Store(main)
	}
}
