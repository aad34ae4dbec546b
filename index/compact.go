package index

import "bytes"

// CompactResult describes one compaction batch.
type CompactResult struct {
	// Next is the cursor to pass to the following batch.
	Next []byte
	// Removed is the number of records dropped by the batch.
	Removed int
	// Done reports that no keys remain after Next.
	Done bool
}

// Compact removes superseded history below floor for at most limit keys
// following the after cursor (nil starts from the first key). The physical
// floor is raised first so reads below it fail instead of seeing a partially
// pruned history.
//
// A non-positive limit only raises the floor.
func (ix *Index) Compact(floor int64, after []byte, limit int) CompactResult {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if floor > ix.floor {
		ix.floor = floor
	}

	if limit <= 0 {
		return CompactResult{Next: after, Removed: 0, Done: true}
	}

	type change struct {
		ki   *keyIndex
		kept []Record
	}

	var (
		changes []change
		visited int
		next    = after
	)

	ix.tree.AscendGreaterOrEqual(probe(after), func(ki *keyIndex) bool {
		if after != nil && bytes.Equal(ki.key, after) {
			return true
		}

		if visited == limit {
			return false
		}

		visited++
		next = ki.key

		if kept, removed := ki.trim(ix.floor); removed > 0 {
			changes = append(changes, change{ki: ki, kept: kept})
		}

		return true
	})

	removed := 0

	for _, c := range changes {
		removed += len(c.ki.history) - len(c.kept)

		if len(c.kept) == 0 {
			ix.tree.Delete(c.ki)
			continue
		}

		ix.tree.ReplaceOrInsert(&keyIndex{key: c.ki.key, history: c.kept})
	}

	ix.count -= removed

	return CompactResult{Next: next, Removed: removed, Done: visited < limit}
}

// RaiseFloor raises the physical floor without pruning, used when restoring
// an already compacted history. It reports whether the floor moved.
func (ix *Index) RaiseFloor(floor int64) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if floor <= ix.floor {
		return false
	}

	ix.floor = floor

	return true
}
