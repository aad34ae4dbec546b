package index

import (
	"bytes"
	"fmt"
)

// ExportFunc receives the full retained history of one key. The slices must
// not be modified. Returning false stops the export.
type ExportFunc func(key []byte, history []Record) bool

// Export visits the retained history of every key in ascending key order,
// including deleted keys that are not compacted yet.
func (ix *Index) Export(fn ExportFunc) int64 {
	tree, floor := ix.clone()

	tree.Ascend(func(ki *keyIndex) bool {
		return fn(ki.key, ki.history)
	})

	return floor
}

// Import installs the history of a key that has no history yet.
// Records must be in strictly increasing revision order.
func (ix *Index) Import(key []byte, history []Record) error {
	if len(key) == 0 {
		return errImport(key, "empty key")
	}

	if len(history) == 0 {
		return errImport(key, "empty history")
	}

	for i := 1; i < len(history); i++ {
		if !history[i].Mod.GreaterThan(history[i-1].Mod) {
			return errImport(key, fmt.Sprintf("revision %s does not follow %s", history[i].Mod, history[i-1].Mod))
		}
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if ix.tree.Has(probe(key)) {
		return errImport(key, "key already has history")
	}

	kept := make([]Record, len(history))
	copy(kept, history)

	ix.tree.ReplaceOrInsert(&keyIndex{key: bytes.Clone(key), history: kept})
	ix.count += len(kept)

	return nil
}

// ImportError is returned when a history cannot be imported.
type ImportError struct {
	Key     []byte
	Problem string
}

func errImport(key []byte, problem string) error {
	return ImportError{Key: key, Problem: problem}
}

func (e ImportError) Error() string {
	return fmt.Sprintf("failed to import key %q: %s", e.Key, e.Problem)
}
