// Package revision provides the logical timestamps ordering all mutations
// and the clock that issues them.
package revision

import "fmt"

// Revision is a (main, sub) pair. Main increases once per committed mutation
// batch, sub disambiguates mutations within one batch.
type Revision struct {
	Main int64
	Sub  int64
}

// Compare returns -1, 0 or 1 if r is less than, equal to or greater than other.
func (r Revision) Compare(other Revision) int {
	switch {
	case r.Main < other.Main:
		return -1
	case r.Main > other.Main:
		return 1
	case r.Sub < other.Sub:
		return -1
	case r.Sub > other.Sub:
		return 1
	default:
		return 0
	}
}

// GreaterThan reports whether r is ordered after other.
func (r Revision) GreaterThan(other Revision) bool {
	return r.Compare(other) > 0
}

// IsZero reports whether r is the zero revision, which is never issued.
func (r Revision) IsZero() bool {
	return r.Main == 0 && r.Sub == 0
}

func (r Revision) String() string {
	return fmt.Sprintf("%d_%d", r.Main, r.Sub)
}
