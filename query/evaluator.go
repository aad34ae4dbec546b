package query

import (
	"bytes"
	"cmp"
	"context"
	"sort"

	"github.com/tarantool/go-mvcc/index"
	"github.com/tarantool/go-mvcc/internal/options"
	"github.com/tarantool/go-mvcc/kv"
)

const (
	// DefaultPageSize is the number of scanned entries between cancellation checks.
	DefaultPageSize = 256
)

// Reader is the part of the versioned index the evaluator scans.
type Reader interface {
	Walk(start, end []byte, at int64, walk index.WalkFunc) error
}

// Result is the outcome of a range read.
type Result struct {
	// Items are the returned pairs, in request order, at most Limit of them.
	Items []kv.KeyValue
	// Count is the number of matches ignoring Limit.
	Count int64
	// More reports that Count exceeds len(Items).
	More bool
	// Revision is the store revision the read was served at.
	Revision int64
}

type evaluatorOptions struct {
	pageSize int
}

// WithPageSize sets the number of scanned entries between cancellation checks.
func WithPageSize(n int) options.OptionCallback[evaluatorOptions] {
	return func(opts *evaluatorOptions) {
		if n > 0 {
			opts.pageSize = n
		}
	}
}

// Evaluator turns range requests into bounded, deterministic results.
type Evaluator struct {
	reader   Reader
	pageSize int
}

// NewEvaluator creates an evaluator over reader.
func NewEvaluator(reader Reader, opts ...options.OptionCallback[evaluatorOptions]) *Evaluator {
	o := options.ApplyOptions(func() evaluatorOptions {
		return evaluatorOptions{pageSize: DefaultPageSize}
	}, opts)

	return &Evaluator{
		reader:   reader,
		pageSize: o.pageSize,
	}
}

// Evaluate serves req at the already resolved snapshot revision at.
// The returned Result has a zero Revision, the caller fills it in.
func (e *Evaluator) Evaluate(ctx context.Context, at int64, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, kv.NewCancelledError(err)
	}

	start, end, empty := req.span()
	if empty {
		return Result{Items: nil, Count: 0, More: false, Revision: 0}, nil
	}

	// Without reordering only the first Limit matches are ever returned.
	keep := -1
	switch {
	case req.CountOnly:
		keep = 0
	case !req.sorted() && req.Limit > 0:
		keep = int(req.Limit)
	}

	var (
		items     []kv.KeyValue
		count     int64
		scanned   int
		cancelErr error
	)

	// Deleted keys count toward the page so that a range of tombstones still
	// observes cancellation.
	err := e.reader.Walk(start, end, at, func(key []byte, rec index.Record, visible bool) bool {
		scanned++
		if scanned%e.pageSize == 0 {
			if cancelErr = ctx.Err(); cancelErr != nil {
				return false
			}
		}

		if !visible || !req.matches(rec) {
			return true
		}

		count++

		if keep < 0 || len(items) < keep {
			items = append(items, rec.KeyValue(key))
		}

		return true
	})

	switch {
	case err != nil:
		return Result{}, err
	case cancelErr != nil:
		return Result{}, kv.NewCancelledError(cancelErr)
	}

	if req.sorted() {
		sortItems(items, req.SortOrder, req.SortTarget)
	}

	if req.Limit > 0 && int64(len(items)) > req.Limit {
		items = items[:req.Limit]
	}

	if req.KeysOnly {
		for i := range items {
			items[i].Value = nil
		}
	}

	return Result{
		Items:    items,
		Count:    count,
		More:     count > int64(len(items)),
		Revision: 0,
	}, nil
}

// sortItems reorders key-ordered items by target. Stability keeps ties in
// ascending key order for both directions.
func sortItems(items []kv.KeyValue, order SortOrder, target SortTarget) {
	compare := func(a, b kv.KeyValue) int {
		switch target {
		case SortByVersion:
			return cmp.Compare(a.Version, b.Version)
		case SortByCreate:
			return cmp.Compare(a.CreateRevision, b.CreateRevision)
		case SortByMod:
			return cmp.Compare(a.ModRevision, b.ModRevision)
		case SortByValue:
			return bytes.Compare(a.Value, b.Value)
		default:
			return bytes.Compare(a.Key, b.Key)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if order == SortDescend {
			return compare(items[i], items[j]) > 0
		}

		return compare(items[i], items[j]) < 0
	})
}
