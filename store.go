package mvcc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/tarantool/go-mvcc/compactor"
	"github.com/tarantool/go-mvcc/crypto"
	"github.com/tarantool/go-mvcc/index"
	"github.com/tarantool/go-mvcc/internal/options"
	"github.com/tarantool/go-mvcc/kv"
	"github.com/tarantool/go-mvcc/metrics"
	"github.com/tarantool/go-mvcc/operation"
	"github.com/tarantool/go-mvcc/query"
	"github.com/tarantool/go-mvcc/revision"
	"github.com/tarantool/go-mvcc/snapshot"
	"github.com/tarantool/go-mvcc/tx"
)

// latest reads every record appended so far, committed or not.
const latest = math.MaxInt64

// ErrUnknownOperation is returned for operations of an unsupported type.
var ErrUnknownOperation = errors.New("unknown operation type")

// Store is the multi-version key-value store.
// Writers are serialized; reads run concurrently with writers, with each
// other and with compaction.
type Store struct {
	clock     *revision.Clock
	index     *index.Index
	snapshots *snapshot.Registry
	evaluator *query.Evaluator
	compactor *compactor.Compactor

	writeMu sync.Mutex

	logger  *zap.Logger
	metrics *metrics.Metrics
	signer  crypto.SignerVerifier
}

// New creates an empty store. The background compactor only runs while
// [Store.Run] is running.
func New(opts ...Option) *Store {
	o := options.ApplyOptions(defaultStoreOptions, opts)

	s := &Store{
		clock:     revision.NewClock(),
		index:     index.New(),
		snapshots: snapshot.NewRegistry(),
		evaluator: nil,
		compactor: nil,
		writeMu:   sync.Mutex{},
		logger:    o.logger,
		metrics:   o.metrics,
		signer:    o.signer,
	}

	s.evaluator = query.NewEvaluator(s.index, query.WithPageSize(o.pageSize))
	s.compactor = compactor.New(compactionTarget{s: s}, o.compaction, o.logger, o.metrics)

	return s
}

// CurrentRevision returns the last committed main revision.
func (s *Store) CurrentRevision() int64 {
	return s.clock.Current()
}

// CompactionFloor returns the lowest main revision guaranteed readable.
func (s *Store) CompactionFloor() int64 {
	return s.snapshots.Floor()
}

// Range serves a range read from a consistent snapshot. A read that started
// before a compaction raised the floor past its revision completes normally.
func (s *Store) Range(ctx context.Context, req query.Request) (query.Result, error) {
	res, err := s.rangeRead(ctx, req)

	switch {
	case err == nil:
		s.metrics.Range(metrics.ResultOK, len(res.Items))
	case errors.Is(err, kv.ErrCompacted):
		s.metrics.Range(metrics.ResultCompacted, 0)
	case errors.Is(err, kv.ErrCancelled):
		s.metrics.Range(metrics.ResultCancelled, 0)
	default:
		s.metrics.Range(metrics.ResultError, 0)
	}

	return res, err
}

func (s *Store) rangeRead(ctx context.Context, req query.Request) (query.Result, error) {
	if err := req.Validate(); err != nil {
		return query.Result{}, err
	}

	current := s.clock.Current()

	at, err := req.ResolveRevision(current, s.snapshots.Floor())
	if err != nil {
		return query.Result{}, err
	}

	snap, err := s.snapshots.Acquire(at)
	if err != nil {
		return query.Result{}, err
	}

	s.metrics.SnapshotOpened()

	defer func() {
		snap.Release()
		s.metrics.SnapshotClosed()
	}()

	res, err := s.evaluator.Evaluate(ctx, snap.Revision(), req)
	if err != nil {
		return query.Result{}, err
	}

	res.Revision = current

	return res, nil
}

// Apply commits ops as one batch at a new main revision, each operation at
// its own sub revision. Either the whole batch becomes visible or nothing
// does. An empty batch allocates no revision.
func (s *Store) Apply(ctx context.Context, ops ...operation.Operation) (tx.Response, error) {
	for _, op := range ops {
		if err := validateOperation(op); err != nil {
			return tx.Response{}, err
		}
	}

	if err := ctx.Err(); err != nil {
		return tx.Response{}, kv.NewCancelledError(err)
	}

	if len(ops) == 0 {
		return tx.Response{Revision: s.clock.Current(), Results: nil}, nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	batch := newBatch(s.clock)
	results := make([]tx.RequestResponse, 0, len(ops))
	puts, deletes := 0, 0

	for _, op := range ops {
		switch op.Type() {
		case operation.TypePut:
			results = append(results, s.applyPut(batch, op))
			puts++
		case operation.TypeDelete:
			result := s.applyDelete(batch, op)
			results = append(results, result)
			deletes += int(result.Deleted)
		}
	}

	rev := s.clock.Commit()
	s.metrics.Batch(rev, puts, deletes)

	return tx.Response{Revision: rev, Results: results}, nil
}

func validateOperation(op operation.Operation) error {
	if !op.Type().Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownOperation, op.Type())
	}

	if len(op.Key()) == 0 {
		return kv.NewInvalidRangeError(op.Key(), op.Options().RangeEnd, "key is not provided")
	}

	return nil
}

// batch hands out the revisions of one open clock batch.
type batch struct {
	clock *revision.Clock
	first revision.Revision
	used  bool
}

// newBatch opens a clock batch; its main revision is allocated even if no
// operation ends up using a revision.
func newBatch(clock *revision.Clock) *batch {
	return &batch{clock: clock, first: clock.Begin(), used: false}
}

func (b *batch) next() revision.Revision {
	if !b.used {
		b.used = true
		return b.first
	}

	return b.clock.Next()
}

func (s *Store) applyPut(b *batch, op operation.Operation) tx.RequestResponse {
	var result tx.RequestResponse

	if op.Options().PrevKV {
		if prev, ok := s.index.Latest(op.Key()); ok {
			result.PrevKvs = []kv.KeyValue{prev.KeyValue(op.Key())}
		}
	}

	s.index.Put(op.Key(), op.Value(), b.next())

	return result
}

func (s *Store) applyDelete(b *batch, op operation.Operation) tx.RequestResponse {
	var (
		result tx.RequestResponse
		keys   [][]byte
	)

	if op.IsRange() {
		end := op.Options().RangeEnd
		if bytes.Equal(end, query.AllKeys) {
			end = nil
		}

		if end == nil || bytes.Compare(op.Key(), end) < 0 {
			// Collects the keys of the range that are live at the latest
			// revision, the loop below deletes them.
			err := s.index.Ascend(op.Key(), end, latest, func(key []byte, _ index.Record) bool {
				keys = append(keys, key)
				return true
			})
			if err != nil {
				// No floor can exceed the latest revision.
				panic(fmt.Sprintf("range delete scan failed: %v", err))
			}
		}
	} else {
		keys = [][]byte{op.Key()}
	}

	for _, key := range keys {
		if _, ok := s.index.Latest(key); !ok {
			continue
		}

		prev, ok := s.index.Delete(key, b.next())
		if !ok {
			continue
		}

		result.Deleted++

		if op.Options().PrevKV {
			result.PrevKvs = append(result.PrevKvs, prev.KeyValue(key))
		}
	}

	return result
}

// Compact raises the compaction floor to rev: reads below rev fail from now
// on, and history only needed by them is removed in the background. With
// physical set, Compact waits until that removal has happened, which needs
// [Store.Run] to be running.
func (s *Store) Compact(ctx context.Context, rev int64, physical bool) error {
	if current := s.clock.Current(); rev > current {
		return kv.NewFutureRevisionError(rev, current)
	}

	if !s.snapshots.Advance(rev) {
		return kv.NewCompactedError(rev, s.snapshots.Floor())
	}

	s.metrics.Floor(rev)
	s.logger.Debug("compaction floor raised", zap.Int64("floor", rev))

	done := s.compactor.Schedule(rev)
	if !physical {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return kv.NewCancelledError(ctx.Err())
	}
}

// Run runs the background compactor until ctx is done.
func (s *Store) Run(ctx context.Context) error {
	return s.compactor.Run(ctx) //nolint:wrapcheck
}

// compactionTarget exposes the store internals the compactor drives.
type compactionTarget struct {
	s *Store
}

var _ compactor.Target = compactionTarget{} //nolint:exhaustruct

func (t compactionTarget) CurrentRevision() int64 {
	return t.s.CurrentRevision()
}

func (t compactionTarget) CompactionFloor() int64 {
	return t.s.CompactionFloor()
}

func (t compactionTarget) AdvanceFloor(floor int64) bool {
	if floor > t.s.clock.Current() || !t.s.snapshots.Advance(floor) {
		return false
	}

	t.s.metrics.Floor(floor)

	return true
}

func (t compactionTarget) OldestSnapshot() (int64, bool) {
	return t.s.snapshots.Oldest()
}

func (t compactionTarget) CompactBatch(floor int64, after []byte, limit int) index.CompactResult {
	return t.s.index.Compact(floor, after, limit)
}
