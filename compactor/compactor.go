// Package compactor physically removes superseded history below the
// compaction floor in the background.
//
// A pass never prunes past the oldest open snapshot: the requested target is
// clamped to it, the partial progress is kept, and the rest is retried on the
// next pass. Passes delete in bounded batches and pause between them.
package compactor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tarantool/go-mvcc/index"
	"github.com/tarantool/go-mvcc/metrics"
)

// Target is the store state a compactor works on.
type Target interface {
	// CurrentRevision returns the last committed main revision.
	CurrentRevision() int64
	// CompactionFloor returns the logical floor.
	CompactionFloor() int64
	// AdvanceFloor raises the logical floor, reporting whether it moved.
	AdvanceFloor(floor int64) bool
	// OldestSnapshot returns the lowest revision held by an open read.
	OldestSnapshot() (int64, bool)
	// CompactBatch prunes one batch of keys below floor.
	CompactBatch(floor int64, after []byte, limit int) index.CompactResult
}

type waiter struct {
	floor int64
	done  chan struct{}
}

// Compactor runs compaction passes for a single Target.
type Compactor struct {
	target  Target
	cfg     Config
	logger  *zap.Logger
	metrics *metrics.Metrics

	wake chan struct{}

	mu      sync.Mutex
	pending int64 // highest requested floor
	reached int64 // highest floor physically compacted
	waiters []waiter
}

// New creates a compactor. A nil logger disables logging.
func New(target Target, cfg Config, logger *zap.Logger, m *metrics.Metrics) *Compactor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Compactor{
		target:  target,
		cfg:     cfg.withDefaults(),
		logger:  logger.Named("compactor"),
		metrics: m,
		wake:    make(chan struct{}, 1),
		mu:      sync.Mutex{},
		pending: 0,
		reached: 0,
		waiters: nil,
	}
}

// Schedule requests physical compaction up to floor. The returned channel is
// closed once a pass has compacted at least that far. It never blocks.
func (c *Compactor) Schedule(floor int64) <-chan struct{} {
	done := make(chan struct{})

	c.mu.Lock()
	if floor <= c.reached {
		c.mu.Unlock()
		close(done)

		return done
	}

	if floor > c.pending {
		c.pending = floor
	}

	c.waiters = append(c.waiters, waiter{floor: floor, done: done})
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}

	return done
}

// Reached returns the highest floor physically compacted so far.
func (c *Compactor) Reached() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.reached
}

// Run executes passes on demand, on the retry period and applies the
// retention policy until ctx is done.
func (c *Compactor) Run(ctx context.Context) error {
	retry := time.NewTicker(c.cfg.RetryInterval)
	defer retry.Stop()

	var retention <-chan time.Time

	if c.cfg.Retention > 0 {
		ticker := time.NewTicker(c.cfg.RetentionInterval)
		defer ticker.Stop()

		retention = ticker.C
	}

	c.logger.Info("compactor started",
		zap.Int("batch_limit", c.cfg.BatchLimit),
		zap.Duration("batch_interval", c.cfg.BatchInterval),
		zap.Int64("retention", c.cfg.Retention))

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("compactor stopped")
			return nil
		case <-c.wake:
		case <-retry.C:
		case <-retention:
			c.ApplyRetention()
		}

		if _, err := c.Pass(ctx); err != nil {
			if ctx.Err() != nil {
				c.logger.Info("compactor stopped")
				return nil
			}

			c.logger.Warn("compaction pass failed, retrying on next pass", zap.Error(err))
		}
	}
}

// ApplyRetention raises the floor so that only the configured number of most
// recent revisions stay readable, and schedules the physical pass.
func (c *Compactor) ApplyRetention() {
	if c.cfg.Retention <= 0 {
		return
	}

	floor := c.target.CurrentRevision() - c.cfg.Retention
	if floor <= 0 || !c.target.AdvanceFloor(floor) {
		return
	}

	c.logger.Debug("retention raised compaction floor", zap.Int64("floor", floor))
	c.Schedule(floor)
}

// Pass runs one compaction pass and returns the number of removed records.
func (c *Compactor) Pass(ctx context.Context) (int, error) {
	c.mu.Lock()
	want, reached := c.pending, c.reached
	c.mu.Unlock()

	if want <= reached {
		return 0, nil
	}

	goal := want
	if logical := c.target.CompactionFloor(); logical < goal {
		goal = logical
	}

	held := false
	if oldest, ok := c.target.OldestSnapshot(); ok && oldest < goal {
		goal, held = oldest, true
	}

	if goal <= reached {
		c.logger.Debug("compaction held back by open snapshots",
			zap.Int64("target", want), zap.Int64("reached", reached))
		c.metrics.CompactionPass(metrics.ResultHeld, 0)

		return 0, nil
	}

	removed := 0
	started := time.Now()

	var cursor []byte

	for {
		res := c.target.CompactBatch(goal, cursor, c.cfg.BatchLimit)
		removed += res.Removed

		if res.Done {
			break
		}

		cursor = res.Next

		if err := c.yield(ctx); err != nil {
			c.metrics.CompactionPass(metrics.ResultCancelled, removed)
			return removed, fmt.Errorf("compaction to %d interrupted: %w", goal, err)
		}
	}

	c.finish(goal)

	result := metrics.ResultOK
	if held {
		result = metrics.ResultHeld
	}

	c.metrics.CompactionPass(result, removed)

	c.logger.Info("compaction pass finished",
		zap.Int64("floor", goal),
		zap.Int64("target", want),
		zap.Bool("held", held),
		zap.Int("removed", removed),
		zap.Duration("took", time.Since(started)))

	return removed, nil
}

func (c *Compactor) yield(ctx context.Context) error {
	if c.cfg.BatchInterval <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(c.cfg.BatchInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// finish records goal as reached and releases the satisfied waiters.
func (c *Compactor) finish(goal int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if goal > c.reached {
		c.reached = goal
	}

	kept := c.waiters[:0]

	for _, w := range c.waiters {
		if w.floor <= c.reached {
			close(w.done)
			continue
		}

		kept = append(kept, w)
	}

	c.waiters = kept
}
