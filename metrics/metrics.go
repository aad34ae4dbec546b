// Package metrics exposes Prometheus collectors for the store.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "mvcc"
)

// Metrics holds the store collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	rangeTotal        *prometheus.CounterVec
	rangeItems        prometheus.Histogram
	batchesTotal      prometheus.Counter
	mutationsTotal    *prometheus.CounterVec
	compactionRemoved prometheus.Counter
	compactionPasses  *prometheus.CounterVec
	currentRevision   prometheus.Gauge
	compactionFloor   prometheus.Gauge
	activeSnapshots   prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rangeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "range_total",
			Help:      "Range requests by outcome.",
		}, []string{"result"}),
		rangeItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "range_items",
			Help:      "Number of items returned by range requests.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		batchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Committed mutation batches.",
		}),
		mutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Applied mutations by type.",
		}, []string{"type"}),
		compactionRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compaction_removed_records_total",
			Help:      "Records physically removed by compaction.",
		}),
		compactionPasses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compaction_passes_total",
			Help:      "Compaction passes by outcome.",
		}, []string{"result"}),
		currentRevision: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "current_revision",
			Help:      "Last committed main revision.",
		}),
		compactionFloor: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "compaction_floor",
			Help:      "Logical compaction floor.",
		}),
		activeSnapshots: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_snapshots",
			Help:      "Range reads currently holding a snapshot.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.rangeTotal,
			m.rangeItems,
			m.batchesTotal,
			m.mutationsTotal,
			m.compactionRemoved,
			m.compactionPasses,
			m.currentRevision,
			m.compactionFloor,
			m.activeSnapshots,
		)
	}

	return m
}

// Range records a finished range request.
func (m *Metrics) Range(result string, items int) {
	if m == nil {
		return
	}

	m.rangeTotal.WithLabelValues(result).Inc()

	if result == ResultOK {
		m.rangeItems.Observe(float64(items))
	}
}

// Batch records a committed batch.
func (m *Metrics) Batch(revision int64, puts, deletes int) {
	if m == nil {
		return
	}

	m.batchesTotal.Inc()
	m.mutationsTotal.WithLabelValues("put").Add(float64(puts))
	m.mutationsTotal.WithLabelValues("delete").Add(float64(deletes))
	m.currentRevision.Set(float64(revision))
}

// Revision records the current revision without a batch, used on restore.
func (m *Metrics) Revision(revision int64) {
	if m == nil {
		return
	}

	m.currentRevision.Set(float64(revision))
}

// CompactionPass records a compaction pass and the records it removed.
func (m *Metrics) CompactionPass(result string, removed int) {
	if m == nil {
		return
	}

	m.compactionPasses.WithLabelValues(result).Inc()
	m.compactionRemoved.Add(float64(removed))
}

// Floor records the logical compaction floor.
func (m *Metrics) Floor(floor int64) {
	if m == nil {
		return
	}

	m.compactionFloor.Set(float64(floor))
}

// SnapshotOpened records a snapshot acquisition.
func (m *Metrics) SnapshotOpened() {
	if m == nil {
		return
	}

	m.activeSnapshots.Inc()
}

// SnapshotClosed records a snapshot release.
func (m *Metrics) SnapshotClosed() {
	if m == nil {
		return
	}

	m.activeSnapshots.Dec()
}

// Outcome labels.
const (
	ResultOK        = "ok"
	ResultError     = "error"
	ResultCompacted = "compacted"
	ResultHeld      = "held"
	ResultCancelled = "cancelled"
)
