package mvcc

import (
	"go.uber.org/zap"

	"github.com/tarantool/go-mvcc/compactor"
	"github.com/tarantool/go-mvcc/crypto"
	"github.com/tarantool/go-mvcc/internal/options"
	"github.com/tarantool/go-mvcc/metrics"
)

// storeOptions contains configuration options for store instances.
type storeOptions struct {
	logger     *zap.Logger
	metrics    *metrics.Metrics
	compaction compactor.Config
	pageSize   int
	signer     crypto.SignerVerifier
}

// Option configures a [Store] created by [New] or [Restore].
type Option = options.OptionCallback[storeOptions]

func defaultStoreOptions() storeOptions {
	return storeOptions{
		logger:     zap.NewNop(),
		metrics:    nil,
		compaction: compactor.DefaultConfig(),
		pageSize:   0,
		signer:     nil,
	}
}

// WithLogger configures the logger of the store and its compactor.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *storeOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMetrics configures the collectors the store records into.
func WithMetrics(m *metrics.Metrics) Option {
	return func(opts *storeOptions) {
		opts.metrics = m
	}
}

// WithCompaction configures the background compactor.
func WithCompaction(cfg compactor.Config) Option {
	return func(opts *storeOptions) {
		opts.compaction = cfg
	}
}

// WithScanPageSize sets how many entries a range scan visits between
// cancellation checks.
func WithScanPageSize(n int) Option {
	return func(opts *storeOptions) {
		opts.pageSize = n
	}
}

// WithBackupSigner signs backups written by [Store.Save] and makes
// [Restore] reject backups without a valid signature.
func WithBackupSigner(sv crypto.SignerVerifier) Option {
	return func(opts *storeOptions) {
		opts.signer = sv
	}
}
