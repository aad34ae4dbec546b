package compactor

import "time"

const (
	// DefaultBatchLimit is the number of keys pruned per batch.
	DefaultBatchLimit = 1000
	// DefaultBatchInterval is the pause between two batches of one pass.
	DefaultBatchInterval = 10 * time.Millisecond
	// DefaultRetryInterval is the period of passes retrying held back targets.
	DefaultRetryInterval = time.Second
	// DefaultRetentionInterval is the period of the revision retention policy.
	DefaultRetentionInterval = 5 * time.Minute
)

// Config configures a Compactor.
type Config struct {
	// BatchLimit is the number of keys pruned while holding the index lock.
	BatchLimit int `yaml:"batch_limit"`
	// BatchInterval is the pause between batches, letting readers and writers in.
	BatchInterval time.Duration `yaml:"batch_interval"`
	// RetryInterval is the period of passes retrying targets held back by
	// open snapshots.
	RetryInterval time.Duration `yaml:"retry_interval"`
	// Retention keeps only the given number of most recent main revisions;
	// zero disables automatic compaction.
	Retention int64 `yaml:"retention"`
	// RetentionInterval is how often the retention policy is applied.
	RetentionInterval time.Duration `yaml:"retention_interval"`
}

// DefaultConfig returns the default compaction settings, with automatic
// compaction disabled.
func DefaultConfig() Config {
	return Config{
		BatchLimit:        DefaultBatchLimit,
		BatchInterval:     DefaultBatchInterval,
		RetryInterval:     DefaultRetryInterval,
		Retention:         0,
		RetentionInterval: DefaultRetentionInterval,
	}
}

// withDefaults fills zero fields with defaults.
func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.BatchLimit <= 0 {
		c.BatchLimit = def.BatchLimit
	}

	if c.BatchInterval < 0 {
		c.BatchInterval = 0
	}

	if c.RetryInterval <= 0 {
		c.RetryInterval = def.RetryInterval
	}

	if c.RetentionInterval <= 0 {
		c.RetentionInterval = def.RetentionInterval
	}

	return c
}
