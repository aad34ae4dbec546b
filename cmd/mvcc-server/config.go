package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tarantool/go-mvcc/compactor"
	"github.com/tarantool/go-mvcc/crypto"
	"github.com/tarantool/go-mvcc/marshaller"
)

const (
	defaultListen        = "127.0.0.1:2379"
	defaultMetricsListen = "127.0.0.1:9379"
	defaultLogLevel      = "info"
	defaultDialTimeout   = 5 * time.Second
	defaultShutdown      = 10 * time.Second
)

var errConfig = errors.New("invalid configuration")

// config is the serve configuration, read from a YAML file and overridden by
// flags.
type config struct {
	Listen string `yaml:"listen"`
	// MetricsListen is the address of the /metrics endpoint, empty disables it.
	MetricsListen string `yaml:"metrics_listen"`
	LogLevel      string `yaml:"log_level"`

	// Restore is a backup file the store is loaded from on start.
	Restore string `yaml:"restore"`
	// SaveOnExit is a file the store is saved to on shutdown.
	SaveOnExit string `yaml:"save_on_exit"`
	// BackupKey is a PEM RSA private key signing saved backups; restored
	// backups must then be signed by it.
	BackupKey string `yaml:"backup_key"`

	ScanPageSize int    `yaml:"scan_page_size"`
	ClusterID    uint64 `yaml:"cluster_id"`
	MemberID     uint64 `yaml:"member_id"`

	ShutdownTimeout time.Duration    `yaml:"shutdown_timeout"`
	Compaction      compactor.Config `yaml:"compaction"`
}

func defaultConfig() config {
	return config{
		Listen:          defaultListen,
		MetricsListen:   defaultMetricsListen,
		LogLevel:        defaultLogLevel,
		Restore:         "",
		SaveOnExit:      "",
		BackupKey:       "",
		ScanPageSize:    0,
		ClusterID:       0,
		MemberID:        0,
		ShutdownTimeout: defaultShutdown,
		Compaction:      compactor.DefaultConfig(),
	}
}

// parseConfig decodes a YAML config; fields left out keep their defaults.
func parseConfig(data []byte) (config, error) {
	cfg, err := marshaller.NewTypedYamlMarshaller[config]().Unmarshal(data)
	if err != nil {
		return config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	def := defaultConfig()

	if cfg.Listen == "" {
		cfg.Listen = def.Listen
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = def.ShutdownTimeout
	}

	if cfg.Compaction.BatchLimit == 0 {
		cfg.Compaction.BatchLimit = def.Compaction.BatchLimit
	}

	if cfg.Compaction.BatchInterval == 0 {
		cfg.Compaction.BatchInterval = def.Compaction.BatchInterval
	}

	if cfg.Compaction.RetryInterval == 0 {
		cfg.Compaction.RetryInterval = def.Compaction.RetryInterval
	}

	if cfg.Compaction.RetentionInterval == 0 {
		cfg.Compaction.RetentionInterval = def.Compaction.RetentionInterval
	}

	return cfg, cfg.validate()
}

func loadConfig(path string) (config, error) {
	if path == "" {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return config{}, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(data)
}

func (c config) validate() error {
	if c.Compaction.Retention < 0 {
		return fmt.Errorf("%w: negative retention %d", errConfig, c.Compaction.Retention)
	}

	if c.ScanPageSize < 0 {
		return fmt.Errorf("%w: negative scan page size %d", errConfig, c.ScanPageSize)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	return nil
}

// newLogger builds a production JSON logger at level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}

// backupSigner loads the backup signing key, nil when none is configured.
func (c config) backupSigner() (crypto.SignerVerifier, error) {
	if c.BackupKey == "" {
		return nil, nil //nolint:nilnil
	}

	data, err := os.ReadFile(c.BackupKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup key: %w", err)
	}

	signer, err := crypto.ParseRSAPSS(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load backup key: %w", err)
	}

	return signer, nil
}
