package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	mvcc "github.com/tarantool/go-mvcc"
	"github.com/tarantool/go-mvcc/metrics"
	"github.com/tarantool/go-mvcc/server"
)

func newServeCmd(flags *clientFlags) *cobra.Command {
	var (
		configPath string
		override   config
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the store over the etcd KV API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			applyOverrides(cmd, &cfg, override, flags)

			if err = cfg.validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}

			defer func() { _ = logger.Sync() }()

			return serve(cmd.Context(), cfg, logger)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "path to a YAML config file")
	f.StringVar(&override.Listen, "listen", defaultListen, "gRPC listen address")
	f.StringVar(&override.MetricsListen, "metrics-listen", defaultMetricsListen,
		"address of the /metrics endpoint, empty to disable")
	f.StringVar(&override.Restore, "restore", "", "backup file to load on start")
	f.StringVar(&override.SaveOnExit, "save-on-exit", "", "file to save the store to on shutdown")
	f.StringVar(&override.BackupKey, "backup-key", "", "PEM RSA private key signing backups")
	f.Int64Var(&override.Compaction.Retention, "retention", 0,
		"number of most recent revisions kept by automatic compaction, 0 disables it")

	return cmd
}

// applyOverrides copies the flags set on the command line over cfg.
func applyOverrides(cmd *cobra.Command, cfg *config, override config, flags *clientFlags) {
	changed := cmd.Flags().Changed

	if changed("listen") {
		cfg.Listen = override.Listen
	}

	if changed("metrics-listen") {
		cfg.MetricsListen = override.MetricsListen
	}

	if changed("restore") {
		cfg.Restore = override.Restore
	}

	if changed("save-on-exit") {
		cfg.SaveOnExit = override.SaveOnExit
	}

	if changed("backup-key") {
		cfg.BackupKey = override.BackupKey
	}

	if changed("retention") {
		cfg.Compaction.Retention = override.Compaction.Retention
	}

	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
}

func serve(ctx context.Context, cfg config, logger *zap.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	)

	opts := []mvcc.Option{
		mvcc.WithLogger(logger),
		mvcc.WithMetrics(metrics.New(reg)),
		mvcc.WithCompaction(cfg.Compaction),
		mvcc.WithScanPageSize(cfg.ScanPageSize),
	}

	signer, err := cfg.backupSigner()
	if err != nil {
		return err
	}

	if signer != nil {
		opts = append(opts, mvcc.WithBackupSigner(signer))
	}

	store, err := openStore(cfg.Restore, opts...)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	grpcServer := grpc.NewServer()
	server.New(store,
		server.WithLogger(logger),
		server.WithMember(cfg.ClusterID, cfg.MemberID),
	).Register(grpcServer)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return store.Run(gctx)
	})

	g.Go(func() error {
		logger.Info("serving etcd KV API", zap.String("address", lis.Addr().String()))

		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("grpc server stopped: %w", err)
		}

		return nil
	})

	var httpServer *http.Server

	if cfg.MetricsListen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})) //nolint:exhaustruct

		httpServer = &http.Server{ //nolint:exhaustruct
			Addr:              cfg.MetricsListen,
			Handler:           mux,
			ReadHeaderTimeout: cfg.ShutdownTimeout,
		}

		g.Go(func() error {
			logger.Info("serving metrics", zap.String("address", cfg.MetricsListen))

			err := httpServer.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server stopped: %w", err)
			}

			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		grpcServer.GracefulStop()

		if httpServer == nil {
			return nil
		}

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.ShutdownTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx) //nolint:wrapcheck
	})

	err = g.Wait()

	if cfg.SaveOnExit != "" {
		err = errors.Join(err, saveStore(store, cfg.SaveOnExit))
	}

	return err
}

func openStore(path string, opts ...mvcc.Option) (*mvcc.Store, error) {
	if path == "" {
		return mvcc.New(opts...), nil
	}

	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to open backup: %w", err)
	}
	defer func() { _ = f.Close() }()

	return mvcc.Restore(f, opts...) //nolint:wrapcheck
}

// saveStore writes the backup next to path and renames it into place, so an
// interrupted save keeps the previous backup.
func saveStore(store *mvcc.Store, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	defer func() { _ = os.Remove(tmp.Name()) }()

	if err = store.Save(tmp); err != nil {
		_ = tmp.Close()
		return err //nolint:wrapcheck
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync backup: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close backup: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to install backup: %w", err)
	}

	return nil
}
