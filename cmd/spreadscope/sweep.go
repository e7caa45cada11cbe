package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spreadScope/internal/config"
	"spreadScope/internal/sampler"
	"spreadScope/internal/storage"
	"spreadScope/internal/storage/postgres"
	"spreadScope/internal/sweep"
)

func runSweep(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadSweep(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	factors, err := sweep.ParseIntAxis(cfg.Factors)
	if err != nil {
		return err
	}
	caps, err := sweep.ParseFloatAxis(cfg.Caps)
	if err != nil {
		return err
	}
	imbalances, err := sweep.ParseFloatAxis(cfg.Imbalances)
	if err != nil {
		return err
	}
	baseSpreads, err := sweep.ParseFloatAxis(cfg.BaseSpreads)
	if err != nil {
		return err
	}

	grid := sampler.Grid{
		Factors:     factors,
		Caps:        caps,
		Imbalances:  imbalances,
		BaseSpreads: baseSpreads,
	}
	if err := grid.Validate(); err != nil {
		return err
	}
	if cfg.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sink sweep.Sink
	var stateStore sweep.StateStore
	switch {
	case cfg.PGDSN != "":
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		sink = store
		if cfg.StateFile != "" {
			stateStore = &sweep.FileStateStore{Path: cfg.StateFile}
		} else {
			stateStore = &sweep.DBStateStore{Store: store, Name: fmt.Sprintf("sweep:%d", grid.Size())}
		}
	case cfg.Out != "":
		sink = storage.NewJsonlStorage(cfg.Out)
		if cfg.StateFile != "" {
			stateStore = &sweep.FileStateStore{Path: cfg.StateFile}
		}
	default:
		return fmt.Errorf("either pg-dsn or out is required")
	}

	runner := sweep.NewRunner(sweep.RunConfig{
		Grid:       grid,
		BatchSize:  uint64(cfg.BatchSize),
		StateStore: stateStore,
	}, sink, logger)

	logger.Info("sweep start",
		zap.Int("scenarios", grid.Size()),
		zap.Int("batch_size", cfg.BatchSize),
		zap.String("pg_dsn", redactDSN(cfg.PGDSN)),
		zap.String("out", cfg.Out),
	)

	return runner.Run(ctx)
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	return "***"
}
