package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spreadScope/internal/config"
	"spreadScope/internal/sampler"
	"spreadScope/internal/storage"
)

func runCurve(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadCurve(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	points, err := sampler.Curve(cfg.Factor, cfg.Cap, cfg.Samples)
	if err != nil {
		return err
	}

	sink := storage.NewJsonlStorage(cfg.Out)
	if err := sink.PutCurveBatch(cmd.Context(), points); err != nil {
		return err
	}

	logger.Info("curve sampled",
		zap.Int("factor", cfg.Factor),
		zap.Float64("cap", cfg.Cap),
		zap.Int("samples", len(points)),
		zap.String("out", cfg.Out),
	)

	return nil
}
