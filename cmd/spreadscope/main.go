package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "spreadscope",
		Short:        "Dynamic spread adjustment calculator",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute tick and fee adjustments for one parameter tuple",
		RunE:  runCalc,
	}

	calcCmd.Flags().Int("factor", 0, "dynamic spread factor (negative=slow then fast, 0=linear, positive=fast then slow)")
	calcCmd.Flags().Float64("cap", 100, "dynamic spread cap in basis points")
	calcCmd.Flags().Float64("imbalance", 0, "imbalance ratio (-1.0 to 1.0)")
	calcCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(calcCmd)

	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Derive the display state (bounds, tick position, fee tier)",
		RunE:  runProject,
	}

	projectCmd.Flags().Int("factor", 0, "dynamic spread factor")
	projectCmd.Flags().Float64("cap", 100, "dynamic spread cap in basis points")
	projectCmd.Flags().Float64("imbalance", 0, "imbalance ratio (-1.0 to 1.0)")
	projectCmd.Flags().Float64("base-spread", 100, "symmetric base spread in basis points")
	projectCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(projectCmd)

	interactiveCmd := &cobra.Command{
		Use:   "interactive",
		Short: "Run the line-oriented adjustment calculator",
		RunE:  runInteractive,
	}

	root.AddCommand(interactiveCmd)

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "Sample an adjustment curve over the imbalance range",
		RunE:  runCurve,
	}

	curveCmd.Flags().Int("factor", 0, "dynamic spread factor")
	curveCmd.Flags().Float64("cap", 100, "dynamic spread cap in basis points")
	curveCmd.Flags().Int("samples", 100, "number of imbalance samples over [-1, 1]")
	curveCmd.Flags().String("out", "./data/curve.jsonl", "output JSONL path")
	curveCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(curveCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate a parameter grid and store the rows",
		RunE:  runSweep,
	}

	sweepCmd.Flags().StringSlice("factor", nil, "factor axis values (comma-separated)")
	sweepCmd.Flags().StringSlice("cap", nil, "cap axis values (comma-separated)")
	sweepCmd.Flags().StringSlice("imbalance", nil, "imbalance axis values (comma-separated)")
	sweepCmd.Flags().StringSlice("base-spread", nil, "base spread axis values (comma-separated)")
	sweepCmd.Flags().Int("batch-size", 1000, "rows per storage batch")
	sweepCmd.Flags().String("pg-dsn", "", "Postgres DSN (omit to write JSONL)")
	sweepCmd.Flags().String("out", "", "output JSONL path when no DSN is given")
	sweepCmd.Flags().String("state-file", "", "optional local state file for progress tracking")
	sweepCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(sweepCmd)

	observeCmd := &cobra.Command{
		Use:   "observe",
		Short: "Derive the imbalance from a pool's on-chain balances and compute adjustments",
		RunE:  runObserve,
	}

	observeCmd.Flags().String("rpc", "", "RPC URL")
	observeCmd.Flags().String("pool", "", "pool address")
	observeCmd.Flags().String("token0", "", "token0 address")
	observeCmd.Flags().String("token1", "", "token1 address")
	observeCmd.Flags().Int("decimals0", -1, "token0 decimals (-1 to fetch from chain)")
	observeCmd.Flags().Int("decimals1", -1, "token1 decimals (-1 to fetch from chain)")
	observeCmd.Flags().Uint64("block", 0, "block number (0 means latest)")
	observeCmd.Flags().Int("factor", 0, "dynamic spread factor")
	observeCmd.Flags().Float64("cap", 100, "dynamic spread cap in basis points")
	observeCmd.Flags().Float64("base-spread", 100, "symmetric base spread in basis points")
	observeCmd.Flags().Int("max-retries", 5, "maximum retry attempts")
	observeCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	observeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(observeCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
