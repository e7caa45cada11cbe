package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spreadScope/internal/chain"
	"spreadScope/internal/config"
	"spreadScope/internal/display"
	"spreadScope/internal/imbalance"
	"spreadScope/internal/spread"
)

func runObserve(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadObserve(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}
	pool, err := parseAddress("pool", cfg.Pool)
	if err != nil {
		return err
	}
	token0, err := parseAddress("token0", cfg.Token0)
	if err != nil {
		return err
	}
	token1, err := parseAddress("token1", cfg.Token1)
	if err != nil {
		return err
	}
	if cfg.Cap < 0 {
		return fmt.Errorf("cap must be non-negative")
	}
	if cfg.BaseSpread < 0 {
		return fmt.Errorf("base spread must be non-negative")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
	}
	defer chainClient.Close()

	source := imbalance.NewSource(imbalance.SourceConfig{
		Pool:         pool,
		Token0:       token0,
		Token1:       token1,
		Decimals0:    cfg.Decimals0,
		Decimals1:    cfg.Decimals1,
		BlockNumber:  cfg.Block,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
	}, chainClient, logger)

	obs, err := source.Read(ctx)
	if err != nil {
		return fmt.Errorf("read imbalance: %w", err)
	}

	logger.Info("pool observed",
		zap.String("pool", pool.Hex()),
		zap.String("balance0", obs.Balance0.String()),
		zap.String("balance1", obs.Balance1.String()),
		zap.Float64("imbalance", obs.Imbalance),
	)

	state := display.Project(cfg.Factor, cfg.Cap, obs.Imbalance, cfg.BaseSpread)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imbalance ratio: %+.4f\n", obs.Imbalance)
	fmt.Fprintf(out, "Tick adjustment: %+d bp\n", state.Adjustment.Tick)
	fmt.Fprintf(out, "Fee adjustment: %+d bp\n", state.Adjustment.Fee)
	fmt.Fprintf(out, "Effective bounds: [%+.2f, %+.2f] bp\n", state.LowerBound, state.UpperBound)
	fmt.Fprintf(out, "Tick position: %+.2f bp\n", state.TickPosition)
	fmt.Fprintf(out, "Fee tier: %.2f bp\n", state.FeeTier)
	fmt.Fprintf(out, "Direction: %s\n", spread.DirectionFor(obs.Imbalance).Describe())
	fmt.Fprintf(out, "Curve type: %s\n", spread.Classify(cfg.Factor).Describe())

	return nil
}

func parseAddress(name, input string) (common.Address, error) {
	if input == "" {
		return common.Address{}, fmt.Errorf("%s address is required", name)
	}
	if !common.IsHexAddress(input) {
		return common.Address{}, fmt.Errorf("invalid %s address: %s", name, input)
	}
	return common.HexToAddress(input), nil
}
