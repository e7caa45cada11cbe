package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spreadScope/internal/config"
	"spreadScope/internal/display"
	"spreadScope/internal/prompt"
	"spreadScope/internal/spread"
)

func runCalc(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadCalc(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	if cfg.Cap < 0 {
		return fmt.Errorf("cap must be non-negative")
	}

	adj := spread.Compute(cfg.Factor, cfg.Cap, cfg.Imbalance)
	total := absInt(adj.Tick) + absInt(adj.Fee)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Tick index adjustment: %+d basis points\n", adj.Tick)
	fmt.Fprintf(out, "Fee tier adjustment: %+d basis points\n", adj.Fee)
	fmt.Fprintf(out, "Total effect: %d basis points\n", total)
	fmt.Fprintf(out, "Direction: %s\n", spread.DirectionFor(cfg.Imbalance).Describe())
	fmt.Fprintf(out, "Curve type: %s\n", spread.Classify(cfg.Factor).Describe())

	return nil
}

func runProject(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadCalc(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	if cfg.Cap < 0 {
		return fmt.Errorf("cap must be non-negative")
	}
	if cfg.BaseSpread < 0 {
		return fmt.Errorf("base spread must be non-negative")
	}

	state := display.Project(cfg.Factor, cfg.Cap, cfg.Imbalance, cfg.BaseSpread)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Effective upper bound: %+.2f bp\n", state.UpperBound)
	fmt.Fprintf(out, "Effective lower bound: %+.2f bp\n", state.LowerBound)
	fmt.Fprintf(out, "Tick position: %+.2f bp\n", state.TickPosition)
	fmt.Fprintf(out, "Fee tier: %.2f bp\n", state.FeeTier)
	fmt.Fprintf(out, "Tick adjustment: %+d bp\n", state.Adjustment.Tick)
	fmt.Fprintf(out, "Fee adjustment: %+d bp\n", state.Adjustment.Fee)
	fmt.Fprintf(out, "Direction: %s\n", spread.DirectionFor(cfg.Imbalance).Describe())
	fmt.Fprintf(out, "Curve type: %s\n", spread.Classify(cfg.Factor).Describe())

	return nil
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	return prompt.NewSession(os.Stdin, cmd.OutOrStdout()).Run()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
