package sweep

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"spreadScope/internal/display"
	"spreadScope/internal/model"
	"spreadScope/internal/sampler"
	"spreadScope/internal/spread"
)

// Sink stores evaluated sweep rows.
type Sink interface {
	PutSweepBatch(ctx context.Context, rows []model.SweepRow) error
}

// RunConfig holds runtime settings for a sweep.
type RunConfig struct {
	Grid       sampler.Grid
	BatchSize  uint64
	StateStore StateStore
}

// Runner evaluates a parameter grid and writes the rows to a sink.
type Runner struct {
	cfg    RunConfig
	sink   Sink
	logger *zap.Logger
}

// NewRunner builds a Runner with its dependencies.
func NewRunner(cfg RunConfig, sink Sink, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{cfg: cfg, sink: sink, logger: logger}
}

// Run executes the sweep loop.
func (r *Runner) Run(ctx context.Context) error {
	if r.sink == nil {
		return fmt.Errorf("sink is nil")
	}
	if r.cfg.BatchSize == 0 {
		return fmt.Errorf("batch size must be greater than zero")
	}
	if err := r.cfg.Grid.Validate(); err != nil {
		return err
	}

	total := uint64(r.cfg.Grid.Size())
	from := uint64(0)

	if r.cfg.StateStore != nil {
		last, ok, err := r.cfg.StateStore.Load(ctx)
		if err != nil {
			return err
		}
		if ok && last+1 > from {
			from = last + 1
			r.logger.Info("resume from state", zap.Uint64("last_processed", last), zap.Uint64("from", from))
		}
	}

	if from >= total {
		r.logger.Info("nothing to evaluate", zap.Uint64("from", from), zap.Uint64("total", total))
		return nil
	}

	ranges, err := SplitRange(from, total-1, r.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, indexRange := range ranges {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		computedAt := time.Now().UTC().Format(time.RFC3339Nano)
		rows := make([]model.SweepRow, 0, indexRange.To-indexRange.From+1)
		for index := indexRange.From; index <= indexRange.To; index++ {
			factor, cap, imbalance, baseSpread := r.cfg.Grid.Scenario(int(index))
			state := display.Project(factor, cap, imbalance, baseSpread)
			rows = append(rows, model.SweepRow{
				Factor:         factor,
				Cap:            cap,
				Imbalance:      imbalance,
				BaseSpread:     baseSpread,
				TickAdjustment: state.Adjustment.Tick,
				FeeAdjustment:  state.Adjustment.Fee,
				UpperBound:     state.UpperBound,
				LowerBound:     state.LowerBound,
				TickPosition:   state.TickPosition,
				FeeTier:        state.FeeTier,
				CurveType:      string(spread.Classify(factor)),
				Direction:      string(spread.DirectionFor(imbalance)),
				ComputedAt:     computedAt,
			})
		}

		if err := r.sink.PutSweepBatch(ctx, rows); err != nil {
			return fmt.Errorf("store rows: %w", err)
		}

		if r.cfg.StateStore != nil {
			if err := r.cfg.StateStore.Save(ctx, indexRange.To); err != nil {
				return err
			}
		}

		r.logger.Info("batch complete", zap.Int("rows", len(rows)), zap.Uint64("from", indexRange.From), zap.Uint64("to", indexRange.To))
	}

	return nil
}
