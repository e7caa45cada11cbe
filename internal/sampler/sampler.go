package sampler

import (
	"fmt"

	"spreadScope/internal/model"
	"spreadScope/internal/spread"
)

// Curve samples the adjustment curve at evenly spaced imbalance values over
// [-1, 1], both endpoints included. samples must be at least 2.
func Curve(factor int, cap float64, samples int) ([]model.CurvePoint, error) {
	if samples < 2 {
		return nil, fmt.Errorf("samples must be at least 2")
	}
	if cap < 0 {
		return nil, fmt.Errorf("cap must be non-negative")
	}

	curveType := string(spread.Classify(factor))
	points := make([]model.CurvePoint, 0, samples)
	step := 2.0 / float64(samples-1)
	for i := 0; i < samples; i++ {
		imbalance := -1.0 + step*float64(i)
		if i == samples-1 {
			imbalance = 1.0
		}
		adj := spread.Compute(factor, cap, imbalance)
		points = append(points, model.CurvePoint{
			Factor:         factor,
			Cap:            cap,
			Imbalance:      imbalance,
			TickAdjustment: adj.Tick,
			FeeAdjustment:  adj.Fee,
			CurveType:      curveType,
		})
	}

	return points, nil
}

// Grid enumerates the cartesian product of the sweep parameter axes in a
// fixed order: factors outermost, base spreads innermost.
type Grid struct {
	Factors     []int
	Caps        []float64
	Imbalances  []float64
	BaseSpreads []float64
}

// Size returns the number of scenarios in the grid.
func (g Grid) Size() int {
	return len(g.Factors) * len(g.Caps) * len(g.Imbalances) * len(g.BaseSpreads)
}

// Validate checks that every axis has at least one value.
func (g Grid) Validate() error {
	if len(g.Factors) == 0 {
		return fmt.Errorf("at least one factor is required")
	}
	if len(g.Caps) == 0 {
		return fmt.Errorf("at least one cap is required")
	}
	if len(g.Imbalances) == 0 {
		return fmt.Errorf("at least one imbalance is required")
	}
	if len(g.BaseSpreads) == 0 {
		return fmt.Errorf("at least one base spread is required")
	}
	return nil
}

// Scenario returns the parameter tuple at a flat grid index.
func (g Grid) Scenario(index int) (factor int, cap, imbalance, baseSpread float64) {
	nb := len(g.BaseSpreads)
	ni := len(g.Imbalances)
	nc := len(g.Caps)

	baseSpread = g.BaseSpreads[index%nb]
	index /= nb
	imbalance = g.Imbalances[index%ni]
	index /= ni
	cap = g.Caps[index%nc]
	index /= nc
	factor = g.Factors[index]
	return factor, cap, imbalance, baseSpread
}
