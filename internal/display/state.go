package display

import (
	"math"

	"spreadScope/internal/spread"
)

// State holds the derived visualization quantities for one parameter tuple.
// It is recomputed from scratch on every call; nothing carries over between
// invocations.
type State struct {
	UpperBound   float64
	LowerBound   float64
	TickPosition float64
	FeeTier      float64
	Adjustment   spread.Adjustment
}

const balanceEpsilon = 1e-10

// Project derives the effective spread bounds, clamped tick position, and
// fee tier for a parameter tuple. baseSpread is the symmetric band width at
// zero imbalance; only the bound on the undersupplied token's side moves,
// by the full fee adjustment, while the tick moves from the original center
// at half that speed.
func Project(factor int, cap, imbalance, baseSpread float64) State {
	adj := spread.Compute(factor, cap, imbalance)
	fee := float64(adj.Fee)

	baseUpper := baseSpread / 2.0
	baseLower := -baseSpread / 2.0

	upper := baseUpper
	lower := baseLower
	tick := 0.0
	switch {
	case imbalance > 0:
		lower = baseLower - fee
		tick = -fee / 2.0
	case imbalance < 0:
		upper = baseUpper + fee
		tick = fee / 2.0
	}

	tick = clampTick(tick, upper, lower)

	feeTier := baseUpper
	if cap != 0 && math.Abs(imbalance) >= balanceEpsilon {
		feeTier = baseUpper + fee/2.0
	}
	if feeTier < 0 {
		feeTier = 0
	}

	return State{
		UpperBound:   upper,
		LowerBound:   lower,
		TickPosition: tick,
		FeeTier:      feeTier,
		Adjustment:   adj,
	}
}

// clampTick keeps the tick strictly inside the effective band. The margin
// shrinks with the band (2% of its size, at most 5bp) so a visible gap
// survives small spreads; a collapsed band falls back to a 1bp margin with
// the lower clamp winning.
func clampTick(tick, upper, lower float64) float64 {
	size := upper - lower
	margin := 1.0
	if size > 0 {
		margin = math.Min(5.0, size*0.02)
	}
	return math.Max(lower+margin, math.Min(upper-margin, tick))
}
