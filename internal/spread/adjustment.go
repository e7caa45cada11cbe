package spread

import "math"

// balanceEpsilon is the threshold below which an imbalance is treated as
// perfectly balanced, filtering float noise around zero.
const balanceEpsilon = 1e-10

// Adjustment is the basis-point shift applied to the active tick and the
// fee tier for a given imbalance.
type Adjustment struct {
	Tick int
	Fee  int
}

// Compute maps a curve factor, spread cap, and imbalance ratio to the tick
// and fee tier adjustments.
//
// factor selects the response curve: negative is slow-then-fast (convex),
// positive is fast-then-slow (concave saturation), zero is linear. cap is
// the maximum combined adjustment in basis points at full imbalance.
// imbalance is the signed token value skew, meaningful in [-1, 1].
//
// The total adjustment is split in half between the tick and fee channels
// so the correction is not double counted. Halves are rounded half away
// from zero (math.Round); this choice is fixed so basis-point outputs are
// reproducible. Behavior for non-finite inputs is undefined, but Compute
// never panics.
func Compute(factor int, cap float64, imbalance float64) Adjustment {
	if cap == 0 || math.Abs(imbalance) < balanceEpsilon {
		return Adjustment{}
	}

	x := math.Abs(imbalance)

	var spreadAdjustment float64
	switch {
	case factor == 0:
		spreadAdjustment = x * cap
	case factor < 0:
		// f(x) = x^(1+q) * cap stays below the linear diagonal for
		// small x and catches up at x = 1.
		q := math.Abs(float64(factor)) / 100.0
		spreadAdjustment = math.Pow(x, 1.0+q) * cap
	default:
		// Normalized saturation f(x) = (1 - e^(-x*n)) / (1 - e^(-n)) * cap
		// passes through (0, 0) and (1, cap).
		n := float64(factor) / 100.0
		var curve float64
		if math.Abs(n) < balanceEpsilon {
			curve = x
		} else {
			curve = (1.0 - math.Exp(-x*n)) / (1.0 - math.Exp(-n))
		}
		spreadAdjustment = curve * cap
	}

	half := spreadAdjustment / 2.0
	rounded := int(math.Round(half))

	switch {
	case imbalance > 0:
		// Token0 dominates: move the tick down to favor token1, widen
		// the spread on the token1 side.
		return Adjustment{Tick: -rounded, Fee: rounded}
	case imbalance < 0:
		// Token1 dominates: move the tick up to favor token0.
		return Adjustment{Tick: rounded, Fee: rounded}
	default:
		return Adjustment{}
	}
}
