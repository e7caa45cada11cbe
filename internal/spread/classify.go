package spread

// CurveType labels the response curve selected by the factor sign.
type CurveType string

const (
	CurveLinear      CurveType = "linear"
	CurveExponential CurveType = "exponential"
	CurveLogarithmic CurveType = "logarithmic"
)

// Classify returns the curve type for a factor.
func Classify(factor int) CurveType {
	switch {
	case factor < 0:
		return CurveExponential
	case factor > 0:
		return CurveLogarithmic
	default:
		return CurveLinear
	}
}

// Describe returns the human-readable curve label used in CLI output.
func (c CurveType) Describe() string {
	switch c {
	case CurveExponential:
		return "Exponential (slow then fast)"
	case CurveLogarithmic:
		return "Logarithmic (fast then slow)"
	default:
		return "Linear"
	}
}

// Direction labels which token dominates the inventory for an imbalance.
type Direction string

const (
	DirectionToken0 Direction = "token0_dominant"
	DirectionToken1 Direction = "token1_dominant"
	DirectionNone   Direction = "balanced"
)

// DirectionFor returns the imbalance direction.
func DirectionFor(imbalance float64) Direction {
	switch {
	case imbalance > 0:
		return DirectionToken0
	case imbalance < 0:
		return DirectionToken1
	default:
		return DirectionNone
	}
}

// Describe returns the human-readable direction label used in CLI output.
func (d Direction) Describe() string {
	switch d {
	case DirectionToken0:
		return "Token0 dominates, favoring Token1"
	case DirectionToken1:
		return "Token1 dominates, favoring Token0"
	default:
		return "Balanced"
	}
}
