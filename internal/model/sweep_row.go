package model

// SweepRow is one evaluated scenario of a parameter sweep, combining the
// raw adjustments with the derived display state.
type SweepRow struct {
	Factor         int     `json:"factor"`
	Cap            float64 `json:"cap"`
	Imbalance      float64 `json:"imbalance"`
	BaseSpread     float64 `json:"base_spread"`
	TickAdjustment int     `json:"tick_adjustment"`
	FeeAdjustment  int     `json:"fee_adjustment"`
	UpperBound     float64 `json:"upper_bound"`
	LowerBound     float64 `json:"lower_bound"`
	TickPosition   float64 `json:"tick_position"`
	FeeTier        float64 `json:"fee_tier"`
	CurveType      string  `json:"curve_type"`
	Direction      string  `json:"direction"`
	ComputedAt     string  `json:"computed_at"`
}
