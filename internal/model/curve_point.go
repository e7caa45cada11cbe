package model

// CurvePoint is one sampled point of an adjustment curve for export.
type CurvePoint struct {
	Factor         int     `json:"factor"`
	Cap            float64 `json:"cap"`
	Imbalance      float64 `json:"imbalance"`
	TickAdjustment int     `json:"tick_adjustment"`
	FeeAdjustment  int     `json:"fee_adjustment"`
	CurveType      string  `json:"curve_type"`
}
