package sampler

import "testing"

func TestCurveSamples(t *testing.T) {
	points, err := Curve(0, 100, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 5 {
		t.Fatalf("expected 5 points, got %d", len(points))
	}

	if points[0].Imbalance != -1 || points[4].Imbalance != 1 {
		t.Fatalf("endpoints mismatch: %.2f, %.2f", points[0].Imbalance, points[4].Imbalance)
	}
	if points[2].Imbalance != 0 || points[2].FeeAdjustment != 0 {
		t.Fatalf("midpoint should be balanced: %+v", points[2])
	}
	if points[0].TickAdjustment != 50 || points[4].TickAdjustment != -50 {
		t.Fatalf("saturation mismatch: %+v, %+v", points[0], points[4])
	}
	if points[0].CurveType != "linear" {
		t.Fatalf("curve type mismatch: %s", points[0].CurveType)
	}
}

func TestCurveInvalid(t *testing.T) {
	if _, err := Curve(0, 100, 1); err == nil {
		t.Fatalf("expected error for too few samples")
	}
	if _, err := Curve(0, -1, 10); err == nil {
		t.Fatalf("expected error for negative cap")
	}
}

func TestGridScenario(t *testing.T) {
	grid := Grid{
		Factors:     []int{-100, 0},
		Caps:        []float64{50, 100},
		Imbalances:  []float64{-0.5, 0.5},
		BaseSpreads: []float64{100},
	}

	if err := grid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grid.Size() != 8 {
		t.Fatalf("size mismatch: %d", grid.Size())
	}

	factor, cap, imbalance, base := grid.Scenario(0)
	if factor != -100 || cap != 50 || imbalance != -0.5 || base != 100 {
		t.Fatalf("first scenario mismatch: %d %.0f %.2f %.0f", factor, cap, imbalance, base)
	}

	factor, cap, imbalance, base = grid.Scenario(7)
	if factor != 0 || cap != 100 || imbalance != 0.5 || base != 100 {
		t.Fatalf("last scenario mismatch: %d %.0f %.2f %.0f", factor, cap, imbalance, base)
	}
}

func TestGridValidate(t *testing.T) {
	grid := Grid{Factors: []int{0}, Caps: []float64{100}, Imbalances: []float64{0.5}}
	if err := grid.Validate(); err == nil {
		t.Fatalf("expected error for empty base spread axis")
	}
}
