package display

import (
	"math"
	"testing"

	"spreadScope/internal/spread"
)

func TestProjectLinearPositiveImbalance(t *testing.T) {
	got := Project(0, 100, 0.5, 100)

	if got.Adjustment != (spread.Adjustment{Tick: -25, Fee: 25}) {
		t.Fatalf("adjustment mismatch: %+v", got.Adjustment)
	}
	if got.UpperBound != 50 {
		t.Fatalf("upper bound moved: %.2f", got.UpperBound)
	}
	if got.LowerBound != -75 {
		t.Fatalf("lower bound mismatch: %.2f", got.LowerBound)
	}
	if got.TickPosition != -12.5 {
		t.Fatalf("tick position mismatch: %.2f", got.TickPosition)
	}
	if got.FeeTier != 62.5 {
		t.Fatalf("fee tier mismatch: %.2f", got.FeeTier)
	}
}

func TestProjectNegativeImbalance(t *testing.T) {
	got := Project(0, 100, -0.5, 100)

	if got.UpperBound != 75 {
		t.Fatalf("upper bound mismatch: %.2f", got.UpperBound)
	}
	if got.LowerBound != -50 {
		t.Fatalf("lower bound moved: %.2f", got.LowerBound)
	}
	if got.TickPosition != 12.5 {
		t.Fatalf("tick position mismatch: %.2f", got.TickPosition)
	}
	if got.FeeTier != 62.5 {
		t.Fatalf("fee tier mismatch: %.2f", got.FeeTier)
	}
}

func TestProjectZeroCap(t *testing.T) {
	got := Project(0, 0, 0.5, 100)

	if got.Adjustment != (spread.Adjustment{}) {
		t.Fatalf("expected zero adjustment, got %+v", got.Adjustment)
	}
	if got.UpperBound != 50 || got.LowerBound != -50 {
		t.Fatalf("bounds moved: [%.2f, %.2f]", got.LowerBound, got.UpperBound)
	}
	if got.FeeTier != 50 {
		t.Fatalf("fee tier mismatch: %.2f", got.FeeTier)
	}
}

func TestProjectBalanced(t *testing.T) {
	got := Project(100, 200, 0, 80)

	if got.UpperBound != 40 || got.LowerBound != -40 {
		t.Fatalf("bounds moved: [%.2f, %.2f]", got.LowerBound, got.UpperBound)
	}
	if got.TickPosition != 0 {
		t.Fatalf("tick position mismatch: %.2f", got.TickPosition)
	}
	if got.FeeTier != 40 {
		t.Fatalf("fee tier mismatch: %.2f", got.FeeTier)
	}
}

func TestProjectClampInvariant(t *testing.T) {
	factors := []int{-1000, -100, 0, 100, 1000}
	caps := []float64{0, 50, 150, 300}
	imbalances := []float64{-1, -0.6, -0.1, 0, 0.1, 0.6, 1}
	baseSpreads := []float64{1, 10, 100, 500}

	for _, factor := range factors {
		for _, cap := range caps {
			for _, imb := range imbalances {
				for _, base := range baseSpreads {
					st := Project(factor, cap, imb, base)

					size := st.UpperBound - st.LowerBound
					margin := 1.0
					if size > 0 {
						margin = math.Min(5, size*0.02)
					}
					if st.TickPosition < st.LowerBound+margin-1e-9 {
						t.Fatalf("tick below margin: f=%d c=%.0f i=%.2f b=%.0f state=%+v", factor, cap, imb, base, st)
					}
					if size > 2*margin && st.TickPosition > st.UpperBound-margin+1e-9 {
						t.Fatalf("tick above margin: f=%d c=%.0f i=%.2f b=%.0f state=%+v", factor, cap, imb, base, st)
					}
					if st.FeeTier < 0 {
						t.Fatalf("negative fee tier: f=%d c=%.0f i=%.2f b=%.0f state=%+v", factor, cap, imb, base, st)
					}
				}
			}
		}
	}
}

func TestProjectCollapsedBand(t *testing.T) {
	// Zero base spread and zero cap leave a zero-size band; the lower
	// clamp wins and pins the tick one basis point above it.
	got := Project(0, 0, 0, 0)
	if got.TickPosition != got.LowerBound+1 {
		t.Fatalf("collapsed band tick mismatch: %+v", got)
	}
}

func TestProjectSmallSpreadMargin(t *testing.T) {
	// Band of 100bp gives a 2bp margin; the unclamped tick -25 sits inside.
	got := Project(0, 200, 0.5, 50)
	if got.Adjustment.Fee != 50 {
		t.Fatalf("fee adjustment mismatch: %+v", got.Adjustment)
	}
	if got.UpperBound != 25 || got.LowerBound != -75 {
		t.Fatalf("bounds mismatch: [%.2f, %.2f]", got.LowerBound, got.UpperBound)
	}
	if got.TickPosition != -25 {
		t.Fatalf("tick position mismatch: %.2f", got.TickPosition)
	}
}

func TestProjectIdempotent(t *testing.T) {
	first := Project(-250, 120, 0.73, 90)
	second := Project(-250, 120, 0.73, 90)
	if first != second {
		t.Fatalf("projection not deterministic: %+v != %+v", first, second)
	}
}
