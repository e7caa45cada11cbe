package imbalance

import (
	"math"
	"math/big"
	"testing"
)

func TestRatioBalanced(t *testing.T) {
	got, err := Ratio(big.NewInt(1000), big.NewInt(1000), 6, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected balanced ratio, got %.4f", got)
	}
}

func TestRatioOneSided(t *testing.T) {
	got, err := Ratio(big.NewInt(500), big.NewInt(0), 18, 18)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected +1, got %.4f", got)
	}

	got, err = Ratio(big.NewInt(0), big.NewInt(500), 18, 18)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -1 {
		t.Fatalf("expected -1, got %.4f", got)
	}
}

func TestRatioDecimalsNormalization(t *testing.T) {
	// 3 units of a 6-decimal token vs 1 unit of an 18-decimal token.
	bal0, _ := new(big.Int).SetString("3000000", 10)
	bal1, _ := new(big.Int).SetString("1000000000000000000", 10)

	got, err := Ratio(bal0, bal1, 6, 18)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("expected 0.5, got %.12f", got)
	}
}

func TestRatioInvalid(t *testing.T) {
	if _, err := Ratio(nil, big.NewInt(1), 18, 18); err == nil {
		t.Fatalf("expected error for nil balance")
	}
	if _, err := Ratio(big.NewInt(0), big.NewInt(0), 18, 18); err == nil {
		t.Fatalf("expected error for empty pool")
	}
	if _, err := Ratio(big.NewInt(-1), big.NewInt(1), 18, 18); err == nil {
		t.Fatalf("expected error for negative balance")
	}
}
