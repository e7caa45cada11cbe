package sweep

import (
	"reflect"
	"testing"
)

func TestParseIntAxis(t *testing.T) {
	got, err := ParseIntAxis([]string{"-100", " 0 ", "100", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{-100, 0, 100}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("values mismatch: %v != %v", got, want)
	}

	if _, err := ParseIntAxis([]string{"abc"}); err == nil {
		t.Fatalf("expected error for non-numeric value")
	}
}

func TestParseFloatAxis(t *testing.T) {
	got, err := ParseFloatAxis([]string{"-1", "0.5", " 1.0 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{-1, 0.5, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("values mismatch: %v != %v", got, want)
	}

	if _, err := ParseFloatAxis([]string{"0.5x"}); err == nil {
		t.Fatalf("expected error for non-numeric value")
	}
}
