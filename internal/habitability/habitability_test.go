package habitability

import (
	"math"
	"testing"
)

func TestIsHabitableBoundaries(t *testing.T) {
	tests := []struct {
		kelvin float64
		want   bool
	}{
		{257.65, true},
		{257.649, false},
		{307.55, true},
		{307.551, false},
		{288.15, true},
		{0, false},
		{math.Inf(1), false},
		{math.NaN(), false},
	}
	for _, tc := range tests {
		if got := IsHabitable(tc.kelvin); got != tc.want {
			t.Fatalf("IsHabitable(%v) = %v, expected %v", tc.kelvin, got, tc.want)
		}
	}
}

func TestClassifyPartition(t *testing.T) {
	tests := []struct {
		kelvin float64
		want   Class
	}{
		{100, TooCold},
		{257.649, TooCold},
		{257.65, Habitable},
		{307.55, Habitable},
		{307.551, TooHot},
		{math.Inf(-1), TooCold},
		{math.Inf(1), TooHot},
		{math.NaN(), Uncategorized},
	}
	for _, tc := range tests {
		if got := Classify(tc.kelvin); got != tc.want {
			t.Fatalf("Classify(%v) = %v, expected %v", tc.kelvin, got, tc.want)
		}
	}
}

func TestClassString(t *testing.T) {
	for _, c := range Classes {
		if c.String() == "" {
			t.Fatalf("class %d has no name", c)
		}
	}
	if Habitable.String() != "habitable" {
		t.Fatalf("unexpected name %q", Habitable.String())
	}
}
