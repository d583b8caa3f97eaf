package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestStreamsDiffer(t *testing.T) {
	a := NewStreamRNG(7, 1)
	b := NewStreamRNG(7, 2)
	same := true
	for i := 0; i < 16; i++ {
		if a.Float64() != b.Float64() {
			same = false
		}
	}
	if same {
		t.Fatal("expected independent streams to diverge")
	}
}

func TestRanges(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 1000; i++ {
		if v := r.IntRange(-5, 5); v < -5 || v >= 5 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
		if v := r.FloatRange(2, 3); v < 2 || v >= 3 {
			t.Fatalf("FloatRange out of bounds: %v", v)
		}
	}
	if got := r.IntRange(4, 4); got != 4 {
		t.Fatalf("empty range should return min, got %d", got)
	}
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) should return 0, got %d", got)
	}
}

func TestBoolCoversBothValues(t *testing.T) {
	r := NewRNG(11)
	seen := map[bool]int{}
	for i := 0; i < 200; i++ {
		seen[r.Bool()]++
	}
	if seen[true] == 0 || seen[false] == 0 {
		t.Fatalf("expected both outcomes, got %v", seen)
	}
}
