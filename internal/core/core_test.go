package core

import (
	"testing"
	"time"
)

func TestGridIndexing(t *testing.T) {
	g := NewGrid[int](4)
	g.Set(1, 2, 7)
	if got := g.Cells()[g.Index(1, 2)]; got != 7 {
		t.Fatalf("expected 7 at (1,2), got %d", got)
	}
	if g.At(2, 1) != 0 {
		t.Fatal("Set must be row-major: (2,1) should remain zero")
	}
	if !g.InBounds(3, 3) || g.InBounds(4, 0) || g.InBounds(0, -1) {
		t.Fatal("InBounds disagrees with the 4x4 dimension")
	}
	if g.Index(1, 2) != 9 {
		t.Fatalf("Index(1,2) = %d, want 9", g.Index(1, 2))
	}
}

func TestNewGridNegativeSize(t *testing.T) {
	g := NewGrid[float64](-3)
	if g.N != 0 || len(g.Cells()) != 0 {
		t.Fatalf("expected empty grid, got N=%d len=%d", g.N, len(g.Cells()))
	}
}

func TestMap(t *testing.T) {
	g := NewGrid[int](2)
	copy(g.Cells(), []int{1, 2, 3, 4})
	doubled := Map(g, func(v int) float64 { return float64(v) * 2 })
	want := []float64{2, 4, 6, 8}
	for i, v := range doubled.Cells() {
		if v != want[i] {
			t.Fatalf("cell %d: got %v want %v", i, v, want[i])
		}
	}
}

func TestStopwatchLaps(t *testing.T) {
	base := time.Unix(0, 0)
	ticks := []time.Time{base, base.Add(2 * time.Second), base.Add(5 * time.Second)}
	sw := &Stopwatch{now: func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}}
	sw.Start()
	if d := sw.Lap("terrain"); d != 2*time.Second {
		t.Fatalf("terrain lap %v", d)
	}
	if d := sw.Lap("heat"); d != 3*time.Second {
		t.Fatalf("heat lap %v", d)
	}
	if sw.Total() != 5*time.Second {
		t.Fatalf("total %v", sw.Total())
	}
	stages := sw.Stages()
	if len(stages) != 2 || stages[0].Name != "terrain" || stages[1].Name != "heat" {
		t.Fatalf("unexpected stages %+v", stages)
	}
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Terrain",
		Params: []Parameter{{Key: "stamps", Value: "10"}},
	}}}
	if p, ok := snap.Lookup("stamps"); !ok || p.Value != "10" {
		t.Fatalf("lookup failed: %+v %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("expected missing key to be absent")
	}
}

func TestRegisterLayerIgnoresInvalid(t *testing.T) {
	before := len(Layers())
	RegisterLayer("", func(Source) []byte { return nil })
	RegisterLayer("nil-painter", nil)
	if len(Layers()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
}
