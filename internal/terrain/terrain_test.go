package terrain

import (
	"errors"
	"testing"

	"planetgen/internal/core"
	"planetgen/internal/gridstat"
	rng "planetgen/pkg/core"

	"github.com/google/go-cmp/cmp"
)

func TestApplyStampSmallDisk(t *testing.T) {
	g := Blank(4)
	ApplyStamp(g, Stamp{X: 0, Y: 0, Size: 2, Direction: Raise})

	expects := map[[2]int]bool{
		{0, 1}: true,
		{1, 0}: true,
		{1, 1}: true,
		{1, 2}: true,
		{2, 1}: true,
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := 0
			if expects[[2]int{x, y}] {
				want = 1
			}
			if got := g.At(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %d, expected %d", x, y, got, want)
			}
		}
	}
}

func TestApplyStampLowerAndClipping(t *testing.T) {
	g := Blank(4)
	ApplyStamp(g, Stamp{X: -1, Y: -1, Size: 2, Direction: Lower})
	// center (0,0): only the origin and its in-bounds orthogonal neighbours
	want := []int{
		-1, -1, 0, 0,
		-1, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	if diff := cmp.Diff(want, g.Cells()); diff != "" {
		t.Fatalf("clipped stamp mismatch (-want +got):\n%s", diff)
	}

	ApplyStamp(g, Stamp{X: 10, Y: 10, Size: 4, Direction: Raise})
	if diff := cmp.Diff(want, g.Cells()); diff != "" {
		t.Fatalf("out-of-bounds stamp must not touch the grid:\n%s", diff)
	}
}

func TestApplyStampSizeOneIsEmpty(t *testing.T) {
	g := Blank(3)
	ApplyStamp(g, Stamp{X: 1, Y: 1, Size: 1, Direction: Raise})
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("size-1 stamp covers no cell centre, but cell %d = %d", i, v)
		}
	}
}

func TestRandomStampBounds(t *testing.T) {
	r := rng.NewRNG(5)
	raises := 0
	const draws = 5000
	for i := 0; i < draws; i++ {
		s := RandomStamp(r, 32, 64)
		if s.Size < 1 || s.Size > 64 {
			t.Fatalf("size out of range: %d", s.Size)
		}
		if s.X < -s.Size || s.X >= 32 || s.Y < -s.Size || s.Y >= 32 {
			t.Fatalf("corner out of range: %+v", s)
		}
		if s.Direction == Raise {
			raises++
		}
	}
	if raises < draws*4/10 || raises > draws*6/10 {
		t.Fatalf("direction should be roughly 50/50, got %d raises of %d", raises, draws)
	}
}

func TestSynthesizeNormalizedInvariants(t *testing.T) {
	cfg := Config{Size: 64, StampCount: 2000, TargetRange: 256, MaxStampSize: 64}
	g, err := Synthesize(cfg, rng.NewRNG(1337))
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if g.N != 64 {
		t.Fatalf("dimension %d", g.N)
	}
	if lo, hi := gridstat.Min(g), gridstat.Max(g); lo != 0 || hi != 255 {
		t.Fatalf("expected range [0,255], got [%d,%d]", lo, hi)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	cfg := Config{Size: 32, StampCount: 300, TargetRange: 16, MaxStampSize: 64}
	a, err := Synthesize(cfg, rng.NewRNG(9))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Synthesize(cfg, rng.NewRNG(9))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Cells(), b.Cells()); diff != "" {
		t.Fatalf("same seed produced different terrain:\n%s", diff)
	}
}

func TestSynthesizeSingleStamp(t *testing.T) {
	cfg := Config{Size: 8, StampCount: 1, TargetRange: 4, MaxStampSize: 64}
	succeeded := 0
	for seed := int64(1); seed <= 300; seed++ {
		g, err := Synthesize(cfg, rng.NewRNG(seed))
		if errors.Is(err, gridstat.ErrFlatInput) {
			continue
		}
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		succeeded++

		if lo, hi := gridstat.Min(g), gridstat.Max(g); lo != 0 || hi != 3 {
			t.Fatalf("seed %d: expected [0,3], got [%d,%d]", seed, lo, hi)
		}

		// replay the draw and rasterize it by hand
		s := RandomStamp(rng.NewRNG(seed), cfg.Size, cfg.MaxStampSize)
		want := Blank(cfg.Size)
		ApplyStamp(want, s)
		expected := core.Map(want, func(v int) int {
			if v != 0 {
				if s.Direction == Raise {
					return 3
				}
				return 0
			}
			if s.Direction == Raise {
				return 0
			}
			return 3
		})
		if diff := cmp.Diff(expected.Cells(), g.Cells()); diff != "" {
			t.Fatalf("seed %d stamp %+v mismatch (-want +got):\n%s", seed, s, diff)
		}
	}
	if succeeded == 0 {
		t.Fatal("expected at least one single-stamp run to touch the grid")
	}
}

func TestSynthesizeRejectsBadConfig(t *testing.T) {
	bad := []Config{
		{Size: 0, StampCount: 1, TargetRange: 4, MaxStampSize: 64},
		{Size: 8, StampCount: 0, TargetRange: 4, MaxStampSize: 64},
		{Size: 8, StampCount: 1, TargetRange: 1, MaxStampSize: 64},
		{Size: 8, StampCount: 1, TargetRange: MaxTargetRange + 1, MaxStampSize: 64},
		{Size: 8, StampCount: 1, TargetRange: 4, MaxStampSize: 0},
	}
	for _, cfg := range bad {
		if _, err := Synthesize(cfg, rng.NewRNG(1)); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("config %+v: expected ErrInvalidConfig, got %v", cfg, err)
		}
	}
}
