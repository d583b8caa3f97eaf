// Package terrain synthesizes elevation fields by accumulating thousands of
// randomly placed, randomly signed disk stamps and normalizing the result.
package terrain

import (
	"errors"
	"fmt"

	"planetgen/internal/core"
	"planetgen/internal/geometry"
	"planetgen/internal/gridstat"
	rng "planetgen/pkg/core"
)

// Direction selects whether a stamp raises or lowers the cells it covers.
type Direction int8

const (
	Raise Direction = 1
	Lower Direction = -1
)

func (d Direction) String() string {
	if d == Lower {
		return "lower"
	}
	return "raise"
}

// Stamp is a disk-shaped elevation adjustment. X and Y address the top-left
// corner of its bounding box; Size is the diameter.
type Stamp struct {
	X, Y      int
	Size      int
	Direction Direction
}

// Radius returns half the stamp diameter.
func (s Stamp) Radius() float64 { return float64(s.Size) / 2 }

// Center returns the disk center in grid coordinates.
func (s Stamp) Center() (float64, float64) {
	r := s.Radius()
	return float64(s.X) + r, float64(s.Y) + r
}

// MaxTargetRange bounds the number of elevation levels a config may ask for.
const MaxTargetRange = 1 << 30

// ErrInvalidConfig reports unusable synthesis parameters.
var ErrInvalidConfig = errors.New("terrain: invalid config")

// Config controls terrain synthesis.
type Config struct {
	Size         int
	StampCount   int
	TargetRange  int
	MaxStampSize int
}

// DefaultConfig returns the standard synthesis parameters.
func DefaultConfig() Config {
	return Config{
		Size:         1024,
		StampCount:   50000,
		TargetRange:  256,
		MaxStampSize: 64,
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	case c.StampCount <= 0:
		return fmt.Errorf("%w: stamp count must be positive, got %d", ErrInvalidConfig, c.StampCount)
	case c.TargetRange < 2 || c.TargetRange > MaxTargetRange:
		return fmt.Errorf("%w: target range must be in [2, %d], got %d", ErrInvalidConfig, MaxTargetRange, c.TargetRange)
	case c.MaxStampSize <= 0:
		return fmt.Errorf("%w: max stamp size must be positive, got %d", ErrInvalidConfig, c.MaxStampSize)
	}
	return nil
}

// Blank returns an all-zero elevation grid of dimension size×size.
func Blank(size int) *core.Grid[int] {
	return core.NewGrid[int](size)
}

// ApplyStamp adds the stamp's direction to every in-bounds cell of its
// bounding box that lies within the disk. The boundary is inclusive.
func ApplyStamp(g *core.Grid[int], s Stamp) {
	radius := s.Radius()
	cx, cy := s.Center()
	delta := int(s.Direction)
	cells := g.Cells()
	for row := s.Y; row <= s.Y+s.Size; row++ {
		for col := s.X; col <= s.X+s.Size; col++ {
			if !g.InBounds(col, row) {
				continue
			}
			if !geometry.WithinRadius(float64(col)-cx, float64(row)-cy, radius) {
				continue
			}
			cells[g.Index(col, row)] += delta
		}
	}
}

// RandomStamp draws a stamp with a diameter uniform in [1, maxSize], a corner
// uniform in [-size, dim) on both axes and a 50/50 direction.
func RandomStamp(r *rng.RNG, dim, maxSize int) Stamp {
	size := r.IntN(maxSize) + 1
	x := r.IntRange(-size, dim)
	y := r.IntRange(-size, dim)
	dir := Lower
	if r.Bool() {
		dir = Raise
	}
	return Stamp{X: x, Y: y, Size: size, Direction: dir}
}

// Synthesize builds an elevation grid from cfg.StampCount random stamps and
// normalizes it to [0, cfg.TargetRange-1]. A run whose stamps never touch the
// grid leaves it flat and fails with gridstat.ErrFlatInput.
func Synthesize(cfg Config, r *rng.RNG) (*core.Grid[int], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := Blank(cfg.Size)
	for i := 0; i < cfg.StampCount; i++ {
		ApplyStamp(g, RandomStamp(r, cfg.Size, cfg.MaxStampSize))
	}
	if err := gridstat.Normalize(g, cfg.TargetRange); err != nil {
		return nil, fmt.Errorf("terrain: normalize after %d stamps: %w", cfg.StampCount, err)
	}
	return g, nil
}
