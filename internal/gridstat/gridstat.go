// Package gridstat provides extremum, range and rescaling operations over
// square numeric grids.
package gridstat

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"planetgen/internal/core"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrFlatInput reports a normalization request on a grid whose values are
	// all equal.
	ErrFlatInput = errors.New("gridstat: grid has zero range")
	// ErrInvalidRange reports a target range that cannot hold two levels.
	ErrInvalidRange = errors.New("gridstat: target range must be at least 2")
	// ErrEmptyGrid reports an operation on a grid without cells.
	ErrEmptyGrid = errors.New("gridstat: grid is empty")
)

// Extremum scans the grid and returns the element that no other element is
// better than according to better. Ties keep the first element in row-major
// order. It panics on an empty grid.
func Extremum[T any](g *core.Grid[T], better func(candidate, current T) bool) T {
	cells := g.Cells()
	best := cells[0]
	for _, v := range cells[1:] {
		if better(v, best) {
			best = v
		}
	}
	return best
}

// Min returns the smallest cell value.
func Min[T core.Number](g *core.Grid[T]) T {
	return Extremum(g, func(a, b T) bool { return a < b })
}

// Max returns the largest cell value.
func Max[T core.Number](g *core.Grid[T]) T {
	return Extremum(g, func(a, b T) bool { return a > b })
}

// Range returns Max(g) - Min(g).
func Range[T core.Number](g *core.Grid[T]) T {
	return Max(g) - Min(g)
}

// Normalize rescales the grid in place so its values span [0, targetRange-1]:
// each cell becomes floor((v - min) * (targetRange-1) / range). The product is
// taken in 128 bits before the division, so the extremes land on 0 and
// targetRange-1 exactly for any int inputs.
func Normalize(g *core.Grid[int], targetRange int) error {
	if targetRange < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidRange, targetRange)
	}
	if len(g.Cells()) == 0 {
		return ErrEmptyGrid
	}
	lo, hi := Min(g), Max(g)
	if lo == hi {
		return fmt.Errorf("%w: every cell is %d", ErrFlatInput, lo)
	}
	// Differences are taken in uint64 so they stay exact even when the
	// signed span would overflow.
	span := uint64(hi) - uint64(lo)
	scale := uint64(targetRange - 1)
	cells := g.Cells()
	for i, v := range cells {
		prodHi, prodLo := bits.Mul64(uint64(v)-uint64(lo), scale)
		q, _ := bits.Div64(prodHi, prodLo, span)
		cells[i] = int(q)
	}
	return nil
}

// Summary describes the distribution of a real-valued grid.
type Summary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

// Describe summarizes the grid values. An empty grid yields NaN statistics and
// a single cell has zero spread.
func Describe[T core.Number](g *core.Grid[T]) Summary {
	cells := g.Cells()
	if len(cells) == 0 {
		nan := math.NaN()
		return Summary{Min: nan, Max: nan, Mean: nan, StdDev: nan}
	}
	values := make([]float64, len(cells))
	for i, v := range cells {
		values[i] = float64(v)
	}
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		std = 0
	}
	return Summary{
		Min:    float64(Min(g)),
		Max:    float64(Max(g)),
		Mean:   mean,
		StdDev: std,
	}
}
