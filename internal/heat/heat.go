// Package heat computes the raw radiative heat field of an elevation grid by
// integrating inverse-square, incidence-attenuated flux from a star sweeping
// a half-circle arc over the map.
package heat

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"planetgen/internal/core"
	"planetgen/internal/geometry"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// LapseRate is the temperature decrease per kilometre of altitude, in the
// same raw units as the radiative sum.
const LapseRate = 1.5 / 0.3 / 20000

// ErrInvalidConfig reports unusable heat field parameters.
var ErrInvalidConfig = errors.New("heat: invalid config")

// Config controls heat field computation.
type Config struct {
	// ZScale converts elevation units to kilometres.
	ZScale float64
	// Samples is the number of arc segments; Samples+1 positions are summed.
	Samples int
	// Workers bounds the number of rows computed concurrently.
	Workers int
}

// DefaultConfig returns the standard heat parameters.
func DefaultConfig() Config {
	return Config{
		ZScale:  0.01,
		Samples: 200,
		Workers: runtime.NumCPU(),
	}
}

// SkyArc returns samples+1 apparent star positions evenly spaced in phase
// over a half circle of radius size/4 centred above (size/2, size/2).
func SkyArc(size, samples int) []r3.Vec {
	if samples <= 0 {
		return nil
	}
	center := float64(size) / 2
	radius := float64(size) / 4
	arc := make([]r3.Vec, samples+1)
	for i := range arc {
		angle := float64(i) / float64(samples) * math.Pi
		arc[i] = r3.Vec{
			X: center + radius*math.Cos(angle),
			Y: center,
			Z: radius * math.Sin(angle),
		}
	}
	return arc
}

// CalcTemp returns the raw heat at (east, south) with the given altitude in
// kilometres on a map of dimension size.
func CalcTemp(east, south, altitude float64, size, samples int) float64 {
	return calcTempArc(r3.Vec{X: east, Y: south, Z: altitude}, SkyArc(size, samples))
}

func calcTempArc(p r3.Vec, arc []r3.Vec) float64 {
	total := 0.0
	for _, star := range arc {
		dist := geometry.Distance3(p, star)
		if dist == 0 {
			dist = 1
		}
		radiation := 1 / (dist * dist)
		total += radiation * math.Cos(geometry.RayAngle(p, star))
	}
	return total - LapseRate*p.Z
}

// ComputeField returns the raw heat grid for elevation. Every cell is
// independent so rows are spread across cfg.Workers goroutines; the result
// does not depend on scheduling.
func ComputeField(elevation *core.Grid[int], cfg Config) (*core.Grid[float64], error) {
	if cfg.Samples <= 0 {
		return nil, fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, cfg.Samples)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	n := elevation.N
	arc := SkyArc(n, cfg.Samples)
	out := core.NewGrid[float64](n)
	src := elevation.Cells()
	dst := out.Cells()

	var g errgroup.Group
	g.SetLimit(workers)
	for south := 0; south < n; south++ {
		g.Go(func() error {
			row := south * n
			for east := 0; east < n; east++ {
				altitude := float64(src[row+east]) * cfg.ZScale
				dst[row+east] = calcTempArc(r3.Vec{X: float64(east), Y: float64(south), Z: altitude}, arc)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
