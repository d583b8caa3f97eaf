// Package calibrate searches for the rate that converts raw heat values into
// kelvin so that the equatorial reference band is as habitable as possible.
package calibrate

import (
	"errors"
	"fmt"
	"math"

	"planetgen/internal/core"
	"planetgen/internal/habitability"
	rng "planetgen/pkg/core"
)

// ErrInvalidConfig reports unusable search parameters.
var ErrInvalidConfig = errors.New("calibrate: invalid config")

// Config controls the Monte Carlo search.
type Config struct {
	// Samples is the number of band cells drawn per fitness evaluation.
	Samples int
	// Iterations is the number of candidate rates drawn.
	Iterations int
	MinRate    float64
	MaxRate    float64
}

// DefaultConfig returns the standard search parameters.
func DefaultConfig() Config {
	return Config{
		Samples:    200,
		Iterations: 600,
		MinRate:    0,
		MaxRate:    1_000_000,
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.Samples <= 0:
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, c.Samples)
	case c.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	case math.IsNaN(c.MinRate) || math.IsNaN(c.MaxRate) || c.MaxRate < c.MinRate:
		return fmt.Errorf("%w: rate bounds [%g, %g]", ErrInvalidConfig, c.MinRate, c.MaxRate)
	}
	return nil
}

// Sample is one evaluated candidate.
type Sample struct {
	Rate    float64 `json:"rate"`
	Fitness float64 `json:"fitness"`
}

// Result is the outcome of a search. Samples holds every evaluated candidate
// in draw order and Best indexes the winner.
type Result struct {
	Rate    float64  `json:"rate"`
	Fitness float64  `json:"fitness"`
	Best    int      `json:"best_index"`
	Samples []Sample `json:"-"`
}

// Band returns the half-open coordinate interval [ceil(7n/16), floor(9n/16))
// used as the equatorial reference region. On grids too small to hold it the
// band is widened to a single cell.
func Band(n int) (lo, hi int) {
	lo = (7*n + 15) / 16
	hi = 9 * n / 16
	if hi <= lo {
		if lo > n-1 {
			lo = n - 1
		}
		if lo < 0 {
			lo = 0
		}
		hi = lo + 1
	}
	return lo, hi
}

// Fitness returns the fraction of samples uniformly drawn band cells whose
// heat, scaled by rate, is habitable.
func Fitness(heat *core.Grid[float64], rate float64, samples int, r *rng.RNG) float64 {
	if samples <= 0 || heat.N == 0 {
		return 0
	}
	lo, hi := Band(heat.N)
	habitable := 0
	for i := 0; i < samples; i++ {
		x := r.IntRange(lo, hi)
		y := r.IntRange(lo, hi)
		if habitability.IsHabitable(heat.At(x, y) * rate) {
			habitable++
		}
	}
	return float64(habitable) / float64(samples)
}

// Maximize draws iterations inputs uniformly from [min, max), evaluates f on
// each and returns the input with the highest value. Ties keep the first
// draw. There is no local refinement, so precision is bounded by the number
// of draws.
func Maximize(f func(float64) float64, min, max float64, iterations int, r *rng.RNG) Result {
	res := Result{Rate: min, Fitness: math.Inf(-1), Best: -1}
	if iterations <= 0 {
		return res
	}
	res.Samples = make([]Sample, 0, iterations)
	for i := 0; i < iterations; i++ {
		input := r.FloatRange(min, max)
		value := f(input)
		res.Samples = append(res.Samples, Sample{Rate: input, Fitness: value})
		if res.Best < 0 || value > res.Fitness {
			res.Rate = input
			res.Fitness = value
			res.Best = i
		}
	}
	return res
}

// Calibrate searches for the rate that maximizes the habitable fraction of the
// reference band of heat. The search is randomized: calibrate once per heat
// grid and pass the rate on rather than recomputing it.
func Calibrate(heat *core.Grid[float64], cfg Config, r *rng.RNG) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if heat.N == 0 {
		return Result{}, fmt.Errorf("%w: empty heat grid", ErrInvalidConfig)
	}
	fitness := func(rate float64) float64 {
		return Fitness(heat, rate, cfg.Samples, r)
	}
	return Maximize(fitness, cfg.MinRate, cfg.MaxRate, cfg.Iterations, r), nil
}
