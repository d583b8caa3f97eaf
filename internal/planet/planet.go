// Package planet runs the full pipeline: terrain synthesis, heat field,
// rate calibration and per-cell habitability classification.
package planet

import (
	"fmt"
	"math"
	"time"

	"planetgen/internal/calibrate"
	"planetgen/internal/core"
	"planetgen/internal/gridstat"
	"planetgen/internal/habitability"
	"planetgen/internal/heat"
	"planetgen/internal/monitoring"
	"planetgen/internal/terrain"
	rng "planetgen/pkg/core"

	"github.com/google/uuid"
)

// Random streams derived from the run seed, one per stochastic stage.
const (
	StreamTerrain uint64 = iota + 1
	StreamCalibration
)

// Planet is the result of one pipeline run. The grids are read-only once
// Generate returns; only the rate may be changed afterwards.
type Planet struct {
	cfg     Config
	runID   string
	created time.Time

	elevation *core.Grid[int]
	heat      *core.Grid[float64]

	calibration calibrate.Result
	calibrated  bool
	rate        float64

	stages  []core.StageTiming
	elapsed time.Duration
}

// Generate validates cfg and runs every stage in order. Each stage consumes
// the complete output of the previous one.
func Generate(cfg Config) (*Planet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Planet{
		cfg:     cfg,
		runID:   uuid.NewString(),
		created: time.Now().UTC(),
	}
	sw := core.NewStopwatch()
	sw.Start()

	monitoring.Logf("[%s] synthesizing %dx%d terrain from %d stamps", p.runID, cfg.Size, cfg.Size, cfg.StampCount)
	elevation, err := terrain.Synthesize(cfg.TerrainConfig(), rng.NewStreamRNG(cfg.Seed, StreamTerrain))
	if err != nil {
		return nil, fmt.Errorf("terrain stage: %w", err)
	}
	p.elevation = elevation
	monitoring.Logf("[%s] terrain ready in %s", p.runID, sw.Lap("terrain"))

	monitoring.Logf("[%s] computing heat field (%d arc samples, %d workers)", p.runID, cfg.HeatSamples, cfg.Workers)
	field, err := heat.ComputeField(elevation, cfg.HeatConfig())
	if err != nil {
		return nil, fmt.Errorf("heat stage: %w", err)
	}
	p.heat = field
	summary := gridstat.Describe(field)
	monitoring.Logf("[%s] heat field ready in %s (min %.6g max %.6g mean %.6g)", p.runID, sw.Lap("heat"), summary.Min, summary.Max, summary.Mean)

	if cfg.Rate != nil {
		p.rate = *cfg.Rate
		monitoring.Logf("[%s] using fixed rate %.3f, calibration skipped", p.runID, p.rate)
	} else {
		res, err := calibrate.Calibrate(field, cfg.CalibrationConfig(), rng.NewStreamRNG(cfg.Seed, StreamCalibration))
		if err != nil {
			return nil, fmt.Errorf("calibration stage: %w", err)
		}
		p.calibration = res
		p.calibrated = true
		p.rate = res.Rate
		monitoring.Logf("[%s] calibrated rate %.3f (band fitness %.3f) in %s", p.runID, res.Rate, res.Fitness, sw.Lap("calibration"))
	}

	p.stages = sw.Stages()
	p.elapsed = sw.Total()
	monitoring.Logf("[%s] done in %s", p.runID, p.elapsed)
	return p, nil
}

// Name returns the run identifier used in window titles and file names.
func (p *Planet) Name() string { return "planet-" + p.runID[:8] }

// RunID returns the unique identifier of the run.
func (p *Planet) RunID() string { return p.runID }

// Config returns the configuration the planet was generated with.
func (p *Planet) Config() Config { return p.cfg }

// Size reports the grid dimensions.
func (p *Planet) Size() core.Size { return p.elevation.Size() }

// Elevation exposes the normalized elevation grid.
func (p *Planet) Elevation() *core.Grid[int] { return p.elevation }

// Heat exposes the raw heat grid.
func (p *Planet) Heat() *core.Grid[float64] { return p.heat }

// Rate returns the rate used to convert raw heat into kelvin.
func (p *Planet) Rate() float64 { return p.rate }

// SetRate replaces the rate, for example with a value cached from an
// earlier run. Negative and NaN values are rejected.
func (p *Planet) SetRate(rate float64) bool {
	if rate < 0 || math.IsNaN(rate) {
		return false
	}
	p.rate = rate
	return true
}

// Calibration returns the search result and whether a search was run.
func (p *Planet) Calibration() (calibrate.Result, bool) {
	return p.calibration, p.calibrated
}

// Stages returns the per-stage timings of the run.
func (p *Planet) Stages() []core.StageTiming { return p.stages }

// Elapsed returns the summed duration of every stage.
func (p *Planet) Elapsed() time.Duration { return p.elapsed }

// Temperature returns the calibrated temperature of cell (x, y) in kelvin.
func (p *Planet) Temperature(x, y int) float64 {
	return p.heat.At(x, y) * p.rate
}

// Classes classifies every cell with the current rate.
func (p *Planet) Classes() *core.Grid[habitability.Class] {
	rate := p.rate
	return core.Map(p.heat, func(h float64) habitability.Class {
		return habitability.Classify(h * rate)
	})
}

// Counts tallies the cells of each class with the current rate.
func (p *Planet) Counts() map[habitability.Class]int {
	counts := make(map[habitability.Class]int, len(habitability.Classes))
	for _, c := range p.Classes().Cells() {
		counts[c]++
	}
	return counts
}

// Temperatures returns every calibrated cell temperature in row-major order.
func (p *Planet) Temperatures() []float64 {
	out := make([]float64, len(p.heat.Cells()))
	for i, h := range p.heat.Cells() {
		out[i] = h * p.rate
	}
	return out
}
