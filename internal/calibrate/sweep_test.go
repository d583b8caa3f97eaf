package calibrate

import (
	"testing"

	"planetgen/internal/core"
	rng "planetgen/pkg/core"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformHeat(n int, v float64) *core.Grid[float64] {
	g := core.NewGrid[float64](n)
	for i := range g.Cells() {
		g.Cells()[i] = v
	}
	return g
}

func TestSweepIndependentOfWorkers(t *testing.T) {
	heat := uniformHeat(16, 1)
	cfg := Config{Samples: 20, Iterations: 200, MinRate: 0, MaxRate: 1000}

	one, err := Sweep(heat, cfg, 5, 6, 1)
	require.NoError(t, err)
	many, err := Sweep(heat, cfg, 5, 6, 4)
	require.NoError(t, err)

	if diff := cmp.Diff(one, many); diff != "" {
		t.Fatalf("sweep depends on worker count (-one +many):\n%s", diff)
	}
	assert.Equal(t, 6, one.Runs)
	assert.Len(t, one.Results, 6)
}

func TestSweepSpread(t *testing.T) {
	// uniform heat of 1: every rate in [LowTemp, HighTemp] is fully habitable
	heat := uniformHeat(16, 1)
	cfg := Config{Samples: 10, Iterations: 400, MinRate: 0, MaxRate: 1000}
	rep, err := Sweep(heat, cfg, 9, 8, 0)
	require.NoError(t, err)

	assert.Equal(t, 1.0, rep.Fitness.Mean)
	assert.Equal(t, 0.0, rep.Fitness.StdDev)
	for _, r := range rep.Results {
		assert.GreaterOrEqual(t, r.Rate, 257.65)
		assert.LessOrEqual(t, r.Rate, 307.55)
	}
	assert.LessOrEqual(t, rep.Rate.Min, rep.Rate.P25)
	assert.LessOrEqual(t, rep.Rate.P25, rep.Rate.Median)
	assert.LessOrEqual(t, rep.Rate.Median, rep.Rate.P75)
	assert.LessOrEqual(t, rep.Rate.P75, rep.Rate.Max)
}

func TestSweepStreamsAvoidPipelineStreams(t *testing.T) {
	heat := uniformHeat(16, 1)
	cfg := Config{Samples: 20, Iterations: 50, MinRate: 0, MaxRate: 1000}
	rep, err := Sweep(heat, cfg, 3, 2, 1)
	require.NoError(t, err)

	first, err := Calibrate(heat, cfg, rng.NewStreamRNG(3, SweepStreamBase))
	require.NoError(t, err)
	assert.Equal(t, first.Rate, rep.Results[0].Rate)

	for stream := uint64(1); stream <= 2; stream++ {
		pipeline, err := Calibrate(heat, cfg, rng.NewStreamRNG(3, stream))
		require.NoError(t, err)
		for i, r := range rep.Results {
			assert.NotEqual(t, pipeline.Samples[0].Rate, r.Samples[0].Rate, "run %d replays stream %d", i, stream)
		}
	}
}

func TestSweepRejectsBadInput(t *testing.T) {
	heat := uniformHeat(8, 1)
	_, err := Sweep(heat, DefaultConfig(), 1, 0, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = Sweep(heat, Config{}, 1, 3, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSpreadSingleValue(t *testing.T) {
	s := spreadOf([]float64{4})
	assert.Equal(t, Spread{Mean: 4, Min: 4, P25: 4, Median: 4, P75: 4, Max: 4}, s)
}
