package calibrate

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"planetgen/internal/core"
	rng "planetgen/pkg/core"

	"gonum.org/v1/gonum/stat"
)

// Spread summarizes one quantity across repeated calibrations.
type Spread struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// SweepReport describes how much independent calibrations of the same heat
// grid disagree.
type SweepReport struct {
	Runs    int      `json:"runs"`
	Rate    Spread   `json:"rate"`
	Fitness Spread   `json:"fitness"`
	Results []Result `json:"results"`
}

// SweepStreamBase is the first random stream used by Sweep. Pipeline stages
// use small stream numbers, so sweep runs never replay a planet's own
// calibration even when both share a seed.
const SweepStreamBase uint64 = 1 << 32

// Sweep calibrates heat runs times, run i drawing from stream
// SweepStreamBase+i of seed. Runs execute on up to workers goroutines;
// results are returned in run order and are independent of the worker count.
func Sweep(heat *core.Grid[float64], cfg Config, seed int64, runs, workers int) (SweepReport, error) {
	if runs <= 0 {
		return SweepReport{}, fmt.Errorf("%w: runs must be positive, got %d", ErrInvalidConfig, runs)
	}
	if err := cfg.Validate(); err != nil {
		return SweepReport{}, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, runs)
	errs := make([]error, runs)
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := 0; i < runs; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Calibrate(heat, cfg, rng.NewStreamRNG(seed, SweepStreamBase+uint64(i)))
			<-sem
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return SweepReport{}, err
		}
	}

	rates := make([]float64, runs)
	fitness := make([]float64, runs)
	for i, r := range results {
		rates[i] = r.Rate
		fitness[i] = r.Fitness
	}
	return SweepReport{
		Runs:    runs,
		Rate:    spreadOf(rates),
		Fitness: spreadOf(fitness),
		Results: results,
	}, nil
}

func spreadOf(values []float64) Spread {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		std = 0
	}
	return Spread{
		Mean:   mean,
		StdDev: std,
		Min:    sorted[0],
		P25:    stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P75:    stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
}
