package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"planetgen/internal/calibrate"
	"planetgen/internal/heat"
	"planetgen/internal/monitoring"
	"planetgen/internal/planet"
	"planetgen/internal/terrain"
	rng "planetgen/pkg/core"
)

func main() {
	cfg := planet.DefaultConfig()
	cfg.Size = 256
	cfg.StampCount = 3000
	cfg.Bind(flag.CommandLine)
	runs := flag.Int("runs", 32, "independent calibrations of the same heat grid")
	sweepWorkers := flag.Int("sweep-workers", runtime.NumCPU(), "parallel calibrations")
	sweepSeed := flag.Int64("sweep-seed", 1, "seed of the calibration streams")
	jsonOut := flag.String("json", "", "write the full report as JSON to this path")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	monitoring.Logf("building %dx%d terrain (seed %d)", cfg.Size, cfg.Size, cfg.Seed)
	elevation, err := terrain.Synthesize(cfg.TerrainConfig(), rng.NewStreamRNG(cfg.Seed, planet.StreamTerrain))
	if err != nil {
		log.Fatal(err)
	}
	field, err := heat.ComputeField(elevation, cfg.HeatConfig())
	if err != nil {
		log.Fatal(err)
	}

	monitoring.Logf("calibrating %d times on %d workers", *runs, *sweepWorkers)
	rep, err := calibrate.Sweep(field, cfg.CalibrationConfig(), *sweepSeed, *runs, *sweepWorkers)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Runs: %d (%d iterations x %d samples each)\n", rep.Runs, cfg.CalibrationIterations, cfg.CalibrationSamples)
	printSpread("rate", rep.Rate)
	printSpread("fitness", rep.Fitness)

	if *jsonOut != "" {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*jsonOut, data, 0o644); err != nil {
			log.Fatal(err)
		}
	}
}

func printSpread(name string, s calibrate.Spread) {
	fmt.Printf("  %-8s mean=%.3f stddev=%.3f min=%.3f p25=%.3f median=%.3f p75=%.3f max=%.3f\n",
		name, s.Mean, s.StdDev, s.Min, s.P25, s.Median, s.P75, s.Max)
}
