package planet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"planetgen/internal/core"
	"planetgen/internal/gridstat"
	"planetgen/internal/habitability"
)

// Manifest is the JSON record written next to the images of a run. It keeps
// the rate so a later run can reuse it instead of recalibrating.
type Manifest struct {
	RunID      string             `json:"run_id"`
	CreatedAt  time.Time          `json:"created_at"`
	Config     Config             `json:"config"`
	Rate       float64            `json:"rate"`
	Calibrated bool               `json:"calibrated"`
	Fitness    float64            `json:"band_fitness,omitempty"`
	BestIndex  int                `json:"best_index,omitempty"`
	Elevation  gridstat.Summary   `json:"elevation"`
	Heat       gridstat.Summary   `json:"heat"`
	Classes    map[string]float64 `json:"class_fractions"`
	Stages     []core.StageTiming `json:"stages"`
	Elapsed    time.Duration      `json:"elapsed_ns"`
}

// Manifest builds the run record with the current rate.
func (p *Planet) Manifest() Manifest {
	m := Manifest{
		RunID:      p.runID,
		CreatedAt:  p.created,
		Config:     p.cfg,
		Rate:       p.rate,
		Calibrated: p.calibrated,
		Elevation:  gridstat.Describe(p.elevation),
		Heat:       gridstat.Describe(p.heat),
		Classes:    make(map[string]float64, len(habitability.Classes)),
		Stages:     p.stages,
		Elapsed:    p.elapsed,
	}
	if p.calibrated {
		m.Fitness = p.calibration.Fitness
		m.BestIndex = p.calibration.Best
	}
	total := float64(len(p.heat.Cells()))
	for class, n := range p.Counts() {
		m.Classes[class.String()] = float64(n) / total
	}
	return m
}

// WriteManifest writes the run record as indented JSON.
func (p *Planet) WriteManifest(path string) error {
	data, err := json.MarshalIndent(p.Manifest(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a run record, typically to reuse its rate.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("failed to read manifest: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return m, nil
}
