package planet

import (
	"math"
	"strconv"

	"planetgen/internal/core"
)

// Parameters reports the configuration and derived values behind the planet.
func (p *Planet) Parameters() core.ParameterSnapshot {
	cfg := p.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				intParam("size", "Size", cfg.Size),
				int64Param("seed", "Seed", cfg.Seed),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				intParam("stamps", "Stamps", cfg.StampCount),
				intParam("target_range", "Target range", cfg.TargetRange),
				intParam("max_stamp_size", "Max stamp size", cfg.MaxStampSize),
			},
		},
		{
			Name: "Heat",
			Params: []core.Parameter{
				intParam("heat_samples", "Arc samples", cfg.HeatSamples),
				floatParam("z_scale", "Z scale", cfg.ZScale),
			},
		},
		{
			Name: "Calibration",
			Params: []core.Parameter{
				intParam("calibration_samples", "Band samples", cfg.CalibrationSamples),
				intParam("calibration_iterations", "Iterations", cfg.CalibrationIterations),
				floatParam("rate_min", "Rate min", cfg.RateMin),
				floatParam("rate_max", "Rate max", cfg.RateMax),
				floatParam("rate", "Rate", p.rate),
				floatParam("fitness", "Band fitness", p.calibration.Fitness),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls exposes the rate as the only live-adjustable value; the
// grids themselves are fixed once generated.
func (p *Planet) ParameterControls() []core.ParameterControl {
	step := math.Max(1, math.Round(p.rate/100))
	return []core.ParameterControl{{
		Key:    "rate",
		Label:  "Rate",
		Type:   core.ParamTypeFloat,
		Step:   step,
		Min:    0,
		HasMin: true,
	}}
}

// SetFloatParameter updates the rate from HUD interactions.
func (p *Planet) SetFloatParameter(key string, value float64) bool {
	if key != "rate" {
		return false
	}
	return p.SetRate(value)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
