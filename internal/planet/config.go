package planet

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"planetgen/internal/calibrate"
	"planetgen/internal/heat"
	"planetgen/internal/terrain"
)

// ErrInvalidConfig reports a configuration that cannot produce a planet.
var ErrInvalidConfig = errors.New("planet: invalid config")

// Config holds every tunable of a planet run. The JSON field names double as
// the WithOverrides keys.
type Config struct {
	Size int   `json:"size"`
	Seed int64 `json:"seed"`

	StampCount   int `json:"stamps"`
	TargetRange  int `json:"target_range"`
	MaxStampSize int `json:"max_stamp_size"`

	HeatSamples int     `json:"heat_samples"`
	ZScale      float64 `json:"z_scale"`

	CalibrationSamples    int     `json:"calibration_samples"`
	CalibrationIterations int     `json:"calibration_iterations"`
	RateMin               float64 `json:"rate_min"`
	RateMax               float64 `json:"rate_max"`
	// Rate, when set, is used verbatim and the calibration search is skipped.
	Rate *float64 `json:"rate,omitempty"`

	Workers int `json:"workers"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	t := terrain.DefaultConfig()
	h := heat.DefaultConfig()
	c := calibrate.DefaultConfig()
	return Config{
		Size:                  t.Size,
		Seed:                  1337,
		StampCount:            t.StampCount,
		TargetRange:           t.TargetRange,
		MaxStampSize:          t.MaxStampSize,
		HeatSamples:           h.Samples,
		ZScale:                h.ZScale,
		CalibrationSamples:    c.Samples,
		CalibrationIterations: c.Iterations,
		RateMin:               c.MinRate,
		RateMax:               c.MaxRate,
		Workers:               runtime.NumCPU(),
	}
}

// TerrainConfig projects the terrain stage parameters.
func (c Config) TerrainConfig() terrain.Config {
	return terrain.Config{
		Size:         c.Size,
		StampCount:   c.StampCount,
		TargetRange:  c.TargetRange,
		MaxStampSize: c.MaxStampSize,
	}
}

// HeatConfig projects the heat stage parameters.
func (c Config) HeatConfig() heat.Config {
	return heat.Config{ZScale: c.ZScale, Samples: c.HeatSamples, Workers: c.Workers}
}

// CalibrationConfig projects the calibration stage parameters.
func (c Config) CalibrationConfig() calibrate.Config {
	return calibrate.Config{
		Samples:    c.CalibrationSamples,
		Iterations: c.CalibrationIterations,
		MinRate:    c.RateMin,
		MaxRate:    c.RateMax,
	}
}

// Validate reports the first field that cannot produce a planet.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	switch {
	case c.Size <= 0:
		return invalid("size must be positive, got %d", c.Size)
	case c.StampCount <= 0:
		return invalid("stamps must be positive, got %d", c.StampCount)
	case c.TargetRange < 2 || c.TargetRange > terrain.MaxTargetRange:
		return invalid("target_range must be in [2, %d], got %d", terrain.MaxTargetRange, c.TargetRange)
	case c.MaxStampSize <= 0:
		return invalid("max_stamp_size must be positive, got %d", c.MaxStampSize)
	case c.HeatSamples <= 0:
		return invalid("heat_samples must be positive, got %d", c.HeatSamples)
	case math.IsNaN(c.ZScale) || math.IsInf(c.ZScale, 0):
		return invalid("z_scale must be finite, got %g", c.ZScale)
	}
	if c.Rate != nil {
		if math.IsNaN(*c.Rate) || *c.Rate < 0 {
			return invalid("rate must be non-negative, got %g", *c.Rate)
		}
		return nil
	}
	switch {
	case c.CalibrationSamples <= 0:
		return invalid("calibration_samples must be positive, got %d", c.CalibrationSamples)
	case c.CalibrationIterations <= 0:
		return invalid("calibration_iterations must be positive, got %d", c.CalibrationIterations)
	case c.RateMin < 0 || c.RateMax < c.RateMin:
		return invalid("rate bounds [%g, %g] are inverted or negative", c.RateMin, c.RateMax)
	}
	return nil
}

// WithOverrides returns a copy of c with the key/value pairs of cfg applied.
// Keys are the JSON field names. Unknown keys are ignored and unparseable or
// out-of-range values keep the current value.
func (c Config) WithOverrides(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	positiveInt := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	nonNegativeFloat := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	positiveInt("size", &c.Size)
	positiveInt("stamps", &c.StampCount)
	positiveInt("target_range", &c.TargetRange)
	positiveInt("max_stamp_size", &c.MaxStampSize)
	positiveInt("heat_samples", &c.HeatSamples)
	positiveInt("calibration_samples", &c.CalibrationSamples)
	positiveInt("calibration_iterations", &c.CalibrationIterations)
	positiveInt("workers", &c.Workers)
	nonNegativeFloat("z_scale", &c.ZScale)
	nonNegativeFloat("rate_min", &c.RateMin)
	nonNegativeFloat("rate_max", &c.RateMax)
	if c.RateMax < c.RateMin {
		c.RateMax = c.RateMin
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Rate = &parsed
		}
	}
	return c
}

// LoadConfig reads a JSON config file on top of DefaultConfig, so fields
// omitted from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return Config{}, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if info.Size() > maxFileSize {
		return Config{}, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	c := DefaultConfig()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "side length of the square map")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for terrain and calibration")
	fs.IntVar(&c.StampCount, "stamps", c.StampCount, "number of terrain stamps")
	fs.IntVar(&c.TargetRange, "target-range", c.TargetRange, "elevation levels after normalization")
	fs.IntVar(&c.MaxStampSize, "max-stamp-size", c.MaxStampSize, "largest stamp diameter")
	fs.IntVar(&c.HeatSamples, "heat-samples", c.HeatSamples, "sky arc samples per cell")
	fs.Float64Var(&c.ZScale, "z-scale", c.ZScale, "elevation to kilometre scale")
	fs.IntVar(&c.CalibrationSamples, "calibration-samples", c.CalibrationSamples, "band cells sampled per fitness evaluation")
	fs.IntVar(&c.CalibrationIterations, "calibration-iterations", c.CalibrationIterations, "candidate rates drawn by the search")
	fs.Float64Var(&c.RateMin, "rate-min", c.RateMin, "lower bound of the rate search")
	fs.Float64Var(&c.RateMax, "rate-max", c.RateMax, "upper bound of the rate search")
	fs.Var(&rateFlag{dst: &c.Rate}, "rate", "use this rate and skip calibration")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel heat field rows")
}

// LoadConfigWithFlags loads path and then re-applies every flag set
// explicitly on fs, so the command line wins over the file. fs is only read.
func LoadConfigWithFlags(path string, fs *flag.FlagSet) (Config, error) {
	c, err := LoadConfig(path)
	if err != nil {
		return Config{}, err
	}
	own := flag.NewFlagSet("planet", flag.ContinueOnError)
	c.Bind(own)
	var firstErr error
	fs.Visit(func(f *flag.Flag) {
		if firstErr != nil || own.Lookup(f.Name) == nil {
			return
		}
		if err := own.Set(f.Name, f.Value.String()); err != nil {
			firstErr = fmt.Errorf("flag -%s: %w", f.Name, err)
		}
	})
	if firstErr != nil {
		return Config{}, firstErr
	}
	return c, nil
}

type rateFlag struct {
	dst **float64
}

func (f *rateFlag) String() string {
	if f == nil || f.dst == nil || *f.dst == nil {
		return ""
	}
	return strconv.FormatFloat(**f.dst, 'f', -1, 64)
}

func (f *rateFlag) Set(value string) error {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*f.dst = &parsed
	return nil
}
