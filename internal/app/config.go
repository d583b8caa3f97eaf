package app

import (
	"flag"
	"fmt"

	"planetgen/internal/core"
	"planetgen/internal/planet"
	_ "planetgen/internal/render"
)

// Layer names in the order the number keys select them.
var layerOrder = []string{"elevation", "heat", "classification"}

// Config represents the command-line parameters of the viewer.
type Config struct {
	Layer      string
	Scale      int
	TPS        int
	PanelWidth int
	ConfigPath string
	ShotDir    string

	Planet planet.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	p := planet.DefaultConfig()
	p.Size = 512
	p.StampCount = 12000
	return &Config{
		Layer:      "classification",
		Scale:      1,
		TPS:        30,
		PanelWidth: 260,
		ShotDir:    ".",
		Planet:     p,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Layer, "layer", c.Layer, "initial layer (elevation, heat, classification)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "HUD panel width in pixels, 0 hides it")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON planet config; flags set explicitly override it")
	fs.StringVar(&c.ShotDir, "shots", c.ShotDir, "directory for layer snapshots")
	c.Planet.Bind(fs)
}

// Resolve loads ConfigPath, if any, and reapplies the flags the user set
// explicitly on top of it.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.ConfigPath != "" {
		loaded, err := planet.LoadConfigWithFlags(c.ConfigPath, fs)
		if err != nil {
			return err
		}
		c.Planet = loaded
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.PanelWidth < 0 {
		c.PanelWidth = 0
	}
	if _, ok := core.Layers()[c.Layer]; !ok {
		return fmt.Errorf("unknown layer %q (have %v)", c.Layer, core.LayerNames())
	}
	return c.Planet.Validate()
}

// LayerForKey maps a 1-based number key to a registered layer name.
func LayerForKey(n int) (string, bool) {
	if n < 1 || n > len(layerOrder) {
		return "", false
	}
	name := layerOrder[n-1]
	if _, ok := core.Layers()[name]; !ok {
		return "", false
	}
	return name, true
}

// rateDependent reports whether a layer must be repainted when the rate moves.
func rateDependent(layer string) bool {
	return layer == "classification"
}
