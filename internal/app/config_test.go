package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigResolves(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(nil))
	require.NoError(t, cfg.Resolve(fs))
	assert.Equal(t, "classification", cfg.Layer)
}

func TestResolveRejectsUnknownLayer(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-layer", "rainfall"}))
	assert.Error(t, cfg.Resolve(fs))
}

func TestResolveRejectsBadScale(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-scale", "0"}))
	assert.Error(t, cfg.Resolve(fs))
}

func TestExplicitFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planet.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"size": 64, "stamps": 300, "seed": 5}`), 0o644))

	cfg := NewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-config", path, "-seed", "9", "-rate", "120"}))
	require.NoError(t, cfg.Resolve(fs))

	assert.Equal(t, 64, cfg.Planet.Size)
	assert.Equal(t, 300, cfg.Planet.StampCount)
	assert.Equal(t, int64(9), cfg.Planet.Seed)
	require.NotNil(t, cfg.Planet.Rate)
	assert.Equal(t, 120.0, *cfg.Planet.Rate)
}

func TestLayerForKey(t *testing.T) {
	cases := map[int]string{1: "elevation", 2: "heat", 3: "classification"}
	for key, want := range cases {
		got, ok := LayerForKey(key)
		require.True(t, ok, "key %d", key)
		assert.Equal(t, want, got)
	}
	_, ok := LayerForKey(0)
	assert.False(t, ok)
	_, ok = LayerForKey(4)
	assert.False(t, ok)
	assert.True(t, rateDependent("classification"))
	assert.False(t, rateDependent("elevation"))
}
