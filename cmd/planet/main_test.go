package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"planetgen/internal/planet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var small = []string{
	"-v=false",
	"-size", "32",
	"-stamps", "500",
	"-heat-samples", "16",
	"-calibration-iterations", "80",
	"-workers", "2",
}

func TestRunWritesOutputs(t *testing.T) {
	out := t.TempDir()
	var stdout bytes.Buffer
	require.NoError(t, run(append(small, "-out", out), &stdout))

	for _, name := range []string{
		"elevation.png", "heat.png", "classification.png",
		"calibration.png", "calibration.html", "temperature.png", "manifest.json",
	} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, stdout.String(), "habitable")
	assert.Contains(t, stdout.String(), "total")
}

func TestRunAppliesSetOverrides(t *testing.T) {
	out := t.TempDir()
	args := append(small, "-out", out, "-charts=false", "-set", "seed=21", "-set", "rate=280.5", "-set", "size=24")
	require.NoError(t, run(args, &bytes.Buffer{}))

	m, err := planet.ReadManifest(filepath.Join(out, "manifest.json"))
	require.NoError(t, err)
	assert.Equal(t, int64(21), m.Config.Seed)
	assert.Equal(t, 24, m.Config.Size)
	assert.Equal(t, 280.5, m.Rate)
	assert.False(t, m.Calibrated)
}

func TestSetRejectsMalformedPair(t *testing.T) {
	err := run(append(small, "-out", t.TempDir(), "-set", "seed"), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunReusesManifestRate(t *testing.T) {
	first := t.TempDir()
	require.NoError(t, run(append(small, "-out", first, "-charts=false"), &bytes.Buffer{}))
	m, err := planet.ReadManifest(filepath.Join(first, "manifest.json"))
	require.NoError(t, err)

	second := t.TempDir()
	require.NoError(t, run(append(small, "-out", second, "-reuse", filepath.Join(first, "manifest.json"), "-layers", "classification"), &bytes.Buffer{}))
	again, err := planet.ReadManifest(filepath.Join(second, "manifest.json"))
	require.NoError(t, err)

	assert.Equal(t, m.Rate, again.Rate)
	assert.False(t, again.Calibrated)
	assert.Equal(t, m.Classes, again.Classes)
	_, err = os.Stat(filepath.Join(second, "elevation.png"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(second, "calibration.png"))
	assert.True(t, os.IsNotExist(err), "no calibration chart without a search")
}

func TestRunRejectsUnknownLayer(t *testing.T) {
	err := run(append(small, "-out", t.TempDir(), "-layers", "rainfall"), &bytes.Buffer{})
	assert.Error(t, err)
}
