package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_OverridesBuiltinPresetFields(t *testing.T) {
	data := []byte(`
preset: pulse
seed: 42
presets:
  pulse:
    profile:
      interval: 1500ms
      primary:
        spike_chance: 0.2
web:
  addr: ":9090"
tui:
  frame_rate: 50ms
log:
  level: debug
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, PresetPulse, cfg.Preset)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, ":9090", cfg.Web.Addr)
	assert.Equal(t, 10*time.Second, cfg.Web.ReadTimeout, "untouched defaults survive")
	assert.Equal(t, 50*time.Millisecond, cfg.TUI.FrameRate)
	assert.Equal(t, "debug", cfg.Log.Level)

	p, err := cfg.ActivePreset()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, p.Profile.Interval)
	assert.Equal(t, 0.2, p.Profile.Primary.SpikeChance)
	assert.Equal(t, 95.0, p.Profile.Primary.Max, "unset preset fields keep builtin values")
	assert.Equal(t, 25, p.Profile.Capacity)
}

func TestParse_NewPreset(t *testing.T) {
	data := []byte(`
preset: latency
presets:
  latency:
    label: Latency
    profile:
      capacity: 10
      interval: 1s
      primary: {base: 20, jitter: 5, trend_span: 2, min: 10, max: 40}
      secondary: {base: 1, min: 0, max: 2}
    chart:
      width: 200
      height: 80
      domain_min: 0
      domain_max: 50
      readout: {decimals: 1, suffix: ms}
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	p, err := cfg.ActivePreset()
	require.NoError(t, err)
	assert.Equal(t, "latency", p.Name)
	assert.Equal(t, "Latency", p.Label)
	assert.Equal(t, 10, p.Profile.Capacity)
	assert.Equal(t, "ms", p.Chart.Readout.Suffix)
	assert.Len(t, cfg.Presets, 3)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("preset: [unclosed"))
	assert.Error(t, err)

	_, err = Parse([]byte("unknown_key: 1"))
	assert.Error(t, err)

	_, err = Parse([]byte("preset: missing"))
	assert.ErrorIs(t, err, ErrUnknownPreset)

	_, err = Parse([]byte("presets:\n  pulse:\n    profile:\n      capacity: 1\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
