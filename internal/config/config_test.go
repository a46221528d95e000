package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	p, err := cfg.ActivePreset()
	require.NoError(t, err)
	assert.Equal(t, PresetPerformance, p.Name)
	assert.Equal(t, 20, p.Profile.Capacity)
	assert.Equal(t, []string{PresetPerformance, PresetPulse}, cfg.PresetNames())
}

func TestBuiltinPresets_AreValid(t *testing.T) {
	for name, p := range BuiltinPresets() {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, p.Validate())
			assert.Equal(t, name, p.Name)
			assert.GreaterOrEqual(t, p.Profile.Primary.Base, p.Profile.Primary.Min)
			assert.LessOrEqual(t, p.Profile.Primary.Base+p.Profile.Primary.Jitter, p.Profile.Primary.Max)
		})
	}
}

func TestPerformancePreset_Draws(t *testing.T) {
	p := BuiltinPresets()[PresetPerformance].Profile
	assert.Equal(t, 500000.0, p.Primary.Base)
	assert.Equal(t, 200000.0, p.Primary.Jitter)
	assert.Equal(t, 0.2, p.Primary.SpikeChance)
	assert.Equal(t, 300000.0, p.Primary.SpikeSize, "burst matches the 300k stress spike")
	assert.Equal(t, 20.0, p.Secondary.Base)
	assert.Equal(t, 10.0, p.Secondary.Jitter)
}

func TestLookup_Unknown(t *testing.T) {
	cfg := Default()
	_, err := cfg.Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownPreset)

	cfg.Preset = "nope"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownPreset)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Web.Addr = "" }},
		{"zero frame rate", func(c *Config) { c.TUI.FrameRate = 0 }},
		{"no events", func(c *Config) { c.TUI.EventLimit = 0 }},
		{"bad chart", func(c *Config) {
			p := c.Presets[PresetPulse]
			p.Chart.Width = 0
			c.Presets[PresetPulse] = p
		}},
		{"bad profile", func(c *Config) {
			p := c.Presets[PresetPulse]
			p.Profile.Primary.Min = 200
			c.Presets[PresetPulse] = p
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
