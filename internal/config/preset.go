package config

import (
	"fmt"
	"time"

	"github.com/rusenback/zephyria/internal/chart"
	"github.com/rusenback/zephyria/internal/metrics"
)

const (
	PresetPerformance = "performance"
	PresetPulse       = "pulse"
)

// Preset pairs a generator profile with the chart it feeds
type Preset struct {
	Name    string          `yaml:"-"`
	Label   string          `yaml:"label"`
	Profile metrics.Profile `yaml:"profile"`
	Chart   chart.Options   `yaml:"chart"`
}

// Validate checks the profile and the chart geometry
func (p Preset) Validate() error {
	if err := p.Profile.Validate(); err != nil {
		return err
	}
	if p.Chart.Width <= 0 || p.Chart.Height <= 0 {
		return fmt.Errorf("chart size %vx%v must be positive", p.Chart.Width, p.Chart.Height)
	}
	if p.Chart.DomainMax <= p.Chart.DomainMin {
		return fmt.Errorf("chart domain [%v, %v] is empty", p.Chart.DomainMin, p.Chart.DomainMax)
	}
	return nil
}

// performancePreset is the TPS area chart: six-figure throughput with
// occasional bursts, plotted against a fixed 400k-1.1M axis.
func performancePreset() Preset {
	return Preset{
		Name:  PresetPerformance,
		Label: "TPS",
		Profile: metrics.Profile{
			Capacity: 20,
			Interval: 2 * time.Second,
			Primary: metrics.Series{
				Base:        500000,
				Jitter:      200000,
				TrendSpan:   40000,
				SpikeChance: 0.2,
				SpikeSize:   300000,
				Min:         400000,
				Max:         1100000,
			},
			Secondary: metrics.Series{
				Base:      20,
				Jitter:    10,
				TrendSpan: 4,
				Min:       15,
				Max:       35,
			},
		},
		Chart: chart.Options{
			Width:     600,
			Height:    250,
			DomainMin: 400000,
			DomainMax: 1100000,
			Readout:   chart.Readout{Divisor: 1000, Decimals: 1, Suffix: "k"},
		},
	}
}

// pulsePreset is the percentage-scale line that drives the "k TPS" counter
func pulsePreset() Preset {
	return Preset{
		Name:  PresetPulse,
		Label: "Load",
		Profile: metrics.Profile{
			Capacity: 25,
			Interval: 1200 * time.Millisecond,
			Primary: metrics.Series{
				Base:        40,
				Jitter:      20,
				TrendSpan:   15,
				SpikeChance: 0.1,
				SpikeSize:   30,
				Min:         10,
				Max:         95,
			},
			Secondary: metrics.Series{
				Base:      18,
				Jitter:    5,
				TrendSpan: 2,
				Min:       12,
				Max:       30,
			},
		},
		Chart: chart.Options{
			Width:     100,
			Height:    100,
			DomainMin: 0,
			DomainMax: 100,
			Readout:   chart.Readout{Offset: 850, Scale: 2.5, Floor: true, Suffix: "k"},
		},
	}
}

// BuiltinPresets returns fresh copies of the shipped presets
func BuiltinPresets() map[string]Preset {
	return map[string]Preset{
		PresetPerformance: performancePreset(),
		PresetPulse:       pulsePreset(),
	}
}
