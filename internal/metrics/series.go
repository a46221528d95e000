package metrics

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidProfile is returned by Validate for unusable generator settings
var ErrInvalidProfile = errors.New("invalid metrics profile")

// Series describes how one simulated value moves: where it starts, how far it
// wanders per tick, how often it bursts and where it is clamped.
type Series struct {
	Base        float64 `yaml:"base"`
	Jitter      float64 `yaml:"jitter"`
	TrendSpan   float64 `yaml:"trend_span"`
	SpikeChance float64 `yaml:"spike_chance"`
	SpikeSize   float64 `yaml:"spike_size"`
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
}

// Profile is the full generator configuration for one chart
type Profile struct {
	Capacity  int           `yaml:"capacity"`
	Interval  time.Duration `yaml:"interval"`
	Primary   Series        `yaml:"primary"`
	Secondary Series        `yaml:"secondary"`
}

// Clamp limits v to [Min, Max]
func (s Series) Clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Step computes clamp(prev + trend + spike)
func (s Series) Step(prev, trend, spike float64) float64 {
	return s.Clamp(prev + trend + spike)
}

// Validate checks the series bounds and probabilities
func (s Series) Validate() error {
	switch {
	case s.Min > s.Max:
		return fmt.Errorf("%w: min %v greater than max %v", ErrInvalidProfile, s.Min, s.Max)
	case s.Jitter < 0:
		return fmt.Errorf("%w: negative jitter %v", ErrInvalidProfile, s.Jitter)
	case s.TrendSpan < 0:
		return fmt.Errorf("%w: negative trend span %v", ErrInvalidProfile, s.TrendSpan)
	case s.SpikeChance < 0 || s.SpikeChance > 1:
		return fmt.Errorf("%w: spike chance %v outside [0, 1]", ErrInvalidProfile, s.SpikeChance)
	}
	return nil
}

// Validate checks the whole profile
func (p Profile) Validate() error {
	if p.Capacity < 2 {
		return fmt.Errorf("%w: capacity %d, need at least 2", ErrInvalidProfile, p.Capacity)
	}
	if p.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalidProfile)
	}
	if err := p.Primary.Validate(); err != nil {
		return fmt.Errorf("primary: %w", err)
	}
	if err := p.Secondary.Validate(); err != nil {
		return fmt.Errorf("secondary: %w", err)
	}
	return nil
}
