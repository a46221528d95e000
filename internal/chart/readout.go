package chart

import (
	"math"
	"strconv"
)

// Readout turns the newest value into the headline counter next to the chart,
// computed as (Offset + v*Scale) / Divisor.
type Readout struct {
	Offset   float64 `yaml:"offset"`
	Scale    float64 `yaml:"scale"`
	Divisor  float64 `yaml:"divisor"`
	Decimals int     `yaml:"decimals"`
	Floor    bool    `yaml:"floor"`
	Suffix   string  `yaml:"suffix"`
}

// Format renders v through the readout transform
func (r Readout) Format(v float64) string {
	scale := r.Scale
	if scale == 0 {
		scale = 1
	}
	div := r.Divisor
	if div == 0 {
		div = 1
	}
	x := (r.Offset + v*scale) / div

	if r.Floor {
		p := math.Pow(10, float64(r.Decimals))
		x = math.Floor(x*p) / p
	}
	return strconv.FormatFloat(x, 'f', r.Decimals, 64) + r.Suffix
}
