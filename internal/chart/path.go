// Package chart projects a rolling window of samples onto a 2D chart.
//
// Render is pure: the same samples and options always produce the same Frame,
// so a host can redraw as often as it likes.
package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/rusenback/zephyria/internal/model"
)

// Options describe the drawing surface and the value domain mapped onto it
type Options struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	DomainMin float64 `yaml:"domain_min"`
	DomainMax float64 `yaml:"domain_max"`
	Readout   Readout `yaml:"readout"`
}

// Point is a projected sample in surface coordinates, y grows downwards
type Point struct {
	X float64
	Y float64
}

// Frame is everything a surface needs to redraw
type Frame struct {
	Index     int     `json:"index"`
	Line      string  `json:"line"`
	Area      string  `json:"area"`
	Readout   string  `json:"readout"`
	Primary   float64 `json:"primary"`
	Secondary float64 `json:"secondary"`
	Points    []Point `json:"-"`
}

// Empty reports whether the frame carries nothing to draw
func (f Frame) Empty() bool {
	return len(f.Points) == 0
}

// Render projects samples (oldest first) onto the surface described by opts
func Render(samples []model.Sample, opts Options) Frame {
	if len(samples) == 0 {
		return Frame{}
	}

	points := Project(samples, opts)
	line := Polyline(points)
	latest := samples[len(samples)-1]

	return Frame{
		Index:     latest.Index,
		Line:      line,
		Area:      closeArea(line, opts),
		Readout:   opts.Readout.Format(latest.Primary),
		Primary:   latest.Primary,
		Secondary: latest.Secondary,
		Points:    points,
	}
}

// Project maps sample i to x = i/(n-1)*Width and its primary value to
// y = Height - normalized(value)*Height.
func Project(samples []model.Sample, opts Options) []Point {
	n := len(samples)
	points := make([]Point, n)
	span := opts.DomainMax - opts.DomainMin
	if span == 0 {
		span = 1
	}

	for i, s := range samples {
		var x float64
		if n > 1 {
			x = float64(i) / float64(n-1) * opts.Width
		}
		norm := (s.Primary - opts.DomainMin) / span
		points[i] = Point{X: x, Y: opts.Height - norm*opts.Height}
	}
	return points
}

// Polyline builds an SVG path description "M x y L x y ..." through points
func Polyline(points []Point) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(num(p.X))
		b.WriteByte(' ')
		b.WriteString(num(p.Y))
	}
	return b.String()
}

// closeArea drops the polyline to the baseline so it can be filled
func closeArea(line string, opts Options) string {
	if line == "" {
		return ""
	}
	w, h := num(opts.Width), num(opts.Height)
	return line + " L " + w + " " + h + " L 0 " + h + " Z"
}

// num formats coordinates with at most two decimals and no trailing zeros
func num(f float64) string {
	r := math.Round(f*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
