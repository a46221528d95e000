// Package live wires a generator, its rolling window and the chart renderer
// into one mountable component. Each view owns exactly one Panel.
package live

import (
	"context"
	"time"

	"github.com/rusenback/zephyria/internal/chart"
	"github.com/rusenback/zephyria/internal/metrics"
	"github.com/rusenback/zephyria/internal/model"
)

const defaultInterval = 2 * time.Second

// Surface is where frames are drawn
type Surface interface {
	Present(chart.Frame) error
}

// SurfaceFunc adapts a function to Surface
type SurfaceFunc func(chart.Frame) error

func (f SurfaceFunc) Present(fr chart.Frame) error {
	return f(fr)
}

// Observer is notified after every generator tick
type Observer func(metrics.Tick)

// Panel is one live chart instance. It is not safe for concurrent use:
// a single goroutine mounts, ticks and reads it.
type Panel struct {
	gen      *metrics.Generator
	window   *metrics.Window
	opts     chart.Options
	surface  Surface
	observe  Observer
	frame    chart.Frame
	mounted  bool
	interval time.Duration
}

// Option configures a Panel
type Option func(*Panel)

// WithObserver registers a tick observer
func WithObserver(o Observer) Option {
	return func(p *Panel) { p.observe = o }
}

// WithInterval overrides the generator profile's tick interval
func WithInterval(d time.Duration) Option {
	return func(p *Panel) {
		if d > 0 {
			p.interval = d
		}
	}
}

// NewPanel creates an unmounted panel. A nil surface yields a panel whose
// operations all do nothing.
func NewPanel(gen *metrics.Generator, opts chart.Options, surface Surface, options ...Option) *Panel {
	p := &Panel{
		gen:      gen,
		window:   metrics.NewWindow(gen.Profile().Capacity),
		opts:     opts,
		surface:  surface,
		interval: gen.Profile().Interval,
	}
	for _, o := range options {
		o(p)
	}
	if p.interval <= 0 {
		p.interval = defaultInterval
	}
	return p
}

// Active reports whether the panel has somewhere to draw
func (p *Panel) Active() bool {
	return p.surface != nil
}

// Mounted reports whether Mount has run
func (p *Panel) Mounted() bool {
	return p.mounted
}

// Mount fills the window and presents the first frame
func (p *Panel) Mount() error {
	if !p.Active() || p.mounted {
		return nil
	}
	p.gen.Fill(p.window)
	p.mounted = true
	return p.redraw()
}

// Tick advances the generator one step and redraws
func (p *Panel) Tick() (metrics.Tick, error) {
	if !p.Active() {
		return metrics.Tick{}, nil
	}
	if !p.mounted {
		return metrics.Tick{}, p.Mount()
	}

	t, ok := p.gen.Tick(p.window)
	if !ok {
		return metrics.Tick{}, nil
	}
	if p.observe != nil {
		p.observe(t)
	}
	return t, p.redraw()
}

// Run mounts the panel and ticks it every interval until ctx is done.
// It returns nil on cancellation and the surface error if a present fails.
func (p *Panel) Run(ctx context.Context) error {
	if !p.Active() {
		return nil
	}
	if err := p.Mount(); err != nil {
		return err
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := p.Tick(); err != nil {
				return err
			}
		}
	}
}

// Frame returns the last presented frame
func (p *Panel) Frame() chart.Frame {
	return p.frame
}

// Samples returns the window contents, oldest first
func (p *Panel) Samples() []model.Sample {
	return p.window.Samples()
}

// Primary returns the primary series of the window, oldest first
func (p *Panel) Primary() []float64 {
	return p.window.Primary()
}

// Options returns the renderer options
func (p *Panel) Options() chart.Options {
	return p.opts
}

// Interval returns the tick interval
func (p *Panel) Interval() time.Duration {
	return p.interval
}

func (p *Panel) redraw() error {
	p.frame = chart.Render(p.window.Samples(), p.opts)
	return p.surface.Present(p.frame)
}
