package metrics

import (
	"math/rand/v2"
	"time"

	"github.com/rusenback/zephyria/internal/model"
)

// Rand is the random source the generator draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Tick is the outcome of one generator step
type Tick struct {
	Sample  model.Sample
	Evicted model.Sample
	Spiked  bool
	Clamped bool
}

// Generator produces a bounded random walk that looks like live telemetry
type Generator struct {
	profile Profile
	rnd     Rand
	now     func() time.Time
	next    int
}

// NewGenerator creates a generator drawing from rnd
func NewGenerator(p Profile, rnd Rand) *Generator {
	return &Generator{
		profile: p,
		rnd:     rnd,
		now:     time.Now,
	}
}

// NewSeeded creates a generator backed by a PCG source
func NewSeeded(p Profile, seed uint64) *Generator {
	return NewGenerator(p, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Profile returns the generator configuration
func (g *Generator) Profile() Profile {
	return g.profile
}

// NewWindow returns a window of the profile's capacity, already filled
func (g *Generator) NewWindow() *Window {
	w := NewWindow(g.profile.Capacity)
	g.Fill(w)
	return w
}

// Fill drops whatever w holds and pushes one initial sample per slot. Each
// value is Base plus uniform jitter, drawn independently of its neighbours.
func (g *Generator) Fill(w *Window) {
	w.Reset()
	for !w.Full() {
		w.Push(model.Sample{
			Index:     g.nextIndex(),
			Primary:   g.initial(g.profile.Primary),
			Secondary: g.initial(g.profile.Secondary),
			At:        g.now(),
		})
	}
}

// Tick advances the walk by one step from the newest sample in w, pushes
// the result and evicts the oldest. An empty window is left untouched.
func (g *Generator) Tick(w *Window) (Tick, bool) {
	prev, ok := w.Latest()
	if !ok {
		return Tick{}, false
	}

	primary, spiked, clamped := g.walk(g.profile.Primary, prev.Primary)
	secondary, _, _ := g.walk(g.profile.Secondary, prev.Secondary)

	s := model.Sample{
		Index:     g.nextIndex(),
		Primary:   primary,
		Secondary: secondary,
		At:        g.now(),
	}
	evicted, _ := w.Push(s)

	return Tick{
		Sample:  s,
		Evicted: evicted,
		Spiked:  spiked,
		Clamped: clamped,
	}, true
}

func (g *Generator) initial(s Series) float64 {
	return s.Clamp(s.Base + g.rnd.Float64()*s.Jitter)
}

// walk draws the trend first and the spike roll second
func (g *Generator) walk(s Series, prev float64) (next float64, spiked, clamped bool) {
	trend := (g.rnd.Float64() - 0.5) * s.TrendSpan

	var spike float64
	if g.rnd.Float64() < s.SpikeChance {
		spike = s.SpikeSize
		spiked = true
	}

	raw := prev + trend + spike
	next = s.Step(prev, trend, spike)
	return next, spiked, raw != next
}

func (g *Generator) nextIndex() int {
	i := g.next
	g.next++
	return i
}
