package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusenback/zephyria/internal/model"
)

// scriptedRand replays fixed draws, then repeats the last one
type scriptedRand struct {
	draws []float64
	pos   int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.draws) == 0 {
		return 0
	}
	if r.pos >= len(r.draws) {
		return r.draws[len(r.draws)-1]
	}
	v := r.draws[r.pos]
	r.pos++
	return v
}

func (r *scriptedRand) push(draws ...float64) {
	r.draws = append(r.draws[:r.pos], draws...)
}

func tpsProfile() Profile {
	return Profile{
		Capacity: 20,
		Interval: 2 * time.Second,
		Primary: Series{
			Base:        500000,
			Jitter:      200000,
			TrendSpan:   40000,
			SpikeChance: 0.2,
			SpikeSize:   300000,
			Min:         400000,
			Max:         1100000,
		},
		Secondary: Series{
			Base:      20,
			Jitter:    10,
			TrendSpan: 4,
			Min:       15,
			Max:       35,
		},
	}
}

func TestSeries_Step(t *testing.T) {
	s := Series{Min: 10, Max: 95}

	tests := []struct {
		name        string
		prev, trend float64
		spike       float64
		want        float64
	}{
		{"within bounds", 50, 5, 0, 55},
		{"with spike", 50, -2, 30, 78},
		{"clamped to max", 90, 4, 30, 95},
		{"clamped to min", 12, -7.5, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Step(tt.prev, tt.trend, tt.spike))
		})
	}
}

func TestProfile_Validate(t *testing.T) {
	p := tpsProfile()
	require.NoError(t, p.Validate())

	bad := p
	bad.Capacity = 1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidProfile)

	bad = p
	bad.Primary.Min = 2_000_000
	assert.ErrorIs(t, bad.Validate(), ErrInvalidProfile)

	bad = p
	bad.Secondary.SpikeChance = 1.5
	assert.ErrorIs(t, bad.Validate(), ErrInvalidProfile)

	bad = p
	bad.Interval = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidProfile)
}

func TestGenerator_FillReplacesContents(t *testing.T) {
	g := NewSeeded(tpsProfile(), 7)
	w := NewWindow(4)
	w.Push(model.Sample{Index: 99, Primary: 1})

	g.Fill(w)
	require.True(t, w.Full())
	for _, s := range w.Samples() {
		assert.NotEqual(t, 99, s.Index)
		assert.GreaterOrEqual(t, s.Primary, 500000.0)
	}
}

func TestGenerator_FillStaysInInitialRange(t *testing.T) {
	g := NewSeeded(tpsProfile(), 7)
	w := g.NewWindow()

	require.Equal(t, 20, w.Len())
	for i, s := range w.Samples() {
		assert.Equal(t, i, s.Index)
		assert.GreaterOrEqual(t, s.Primary, 500000.0)
		assert.Less(t, s.Primary, 700000.0)
		assert.GreaterOrEqual(t, s.Secondary, 20.0)
		assert.Less(t, s.Secondary, 30.0)
	}
}

func TestGenerator_TickExample(t *testing.T) {
	rnd := &scriptedRand{}
	g := NewGenerator(tpsProfile(), rnd)

	// 20 samples, two draws each
	for i := 0; i < 20; i++ {
		rnd.push(float64(i)/20, 0.5)
	}
	w := g.NewWindow()
	original := w.Samples()
	last, _ := w.Latest()

	// trend = (0.75-0.5)*40000 = +10000, spike roll 0.9 misses the 20% chance
	rnd.push(0.75, 0.9, 0.5, 0.9)
	tick, ok := g.Tick(w)
	require.True(t, ok)

	want := tpsProfile().Primary.Clamp(last.Primary + 10000)
	assert.InDelta(t, want, tick.Sample.Primary, 1e-6)
	assert.False(t, tick.Spiked)
	assert.False(t, tick.Clamped)
	assert.Equal(t, 20, w.Len())
	assert.Equal(t, original[0], tick.Evicted)

	first, _ := w.Oldest()
	assert.Equal(t, original[1], first)
}

func TestGenerator_ClampsAtMaxExactly(t *testing.T) {
	rnd := &scriptedRand{}
	p := tpsProfile()
	g := NewGenerator(p, rnd)

	rnd.push(0.99, 0.5)
	w := g.NewWindow()

	// +19600 trend plus a spike overshoots 1.1M after a few ticks
	for i := 0; i < 6; i++ {
		rnd.push(0.99, 0.0, 0.5, 0.99)
		g.Tick(w)
	}

	latest, _ := w.Latest()
	assert.Equal(t, p.Primary.Max, latest.Primary)

	rnd.push(0.99, 0.0, 0.5, 0.99)
	tick, ok := g.Tick(w)
	require.True(t, ok)
	assert.True(t, tick.Spiked)
	assert.True(t, tick.Clamped)
	assert.Equal(t, p.Primary.Max, tick.Sample.Primary)
}

func TestGenerator_TickOnEmptyWindowIsNoop(t *testing.T) {
	g := NewSeeded(tpsProfile(), 1)
	w := NewWindow(5)

	_, ok := g.Tick(w)
	assert.False(t, ok)
	assert.Equal(t, 0, w.Len())
}

func TestGenerator_Properties(t *testing.T) {
	p := tpsProfile()
	g := NewSeeded(p, 42)
	w := g.NewWindow()
	original := w.Samples()

	for n := 1; n <= 500; n++ {
		tick, ok := g.Tick(w)
		require.True(t, ok)

		assert.Equal(t, p.Capacity, w.Len(), "length after tick %d", n)
		assert.GreaterOrEqual(t, tick.Sample.Primary, p.Primary.Min)
		assert.LessOrEqual(t, tick.Sample.Primary, p.Primary.Max)
		assert.GreaterOrEqual(t, tick.Sample.Secondary, p.Secondary.Min)
		assert.LessOrEqual(t, tick.Sample.Secondary, p.Secondary.Max)

		if n < p.Capacity {
			first, _ := w.Oldest()
			assert.Equal(t, original[n], first, "FIFO after %d ticks", n)
		}
	}
}

func TestGenerator_IndicesAreSequential(t *testing.T) {
	g := NewSeeded(tpsProfile(), 3)
	w := g.NewWindow()

	for i := 0; i < 5; i++ {
		g.Tick(w)
	}

	samples := w.Samples()
	for i := 1; i < len(samples); i++ {
		assert.Equal(t, samples[i-1].Index+1, samples[i].Index)
	}
	latest, _ := w.Latest()
	assert.Equal(t, 24, latest.Index)
}
