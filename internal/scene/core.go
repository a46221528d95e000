// Package scene holds the per-frame transforms of the decorative hero object:
// a spinning core that bobs in place, a tumbling group of tilted rings around
// it and one fixed outer ring.
package scene

import "math"

// Angular rates in radians per second
const (
	coreSpinY  = 0.5
	coreSpinZ  = 0.3
	orbitSpinX = 0.2
	orbitSpinY = 0.4

	// the bob runs at floatSpeed/4 rad/s with a ±FloatRange amplitude
	floatSpeed = 2.0
	FloatRange = 0.1
)

const (
	orbitRings  = 3
	orbitRadius = 2.5
	orbitStep   = 0.5
	outerRadius = 4.0
	CoreRadius  = 1.5
)

// Ring is one torus. Tilt is its fixed rotation about X in radians.
// Static rings sit outside the tumbling group.
type Ring struct {
	Tilt   float64
	Radius float64
	Static bool
}

// Core is the whole scene state. Every rotation is proportional to elapsed
// time so a frame can be recomputed from t alone.
type Core struct {
	RotY, RotZ     float64
	OrbitX, OrbitY float64
	Lift           float64
	Rings          []Ring
	Frames         int
}

// NewCore builds the ring layout: three nested rings tilted by π/(i+1)
// and the static outer ring laid flat.
func NewCore() *Core {
	c := &Core{Rings: make([]Ring, 0, orbitRings+1)}
	for i := range orbitRings {
		c.Rings = append(c.Rings, Ring{
			Tilt:   math.Pi / float64(i+1),
			Radius: orbitRadius + float64(i)*orbitStep,
		})
	}
	c.Rings = append(c.Rings, Ring{Tilt: math.Pi / 2, Radius: outerRadius, Static: true})
	return c
}

// Advance sets the transforms for elapsed time t (seconds)
func (c *Core) Advance(t float64) {
	c.RotY = t * coreSpinY
	c.RotZ = t * coreSpinZ
	c.OrbitX = t * orbitSpinX
	c.OrbitY = t * orbitSpinY
	c.Lift = math.Sin(t/4*floatSpeed) * FloatRange
	c.Frames++
}

// Phase maps the core spin onto [0, 1) for glyph animation
func (c *Core) Phase() float64 {
	p := math.Mod(c.RotY/(2*math.Pi), 1)
	if p < 0 {
		p++
	}
	return p
}

// Facing reports whether ring i currently shows its near side.
// Orbit rings add the group's X rotation to their tilt.
func (c *Core) Facing(i int) bool {
	r := c.Rings[i]
	x := r.Tilt
	if !r.Static {
		x += c.OrbitX
	}
	return math.Cos(x) >= 0
}

// Extent is the outermost ring radius
func (c *Core) Extent() float64 {
	var ext float64
	for _, r := range c.Rings {
		ext = max(ext, r.Radius)
	}
	return ext
}

// Periods are the seconds one full cycle of each motion takes
type Periods struct {
	CoreY, CoreZ   float64
	OrbitX, OrbitY float64
	Float          float64
}

// Cycle reports the periods of the continuous motions
func Cycle() Periods {
	return Periods{
		CoreY:  period(coreSpinY),
		CoreZ:  period(coreSpinZ),
		OrbitX: period(orbitSpinX),
		OrbitY: period(orbitSpinY),
		Float:  period(floatSpeed / 4),
	}
}

func period(rate float64) float64 {
	return 2 * math.Pi / rate
}
