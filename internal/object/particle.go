package object

import (
	"math"
	"sync"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived piece of explosion debris. It is purely visual
// and never collides.
type Particle struct {
	X, Y    float64 // Position
	VX, VY  float64 // Velocity in px per tick
	Life    int     // Ticks remaining
	MaxLife int     // Initial lifetime (for fade calculation)
	Drag    float64 // Velocity decay per tick (1.0 = no drag)
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy float64, life int) *Particle {
	p := particlePool.Get().(*Particle)
	*p = Particle{X: x, Y: y, VX: vx, VY: vy, Life: life, MaxLife: life, Drag: 0.92}
	return p
}

// Release returns the particle to the pool for reuse.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Advance moves the particle one tick and reports whether it has expired.
func (p *Particle) Advance() (expired bool) {
	p.Life--
	if p.Life <= 0 {
		return true
	}
	p.VX *= p.Drag
	p.VY *= p.Drag
	p.X += p.VX
	p.Y += p.VY
	return false
}

// Faded reports whether the particle is in the last quarter of its life.
func (p *Particle) Faded() bool {
	return p.Life*4 < p.MaxLife
}

// SpawnExplosion appends count particles bursting from (x, y) in random
// directions to dst.
func SpawnExplosion(dst []*Particle, x, y float64, count int, speed float64, life int, rng Rand) []*Particle {
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		// Speed varies from 50% to 150%, lifetime from 50% to 100%.
		spd := speed * (0.5 + rng.Float64())
		l := max(life/2+rng.Intn(life/2+1), 1)
		dst = append(dst, NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, l))
	}
	return dst
}
