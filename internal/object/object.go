// Package object defines the simulated entities: the player ship,
// projectiles and the enemy variants.
package object

import (
	"time"

	"github.com/tomz197/starwave/internal/loop/config"
	"github.com/tomz197/starwave/internal/physics"
)

// Rand is the randomness source used by entities and the wave spawner.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// UpdateContext provides everything an enemy needs to advance one tick.
type UpdateContext struct {
	Now    time.Time    // Clock reading for this tick
	Player physics.Rect // Player's current rectangle
	Rand   Rand
}

// Kind identifies an enemy variant.
type Kind int

const (
	KindStandard Kind = iota
	KindBoss
	KindKamikaze
)

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindBoss:
		return "boss"
	case KindKamikaze:
		return "kamikaze"
	default:
		return "unknown"
	}
}

// Enemy is implemented by every enemy variant.
type Enemy interface {
	Kind() Kind

	// Rect returns the visual rectangle.
	Rect() physics.Rect

	// HitBox returns the rectangle tested against the player for melee hits.
	HitBox() physics.Rect

	// Ready reports whether the enemy has reached its target altitude.
	Ready() bool

	// Descend moves the enemy one tick toward its target altitude.
	Descend()

	// Advance moves the enemy one tick using its variant behavior.
	Advance(ctx UpdateContext)

	// Attack returns the projectiles fired this attack round, possibly none.
	Attack(rng Rand) []*Projectile

	// Hit applies one player projectile hit and reports whether the enemy
	// is destroyed.
	Hit() (destroyed bool)

	// Points returns the base score awarded when the enemy is destroyed.
	Points() float64
}

// craft holds the state shared by all enemy variants.
type craft struct {
	X, Y          float64
	Width, Height float64
	TargetY       float64 // Altitude the enemy settles at after entering
	ready         bool
}

func newCraft(x, y, size, targetY float64) craft {
	return craft{X: x, Y: y, Width: size, Height: size, TargetY: targetY}
}

// Rect returns the visual rectangle.
func (c *craft) Rect() physics.Rect {
	return physics.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// HitBox defaults to the visual rectangle.
func (c *craft) HitBox() physics.Rect {
	return c.Rect()
}

// Ready reports whether the craft reached its target altitude.
func (c *craft) Ready() bool {
	return c.ready
}

// Descend moves straight down until the target altitude is reached or passed.
func (c *craft) Descend() {
	if c.ready {
		return
	}
	if c.Y < c.TargetY {
		c.Y += config.DescentSpeed
	}
	if c.Y >= c.TargetY {
		c.ready = true
	}
}

// bottomCenterShot creates a downward laser under the craft, shifted by dx
// from the horizontal center.
func (c *craft) bottomCenterShot(dx float64, drift Drift) *Projectile {
	return NewEnemyLaser(c.X+c.Width/2+dx, c.Y+c.Height, drift)
}
