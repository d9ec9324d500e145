package object

import (
	"github.com/tomz197/starwave/internal/loop/config"
	"github.com/tomz197/starwave/internal/physics"
)

// Drift is the sideways lane of an enemy laser.
type Drift int

const (
	DriftNone Drift = iota
	DriftLeft
	DriftRight
)

// Projectile is a laser fired by the player or an enemy.
type Projectile struct {
	X, Y          float64
	Width, Height float64
	VY            float64 // Vertical velocity in px per tick (negative = up)
	Drift         Drift
}

// NewPlayerLaser creates an upward laser fired from the top-center of the player.
func NewPlayerLaser(player physics.Rect) *Projectile {
	return &Projectile{
		X:      player.X + player.Width/2 - config.LaserWidth/2,
		Y:      player.Y,
		Width:  config.LaserWidth,
		Height: config.LaserHeight,
		VY:     -config.PlayerLaserVel,
	}
}

// NewEnemyLaser creates a downward laser with its top-left corner at (x, y).
func NewEnemyLaser(x, y float64, drift Drift) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		Width:  config.LaserWidth,
		Height: config.LaserHeight,
		VY:     config.EnemyLaserVel,
		Drift:  drift,
	}
}

// Rect returns the projectile's rectangle.
func (p *Projectile) Rect() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Advance applies the sideways drift, then the vertical velocity.
func (p *Projectile) Advance() {
	switch p.Drift {
	case DriftLeft:
		p.X -= config.LaserDrift
	case DriftRight:
		p.X += config.LaserDrift
	}
	p.Y += p.VY
}

// Offscreen reports whether the projectile has left a viewport of the given height.
func (p *Projectile) Offscreen(height float64) bool {
	return p.Y < 0 || p.Y > height
}
