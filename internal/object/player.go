package object

import (
	"github.com/tomz197/starwave/internal/loop/config"
	"github.com/tomz197/starwave/internal/physics"
)

// Player is the player-controlled ship. It only moves horizontally.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // px per tick
}

// NewPlayer creates the ship at its starting position near the bottom of the viewport.
func NewPlayer() *Player {
	return &Player{
		X:      config.PlayerStartX,
		Y:      config.PlayerStartY,
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
		Speed:  config.PlayerSpeed,
	}
}

// Rect returns the ship's rectangle.
func (p *Player) Rect() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Steer moves the ship for one tick of held input and keeps it inside
// [0, viewWidth-Width].
func (p *Player) Steer(left, right bool, viewWidth float64) {
	if left {
		p.X -= p.Speed
	}
	if right {
		p.X += p.Speed
	}
	p.X = physics.Clamp(p.X, 0, viewWidth-p.Width)
}
