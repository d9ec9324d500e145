package object

import "github.com/tomz197/starwave/internal/loop/config"

// Boss is a large stationary enemy that needs several hits and fires
// three-lane volleys.
type Boss struct {
	craft
	HitPoints int
}

// NewBoss creates a boss at (x, y) that settles at targetY.
func NewBoss(x, y, targetY float64) *Boss {
	return &Boss{
		craft:     newCraft(x, y, config.BossSize, targetY),
		HitPoints: config.BossHitPoints,
	}
}

// Kind implements Enemy.
func (b *Boss) Kind() Kind { return KindBoss }

// Advance only descends; the boss holds its position once ready.
func (b *Boss) Advance(_ UpdateContext) {
	b.Descend()
}

// Attack fires a center, left and right laser together with probability BossFireProb.
func (b *Boss) Attack(rng Rand) []*Projectile {
	if rng.Float64() >= config.BossFireProb {
		return nil
	}
	return []*Projectile{
		b.bottomCenterShot(-2, DriftNone),
		b.bottomCenterShot(-10, DriftLeft),
		b.bottomCenterShot(6, DriftRight),
	}
}

// Hit removes one hit point. The boss is destroyed at zero or below.
func (b *Boss) Hit() bool {
	b.HitPoints--
	return b.HitPoints <= 0
}

// Points implements Enemy.
func (b *Boss) Points() float64 { return config.ScoreBoss }
