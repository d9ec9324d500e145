package object

import (
	"github.com/tomz197/starwave/internal/loop/config"
	"github.com/tomz197/starwave/internal/physics"
)

// Kamikaze dives at the player once in formation. Its lethal hitbox is
// larger than its visual rectangle.
type Kamikaze struct {
	Standard
	Speed   float64
	Padding float64
}

// NewKamikaze creates a kamikaze at (x, y) that settles at targetY.
func NewKamikaze(x, y, targetY float64) *Kamikaze {
	return &Kamikaze{
		Standard: *NewStandard(x, y, targetY),
		Speed:    config.KamikazeSpeed,
		Padding:  config.KamikazePadding,
	}
}

// Kind implements Enemy.
func (k *Kamikaze) Kind() Kind { return KindKamikaze }

// Advance descends into position, then steers toward the player's center.
func (k *Kamikaze) Advance(ctx UpdateContext) {
	if !k.ready {
		k.Descend()
		return
	}
	cx, cy := k.Rect().Center()
	px, py := ctx.Player.Center()
	nx, ny := physics.StepToward(cx, cy, px, py, k.Speed, 0)
	k.X += nx - cx
	k.Y += ny - cy
}

// HitBox returns the visual rectangle padded on every side.
func (k *Kamikaze) HitBox() physics.Rect {
	return k.Rect().Expand(k.Padding)
}
