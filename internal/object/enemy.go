package object

import (
	"time"

	"github.com/tomz197/starwave/internal/loop/config"
	"github.com/tomz197/starwave/internal/physics"
)

// Standard is the basic enemy: it wanders around the upper half of the
// viewport and fires single shots.
type Standard struct {
	craft
	MoveDelay  time.Duration // How long a waypoint is kept before picking a new one
	lastMove   time.Time
	dest       [2]float64
	hasDest    bool
	viewWidth  float64
	viewHeight float64
}

// NewStandard creates a standard enemy at (x, y) that settles at targetY.
func NewStandard(x, y, targetY float64) *Standard {
	return &Standard{
		craft:      newCraft(x, y, config.EnemySize, targetY),
		MoveDelay:  config.WanderDelay,
		viewWidth:  config.ViewWidth,
		viewHeight: config.ViewHeight,
	}
}

// Kind implements Enemy.
func (e *Standard) Kind() Kind { return KindStandard }

// Advance descends into position, then wanders between random waypoints.
func (e *Standard) Advance(ctx UpdateContext) {
	if !e.ready {
		e.Descend()
		return
	}

	if !e.hasDest || ctx.Now.Sub(e.lastMove) > e.MoveDelay {
		e.dest = [2]float64{
			float64(ctx.Rand.Intn(int(e.viewWidth - e.Width))),
			float64(ctx.Rand.Intn(int(e.viewHeight/2)-config.WanderMinY) + config.WanderMinY),
		}
		e.hasDest = true
		e.lastMove = ctx.Now
	}

	e.X, e.Y = physics.StepToward(e.X, e.Y, e.dest[0], e.dest[1], config.WanderSpeed, 1)
}

// Attack fires one centered shot with probability StandardFireProb.
func (e *Standard) Attack(rng Rand) []*Projectile {
	if rng.Float64() < config.StandardFireProb {
		return []*Projectile{e.bottomCenterShot(-config.LaserWidth/2, DriftNone)}
	}
	return nil
}

// Hit destroys a standard enemy on the first hit.
func (e *Standard) Hit() bool { return true }

// Points implements Enemy.
func (e *Standard) Points() float64 { return config.ScoreStandard }
