package loop

import (
	"slices"

	"github.com/tomz197/starwave/internal/event"
	"github.com/tomz197/starwave/internal/object"
	"github.com/tomz197/starwave/internal/physics"
)

// resolveLaserHit applies a player laser to the first active enemy it
// overlaps. It reports whether the laser was consumed.
func (g *Game) resolveLaserHit(l *object.Projectile) bool {
	s := g.state
	lr := l.Rect()
	for i, e := range s.Enemies {
		if !physics.Overlaps(lr, e.Rect()) {
			continue
		}
		x, y := e.Rect().Center()
		if e.Hit() {
			s.Enemies = slices.Delete(s.Enemies, i, i+1)
			s.Score += e.Points() * s.Multiplier
			g.events.Dispatch(event.Event{Type: event.EnemyDestroyed, Phase: s.Phase, X: x, Y: y})
		} else {
			g.events.Dispatch(event.Event{Type: event.EnemyHit, Phase: s.Phase, X: x, Y: y})
		}
		return true
	}
	return false
}

// checkEnemyLaserHits reports whether any enemy laser overlaps the player.
func (g *Game) checkEnemyLaserHits() bool {
	pr := g.state.Player.Rect()
	for _, l := range g.state.EnemyLasers {
		if physics.Overlaps(l.Rect(), pr) {
			return true
		}
	}
	return false
}

// checkKamikazeHits reports whether an active kamikaze's padded hitbox
// overlaps the player.
func (g *Game) checkKamikazeHits() bool {
	pr := g.state.Player.Rect()
	for _, e := range g.state.Enemies {
		if e.Kind() != object.KindKamikaze {
			continue
		}
		if physics.Overlaps(e.HitBox(), pr) {
			return true
		}
	}
	return false
}
