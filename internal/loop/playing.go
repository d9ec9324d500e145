package loop

import (
	"github.com/tomz197/starwave/internal/event"
	"github.com/tomz197/starwave/internal/loop/config"
	"github.com/tomz197/starwave/internal/object"
)

// fire spawns a player laser when requested and the cooldown has elapsed.
func (g *Game) fire(requested bool) {
	s := g.state
	if requested && s.fireCooldown <= 0 {
		laser := object.NewPlayerLaser(s.Player.Rect())
		s.Lasers = append(s.Lasers, laser)
		s.fireCooldown = config.FireCooldown
		g.events.Dispatch(event.Event{Type: event.Fired, Phase: s.Phase, X: laser.X, Y: laser.Y})
	}
	if s.fireCooldown > 0 {
		s.fireCooldown--
	}
}

// advanceLasers moves player lasers, culls those above the viewport and
// resolves hits on active enemies.
func (g *Game) advanceLasers() {
	s := g.state
	kept := s.Lasers[:0]
	for _, l := range s.Lasers {
		l.Advance()
		if l.Offscreen(config.ViewHeight) {
			continue
		}
		if g.resolveLaserHit(l) {
			continue
		}
		kept = append(kept, l)
	}
	clear(s.Lasers[len(kept):])
	s.Lasers = kept
}

// enemyAttacks lets every active enemy attack once per attack round.
func (g *Game) enemyAttacks() {
	s := g.state
	s.attackTimer++
	if s.attackTimer < config.EnemyAttackTicks {
		return
	}
	s.attackTimer = 0
	for _, e := range s.Enemies {
		shots := e.Attack(g.rng)
		if len(shots) == 0 {
			continue
		}
		s.EnemyLasers = append(s.EnemyLasers, shots...)
		x, y := e.Rect().Center()
		g.events.Dispatch(event.Event{Type: event.EnemyFired, Phase: s.Phase, X: x, Y: y})
	}
}

// advanceEnemyLasers moves enemy lasers, culls those below the viewport and
// reports whether one hit the player.
func (g *Game) advanceEnemyLasers() (lethal bool) {
	s := g.state
	kept := s.EnemyLasers[:0]
	for _, l := range s.EnemyLasers {
		l.Advance()
		if l.Offscreen(config.ViewHeight) {
			continue
		}
		kept = append(kept, l)
	}
	clear(s.EnemyLasers[len(kept):])
	s.EnemyLasers = kept
	return g.checkEnemyLaserHits()
}

// advanceWave starts the next phase when the field is clear and moves the
// pending wave into play once every member is in formation.
func (g *Game) advanceWave() {
	s := g.state
	if len(s.Enemies) == 0 && len(s.Pending) == 0 {
		s.Phase++
		s.Multiplier += config.MultiplierStep
		s.Pending = g.spawner.CreateWave(object.WaveSize(s.Phase), s.Phase)
		s.WaveStarted = true
		g.events.Dispatch(event.Event{Type: event.WaveStarted, Phase: s.Phase})
		g.logger.Debug("phase started", "phase", s.Phase, "multiplier", s.Multiplier, "wave", len(s.Pending))
	}

	if len(s.Pending) == 0 {
		return
	}
	allReady := true
	for _, e := range s.Pending {
		e.Descend()
		if !e.Ready() {
			allReady = false
		}
	}
	if allReady {
		s.Enemies = append(s.Enemies, s.Pending...)
		s.Pending = nil
		s.WaveStarted = false
		g.events.Dispatch(event.Event{Type: event.WaveReady, Phase: s.Phase})
	}
}

// advanceEnemies runs the variant behavior of every active enemy.
func (g *Game) advanceEnemies() {
	s := g.state
	ctx := object.UpdateContext{
		Now:    g.clock.Now(),
		Player: s.Player.Rect(),
		Rand:   g.rng,
	}
	for _, e := range s.Enemies {
		e.Advance(ctx)
	}
}
