package object

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/starwave/internal/loop/config"
	"github.com/tomz197/starwave/internal/physics"
)

// fixedRand returns the same value for every draw.
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int {
	if r.i >= n {
		return n - 1
	}
	return r.i
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func readyStandard(x, y float64) *Standard {
	e := NewStandard(x, y, y)
	e.Descend()
	return e
}

func TestDescendBecomesReadyAtTarget(t *testing.T) {
	e := NewStandard(100, -10, 0)
	for i := 0; i < 4; i++ {
		e.Descend()
		assert.False(t, e.Ready(), "tick %d", i)
	}
	e.Descend()
	assert.True(t, e.Ready())
	assert.Equal(t, 0.0, e.Y)

	// Further descents do not move a ready enemy.
	e.Descend()
	assert.Equal(t, 0.0, e.Y)
}

func TestDescendPassingTarget(t *testing.T) {
	e := NewStandard(100, -1, 0)
	e.Descend()
	assert.True(t, e.Ready())
	assert.Equal(t, 1.0, e.Y)
}

func TestAdvanceDescendsWhenNotReady(t *testing.T) {
	e := NewStandard(100, -100, 80)
	e.Advance(UpdateContext{Now: time.Unix(0, 0), Rand: testRNG()})
	assert.Equal(t, 100.0, e.X)
	assert.Equal(t, -98.0, e.Y)
}

func TestBossRequiresFiveHits(t *testing.T) {
	b := NewBoss(config.BossX, 0, 0)
	for i := 0; i < config.BossHitPoints-1; i++ {
		assert.False(t, b.Hit(), "hit %d", i+1)
	}
	assert.True(t, b.Hit())
	assert.Equal(t, 0, b.HitPoints)
	assert.Equal(t, float64(config.ScoreBoss), b.Points())
}

func TestStandardDestroyedOnFirstHit(t *testing.T) {
	e := NewStandard(0, 0, 0)
	assert.True(t, e.Hit())
	assert.Equal(t, float64(config.ScoreStandard), e.Points())
}

func TestStandardAttack(t *testing.T) {
	e := readyStandard(200, 100)

	shots := e.Attack(fixedRand{f: 0.29})
	require.Len(t, shots, 1)
	assert.Equal(t, 223.0, shots[0].X)
	assert.Equal(t, 150.0, shots[0].Y)
	assert.Equal(t, DriftNone, shots[0].Drift)
	assert.Equal(t, float64(config.EnemyLaserVel), shots[0].VY)

	assert.Empty(t, e.Attack(fixedRand{f: 0.3}))
}

func TestBossVolley(t *testing.T) {
	b := NewBoss(460, 100, 100)

	shots := b.Attack(fixedRand{f: 0.49})
	require.Len(t, shots, 3)
	assert.Equal(t, []Drift{DriftNone, DriftLeft, DriftRight},
		[]Drift{shots[0].Drift, shots[1].Drift, shots[2].Drift})
	assert.Equal(t, 498.0, shots[0].X)
	assert.Equal(t, 490.0, shots[1].X)
	assert.Equal(t, 506.0, shots[2].X)
	for _, s := range shots {
		assert.Equal(t, 180.0, s.Y)
	}

	assert.Empty(t, b.Attack(fixedRand{f: 0.5}))
}

func TestBossHoldsPosition(t *testing.T) {
	b := NewBoss(460, 100, 100)
	b.Descend()
	require.True(t, b.Ready())
	for i := 0; i < 100; i++ {
		b.Advance(UpdateContext{Now: time.Unix(int64(i), 0), Rand: testRNG()})
	}
	assert.Equal(t, physics.Rect{X: 460, Y: 100, Width: 80, Height: 80}, b.Rect())
}

func TestStandardWander(t *testing.T) {
	e := readyStandard(500, 200)
	start := time.Unix(1000, 0)
	rng := fixedRand{i: 100}

	e.Advance(UpdateContext{Now: start, Rand: rng})
	dx, dy, ok := e.destination()
	require.True(t, ok)
	assert.Equal(t, 100.0, dx)
	assert.Equal(t, 150.0, dy)
	assert.InDelta(t, 2, physics.Distance(500, 200, e.X, e.Y), 1e-9)

	// Waypoint is kept until the delay elapses.
	e.Advance(UpdateContext{Now: start.Add(time.Second), Rand: fixedRand{i: 300}})
	dx, _, _ = e.destination()
	assert.Equal(t, 100.0, dx)

	e.Advance(UpdateContext{Now: start.Add(config.WanderDelay + time.Millisecond), Rand: fixedRand{i: 300}})
	dx, dy, _ = e.destination()
	assert.Equal(t, 300.0, dx)
	assert.Equal(t, 350.0, dy)
}

func TestStandardWanderStopsNearDestination(t *testing.T) {
	e := readyStandard(100.5, 150)
	now := time.Unix(0, 0)
	e.Advance(UpdateContext{Now: now, Rand: fixedRand{i: 100}})
	assert.Equal(t, 100.5, e.X)
	assert.Equal(t, 150.0, e.Y)
}

func TestWanderStaysInUpperHalf(t *testing.T) {
	rng := testRNG()
	e := readyStandard(400, 100)
	now := time.Unix(0, 0)
	for i := 0; i < 50; i++ {
		now = now.Add(config.WanderDelay + time.Millisecond)
		e.Advance(UpdateContext{Now: now, Rand: rng})
		x, y, _ := e.destination()
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, float64(config.ViewWidth-config.EnemySize))
		assert.GreaterOrEqual(t, y, float64(config.WanderMinY))
		assert.Less(t, y, float64(config.ViewHeight/2))
	}
}

func TestKamikazePursuesPlayer(t *testing.T) {
	k := NewKamikaze(475, 100, 100)
	k.Descend()
	require.True(t, k.Ready())

	player := physics.Rect{X: 475, Y: 740, Width: 50, Height: 50}
	k.Advance(UpdateContext{Player: player, Rand: testRNG()})
	assert.Equal(t, 475.0, k.X)
	assert.InDelta(t, 107, k.Y, 1e-9)

	// Diagonal pursuit keeps constant speed.
	k2 := NewKamikaze(0, 0, 0)
	k2.Descend()
	k2.Advance(UpdateContext{Player: physics.Rect{X: 300, Y: 400, Width: 50, Height: 50}})
	assert.InDelta(t, float64(config.KamikazeSpeed), physics.Distance(0, 0, k2.X, k2.Y), 1e-9)
}

func TestKamikazeHitBoxPadded(t *testing.T) {
	k := NewKamikaze(100, 100, 100)
	assert.Equal(t, physics.Rect{X: 100, Y: 100, Width: 50, Height: 50}, k.Rect())
	assert.Equal(t, physics.Rect{X: 90, Y: 90, Width: 70, Height: 70}, k.HitBox())
	assert.Equal(t, KindKamikaze, k.Kind())

	// Near miss: clear of the visual rectangle but inside the padding.
	player := physics.Rect{X: 155, Y: 100, Width: 50, Height: 50}
	assert.False(t, physics.Overlaps(k.Rect(), player))
	assert.True(t, physics.Overlaps(k.HitBox(), player))
}

func TestProjectileAdvance(t *testing.T) {
	p := NewEnemyLaser(100, 100, DriftLeft)
	p.Advance()
	assert.Equal(t, 97.0, p.X)
	assert.Equal(t, 106.0, p.Y)

	p = NewEnemyLaser(100, 100, DriftRight)
	p.Advance()
	assert.Equal(t, 103.0, p.X)

	laser := NewPlayerLaser(physics.Rect{X: 475, Y: 740, Width: 50, Height: 50})
	assert.Equal(t, 498.0, laser.X)
	laser.Advance()
	assert.Equal(t, 730.0, laser.Y)
	assert.False(t, laser.Offscreen(config.ViewHeight))
	laser.Y = -1
	assert.True(t, laser.Offscreen(config.ViewHeight))
}

func TestPlayerSteerClamped(t *testing.T) {
	p := NewPlayer()
	for i := 0; i < 1000; i++ {
		p.Steer(true, false, config.ViewWidth)
		assert.GreaterOrEqual(t, p.X, 0.0)
	}
	assert.Equal(t, 0.0, p.X)

	for i := 0; i < 1000; i++ {
		p.Steer(false, true, config.ViewWidth)
		assert.LessOrEqual(t, p.X, float64(config.ViewWidth-config.PlayerWidth))
	}
	assert.Equal(t, float64(config.ViewWidth-config.PlayerWidth), p.X)
}
