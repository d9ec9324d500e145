package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/starwave/internal/loop/config"
)

func countKinds(enemies []Enemy) map[Kind]int {
	counts := map[Kind]int{}
	for _, e := range enemies {
		counts[e.Kind()]++
	}
	return counts
}

func TestBossWaveLayout(t *testing.T) {
	s := NewWaveSpawner(testRNG())
	wave := s.CreateWave(8, 3)
	require.Len(t, wave, 8)

	counts := countKinds(wave)
	assert.Equal(t, 1, counts[KindBoss])
	assert.Equal(t, 7, counts[KindStandard])

	boss, ok := wave[0].(*Boss)
	require.True(t, ok)
	assert.Equal(t, float64(config.BossX), boss.X)
	assert.Equal(t, float64(config.BossEntryY), boss.Y)
	assert.Equal(t, float64(config.BossTargetY), boss.TargetY)
	assert.False(t, boss.Ready())

	bossCenter, _ := boss.Rect().Center()
	lastLeft, lastRight := 0.0, 0.0
	for i, e := range wave[1:] {
		cx, _ := e.Rect().Center()
		offset := cx - bossCenter
		if i%2 == 0 {
			assert.Less(t, offset, 0.0, "enemy %d should be left of the boss", i)
			assert.Greater(t, -offset, lastLeft)
			lastLeft = -offset
		} else {
			assert.Greater(t, offset, 0.0, "enemy %d should be right of the boss", i)
			assert.Greater(t, offset, lastRight)
			lastRight = offset
		}
	}

	// Flanks are symmetric around the boss center.
	l, _ := wave[1].Rect().Center()
	r, _ := wave[2].Rect().Center()
	assert.InDelta(t, bossCenter-l, r-bossCenter, 1e-9)
	assert.Equal(t, 380.0, wave[1].Rect().X)
	assert.Equal(t, 570.0, wave[2].Rect().X)
	assert.Equal(t, 300.0, wave[3].Rect().X)
}

func TestBossWaveRandomRanges(t *testing.T) {
	s := NewWaveSpawner(testRNG())
	for n := 0; n < 20; n++ {
		for _, e := range s.CreateWave(9, 6)[1:] {
			std := e.(*Standard)
			assert.GreaterOrEqual(t, std.TargetY, 80.0)
			assert.Less(t, std.TargetY, 200.0)
			assert.LessOrEqual(t, std.Y, -50.0)
			assert.Greater(t, std.Y, -200.0)
		}
	}
}

func TestScatteredWaveHasNoBoss(t *testing.T) {
	s := NewWaveSpawner(testRNG())
	for n := 0; n < 50; n++ {
		wave := s.CreateWave(6, 1)
		require.Len(t, wave, 6)
		for _, e := range wave {
			assert.NotEqual(t, KindBoss, e.Kind())
			r := e.Rect()
			assert.GreaterOrEqual(t, r.X, 50.0)
			assert.Less(t, r.X, 900.0)
			assert.Less(t, r.Y, 0.0)
			assert.False(t, e.Ready())
		}
	}
}

func TestScatteredWaveKamikazeOdds(t *testing.T) {
	all := NewWaveSpawner(fixedRand{f: 0.1, i: 10}).CreateWave(7, 2)
	assert.Equal(t, 7, countKinds(all)[KindKamikaze])

	none := NewWaveSpawner(fixedRand{f: 0.3, i: 10}).CreateWave(7, 2)
	assert.Equal(t, 7, countKinds(none)[KindStandard])
}

func TestWaveSize(t *testing.T) {
	assert.Equal(t, 6, WaveSize(1))
	assert.Equal(t, 8, WaveSize(3))
}

func TestCreateWaveRejectsInvalidPhase(t *testing.T) {
	s := NewWaveSpawner(testRNG())
	assert.Panics(t, func() { s.CreateWave(5, 0) })
}
