package object

import (
	"fmt"

	"github.com/tomz197/starwave/internal/loop/config"
)

// WaveSpawner builds the enemy batch for a phase.
type WaveSpawner struct {
	rng       Rand
	viewWidth int
}

// NewWaveSpawner creates a spawner drawing positions and variants from rng.
func NewWaveSpawner(rng Rand) *WaveSpawner {
	return &WaveSpawner{
		rng:       rng,
		viewWidth: config.ViewWidth,
	}
}

// WaveSize returns the number of enemies spawned for a phase.
func WaveSize(phase int) int {
	return config.BaseWaveSize + phase
}

// CreateWave returns count enemies for the given phase. Every third phase
// is a boss wave: one boss in the middle flanked by standard enemies.
// All enemies start above the viewport and are not ready.
func (s *WaveSpawner) CreateWave(count, phase int) []Enemy {
	if phase < 1 {
		panic(fmt.Sprintf("object: invalid phase %d", phase))
	}
	if count <= 0 {
		return nil
	}
	if phase%config.BossPhaseEvery == 0 {
		return s.bossWave(count)
	}
	return s.scatteredWave(count, phase)
}

func (s *WaveSpawner) bossWave(count int) []Enemy {
	boss := NewBoss(config.BossX, config.BossEntryY, config.BossTargetY)
	enemies := make([]Enemy, 0, count)
	enemies = append(enemies, boss)

	for i := 0; i < count-1; i++ {
		offset := float64((i/2 + 1) * config.FlankSpacing)
		var x float64
		if i%2 == 0 {
			x = boss.X - offset
		} else {
			x = boss.X + offset + boss.Width - config.EnemySize
		}
		enemies = append(enemies, NewStandard(x, s.entryY(), s.targetY()))
	}
	return enemies
}

func (s *WaveSpawner) scatteredWave(count, phase int) []Enemy {
	enemies := make([]Enemy, 0, count)
	for i := 0; i < count; i++ {
		x := float64(s.rng.Intn(s.viewWidth-config.SpawnMarginSum) + config.SpawnMarginLeft)
		y := s.entryY()
		targetY := s.targetY()
		if phase >= 1 && s.rng.Float64() < config.KamikazeProb {
			enemies = append(enemies, NewKamikaze(x, y, targetY))
		} else {
			enemies = append(enemies, NewStandard(x, y, targetY))
		}
	}
	return enemies
}

// entryY returns a random start height above the viewport.
func (s *WaveSpawner) entryY() float64 {
	return -float64(s.rng.Intn(config.EntryDepthRange) + config.EntryMinDepth)
}

// targetY returns a random formation altitude in [TargetMinY, TargetMinY+TargetRangeY).
func (s *WaveSpawner) targetY() float64 {
	return float64(s.rng.Intn(config.TargetRangeY) + config.TargetMinY)
}
