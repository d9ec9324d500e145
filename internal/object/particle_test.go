package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticleExpires(t *testing.T) {
	p := NewParticle(0, 0, 10, 0, 3)
	assert.False(t, p.Advance())
	assert.InDelta(t, 9.2, p.X, 1e-9)
	assert.False(t, p.Advance())
	assert.True(t, p.Advance())
	p.Release()
}

func TestParticleFades(t *testing.T) {
	p := NewParticle(0, 0, 0, 0, 8)
	assert.False(t, p.Faded())
	for i := 0; i < 7; i++ {
		p.Advance()
	}
	assert.True(t, p.Faded())
}

func TestSpawnExplosion(t *testing.T) {
	rng := testRNG()
	parts := SpawnExplosion(nil, 100, 200, 12, 6, 30, rng)
	assert.Len(t, parts, 12)
	for _, p := range parts {
		assert.Equal(t, 100.0, p.X)
		assert.Equal(t, 200.0, p.Y)
		assert.GreaterOrEqual(t, p.Life, 15)
		assert.LessOrEqual(t, p.Life, 30)
		speed := math.Hypot(p.VX, p.VY)
		assert.GreaterOrEqual(t, speed, 3.0-1e-9)
		assert.LessOrEqual(t, speed, 9.0+1e-9)
	}
}
