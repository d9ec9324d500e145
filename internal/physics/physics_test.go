package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlapsDisjoint(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 20, Y: 20, Width: 10, Height: 10}
	assert.False(t, Overlaps(a, b))
	assert.False(t, Overlaps(b, a))
}

func TestOverlapsTouchingEdges(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 10, Y: 0, Width: 10, Height: 10}
	assert.True(t, Overlaps(a, b))
	assert.True(t, Overlaps(b, a))
}

func TestOverlapsSymmetric(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, Width: 10, Height: 10},
		{X: 5, Y: 5, Width: 2, Height: 2},
		{X: 9, Y: -3, Width: 4, Height: 4},
		{X: 11, Y: 0, Width: 1, Height: 1},
		{X: -50, Y: -50, Width: 200, Height: 200},
		{X: 3, Y: 30, Width: 0, Height: 0},
	}
	for _, a := range rects {
		for _, b := range rects {
			assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "a=%v b=%v", a, b)
		}
	}
}

func TestOverlapsContained(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	inner := Rect{X: 40, Y: 40, Width: 4, Height: 20}
	assert.True(t, Overlaps(outer, inner))
}

func TestExpand(t *testing.T) {
	r := Rect{X: 100, Y: 100, Width: 50, Height: 50}.Expand(10)
	assert.Equal(t, Rect{X: 90, Y: 90, Width: 70, Height: 70}, r)
}

func TestStepToward(t *testing.T) {
	x, y := StepToward(0, 0, 30, 40, 5, 1)
	assert.InDelta(t, 3, x, 1e-9)
	assert.InDelta(t, 4, y, 1e-9)

	// Within minDist nothing moves.
	x, y = StepToward(10, 10, 10.5, 10, 2, 1)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 10.0, y)
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5, Distance(0, 0, 3, 4), 1e-9)
	assert.InDelta(t, math.Sqrt2, Distance(1, 1, 2, 2), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-4, 0, 950))
	assert.Equal(t, 950.0, Clamp(1200, 0, 950))
	assert.Equal(t, 12.5, Clamp(12.5, 0, 950))
}
