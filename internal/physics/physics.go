// Package physics provides rectangle geometry and distance utilities.
package physics

import "math"

// Rect is an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Expand returns the rectangle grown by pad on every side.
func (r Rect) Expand(pad float64) Rect {
	return Rect{
		X:      r.X - pad,
		Y:      r.Y - pad,
		Width:  r.Width + 2*pad,
		Height: r.Height + 2*pad,
	}
}

// Overlaps reports whether a and b intersect.
// Edges are inclusive: rectangles that only touch still overlap.
func Overlaps(a, b Rect) bool {
	return !(b.X > a.Right() ||
		b.Right() < a.X ||
		b.Y > a.Bottom() ||
		b.Bottom() < a.Y)
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// StepToward moves (x, y) by speed along the straight line to (tx, ty).
// It returns the point unchanged when the target is closer than minDist.
func StepToward(x, y, tx, ty, speed, minDist float64) (float64, float64) {
	dist := Distance(x, y, tx, ty)
	if dist <= minDist {
		return x, y
	}
	return x + speed*(tx-x)/dist, y + speed*(ty-y)/dist
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
