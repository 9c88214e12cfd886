// Package core provides fundamental types and utilities for the breakout platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// VectorLength returns the Euclidean norm of v.
func VectorLength(v Vec) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Len is shorthand for VectorLength(v).
func (v Vec) Len() float64 {
	return VectorLength(v)
}

// Rect represents an axis-aligned rectangle in world units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Square returns the bounding box of a circle with the given center and radius.
func Square(center Vec, radius float64) Rect {
	return Rect{
		X: center.X - radius,
		Y: center.Y - radius,
		W: 2 * radius,
		H: 2 * radius,
	}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// Overlaps returns true if the projections of both rectangles overlap on both axes.
// The test is strict, so rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// SpansY reports whether y lies within the rectangle's vertical extent, edges included.
func (r Rect) SpansY(y float64) bool {
	return y >= r.Y && y <= r.Bottom()
}

// RectanglesOverlap is the free-function form of a.Overlaps(b).
func RectanglesOverlap(a, b Rect) bool {
	return a.Overlaps(b)
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
