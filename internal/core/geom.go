// Package core provides fundamental types and utilities shared by the engine,
// the game logic and the hosts. It contains no external dependencies
// (especially no Bubble Tea or Ebiten) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. The origin is the centre of the
// window, x grows to the right and y grows upwards.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Box is an axis-aligned bounding box described by its centre and half size.
type Box struct {
	Center Vec2
	Half   Vec2
}

// NewBox creates a box centred at c with the given full width and height.
func NewBox(c Vec2, w, h float32) Box {
	return Box{Center: c, Half: Vec2{X: w / 2, Y: h / 2}}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// Overlaps returns true if the two boxes share a region of non-zero area.
// Touching edges do not count as an overlap.
func (b Box) Overlaps(other Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := other.Min(), other.Max()
	if bMin.X >= oMax.X || oMin.X >= bMax.X {
		return false
	}
	if bMin.Y >= oMax.Y || oMin.Y >= bMax.Y {
		return false
	}
	return true
}

// Contains returns true if p lies inside the box (edges inclusive).
func (b Box) Contains(p Vec2) bool {
	bMin, bMax := b.Min(), b.Max()
	return p.X >= bMin.X && p.X <= bMax.X && p.Y >= bMin.Y && p.Y <= bMax.Y
}
