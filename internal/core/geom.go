// Package core provides fundamental types and utilities shared by the engine
// and its hosts. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen pixels.
// Invariant: Left <= Right and Top <= Bottom.
type Rect struct {
	Left, Right float64
	Top, Bottom float64
}

// NewRect creates a rectangle from its top-left corner and dimensions.
// Negative dimensions are treated as zero.
func NewRect(x, y, w, h float64) Rect {
	return Rect{
		Left:   x,
		Right:  x + math.Max(w, 0),
		Top:    y,
		Bottom: y + math.Max(h, 0),
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Offset returns the rectangle moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Right:  r.Right + dx,
		Top:    r.Top + dy,
		Bottom: r.Bottom + dy,
	}
}

// Overlaps reports whether the square of side size anchored at (x, y)
// touches the rectangle. Edges count as touching, so a ball that is already
// partway into a block on this tick is caught.
func (r Rect) Overlaps(x, y, size float64) bool {
	return x+size >= r.Left &&
		x <= r.Right &&
		y+size >= r.Top &&
		y <= r.Bottom
}

// Contains returns true if the point (x, y) is inside the rectangle (edges inclusive).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Viewport is the visible screen area in pixels.
type Viewport struct {
	Width  float64
	Height float64
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

// ClampF restricts a float64 value to be within [min, max].
// When max < min the lower bound wins.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
