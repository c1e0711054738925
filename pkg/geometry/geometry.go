// Package geometry provides the 2D primitives used throughout loft:
// offsets, sizes, rectangles and side offsets, all in logical pixel
// coordinates.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromOriginSize constructs a Rect from a top-left origin and a size.
func RectFromOriginSize(origin Offset, size Size) Rect {
	return RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// WithOrigin returns a copy of the rectangle moved to the given top-left
// corner, preserving its size.
func (r Rect) WithOrigin(origin Offset) Rect {
	return RectFromOriginSize(origin, r.Size())
}

// WithSize returns a copy of the rectangle resized to the given size,
// preserving its top-left corner.
func (r Rect) WithSize(size Size) Rect {
	return RectFromOriginSize(r.Origin(), size)
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether the point lies inside the rectangle.
// Points on the left/top edge are inside; right/bottom edge points are not.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Union returns the smallest rect containing both r and other.
// An empty rect is the identity element.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Inset returns the rectangle shrunk inward by the given side offsets.
func (r Rect) Inset(offsets SideOffsets) Rect {
	return Rect{
		Left:   r.Left + offsets.Left,
		Top:    r.Top + offsets.Top,
		Right:  r.Right - offsets.Right,
		Bottom: r.Bottom - offsets.Bottom,
	}
}

// Outset returns the rectangle grown outward by the given side offsets.
func (r Rect) Outset(offsets SideOffsets) Rect {
	return Rect{
		Left:   r.Left - offsets.Left,
		Top:    r.Top - offsets.Top,
		Right:  r.Right + offsets.Right,
		Bottom: r.Bottom + offsets.Bottom,
	}
}

// SideOffsets describes four per-side distances, typically margins.
type SideOffsets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformSideOffsets returns side offsets with the same value on all sides.
func UniformSideOffsets(v float64) SideOffsets {
	return SideOffsets{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the sum of the left and right offsets.
func (s SideOffsets) Horizontal() float64 {
	return s.Left + s.Right
}

// Vertical returns the sum of the top and bottom offsets.
func (s SideOffsets) Vertical() float64 {
	return s.Top + s.Bottom
}

// FloatEqual returns true if two float64 values are approximately equal.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// RectEqual returns true if all four edges of the rectangles are
// approximately equal.
func RectEqual(a, b Rect) bool {
	return FloatEqual(a.Left, b.Left) &&
		FloatEqual(a.Top, b.Top) &&
		FloatEqual(a.Right, b.Right) &&
		FloatEqual(a.Bottom, b.Bottom)
}
