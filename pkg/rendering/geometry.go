package rendering

import "math"

// Offset is a point or a displacement in pixels.
type Offset struct {
	X, Y float64
}

// Add returns o displaced by d.
func (o Offset) Add(d Offset) Offset {
	return Offset{X: o.X + d.X, Y: o.Y + d.Y}
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle given by its edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromLTWH builds a Rect from its top-left corner and size.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the midpoint of r.
func (r Rect) Center() Offset {
	return Offset{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Inset shrinks r by d on every edge; a negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
}

// Translate moves r by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// IsEmpty reports whether r encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether p is inside r. Right and bottom edges are
// exclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// RRect is a rectangle whose four corners share one circular radius.
type RRect struct {
	Rect   Rect
	Radius float64
}

// RRectFromRect rounds every corner of rect by radius.
func RRectFromRect(rect Rect, radius float64) RRect {
	return RRect{Rect: rect, Radius: radius}
}

// ClampedRadius returns the radius limited to what fits: never negative
// and at most half the shorter side.
func (r RRect) ClampedRadius() float64 {
	limit := math.Min(r.Rect.Width(), r.Rect.Height()) / 2
	return math.Max(0, math.Min(r.Radius, limit))
}
