package geom

import (
	"math"

	"scene-designer/internal/common"
	"scene-designer/utils"
)

// Axis selects the main axis of a linear layout.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// String returns a human-readable axis name.
func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return common.UnknownStr
	}
}

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Along returns the coordinate of the point on the given axis.
func (p Point) Along(axis Axis) float64 {
	if axis == Horizontal {
		return p.X
	}

	return p.Y
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewRect creates a rectangle from its origin and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Min returns the lower bound of the rectangle on the given axis.
func (r Rect) Min(axis Axis) float64 {
	if axis == Horizontal {
		return r.MinX()
	}

	return r.MinY()
}

// Max returns the upper bound of the rectangle on the given axis.
func (r Rect) Max(axis Axis) float64 {
	if axis == Horizontal {
		return r.MaxX()
	}

	return r.MaxY()
}

// Extent returns the size of the rectangle on the given axis.
func (r Rect) Extent(axis Axis) float64 {
	if axis == Horizontal {
		return r.Width
	}

	return r.Height
}

// Mid returns the midpoint of the rectangle on the given axis.
func (r Rect) Mid(axis Axis) float64 {
	return (r.Min(axis) + r.Max(axis)) / 2
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.Mid(Horizontal), Y: r.Mid(Vertical)}
}

// Contains checks if a point is inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return utils.IsInRange(r.MinX(), p.X, r.MaxX()) &&
		utils.IsInRange(r.MinY(), p.Y, r.MaxY())
}

// Translate returns the rectangle moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Union returns the smallest rectangle containing both rectangles.
// Empty rectangles are ignored.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}

	if other.IsEmpty() {
		return r
	}

	x := math.Min(r.MinX(), other.MinX())
	y := math.Min(r.MinY(), other.MinY())

	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Max(r.MaxX(), other.MaxX()) - x,
		Height: math.Max(r.MaxY(), other.MaxY()) - y,
	}
}

// Inset shrinks the rectangle by the given insets. Sizes never go negative.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  math.Max(0, r.Width-in.Left-in.Right),
		Height: math.Max(0, r.Height-in.Top-in.Bottom),
	}
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Insets are band thicknesses measured inwards from each edge.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns insets with the same thickness on every edge.
func Uniform(v float64) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// Fit clamps the insets so that opposite bands never overlap inside r.
func (in Insets) Fit(r Rect) Insets {
	out := Insets{
		Top:    utils.Clamp(0, in.Top, r.Height),
		Left:   utils.Clamp(0, in.Left, r.Width),
		Bottom: 0,
		Right:  0,
	}
	out.Bottom = utils.Clamp(0, in.Bottom, r.Height-out.Top)
	out.Right = utils.Clamp(0, in.Right, r.Width-out.Left)

	return out
}
