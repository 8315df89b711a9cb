// Package geom provides the float geometry value types shared by layers,
// gestures and the editor.
package geom

import (
	"image"
	"math"

	"golang.org/x/image/math/f64"
)

// Point is a location in container coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromImage converts an integer pixel location.
func FromImage(p image.Point) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Image rounds p to the nearest pixel.
func (p Point) Image() image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// Size is a width and height pair.
type Size struct {
	W float64
	H float64
}

// Sz is shorthand for Size{W: w, H: h}.
func Sz(w, h float64) Size {
	return Size{W: w, H: h}
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Pixels rounds the size up to whole pixels, never below 1x1.
func (s Size) Pixels() image.Point {
	w := int(math.Ceil(s.W))
	h := int(math.Ceil(s.H))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return image.Pt(w, h)
}

// ScaleTo returns the larger of the two per-axis ratios s/base. A zero
// base dimension contributes nothing.
func (s Size) ScaleTo(base Size) float64 {
	var sx, sy float64
	if base.W > 0 {
		sx = s.W / base.W
	}
	if base.H > 0 {
		sy = s.H / base.H
	}
	return math.Max(sx, sy)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min Point
	Max Point
}

// RectAround returns the rectangle of size s centered on c.
func RectAround(c Point, s Size) Rect {
	return Rect{
		Min: Point{X: c.X - s.W/2, Y: c.Y - s.H/2},
		Max: Point{X: c.X + s.W/2, Y: c.Y + s.H/2},
	}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{W: r.Max.X - r.Min.X, H: r.Max.Y - r.Min.Y}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Image returns the smallest integer rectangle covering r.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	)
}

// Apply maps p through m including its translation terms.
func Apply(m f64.Aff3, p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// BoundingSize returns the size of the axis-aligned box enclosing a
// rectangle of size s centered on the origin after mapping it through m.
func BoundingSize(m f64.Aff3, s Size) Size {
	hw, hh := s.W/2, s.H/2
	corners := [4]Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		q := Point{X: m[0]*c.X + m[1]*c.Y, Y: m[3]*c.X + m[4]*c.Y}
		minX = math.Min(minX, q.X)
		minY = math.Min(minY, q.Y)
		maxX = math.Max(maxX, q.X)
		maxY = math.Max(maxY, q.Y)
	}
	return Size{W: maxX - minX, H: maxY - minY}
}
