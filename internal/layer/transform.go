package layer

import (
	"math"

	"github.com/example/posterlayer/internal/geom"
	"golang.org/x/image/math/f64"
)

// Transform is a layer's placement: where its center sits in the container,
// its uniform scale and its rotation in radians. It is a value; replace it to
// change it.
type Transform struct {
	Center   geom.Point
	Scale    float64
	Rotation float64
}

// Identity is the affine identity matrix.
var Identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// NewTransform returns a Transform at center with the given scale and rotation.
func NewTransform(center geom.Point, scale, rotation float64) Transform {
	return Transform{Center: center, Scale: scale, Rotation: rotation}
}

// Valid reports whether the scale is a finite positive number.
func (t Transform) Valid() bool {
	return t.Scale > 0 && !math.IsInf(t.Scale, 0) && !math.IsNaN(t.Rotation)
}

// Apply returns the displayed matrix: the identity rotated by Rotation, then
// scaled uniformly by Scale. Center is not part of the matrix; the host
// places the layer at Center separately.
func (t Transform) Apply() f64.Aff3 {
	return Mul(Rotation(t.Rotation), Scaling(t.Scale))
}

// Rotation returns a pure rotation by angle radians.
func Rotation(angle float64) f64.Aff3 {
	sin, cos := math.Sincos(angle)
	return f64.Aff3{cos, -sin, 0, sin, cos, 0}
}

// Scaling returns a pure uniform scale.
func Scaling(s float64) f64.Aff3 {
	return f64.Aff3{s, 0, 0, 0, s, 0}
}

// Translation returns a pure translation.
func Translation(p geom.Point) f64.Aff3 {
	return f64.Aff3{1, 0, p.X, 0, 1, p.Y}
}

// Mul returns the matrix product a*b, which applies b first and then a.
func Mul(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}
