package orbitals

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Point3 is a position in Bohr units, nucleus at the origin.
type Point3 struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point3) Mul(s Real) Point3   { return Point3{p.X * s, p.Y * s, p.Z * s} }

// Len returns the distance from the origin.
func (p Point3) Len() Real { return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z) }

// Spherical returns (r, theta, phi) with theta = acos(z/r) and phi = atan2(y, x).
// For the origin theta is NaN.
func (p Point3) Spherical() (r, theta, phi Real) {
	r = p.Len()
	return r, math.Acos(p.Z / r), math.Atan2(p.Y, p.X)
}

// Vec3 narrows the point to float32 for GPU-style buffers.
func (p Point3) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}
