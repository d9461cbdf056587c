package orbitals

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SampleResult holds accepted points in acceptance order with a parallel
// slice of sign tags. It is rebuilt from scratch on every pass.
type SampleResult struct {
	Positions []Point3
	Signs     []Sign
	Draws     int  // candidates drawn, accepted or not
	Scale     Real // cube edge the positions were drawn from
}

func newSampleResult(cfg SamplingConfig) *SampleResult {
	return &SampleResult{Scale: cfg.Scale}
}

func (r *SampleResult) add(p Point3, amp Real) {
	r.Positions = append(r.Positions, p)
	r.Signs = append(r.Signs, SignOf(amp))
}

func (r *SampleResult) merge(o *SampleResult) {
	r.Positions = append(r.Positions, o.Positions...)
	r.Signs = append(r.Signs, o.Signs...)
	r.Draws += o.Draws
}

// Len returns the number of accepted points.
func (r *SampleResult) Len() int { return len(r.Positions) }

// Count returns how many accepted points carry sign s.
func (r *SampleResult) Count(s Sign) int {
	n := 0
	for _, t := range r.Signs {
		if t == s {
			n++
		}
	}
	return n
}

// ViewPoints maps positions from the sampling cube into a cube of edge
// viewSize: x/scale*viewSize.
func (r *SampleResult) ViewPoints(viewSize Real) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(r.Positions))
	if r.Scale <= 0 {
		return out
	}
	k := viewSize / r.Scale
	for i, p := range r.Positions {
		out[i] = p.Mul(k).Vec3()
	}
	return out
}

// Buffers flattens the result into contiguous xyz and rgb float32 arrays,
// three values per accepted point, ready for a vertex buffer upload.
func (r *SampleResult) Buffers(viewSize Real) (positions, colors []float32) {
	pts := r.ViewPoints(viewSize)
	positions = make([]float32, 0, 3*len(pts))
	colors = make([]float32, 0, 3*len(pts))
	for i, p := range pts {
		c := r.Signs[i].Color()
		positions = append(positions, p[0], p[1], p[2])
		colors = append(colors, float32(c.R), float32(c.G), float32(c.B))
	}
	return positions, colors
}

// BoundingSphere returns the center of the axis-aligned box around the
// accepted points and the largest distance from it. Empty results give a zero sphere.
func (r *SampleResult) BoundingSphere() (Point3, Real) {
	if len(r.Positions) == 0 {
		return Point3{}, 0
	}
	lo := Point3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := Point3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range r.Positions {
		lo = Point3{math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z)}
		hi = Point3{math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z)}
	}
	c := lo.Add(hi).Mul(0.5)
	radius := 0.0
	for _, p := range r.Positions {
		radius = math.Max(radius, p.Sub(c).Len())
	}
	return c, radius
}
