package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// DegenerateTol is the segment length below which a beam segment is
	// treated as zero-length.
	DegenerateTol = 1e-6

	// verticalTol is the |tangent·Z| threshold above which the global Z
	// axis is too close to the tangent to serve as the up reference.
	verticalTol = 0.99
)

// Frame is a right-handed orthonormal basis anchored at an origin, used to
// orient a beam cross-section on a segment. Tangent is the local x axis, Y
// and Z span the section plane.
type Frame struct {
	Origin  r3.Vec
	Tangent r3.Vec
	Y, Z    r3.Vec
}

// SegmentFrame derives the local frame of the segment p1->p2. Each segment's
// frame comes from a fixed global reference instead of being propagated from
// the previous segment, so no twist accumulates along a beam line. The up
// reference is the global Z axis, falling back to global Y for near-vertical
// segments where the cross product would degenerate. Returns ok == false for
// a zero-length segment.
func SegmentFrame(p1, p2 r3.Vec) (f Frame, ok bool) {
	d := r3.Sub(p2, p1)
	if r3.Norm(d) < DegenerateTol {
		return Frame{}, false
	}
	t := r3.Unit(d)

	up := r3.Vec{Z: 1}
	if math.Abs(t.Z) > verticalTol {
		up = r3.Vec{Y: 1}
	}
	y := r3.Unit(r3.Cross(up, t))
	z := r3.Unit(r3.Cross(t, y))
	return Frame{Origin: p1, Tangent: t, Y: y, Z: z}, true
}

// At maps section-plane coordinates (y, z) into world space.
func (f Frame) At(y, z float64) r3.Vec {
	return r3.Add(f.Origin, r3.Add(r3.Scale(y, f.Y), r3.Scale(z, f.Z)))
}

// PlacePlanar rigidly transforms a planar vertex set, given as (y, z) pairs,
// into the frame's section plane and returns the flat 3D coordinates.
func (f Frame) PlacePlanar(verts [][2]float64) []float64 {
	points := make([]float64, 0, 3*len(verts))
	for _, v := range verts {
		points = appendVec(points, f.At(v[0], v[1]))
	}
	return points
}
