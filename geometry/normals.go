package geometry

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDegenerateSurface reports a face set whose every face has zero area, so
// no normal field can be derived from it.
var ErrDegenerateSurface = errors.New("degenerate surface: no usable face normals")

// PointNormals computes a unit normal per point of a surface mesh by
// accumulating area-weighted face normals at each point. Face normals come
// from Newell's method, which stays stable for non-planar quads. Orientation
// follows the face winding; consistency across the patch is the mesh
// source's responsibility.
func PointNormals(points []float64, cells [][]int) ([]float64, error) {
	n := len(points) / 3
	acc := make([]r3.Vec, n)
	usable := false

	for _, c := range cells {
		fn := newellNormal(points, c)
		if r3.Norm(fn) == 0 {
			continue
		}
		usable = true
		for _, id := range c {
			acc[id] = r3.Add(acc[id], fn)
		}
	}
	if !usable {
		return nil, ErrDegenerateSurface
	}

	out := make([]float64, 0, len(points))
	for i := 0; i < n; i++ {
		v := acc[i]
		if r3.Norm(v) > 0 {
			v = r3.Unit(v)
		}
		out = appendVec(out, v)
	}
	return out, nil
}

// newellNormal returns the (unnormalized, area-weighted) polygon normal.
func newellNormal(points []float64, cell []int) r3.Vec {
	var nx, ny, nz float64
	for i := range cell {
		p := Vec(points, cell[i])
		q := Vec(points, cell[(i+1)%len(cell)])
		nx += (p.Y - q.Y) * (p.Z + q.Z)
		ny += (p.Z - q.Z) * (p.X + q.X)
		nz += (p.X - q.X) * (p.Y + q.Y)
	}
	return r3.Vec{X: nx, Y: ny, Z: nz}
}
