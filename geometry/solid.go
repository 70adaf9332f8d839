package geometry

import "gonum.org/v1/gonum/spatial/r3"

// Solid is a generated geometry fragment: a flat point array in point-major
// order plus cells indexing into it. Cell tuple length carries the cell
// shape (3 = triangle, 4 = quad, ...).
type Solid struct {
	Points []float64
	Cells  [][]int
}

func (s *Solid) NumPoints() int { return len(s.Points) / 3 }

// Append merges other into s. The index shift for other's cells is the point
// count of s before other's points are appended; computing it in the other
// order silently corrupts every index, so the shift is taken first.
func (s *Solid) Append(other *Solid) {
	offset := s.NumPoints()
	s.Points = append(s.Points, other.Points...)
	for _, c := range other.Cells {
		cell := make([]int, len(c))
		for i, id := range c {
			cell[i] = id + offset
		}
		s.Cells = append(s.Cells, cell)
	}
}

// Vec returns point i of a flat coordinate array.
func Vec(points []float64, i int) r3.Vec {
	return r3.Vec{X: points[3*i], Y: points[3*i+1], Z: points[3*i+2]}
}

func appendVec(points []float64, v r3.Vec) []float64 {
	return append(points, v.X, v.Y, v.Z)
}

// WarpByVectors displaces each point by scale times its vector from field
// (one 3-vector per point) and returns the displaced copy.
func WarpByVectors(points, field []float64, scale float64) []float64 {
	out := make([]float64, len(points))
	for i := range points {
		out[i] = points[i] + scale*field[i]
	}
	return out
}
