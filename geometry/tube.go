package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultTubeSides is the circle discretization used when a caller does not
// ask for a specific side count.
const DefaultTubeSides = 8

// SweepTube sweeps a capped circular tube of the given radius along each
// line segment of a polyline, returning one merged solid. Segments are
// treated independently: each contributes its own start and end ring, and
// zero-length segments are skipped. A nil solid comes back when every
// segment was degenerate.
func SweepTube(points []float64, segments [][]int, radius float64, sides int) *Solid {
	if sides < 3 {
		sides = DefaultTubeSides
	}
	tube := &Solid{}
	for _, seg := range segments {
		if len(seg) < 2 {
			continue
		}
		p1, p2 := Vec(points, seg[0]), Vec(points, seg[1])
		f, ok := SegmentFrame(p1, p2)
		if !ok {
			continue
		}
		length := r3.Norm(r3.Sub(p2, p1))
		tube.Append(segmentTube(f, radius, length, sides))
	}
	if tube.NumPoints() == 0 {
		return nil
	}
	return tube
}

func segmentTube(f Frame, radius, length float64, sides int) *Solid {
	ring := make([][2]float64, sides)
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / float64(sides)
		ring[i] = [2]float64{radius * math.Cos(a), radius * math.Sin(a)}
	}

	s := &Solid{Points: f.PlacePlanar(ring)}
	step := r3.Scale(length, f.Tangent)
	for i := 0; i < sides; i++ {
		s.Points = appendVec(s.Points, r3.Add(Vec(s.Points, i), step))
	}

	for i := 0; i < sides; i++ {
		j := (i + 1) % sides
		s.Cells = append(s.Cells, []int{i, j, j + sides, i + sides})
	}
	// End caps as triangle fans.
	for i := 1; i < sides-1; i++ {
		s.Cells = append(s.Cells, []int{0, i + 1, i})
		s.Cells = append(s.Cells, []int{sides, sides + i, sides + i + 1})
	}
	return s
}
