package geometry

import "gonum.org/v1/gonum/spatial/r3"

// ExtrudeAlongVector sweeps a face set along dir for the given length and
// returns the closed skin: base faces, displaced top faces, and side quads
// over the free boundary edges. Base points come first, top points follow at
// an index offset of the base point count.
func ExtrudeAlongVector(points []float64, cells [][]int, dir r3.Vec, length float64) *Solid {
	step := r3.Scale(length, r3.Unit(dir))
	n := len(points) / 3
	top := make([]float64, 0, len(points))
	for i := 0; i < n; i++ {
		top = appendVec(top, r3.Add(Vec(points, i), step))
	}
	return skin(points, top, cells)
}

// ExtrudeAlongNormals sweeps a face set along a per-point normal field
// scaled by thickness. The field must hold one unit 3-vector per point,
// consistently oriented across the patch; no re-orientation happens here.
func ExtrudeAlongNormals(points []float64, cells [][]int, normals []float64, thickness float64) *Solid {
	top := WarpByVectors(points, normals, thickness)
	return skin(points, top, cells)
}

// skin assembles the extrusion surface from matching base and top point sets.
func skin(base, top []float64, cells [][]int) *Solid {
	n := len(base) / 3
	s := &Solid{Points: make([]float64, 0, 2*len(base))}
	s.Points = append(s.Points, base...)
	s.Points = append(s.Points, top...)

	for _, c := range cells {
		bottom := make([]int, len(c))
		copy(bottom, c)
		s.Cells = append(s.Cells, bottom)
	}
	for _, c := range cells {
		lid := make([]int, len(c))
		for i, id := range c {
			lid[i] = id + n
		}
		s.Cells = append(s.Cells, lid)
	}
	for _, e := range freeEdges(cells) {
		a, b := e[0], e[1]
		s.Cells = append(s.Cells, []int{a, b, b + n, a + n})
	}
	return s
}

// freeEdges returns the boundary edges of a face set: edges referenced by
// exactly one face, in that face's winding order.
func freeEdges(cells [][]int) [][2]int {
	type edge struct{ lo, hi int }
	count := make(map[edge]int)
	first := make(map[edge][2]int)

	for _, c := range cells {
		for i := range c {
			a, b := c[i], c[(i+1)%len(c)]
			k := edge{a, b}
			if a > b {
				k = edge{b, a}
			}
			if count[k] == 0 {
				first[k] = [2]int{a, b}
			}
			count[k]++
		}
	}

	var out [][2]int
	for _, c := range cells {
		for i := range c {
			a, b := c[i], c[(i+1)%len(c)]
			k := edge{a, b}
			if a > b {
				k = edge{b, a}
			}
			if count[k] == 1 {
				out = append(out, first[k])
			}
		}
	}
	return out
}
