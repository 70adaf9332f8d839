package section

// Properties are the geometric section properties derived from the
// triangulation. Second moments are taken about the area centroid: Iyy about
// the y axis (integral of z^2 dA), Izz about the z axis (integral of y^2 dA).
type Properties struct {
	Area      float64
	CentroidY float64
	CentroidZ float64
	Iyy       float64
	Izz       float64
}

// Properties integrates area, centroid and second moments over the profile
// triangles using the exact triangle formulas, then shifts the moments to the
// centroid by the parallel axis theorem.
func (p *Profile) Properties() Properties {
	var area, sy, sz, iy, iz float64

	for _, tri := range p.Triangles {
		a, b, c := p.Vertices[tri[0]], p.Vertices[tri[1]], p.Vertices[tri[2]]
		// Signed doubled area keeps winding mistakes from inflating totals.
		da := ((b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])) / 2

		area += da
		sy += da * (a[0] + b[0] + c[0]) / 3
		sz += da * (a[1] + b[1] + c[1]) / 3
		iz += da / 6 * (a[0]*a[0] + b[0]*b[0] + c[0]*c[0] +
			a[0]*b[0] + b[0]*c[0] + c[0]*a[0])
		iy += da / 6 * (a[1]*a[1] + b[1]*b[1] + c[1]*c[1] +
			a[1]*b[1] + b[1]*c[1] + c[1]*a[1])
	}

	props := Properties{Area: area}
	if area != 0 {
		props.CentroidY = sy / area
		props.CentroidZ = sz / area
		props.Iyy = iy - area*props.CentroidZ*props.CentroidZ
		props.Izz = iz - area*props.CentroidY*props.CentroidY
	}
	return props
}
