// Package extrude turns 1D and 2D mesh groups into renderable solids: beam
// lines become swept profiles or tubes, shell surfaces become slab volumes
// along their normal field.
package extrude

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/prosolvesimulation-blip/prosolvesimulation/geometry"
	"github.com/prosolvesimulation-blip/prosolvesimulation/mesh"
	"github.com/prosolvesimulation-blip/prosolvesimulation/section"
)

var log = logrus.WithField("pkg", "extrude")

// BeamSpec carries the sweep inputs for one 1D group: the cross-section
// profile and its section-local placement offsets.
type BeamSpec struct {
	Profile *section.Profile
	OffsetY float64
	OffsetZ float64
}

// SweepBeam builds one solid covering every line segment of a 1D group. Per
// segment, the profile is rigidly placed at the segment start in the
// segment's local frame and extruded along the tangent for the segment
// length. Segment fragments are appended without point welding, so each
// segment contributes two rings of profile points.
//
// Zero-length segments are logged and skipped. A nil solid (and nil error)
// comes back when every segment was degenerate.
func SweepBeam(g *mesh.Group, spec BeamSpec) (*geometry.Solid, error) {
	if spec.Profile == nil || spec.Profile.NumVertices() == 0 {
		return nil, ErrEmptyProfile
	}

	verts := make([][2]float64, spec.Profile.NumVertices())
	for i, v := range spec.Profile.Vertices {
		verts[i] = [2]float64{v[0] + spec.OffsetY, v[1] + spec.OffsetZ}
	}
	tris := make([][]int, len(spec.Profile.Triangles))
	for i, t := range spec.Profile.Triangles {
		tris[i] = []int{t[0], t[1], t[2]}
	}

	solid := &geometry.Solid{}
	for _, seg := range NormalizeDirections(g) {
		p1 := geometry.Vec(g.Coordinates, seg[0])
		p2 := geometry.Vec(g.Coordinates, seg[1])

		f, ok := geometry.SegmentFrame(p1, p2)
		if !ok {
			log.WithField("group", g.Name).
				WithError(&DegenerateSegmentError{Segment: seg[:]}).
				Warn("skipping segment")
			continue
		}
		length := r3.Norm(r3.Sub(p2, p1))
		placed := f.PlacePlanar(verts)
		solid.Append(geometry.ExtrudeAlongVector(placed, tris, f.Tangent, length))
	}

	if solid.NumPoints() == 0 {
		log.WithField("group", g.Name).Warn("no sweepable segments in group")
		return nil, nil
	}
	return solid, nil
}

// SweepTube is the scalar-radius fallback: a capped circular tube along each
// segment, for beams that carry a radius instead of a full profile.
func SweepTube(g *mesh.Group, radius float64, sides int) (*geometry.Solid, error) {
	segs := NormalizeDirections(g)
	cells := make([][]int, len(segs))
	for i, s := range segs {
		cells[i] = []int{s[0], s[1]}
	}
	solid := geometry.SweepTube(g.Coordinates, cells, radius, sides)
	if solid == nil {
		log.WithField("group", g.Name).Warn("no sweepable segments in group")
	}
	return solid, nil
}

// NormalizeDirections returns the group's segments with vertex order aligned
// to the group's dominant direction. The dominant direction is a majority
// vote: unit tangents are accumulated sign-aligned with the running sum
// (seeded by the first segment, which also breaks exact ties), and every
// segment whose tangent opposes the result is flipped. Without this,
// oppositely wound segments of the same physical beam get visibly flipped
// local frames.
func NormalizeDirections(g *mesh.Group) [][2]int {
	segs := make([][2]int, 0, len(g.Connectivity))
	tangents := make([]r3.Vec, 0, len(g.Connectivity))
	var mean r3.Vec

	for _, c := range g.Connectivity {
		if len(c) < 2 {
			continue
		}
		seg := [2]int{c[0], c[1]}
		d := r3.Sub(geometry.Vec(g.Coordinates, seg[1]), geometry.Vec(g.Coordinates, seg[0]))
		var t r3.Vec
		if r3.Norm(d) >= geometry.DegenerateTol {
			t = r3.Unit(d)
		}
		segs = append(segs, seg)
		tangents = append(tangents, t)
		if r3.Dot(t, mean) < 0 {
			mean = r3.Sub(mean, t)
		} else {
			mean = r3.Add(mean, t)
		}
	}

	if r3.Norm(mean) == 0 {
		return segs
	}
	mean = r3.Unit(mean)
	for i := range segs {
		if r3.Dot(tangents[i], mean) < 0 {
			segs[i][0], segs[i][1] = segs[i][1], segs[i][0]
		}
	}
	return segs
}
