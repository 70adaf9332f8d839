// Package section builds triangulated beam cross-section profiles in a local
// (y, z) plane, along with their geometric properties. Profiles are planar
// meshes only; placing them on a beam is the extrusion layer's job.
package section

import (
	"fmt"
	"math"

	graphics2D "github.com/notargets/avs/geometry"
)

// Profile is a planar cross-section mesh. Vertices are (y, z) pairs in the
// section-local frame; Triangles index into Vertices only.
type Profile struct {
	Vertices  [][2]float64
	Triangles [][3]int
}

func (p *Profile) NumVertices() int { return len(p.Vertices) }

// addRect appends an axis-aligned rectangle [y0,y1]x[z0,z1] as four vertices
// and two triangles, counter-clockwise in the (y, z) plane.
func (p *Profile) addRect(y0, z0, y1, z1 float64) {
	base := len(p.Vertices)
	p.Vertices = append(p.Vertices,
		[2]float64{y0, z0}, [2]float64{y1, z0},
		[2]float64{y1, z1}, [2]float64{y0, z1})
	p.Triangles = append(p.Triangles,
		[3]int{base, base + 1, base + 2},
		[3]int{base, base + 2, base + 3})
}

// Rectangle returns a solid rectangular section of depth d (along z) and
// width b (along y).
func Rectangle(d, b float64) *Profile {
	p := &Profile{}
	p.addRect(-b/2, -d/2, b/2, d/2)
	return p
}

// Box returns a rectangular hollow section of outer depth d, outer width b
// and wall thickness t, built from four wall rectangles.
func Box(d, b, t float64) *Profile {
	p := &Profile{}
	p.addRect(-b/2, -d/2, b/2, -d/2+t)   // bottom flange
	p.addRect(-b/2, d/2-t, b/2, d/2)     // top flange
	p.addRect(-b/2, -d/2+t, -b/2+t, d/2-t) // left web
	p.addRect(b/2-t, -d/2+t, b/2, d/2-t)   // right web
	return p
}

// Circle returns a solid circular section of diameter d as a fan of n
// triangles around the center.
func Circle(d float64, n int) *Profile {
	if n < 3 {
		n = 16
	}
	r := d / 2
	p := &Profile{Vertices: [][2]float64{{0, 0}}}
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		p.Vertices = append(p.Vertices, [2]float64{r * math.Cos(a), r * math.Sin(a)})
	}
	for i := 0; i < n; i++ {
		j := i%n + 1
		k := (i+1)%n + 1
		p.Triangles = append(p.Triangles, [3]int{0, j, k})
	}
	return p
}

// Pipe returns a circular hollow section of outer diameter d and wall
// thickness t, as n quadrilateral wall panels split into triangles.
func Pipe(d, t float64, n int) *Profile {
	if n < 3 {
		n = 16
	}
	ro, ri := d/2, d/2-t
	p := &Profile{}
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		p.Vertices = append(p.Vertices,
			[2]float64{ro * math.Cos(a), ro * math.Sin(a)},
			[2]float64{ri * math.Cos(a), ri * math.Sin(a)})
	}
	for i := 0; i < n; i++ {
		o0, i0 := 2*i, 2*i+1
		o1, i1 := 2*((i+1)%n), 2*((i+1)%n)+1
		p.Triangles = append(p.Triangles,
			[3]int{o0, o1, i1},
			[3]int{o0, i1, i0})
	}
	return p
}

// MonoI returns a mono-symmetric I-section: total depth d, top/bottom flange
// widths bt/bb, flange thicknesses tft/tfb, web thickness tw. The section is
// built web-centered with the depth spanning [-d/2, d/2] along z.
func MonoI(d, bt, bb, tft, tfb, tw float64) *Profile {
	p := &Profile{}
	p.addRect(-bb/2, -d/2, bb/2, -d/2+tfb)     // bottom flange
	p.addRect(-tw/2, -d/2+tfb, tw/2, d/2-tft)  // web
	p.addRect(-bt/2, d/2-tft, bt/2, d/2)       // top flange
	return p
}

// AlignCenter shifts the profile so its area centroid sits at the origin.
func (p *Profile) AlignCenter() *Profile {
	props := p.Properties()
	return p.Shift(-props.CentroidY, -props.CentroidZ)
}

// Rotate rotates the profile about the origin by angle degrees.
func (p *Profile) Rotate(angle float64) *Profile {
	a := angle * math.Pi / 180
	c, s := math.Cos(a), math.Sin(a)
	for i, v := range p.Vertices {
		p.Vertices[i] = [2]float64{c*v[0] - s*v[1], s*v[0] + c*v[1]}
	}
	return p
}

// Shift translates the profile in the section plane.
func (p *Profile) Shift(dy, dz float64) *Profile {
	for i, v := range p.Vertices {
		p.Vertices[i] = [2]float64{v[0] + dy, v[1] + dz}
	}
	return p
}

// Validate checks that every triangle references only profile vertices.
func (p *Profile) Validate() error {
	for _, tri := range p.Triangles {
		for _, id := range tri {
			if id < 0 || id >= len(p.Vertices) {
				return fmt.Errorf("triangle index %d out of range (%d vertices)",
					id, len(p.Vertices))
			}
		}
	}
	return nil
}

// ToGraphMesh converts the profile into an avs TriMesh for display.
func (p *Profile) ToGraphMesh() graphics2D.TriMesh {
	pts := make([]graphics2D.Point, len(p.Vertices))
	for i, v := range p.Vertices {
		pts[i].X[0] = float32(v[0])
		pts[i].X[1] = float32(v[1])
	}
	tris := make([]graphics2D.Triangle, len(p.Triangles))
	for i, tri := range p.Triangles {
		tris[i].Nodes[0] = int32(tri[0])
		tris[i].Nodes[1] = int32(tri[1])
		tris[i].Nodes[2] = int32(tri[2])
	}
	return graphics2D.TriMesh{
		BaseGeometryClass: graphics2D.BaseGeometryClass{
			Geometry: pts,
		},
		Triangles:  tris,
		Attributes: nil,
	}
}
