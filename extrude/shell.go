package extrude

import (
	"fmt"

	"github.com/prosolvesimulation-blip/prosolvesimulation/geometry"
	"github.com/prosolvesimulation-blip/prosolvesimulation/mesh"
)

// ExtrudeShell builds the slab solid for a 2D group: the base surface is
// placed at (offset - thickness/2) along the per-point normal field, then
// extruded a further thickness along the normals. The field must be unit
// length and consistently oriented; inconsistent orientation on non-manifold
// patches shows up as inverted slabs and is not corrected here.
//
// Callers decide the thickness <= 0 case (the group passes through flat);
// invoking the builder with it is a programming error, not a policy.
func ExtrudeShell(g *mesh.Group, thickness, offset float64) (*geometry.Solid, error) {
	if thickness <= 0 {
		return nil, fmt.Errorf("shell extrusion needs thickness > 0, got %g", thickness)
	}
	if len(g.Normals) != len(g.Coordinates) {
		return nil, ErrMissingNormals
	}

	base := geometry.WarpByVectors(g.Coordinates, g.Normals, offset-thickness/2)
	return geometry.ExtrudeAlongNormals(base, g.Connectivity, g.Normals, thickness), nil
}
