package InputParameters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ghodss/yaml"
)

// Per-group geometry parameters obtained from the YAML input file. Group
// lookup is case-insensitive and whitespace-tolerant, matching the way group
// names arrive from mesh authoring tools.
type GeometryParameters struct {
	Title      string          `json:"Title"`
	Geometries []GeometryEntry `json:"Geometries"`
}

// GeometryEntry binds one mesh group to its extrusion parameters.
type GeometryEntry struct {
	Group string `json:"Group"`
	// Category forces the 1D/2D/3D classification; when empty it is
	// inferred from the group's element type.
	Category string        `json:"Category"`
	Section  SectionParams `json:"SectionParams"`
}

// SectionParams holds both shell parameters (thickness, offset) and beam
// parameters (radius or a parametric cross-section). Unused fields stay zero.
type SectionParams struct {
	Thickness float64 `json:"Thickness"`
	Offset    float64 `json:"Offset"`

	Radius float64 `json:"Radius"`
	Sides  int     `json:"Sides"`

	// Shape selects a parametric cross-section: RECTANGLE, BOX, CIRCLE,
	// PIPE or I_SECTION. Empty means tube-by-radius.
	Shape string `json:"Shape"`

	// Section dimensions, shape dependent.
	H     float64 `json:"H"`     // total depth
	B     float64 `json:"B"`     // width / outer diameter
	T     float64 `json:"T"`     // wall thickness (BOX, PIPE)
	BfTop float64 `json:"BfTop"` // top flange width (I_SECTION)
	BfBot float64 `json:"BfBot"` // bottom flange width
	TfTop float64 `json:"TfTop"` // top flange thickness
	TfBot float64 `json:"TfBot"` // bottom flange thickness
	Tw    float64 `json:"Tw"`    // web thickness

	// Section-local placement.
	OffsetY  float64 `json:"OffsetY"`
	OffsetZ  float64 `json:"OffsetZ"`
	Rotation float64 `json:"Rotation"` // degrees
}

func (gp *GeometryParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, gp)
}

// Lookup finds the entry for a group name, trimmed and case-folded. Nil when
// the group has no parameters.
func (gp *GeometryParameters) Lookup(group string) *GeometryEntry {
	key := canonical(group)
	for i := range gp.Geometries {
		if canonical(gp.Geometries[i].Group) == key {
			return &gp.Geometries[i]
		}
	}
	return nil
}

func canonical(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func (gp *GeometryParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", gp.Title)
	names := make([]string, len(gp.Geometries))
	for i, g := range gp.Geometries {
		names[i] = g.Group
	}
	sort.Strings(names)
	for _, name := range names {
		e := gp.Lookup(name)
		fmt.Printf("Geometries[%s] = %+v\n", name, e.Section)
	}
}
