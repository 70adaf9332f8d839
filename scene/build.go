package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/prosolvesimulation-blip/prosolvesimulation/InputParameters"
	"github.com/prosolvesimulation-blip/prosolvesimulation/extrude"
	"github.com/prosolvesimulation-blip/prosolvesimulation/geometry"
	"github.com/prosolvesimulation-blip/prosolvesimulation/mesh"
	"github.com/prosolvesimulation-blip/prosolvesimulation/section"
)

// OriginalSuffix names the untouched source-mesh sibling of an extruded
// component: the extruded solid keeps the group name, the wireframe/surface
// it came from is stored as <name>_ORIGINAL.
const OriginalSuffix = "_ORIGINAL"

// Build runs the whole pipeline over one or more mesh files: extract groups,
// normalize connectivity, extrude beams and shells per the group parameters,
// and merge everything into one scene. Files are processed strictly in
// order; the assembler's running offset makes the sequencing load-bearing.
//
// Per-group failures end up in the scene's Skipped list; a file that fails
// outright contributes nothing but does not abort the scene. The only
// overall failure is a scene with no components at all.
func Build(provider mesh.TopologyProvider, files []string, params *InputParameters.GeometryParameters) (*Scene, error) {
	asm := NewAssembler()
	ex := &mesh.Extractor{Provider: provider}
	b := &builder{asm: asm, params: params, seen: make(map[string]bool)}

	for _, file := range files {
		results, err := ex.ExtractGroups(file)
		if err != nil {
			log.WithField("file", file).WithError(err).Error("file contributed nothing")
			asm.Skip(filepath.Base(file))
			continue
		}
		tag := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		for _, res := range results {
			if res.Err != nil {
				asm.Skip(res.Name)
				continue
			}
			b.addGroup(tag, res.Group)
		}
	}
	return asm.Scene()
}

type builder struct {
	asm    *Assembler
	params *InputParameters.GeometryParameters
	seen   map[string]bool
}

// addGroup routes one extracted group: shells with a positive thickness and
// beam lines with section parameters get an extruded component next to their
// base, everything else passes through flat.
func (b *builder) addGroup(fileTag string, g *mesh.Group) {
	var entry *InputParameters.GeometryEntry
	if b.params != nil {
		entry = b.params.Lookup(g.Name)
	}
	name := b.uniqueName(fileTag, g.Name)

	switch {
	case categoryOf(entry, g) == "2D" && entry != nil && entry.Section.Thickness > 0:
		b.addShell(name, g, entry.Section)
	case categoryOf(entry, g) == "1D" && g.CellType == mesh.Line && wantsBeam(entry):
		b.addBeam(name, g, entry.Section)
	default:
		b.addBase(name, g)
	}
}

func (b *builder) addShell(name string, g *mesh.Group, sp InputParameters.SectionParams) {
	solid, err := extrude.ExtrudeShell(g, sp.Thickness, sp.Offset)
	if err != nil {
		log.WithField("group", g.Name).WithError(err).Warn("shell extrusion failed")
		b.asm.Skip(name)
		b.addBase(name, g)
		return
	}
	b.addBase(name+OriginalSuffix, g)
	b.addSolid(name, solid)
}

func (b *builder) addBeam(name string, g *mesh.Group, sp InputParameters.SectionParams) {
	var (
		solid *geometry.Solid
		err   error
	)
	if prof, perr := profileFromParams(sp); perr != nil {
		err = perr
	} else if prof != nil {
		solid, err = extrude.SweepBeam(g, extrude.BeamSpec{
			Profile: prof,
			OffsetY: sp.OffsetY,
			OffsetZ: sp.OffsetZ,
		})
	} else {
		solid, err = extrude.SweepTube(g, sp.Radius, sp.Sides)
	}

	if err != nil || solid == nil {
		if err != nil {
			log.WithField("group", g.Name).WithError(err).Warn("beam sweep failed")
		}
		b.asm.Skip(name)
		b.addBase(name, g)
		return
	}
	b.addBase(name+OriginalSuffix, g)
	b.addSolid(name, solid)
}

// addBase commits the untouched source group.
func (b *builder) addBase(name string, g *mesh.Group) {
	if err := b.asm.Add(name, g.CellType.String(), g.Coordinates, g.Connectivity, true, false); err != nil {
		log.WithField("component", name).WithError(err).Warn("dropping component")
		b.asm.Skip(name)
	}
}

func (b *builder) addSolid(name string, solid *geometry.Solid) {
	// Generated skins mix cap and side cells; tuple length carries each
	// cell's shape, the component type records the dominant quad sides.
	if err := b.asm.Add(name, mesh.Quad.String(), solid.Points, solid.Cells, false, true); err != nil {
		log.WithField("component", name).WithError(err).Warn("dropping component")
		b.asm.Skip(name)
	}
}

// uniqueName keeps component names collision-free across multiple source
// files by qualifying repeats with the file tag.
func (b *builder) uniqueName(fileTag, group string) string {
	name := group
	if b.seen[name] || b.seen[name+OriginalSuffix] {
		name = fmt.Sprintf("%s@%s", group, fileTag)
	}
	b.seen[name] = true
	b.seen[name+OriginalSuffix] = true
	return name
}

func categoryOf(entry *InputParameters.GeometryEntry, g *mesh.Group) string {
	if entry != nil && entry.Category != "" {
		return strings.ToUpper(strings.TrimSpace(entry.Category))
	}
	switch g.Dimension {
	case 1:
		return "1D"
	case 2:
		return "2D"
	case 3:
		return "3D"
	}
	return fmt.Sprintf("%dD", g.Dimension)
}

func wantsBeam(entry *InputParameters.GeometryEntry) bool {
	if entry == nil {
		return false
	}
	return entry.Section.Shape != "" || entry.Section.Radius > 0
}

// profileFromParams realizes the parametric cross-section: built, centered
// on its centroid, then rotated. Nil profile (and nil error) selects the
// tube-by-radius fallback.
func profileFromParams(sp InputParameters.SectionParams) (*section.Profile, error) {
	var prof *section.Profile
	switch strings.ToUpper(strings.TrimSpace(sp.Shape)) {
	case "":
		return nil, nil
	case "RECTANGLE":
		prof = section.Rectangle(sp.H, sp.B)
	case "BOX":
		prof = section.Box(sp.H, sp.B, sp.T)
	case "CIRCLE":
		prof = section.Circle(sp.B, sp.Sides)
	case "PIPE":
		prof = section.Pipe(sp.B, sp.T, sp.Sides)
	case "I_SECTION":
		prof = section.MonoI(sp.H, sp.BfTop, sp.BfBot, sp.TfTop, sp.TfBot, sp.Tw)
	default:
		return nil, fmt.Errorf("unknown section shape %q", sp.Shape)
	}
	prof = prof.AlignCenter()
	if sp.Rotation != 0 {
		prof = prof.Rotate(sp.Rotation)
	}
	if err := prof.Validate(); err != nil {
		return nil, err
	}
	return prof, nil
}

