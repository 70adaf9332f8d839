package readers

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/prosolvesimulation-blip/prosolvesimulation/geometry"
	"github.com/prosolvesimulation-blip/prosolvesimulation/mesh"
)

// Provider serves group topology from mesh files, dispatching on extension.
// Parsed files are cached per path; the provider reads only and never writes.
//
// Raw connectivity is emitted in the nodal convention downstream code
// expects: elements larger than a point carry a leading node-count prefix
// ahead of the node indices, so extraction must always run the connectivity
// normalizer over it.
type Provider struct {
	cache map[string]*gmshFile
}

func NewProvider() *Provider {
	return &Provider{cache: make(map[string]*gmshFile)}
}

var _ mesh.TopologyProvider = (*Provider)(nil)

func (p *Provider) open(file string) (*gmshFile, error) {
	if gf, ok := p.cache[file]; ok {
		return gf, nil
	}
	ext := strings.ToLower(filepath.Ext(file))
	switch ext {
	case ".msh":
		gf, err := readGmsh(file)
		if err != nil {
			return nil, err
		}
		p.cache[file] = gf
		return gf, nil
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}

// ListGroups enumerates the physical group names of a mesh file, in sorted
// order. The synthetic full-mesh group is not included.
func (p *Provider) ListGroups(file string) ([]string, error) {
	gf, err := p.open(file)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var names []string
	for _, name := range gf.physicalNames {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ReadGroup assembles the raw payload for one group: the group's elements
// with node ids compacted into a group-local coordinate array. For
// mesh.FullMeshName the group is every element at the file's top mesh
// dimension.
func (p *Provider) ReadGroup(file, group string) (*mesh.RawGroup, error) {
	gf, err := p.open(file)
	if err != nil {
		return nil, err
	}

	var selected []gmshElement
	if group == mesh.FullMeshName {
		for _, el := range gf.elements {
			if el.dim == gf.maxDim {
				selected = append(selected, el)
			}
		}
	} else {
		for _, el := range gf.elements {
			if gf.physicalNames[physicalKey{el.dim, el.physical}] == group {
				selected = append(selected, el)
			}
		}
	}
	if len(selected) == 0 {
		return &mesh.RawGroup{}, nil
	}

	// Compact file node ids into group-local indices, in first-use order.
	local := make(map[int]int)
	var coords []float64
	indexOf := func(id int) (int, error) {
		if idx, ok := local[id]; ok {
			return idx, nil
		}
		xyz, ok := gf.nodes[id]
		if !ok {
			return 0, fmt.Errorf("element references unknown node %d", id)
		}
		idx := len(local)
		local[id] = idx
		coords = append(coords, xyz[0], xyz[1], xyz[2])
		return idx, nil
	}

	var flat []int
	for _, el := range selected {
		if len(el.nodes) > 1 {
			flat = append(flat, len(el.nodes))
		}
		for _, id := range el.nodes {
			idx, err := indexOf(id)
			if err != nil {
				return nil, err
			}
			flat = append(flat, idx)
		}
	}

	first := selected[0]
	return &mesh.RawGroup{
		Coordinates:      coords,
		ConnectivityFlat: flat,
		ElementCount:     len(selected),
		CellType:         first.cellType,
		Dimension:        first.dim,
	}, nil
}

// ComputeNormals derives a per-point normal field for a surface group from
// its face windings. Valid only for Dimension == 2 groups.
func (p *Provider) ComputeNormals(g *mesh.Group) ([]float64, error) {
	if g.Dimension != 2 {
		return nil, fmt.Errorf("normals require a surface group, got dimension %d", g.Dimension)
	}
	return geometry.PointNormals(g.Coordinates, g.Connectivity)
}
