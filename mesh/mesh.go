package mesh

// FullMeshName is the synthetic group representing the union of all elements
// at the file's top mesh level. Every extraction includes it alongside the
// named groups.
const FullMeshName = "_FULL_MESH_"

// CellType identifies the reference element of a group using VTK cell type
// ids, which is what the visualization side of the pipeline consumes.
type CellType int

const (
	Vertex   CellType = 1
	Line     CellType = 3
	Triangle CellType = 5
	Quad     CellType = 9
	Tetra    CellType = 10
	Hexa     CellType = 12
)

func (c CellType) String() string {
	switch c {
	case Vertex:
		return "vertex"
	case Line:
		return "line"
	case Triangle:
		return "triangle"
	case Quad:
		return "quad"
	case Tetra:
		return "tetra"
	case Hexa:
		return "hexa"
	}
	return "unknown"
}

// NumNodes returns the node count of the reference element, 0 when unknown.
func (c CellType) NumNodes() int {
	switch c {
	case Vertex:
		return 1
	case Line:
		return 2
	case Triangle:
		return 3
	case Quad:
		return 4
	case Tetra:
		return 4
	case Hexa:
		return 8
	}
	return 0
}

// Dimension returns the topological dimension of the reference element.
func (c CellType) Dimension() int {
	switch c {
	case Vertex:
		return 0
	case Line:
		return 1
	case Triangle, Quad:
		return 2
	case Tetra, Hexa:
		return 3
	}
	return -1
}

// RawGroup is the payload a topology provider returns for one group, before
// any cleanup. ConnectivityFlat may or may not carry a leading per-element
// prefix value; callers must run it through CleanConnectivity unconditionally.
type RawGroup struct {
	Coordinates      []float64 // x0,y0,z0,x1,... local to the group
	ConnectivityFlat []int
	ElementCount     int
	CellType         CellType
	Dimension        int
}

// Group is a read-only snapshot of one named, homogeneous subset of a source
// mesh. Connectivity indices are local to Coordinates. Groups are never
// mutated after extraction.
type Group struct {
	Name         string
	Dimension    int
	CellType     CellType
	Coordinates  []float64
	Connectivity [][]int

	// Normals holds one unit 3-vector per point for surface groups,
	// consistently oriented by the provider. Nil for non-surface groups or
	// when the provider could not compute them.
	Normals []float64
}

func (g *Group) NumPoints() int { return len(g.Coordinates) / 3 }

func (g *Group) NumElements() int { return len(g.Connectivity) }

// Point returns the coordinates of point i as (x, y, z).
func (g *Group) Point(i int) (x, y, z float64) {
	return g.Coordinates[3*i], g.Coordinates[3*i+1], g.Coordinates[3*i+2]
}

// TopologyProvider is the mesh-topology source consumed by the extractor.
// Implementations read mesh files and serve per-group geometry; they never
// write to disk.
type TopologyProvider interface {
	// ListGroups enumerates the named element groups of a mesh file. The
	// synthetic full-mesh group is not listed; the extractor adds it.
	ListGroups(file string) ([]string, error)

	// ReadGroup returns the raw payload for one group, or for the whole
	// mesh when called with FullMeshName. A group that exists but holds no
	// elements comes back with ElementCount == 0.
	ReadGroup(file, group string) (*RawGroup, error)

	// ComputeNormals returns one unit 3-vector per point of a surface
	// group. Only valid for Dimension == 2 groups.
	ComputeNormals(g *Group) ([]float64, error)
}
