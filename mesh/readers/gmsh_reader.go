// Package readers holds the concrete mesh-topology provider: file readers
// that turn mesh files on disk into the raw group payloads the extractor
// consumes.
package readers

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/prosolvesimulation-blip/prosolvesimulation/mesh"
)

// gmshElement is one element as stored in the file: node references are
// file-scoped node ids, not compacted indices.
type gmshElement struct {
	cellType mesh.CellType
	dim      int
	physical int
	nodes    []int
}

type physicalKey struct {
	dim, tag int
}

// gmshFile is the parsed content of one Gmsh v2.2 ASCII file.
type gmshFile struct {
	physicalNames map[physicalKey]string
	nodes         map[int][3]float64
	elements      []gmshElement
	maxDim        int
}

// gmshTypeMap maps Gmsh element type codes to cell types. Higher-order and
// exotic elements are not mapped and their elements are dropped on read.
var gmshTypeMap = map[int]mesh.CellType{
	15: mesh.Vertex,
	1:  mesh.Line,
	2:  mesh.Triangle,
	3:  mesh.Quad,
	4:  mesh.Tetra,
	5:  mesh.Hexa,
}

// readGmsh parses a Gmsh MSH v2.2 ASCII file. Data sections other than
// format, physical names, nodes and elements are skipped.
func readGmsh(filename string) (*gmshFile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	gf := &gmshFile{
		physicalNames: make(map[physicalKey]string),
		nodes:         make(map[int][3]float64),
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line {
		case "$MeshFormat":
			if err := readMeshFormat(scanner); err != nil {
				return nil, err
			}
		case "$PhysicalNames":
			if err := readPhysicalNames(scanner, gf); err != nil {
				return nil, err
			}
		case "$Nodes":
			if err := readNodes(scanner, gf); err != nil {
				return nil, err
			}
		case "$Elements":
			if err := readElements(scanner, gf); err != nil {
				return nil, err
			}
		default:
			if strings.HasPrefix(line, "$") && !strings.HasPrefix(line, "$End") {
				skipSection(scanner, "$End"+line[1:])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return gf, nil
}

func readMeshFormat(scanner *bufio.Scanner) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in MeshFormat")
	}
	parts := strings.Fields(scanner.Text())
	if len(parts) < 3 {
		return fmt.Errorf("invalid MeshFormat line")
	}
	if !strings.HasPrefix(parts[0], "2.") {
		return fmt.Errorf("unsupported msh version %s (need 2.x)", parts[0])
	}
	if fileType, _ := strconv.Atoi(parts[1]); fileType == 1 {
		return fmt.Errorf("binary msh files are not supported")
	}
	skipSection(scanner, "$EndMeshFormat")
	return nil
}

func readPhysicalNames(scanner *bufio.Scanner, gf *gmshFile) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in PhysicalNames")
	}
	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return fmt.Errorf("invalid PhysicalNames count: %w", err)
	}
	for i := 0; i < count; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading physical names")
		}
		fields := strings.SplitN(strings.TrimSpace(scanner.Text()), " ", 3)
		if len(fields) < 3 {
			return fmt.Errorf("invalid physical name line %q", scanner.Text())
		}
		dim, err1 := strconv.Atoi(fields[0])
		tag, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return fmt.Errorf("invalid physical name line %q", scanner.Text())
		}
		gf.physicalNames[physicalKey{dim, tag}] = strings.Trim(fields[2], `"`)
	}
	skipSection(scanner, "$EndPhysicalNames")
	return nil
}

func readNodes(scanner *bufio.Scanner, gf *gmshFile) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Nodes")
	}
	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return fmt.Errorf("invalid Nodes count: %w", err)
	}
	for i := 0; i < count; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading nodes")
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			return fmt.Errorf("invalid node line %q", scanner.Text())
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("invalid node id: %w", err)
		}
		var xyz [3]float64
		for j := 0; j < 3; j++ {
			if xyz[j], err = strconv.ParseFloat(fields[j+1], 64); err != nil {
				return fmt.Errorf("invalid coordinate: %w", err)
			}
		}
		gf.nodes[id] = xyz
	}
	skipSection(scanner, "$EndNodes")
	return nil
}

func readElements(scanner *bufio.Scanner, gf *gmshFile) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Elements")
	}
	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return fmt.Errorf("invalid Elements count: %w", err)
	}
	for i := 0; i < count; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading elements")
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			return fmt.Errorf("invalid element line %q", scanner.Text())
		}
		etype, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("invalid element type: %w", err)
		}
		numTags, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf("invalid element tag count: %w", err)
		}

		cellType, ok := gmshTypeMap[etype]
		if !ok {
			continue // unsupported element kind
		}
		nn := cellType.NumNodes()
		if len(fields) < 3+numTags+nn {
			return fmt.Errorf("element line too short: %q", scanner.Text())
		}

		var physical int
		if numTags > 0 {
			physical, _ = strconv.Atoi(fields[3])
		}
		nodes := make([]int, nn)
		for j := 0; j < nn; j++ {
			if nodes[j], err = strconv.Atoi(fields[3+numTags+j]); err != nil {
				return fmt.Errorf("invalid element node id: %w", err)
			}
		}

		dim := cellType.Dimension()
		if dim > gf.maxDim {
			gf.maxDim = dim
		}
		gf.elements = append(gf.elements, gmshElement{
			cellType: cellType,
			dim:      dim,
			physical: physical,
			nodes:    nodes,
		})
	}
	skipSection(scanner, "$EndElements")
	return nil
}

func skipSection(scanner *bufio.Scanner, endMarker string) {
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == endMarker {
			return
		}
	}
}
