// Package scene merges per-group geometry, base and extruded, across one or
// more source mesh files into a single shared point/connectivity space and
// serializes it for the visualizer.
package scene

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("pkg", "scene")

// ErrEmptyScene is the only overall failure: not a single group across all
// requested files produced geometry.
var ErrEmptyScene = errors.New("empty scene: no group produced geometry")

// Component is one named geometry block of a merged scene. Connectivity is
// already shifted into the scene's shared point array. IsBase marks geometry
// that came straight from the source mesh; IsExtruded marks generated
// solids. For every extruded component a base sibling from the same source
// group is always present.
type Component struct {
	Type         string  `json:"type"`
	Connectivity [][]int `json:"connectivity"`
	IsExtruded   bool    `json:"is_extruded"`
	IsBase       bool    `json:"is_base"`
}

// Scene is the root aggregate: one shared flat point array plus the named
// components indexing into it.
type Scene struct {
	Points []float64
	Cells  map[string]*Component

	// Skipped lists groups that failed or produced nothing, in encounter
	// order. Visible output, not a silent side effect.
	Skipped []string
}

func (s *Scene) NumPoints() int { return len(s.Points) / 3 }

// Assembler accumulates components into a Scene. The running offset is the
// scene's current point count, read before each component's points are
// appended; the strictly sequential add order is what keeps every stored
// index valid.
type Assembler struct {
	scene Scene
}

func NewAssembler() *Assembler {
	return &Assembler{scene: Scene{Cells: make(map[string]*Component)}}
}

// Add commits one component. The component's local connectivity is validated
// and shifted by the pre-append point count; nothing is mutated when
// validation fails, so a bad component cannot corrupt the offsets of those
// already committed.
func (a *Assembler) Add(name, cellType string, points []float64, conn [][]int, base, extruded bool) error {
	if _, dup := a.scene.Cells[name]; dup {
		return fmt.Errorf("duplicate component %q", name)
	}
	local := len(points) / 3
	for _, cell := range conn {
		for _, id := range cell {
			if id < 0 || id >= local {
				return fmt.Errorf("component %q: index %d out of range (%d points)",
					name, id, local)
			}
		}
	}

	offset := a.scene.NumPoints()
	shifted := make([][]int, len(conn))
	for i, cell := range conn {
		sc := make([]int, len(cell))
		for j, id := range cell {
			sc[j] = id + offset
		}
		shifted[i] = sc
	}

	a.scene.Points = append(a.scene.Points, points...)
	a.scene.Cells[name] = &Component{
		Type:         cellType,
		Connectivity: shifted,
		IsExtruded:   extruded,
		IsBase:       base,
	}
	return nil
}

// Skip records a group that contributed nothing.
func (a *Assembler) Skip(name string) {
	a.scene.Skipped = append(a.scene.Skipped, name)
}

// Scene finalizes the accumulation. Fails with ErrEmptyScene when nothing
// was added.
func (a *Assembler) Scene() (*Scene, error) {
	if len(a.scene.Cells) == 0 {
		return nil, ErrEmptyScene
	}
	return &a.scene, nil
}
