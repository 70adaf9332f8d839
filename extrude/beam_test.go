package extrude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosolvesimulation-blip/prosolvesimulation/mesh"
	"github.com/prosolvesimulation-blip/prosolvesimulation/section"
)

// polyline returns a 1D group over collinear points spaced along x.
func polyline(conn [][]int) *mesh.Group {
	return &mesh.Group{
		Name:      "beams",
		Dimension: 1,
		CellType:  mesh.Line,
		Coordinates: []float64{
			0, 0, 0,
			1, 0, 0,
			2, 0, 0,
		},
		Connectivity: conn,
	}
}

func TestNormalizeDirectionsFlipsOpposedSegment(t *testing.T) {
	// Second segment runs against the first; it gets flipped.
	g := polyline([][]int{{0, 1}, {2, 1}})
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, NormalizeDirections(g))
}

func TestNormalizeDirectionsMajorityWins(t *testing.T) {
	g := &mesh.Group{
		Coordinates: []float64{
			0, 0, 0,
			1, 0, 0,
			2, 0, 0,
			3, 0, 0,
		},
		Connectivity: [][]int{{0, 1}, {2, 1}, {2, 3}},
	}
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, NormalizeDirections(g))
}

func TestNormalizeDirectionsAllDegenerate(t *testing.T) {
	g := &mesh.Group{
		Coordinates:  []float64{1, 1, 1, 1, 1, 1},
		Connectivity: [][]int{{0, 1}},
	}
	// Order passes through untouched when no direction can be derived.
	assert.Equal(t, [][2]int{{0, 1}}, NormalizeDirections(g))
}

func TestSweepBeamTwoSegments(t *testing.T) {
	g := polyline([][]int{{0, 1}, {1, 2}})
	solid, err := SweepBeam(g, BeamSpec{Profile: section.Rectangle(0.2, 0.1)})
	require.NoError(t, err)
	require.NotNil(t, solid)

	// Each segment contributes its own unwelded start and end rings.
	assert.Equal(t, 16, solid.NumPoints())
	// Per segment: 2 base + 2 top triangles, 4 boundary side quads.
	assert.Len(t, solid.Cells, 16)
}

func TestSweepBeamOffsets(t *testing.T) {
	g := polyline([][]int{{0, 1}})
	solid, err := SweepBeam(g, BeamSpec{
		Profile: section.Rectangle(0.2, 0.1),
		OffsetY: 1,
		OffsetZ: -2,
	})
	require.NoError(t, err)

	// Segment frame for +x travel is y=(0,1,0), z=(0,0,1); the first profile
	// vertex (-0.05, -0.1) lands offset-shifted in that plane.
	assert.InDelta(t, 0.0, solid.Points[0], 1e-12)
	assert.InDelta(t, 1-0.05, solid.Points[1], 1e-12)
	assert.InDelta(t, -2-0.1, solid.Points[2], 1e-12)
}

func TestSweepBeamSkipsDegenerateSegment(t *testing.T) {
	g := &mesh.Group{
		Name: "beams",
		Coordinates: []float64{
			0, 0, 0,
			1, 0, 0,
		},
		Connectivity: [][]int{{0, 0}, {0, 1}},
	}
	solid, err := SweepBeam(g, BeamSpec{Profile: section.Rectangle(0.2, 0.1)})
	require.NoError(t, err)
	require.NotNil(t, solid)
	assert.Equal(t, 8, solid.NumPoints())
}

func TestSweepBeamNothingSweepable(t *testing.T) {
	g := &mesh.Group{
		Name:         "beams",
		Coordinates:  []float64{1, 1, 1},
		Connectivity: [][]int{{0, 0}},
	}
	solid, err := SweepBeam(g, BeamSpec{Profile: section.Rectangle(0.2, 0.1)})
	require.NoError(t, err)
	assert.Nil(t, solid)
}

func TestSweepBeamEmptyProfile(t *testing.T) {
	g := polyline([][]int{{0, 1}})

	_, err := SweepBeam(g, BeamSpec{})
	assert.ErrorIs(t, err, ErrEmptyProfile)

	_, err = SweepBeam(g, BeamSpec{Profile: &section.Profile{}})
	assert.ErrorIs(t, err, ErrEmptyProfile)
}

func TestSweepTubeFallback(t *testing.T) {
	g := polyline([][]int{{0, 1}, {1, 2}})
	solid, err := SweepTube(g, 0.5, 8)
	require.NoError(t, err)
	require.NotNil(t, solid)
	assert.Equal(t, 32, solid.NumPoints())
}

func TestSweepTubeNothingSweepable(t *testing.T) {
	g := &mesh.Group{
		Name:         "beams",
		Coordinates:  []float64{1, 1, 1},
		Connectivity: [][]int{{0, 0}},
	}
	solid, err := SweepTube(g, 0.5, 8)
	require.NoError(t, err)
	assert.Nil(t, solid)
}
