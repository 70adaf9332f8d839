package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangleProperties(t *testing.T) {
	d, b := 0.2, 0.1
	p := Rectangle(d, b)
	require.NoError(t, p.Validate())

	props := p.Properties()
	assert.InDelta(t, d*b, props.Area, 1e-12)
	assert.InDelta(t, 0, props.CentroidY, 1e-12)
	assert.InDelta(t, 0, props.CentroidZ, 1e-12)
	assert.InDelta(t, b*d*d*d/12, props.Iyy, 1e-12)
	assert.InDelta(t, d*b*b*b/12, props.Izz, 1e-12)
}

func TestBoxArea(t *testing.T) {
	d, b, wt := 0.2, 0.1, 0.01
	p := Box(d, b, wt)
	require.NoError(t, p.Validate())

	want := d*b - (d-2*wt)*(b-2*wt)
	assert.InDelta(t, want, p.Properties().Area, 1e-12)
}

func TestCircleConvergesToExactArea(t *testing.T) {
	d := 1.0
	p := Circle(d, 256)
	props := p.Properties()

	assert.InDelta(t, math.Pi*d*d/4, props.Area, 1e-3)
	assert.InDelta(t, math.Pi*d*d*d*d/64, props.Iyy, 1e-3)
	assert.InDelta(t, props.Iyy, props.Izz, 1e-9)
}

func TestCircleSideFloor(t *testing.T) {
	// Side counts below 3 fall back to the default discretization.
	p := Circle(1, 0)
	assert.Len(t, p.Triangles, 16)
}

func TestPipeArea(t *testing.T) {
	d, wt := 1.0, 0.1
	p := Pipe(d, wt, 256)
	ro, ri := d/2, d/2-wt
	assert.InDelta(t, math.Pi*(ro*ro-ri*ri), p.Properties().Area, 1e-3)
}

func TestMonoI(t *testing.T) {
	d, bt, bb, tft, tfb, tw := 0.3, 0.15, 0.1, 0.01, 0.02, 0.008
	p := MonoI(d, bt, bb, tft, tfb, tw)
	require.NoError(t, p.Validate())

	want := bt*tft + bb*tfb + tw*(d-tft-tfb)
	props := p.Properties()
	assert.InDelta(t, want, props.Area, 1e-12)
	// Asymmetric flanges pull the centroid off mid-depth.
	assert.Greater(t, math.Abs(props.CentroidZ), 1e-6)
}

func TestAlignCenter(t *testing.T) {
	p := MonoI(0.3, 0.15, 0.1, 0.01, 0.02, 0.008).AlignCenter()
	props := p.Properties()
	assert.InDelta(t, 0, props.CentroidY, 1e-12)
	assert.InDelta(t, 0, props.CentroidZ, 1e-12)
}

func TestRotateSwapsPrincipalMoments(t *testing.T) {
	ref := Rectangle(0.2, 0.1).Properties()
	props := Rectangle(0.2, 0.1).Rotate(90).Properties()

	assert.InDelta(t, ref.Area, props.Area, 1e-12)
	assert.InDelta(t, ref.Iyy, props.Izz, 1e-12)
	assert.InDelta(t, ref.Izz, props.Iyy, 1e-12)
}

func TestShift(t *testing.T) {
	props := Rectangle(0.2, 0.1).Shift(1, -2).Properties()
	assert.InDelta(t, 1, props.CentroidY, 1e-12)
	assert.InDelta(t, -2, props.CentroidZ, 1e-12)
}

func TestValidateRejectsBadIndex(t *testing.T) {
	p := Rectangle(0.2, 0.1)
	p.Triangles = append(p.Triangles, [3]int{0, 1, 99})
	assert.Error(t, p.Validate())
}

func TestToGraphMesh(t *testing.T) {
	p := Rectangle(0.2, 0.1)
	gm := p.ToGraphMesh()

	require.Len(t, gm.Geometry, p.NumVertices())
	require.Len(t, gm.Triangles, len(p.Triangles))
	assert.Equal(t, float32(-0.05), gm.Geometry[0].X[0])
	assert.Equal(t, float32(-0.1), gm.Geometry[0].X[1])
	assert.Equal(t, int32(0), gm.Triangles[0].Nodes[0])
}
