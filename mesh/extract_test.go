package mesh

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider serves canned raw groups, keyed by group name.
type fakeProvider struct {
	names      []string
	groups     map[string]*RawGroup
	normals    []float64
	normalsErr error
}

func (f *fakeProvider) ListGroups(string) ([]string, error) { return f.names, nil }

func (f *fakeProvider) ReadGroup(_, group string) (*RawGroup, error) {
	return f.groups[group], nil
}

func (f *fakeProvider) ComputeNormals(*Group) ([]float64, error) {
	return f.normals, f.normalsErr
}

// touchFile creates an empty stand-in mesh file.
func touchFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.msh")
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0644))
	return path
}

func lineRaw() *RawGroup {
	return &RawGroup{
		Coordinates:      []float64{0, 0, 0, 1, 0, 0, 2, 0, 0},
		ConnectivityFlat: []int{2, 0, 1, 2, 1, 2},
		ElementCount:     2,
		CellType:         Line,
		Dimension:        1,
	}
}

func TestExtractGroupsMissingFile(t *testing.T) {
	ex := &Extractor{Provider: &fakeProvider{}}
	_, err := ex.ExtractGroups(filepath.Join(t.TempDir(), "nope.msh"))

	var nf *FileNotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestExtractGroupsNoData(t *testing.T) {
	file := touchFile(t)
	ex := &Extractor{Provider: &fakeProvider{
		names:  []string{"empty group"},
		groups: map[string]*RawGroup{"empty group": {}},
	}}
	_, err := ex.ExtractGroups(file)
	assert.ErrorIs(t, err, ErrNoMeshData)
}

func TestExtractGroupsFullMeshFirst(t *testing.T) {
	file := touchFile(t)
	ex := &Extractor{Provider: &fakeProvider{
		names: []string{"beam line"},
		groups: map[string]*RawGroup{
			FullMeshName: lineRaw(),
			"beam line":  lineRaw(),
		},
	}}

	results, err := ex.ExtractGroups(file)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, FullMeshName, results[0].Name)
	assert.Equal(t, "beam line", results[1].Name)

	g := results[1].Group
	require.NotNil(t, g)
	assert.Equal(t, 2, g.NumElements())
	assert.Equal(t, [][]int{{0, 1}, {1, 2}}, g.Connectivity)
	assert.Equal(t, 3, g.NumPoints())
}

func TestExtractGroupsEmptyGroupSkippedSilently(t *testing.T) {
	file := touchFile(t)
	ex := &Extractor{Provider: &fakeProvider{
		names: []string{"nodes only", "beam line"},
		groups: map[string]*RawGroup{
			"beam line": lineRaw(),
			// "nodes only" has no entry: the provider reports nil.
		},
	}}

	results, err := ex.ExtractGroups(file)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "beam line", results[0].Name)
}

func TestExtractGroupsBadGroupStaysVisible(t *testing.T) {
	file := touchFile(t)
	broken := lineRaw()
	broken.ConnectivityFlat = []int{2, 0, 1, 2, 1} // uneven stride
	ex := &Extractor{Provider: &fakeProvider{
		names: []string{"beam line", "broken"},
		groups: map[string]*RawGroup{
			"beam line": lineRaw(),
			"broken":    broken,
		},
	}}

	results, err := ex.ExtractGroups(file)
	require.NoError(t, err)
	require.Len(t, results, 2)

	byName := map[string]GroupResult{}
	for _, r := range results {
		byName[r.Name] = r
	}
	assert.Nil(t, byName["broken"].Group)
	var mc *MalformedConnectivityError
	assert.ErrorAs(t, byName["broken"].Err, &mc)
	assert.NotNil(t, byName["beam line"].Group)
}

func TestExtractGroupsIndexOutOfRange(t *testing.T) {
	file := touchFile(t)
	bad := lineRaw()
	bad.ConnectivityFlat = []int{2, 0, 7, 2, 1, 2} // 7 >= 3 points
	ex := &Extractor{Provider: &fakeProvider{
		names:  []string{"bad"},
		groups: map[string]*RawGroup{"bad": bad},
	}}

	_, err := ex.ExtractGroups(file)
	// The only group is bad, so the file reports no data overall.
	assert.ErrorIs(t, err, ErrNoMeshData)
}

func TestExtractGroupsSurfaceNormals(t *testing.T) {
	file := touchFile(t)
	quad := &RawGroup{
		Coordinates:      []float64{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0},
		ConnectivityFlat: []int{4, 0, 1, 2, 3},
		ElementCount:     1,
		CellType:         Quad,
		Dimension:        2,
	}
	normals := []float64{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1}

	t.Run("attached", func(t *testing.T) {
		ex := &Extractor{Provider: &fakeProvider{
			names:   []string{"plate"},
			groups:  map[string]*RawGroup{"plate": quad},
			normals: normals,
		}}
		results, err := ex.ExtractGroups(file)
		require.NoError(t, err)
		assert.Equal(t, normals, results[0].Group.Normals)
	})

	t.Run("failure is recoverable", func(t *testing.T) {
		ex := &Extractor{Provider: &fakeProvider{
			names:      []string{"plate"},
			groups:     map[string]*RawGroup{"plate": quad},
			normalsErr: errors.New("degenerate patch"),
		}}
		results, err := ex.ExtractGroups(file)
		require.NoError(t, err)
		require.NotNil(t, results[0].Group)
		assert.Nil(t, results[0].Group.Normals)
	})
}
