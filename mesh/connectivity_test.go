package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanConnectivityStripsPrefix(t *testing.T) {
	flat := []int{3, 1, 2, 3, 3, 4, 5, 6, 3, 7, 8, 9}

	tuples, err := CleanConnectivity(flat, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, tuples)
}

func TestCleanConnectivityPointElements(t *testing.T) {
	// Stride 1 carries no prefix; values pass through untouched.
	tuples, err := CleanConnectivity([]int{4, 9, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{4}, {9}, {2}}, tuples)
}

func TestCleanConnectivityLineElements(t *testing.T) {
	flat := []int{2, 0, 1, 2, 1, 2}
	tuples, err := CleanConnectivity(flat, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {1, 2}}, tuples)
}

func TestCleanConnectivityEmpty(t *testing.T) {
	tuples, err := CleanConnectivity(nil, 0)
	require.NoError(t, err)
	assert.Nil(t, tuples)
}

func TestCleanConnectivityMalformed(t *testing.T) {
	cases := []struct {
		name  string
		flat  []int
		count int
	}{
		{"uneven stride", []int{3, 1, 2, 3, 4}, 3},
		{"negative count", []int{1, 2}, -1},
		{"count without data", nil, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CleanConnectivity(tc.flat, tc.count)
			require.Error(t, err)
			var mc *MalformedConnectivityError
			assert.ErrorAs(t, err, &mc)
		})
	}
}

func TestCleanConnectivityDoesNotRetainInput(t *testing.T) {
	flat := []int{3, 1, 2, 3}
	tuples, err := CleanConnectivity(flat, 1)
	require.NoError(t, err)

	flat[1] = 99
	assert.Equal(t, [][]int{{1, 2, 3}}, tuples)
}
