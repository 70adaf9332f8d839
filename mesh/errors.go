package mesh

import (
	"errors"
	"fmt"
)

// ErrNoMeshData reports that a file produced zero usable groups: either the
// provider saw no meshes at all, or every group came back empty.
var ErrNoMeshData = errors.New("no mesh data")

// FileNotFoundError reports a mesh file path that does not resolve.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("mesh file not found: %s", e.Path)
}

// MalformedConnectivityError reports a flat connectivity array that cannot be
// reshaped into one tuple per element: the length does not divide evenly by
// the element count, or a tuple ends up empty after prefix stripping.
type MalformedConnectivityError struct {
	Length int
	Count  int
	Reason string
}

func (e *MalformedConnectivityError) Error() string {
	return fmt.Sprintf("malformed connectivity (%d values, %d elements): %s",
		e.Length, e.Count, e.Reason)
}
