package mesh

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("pkg", "mesh")

// GroupResult is the outcome of extracting one group. Exactly one of Group
// and Err is set; failed groups stay visible in the result list instead of
// being silently dropped.
type GroupResult struct {
	Name  string
	Group *Group
	Err   error
}

// Extractor turns a mesh file into a set of named Groups using a topology
// provider. It performs no disk writes of its own.
type Extractor struct {
	Provider TopologyProvider
}

// ExtractGroups reads every group of a mesh file, the synthetic full-mesh
// group first and the named groups in sorted order. Groups that exist but
// hold no elements are skipped without a result entry; groups that fail to
// extract produce a result carrying the error. The whole call fails with
// ErrNoMeshData when no group yields any elements.
func (ex *Extractor) ExtractGroups(file string) ([]GroupResult, error) {
	if _, err := os.Stat(file); err != nil {
		return nil, &FileNotFoundError{Path: file}
	}

	names, err := ex.Provider.ListGroups(file)
	if err != nil {
		return nil, fmt.Errorf("listing groups of %s: %w", file, err)
	}
	sort.Strings(names)
	ordered := append([]string{FullMeshName}, names...)

	var (
		results  []GroupResult
		produced int
	)
	for _, name := range ordered {
		g, err := ex.extractOne(file, name)
		if err != nil {
			log.WithFields(logrus.Fields{"file": file, "group": name}).
				WithError(err).Warn("group extraction failed")
			results = append(results, GroupResult{Name: name, Err: err})
			continue
		}
		if g == nil {
			// Empty group. Expected for node-only or partial data,
			// not an error.
			log.WithFields(logrus.Fields{"file": file, "group": name}).
				Debug("skipping empty group")
			continue
		}
		results = append(results, GroupResult{Name: name, Group: g})
		produced++
	}

	if produced == 0 {
		return nil, fmt.Errorf("%s: %w", file, ErrNoMeshData)
	}
	return results, nil
}

func (ex *Extractor) extractOne(file, name string) (*Group, error) {
	raw, err := ex.Provider.ReadGroup(file, name)
	if err != nil {
		return nil, err
	}
	if raw == nil || raw.ElementCount == 0 {
		return nil, nil
	}

	conn, err := CleanConnectivity(raw.ConnectivityFlat, raw.ElementCount)
	if err != nil {
		return nil, err
	}

	numPoints := len(raw.Coordinates) / 3
	for _, tuple := range conn {
		for _, id := range tuple {
			if id < 0 || id >= numPoints {
				return nil, &MalformedConnectivityError{
					Length: len(raw.ConnectivityFlat),
					Count:  raw.ElementCount,
					Reason: fmt.Sprintf("index %d out of range (%d points)", id, numPoints),
				}
			}
		}
	}

	g := &Group{
		Name:         name,
		Dimension:    raw.Dimension,
		CellType:     raw.CellType,
		Coordinates:  raw.Coordinates,
		Connectivity: conn,
	}

	if g.Dimension == 2 {
		normals, err := ex.Provider.ComputeNormals(g)
		if err != nil {
			// Recoverable: the group stays usable as a flat surface.
			log.WithFields(logrus.Fields{"file": file, "group": name}).
				WithError(err).Warn("normal computation failed")
		} else {
			g.Normals = normals
		}
	}
	return g, nil
}
