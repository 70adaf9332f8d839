package extrude

import (
	"errors"
	"fmt"
)

// ErrEmptyProfile reports a beam sweep requested with a cross-section that
// has no vertices. No partial solid is emitted for the group.
var ErrEmptyProfile = errors.New("empty cross-section profile")

// ErrMissingNormals reports a shell group without a per-point normal field.
var ErrMissingNormals = errors.New("shell group has no normal field")

// DegenerateSegmentError marks a zero-length beam segment. Recoverable: the
// segment is skipped and the rest of the group still sweeps.
type DegenerateSegmentError struct {
	Segment []int
}

func (e *DegenerateSegmentError) Error() string {
	return fmt.Sprintf("degenerate zero-length segment %v", e.Segment)
}
