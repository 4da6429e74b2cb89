package h3

import (
	"errors"
	"fmt"
)

// ErrResolutionMismatch is returned by operations that require both
// operands to share a resolution, such as Cell.IsNeighbor.
var ErrResolutionMismatch = errors.New("h3: resolution mismatch")

// InvalidCellError reports a 64-bit value or string that does not encode a
// valid cell index.
type InvalidCellError struct {
	Value  uint64
	Reason string
}

func (e *InvalidCellError) Error() string {
	return fmt.Sprintf("h3: invalid cell index %#x: %s", e.Value, e.Reason)
}

// InvalidResolutionError reports an out-of-range resolution.
type InvalidResolutionError struct {
	Value int
}

func (e *InvalidResolutionError) Error() string {
	return fmt.Sprintf("h3: invalid resolution %d (must be 0..15)", e.Value)
}

// LocalIJError reports that two cells cannot be resolved into a common
// local coordinate frame: the anchor has the wrong resolution, the pair
// straddles a pentagon distortion, or the cells are too far apart.
type LocalIJError struct {
	Anchor Cell
	Target Cell
	Reason string
}

func (e *LocalIJError) Error() string {
	return fmt.Sprintf("h3: no local IJ frame for %s relative to %s: %s",
		e.Target, e.Anchor, e.Reason)
}

// InvalidLatLngError reports a coordinate that is non-finite or outside
// the accepted longitude/latitude range.
type InvalidLatLngError struct {
	Lat float64
	Lng float64
}

func (e *InvalidLatLngError) Error() string {
	return fmt.Sprintf("h3: invalid coordinate (lat=%v, lng=%v)", e.Lat, e.Lng)
}
