package geom

import (
	"fmt"
	"iter"
	"math"

	planar "github.com/ctessum/geom"

	"github.com/mohammed-shakir/hexgrid/pkg/h3"
)

// Geometry is a shape that can be covered by cells at a resolution.
//
// MaxCellsCount never under-counts: the sequence produced by ToCells at
// the same resolution has at most that many elements. ToCells returns a
// fresh single-use sequence on every call; an out-of-range resolution
// yields an empty sequence.
type Geometry interface {
	MaxCellsCount(res h3.Resolution) int
	ToCells(res h3.Resolution) iter.Seq[h3.Cell]
}

// InvalidGeometryError reports a coordinate that failed validation at
// construction.
type InvalidGeometryError struct {
	Kind   string
	Reason error
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid %s geometry: %v", e.Kind, e.Reason)
}

func (e *InvalidGeometryError) Unwrap() error { return e.Reason }

// newCoord validates one radian coordinate pair for the named variant.
func newCoord(kind string, lat, lng float64) (h3.LatLng, error) {
	ll, err := h3.NewLatLng(lat, lng)
	if err != nil {
		return h3.LatLng{}, &InvalidGeometryError{Kind: kind, Reason: err}
	}
	return ll, nil
}

func degsToRads(v float64) float64 { return v * math.Pi / 180 }

// planarPoint maps a spherical coordinate onto the lng/lat plane used
// for containment tests.
func planarPoint(ll h3.LatLng) planar.Point {
	return planar.Point{X: ll.Lng(), Y: ll.Lat()}
}

// ringPath converts a ring of radian coordinates to a planar path,
// closing it if the input leaves it open.
func ringPath(ring []h3.LatLng) planar.Path {
	path := make(planar.Path, 0, len(ring)+1)
	for _, ll := range ring {
		path = append(path, planarPoint(ll))
	}
	if len(path) > 0 && path[0] != path[len(path)-1] {
		path = append(path, path[0])
	}
	return path
}

// emptySeq is the covering of a degenerate geometry or an out-of-range
// resolution.
func emptySeq(func(h3.Cell) bool) {}
