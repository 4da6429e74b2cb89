package geom

import (
	"iter"
	"math"

	"github.com/mohammed-shakir/hexgrid/pkg/h3"
)

// Line is a single great circle segment.
type Line struct {
	a, b h3.LatLng
}

// NewLine builds a segment from radian coordinates.
func NewLine(aLat, aLng, bLat, bLng float64) (Line, error) {
	a, err := newCoord("line", aLat, aLng)
	if err != nil {
		return Line{}, err
	}
	b, err := newCoord("line", bLat, bLng)
	if err != nil {
		return Line{}, err
	}
	return Line{a: a, b: b}, nil
}

// NewLineDegrees builds a segment from degree coordinates.
func NewLineDegrees(aLat, aLng, bLat, bLng float64) (Line, error) {
	return NewLine(degsToRads(aLat), degsToRads(aLng), degsToRads(bLat), degsToRads(bLng))
}

// segmentSteps returns the number of sampling intervals along a segment.
// Samples are spaced at half an edge length so no crossed cell is
// skipped over.
func segmentSteps(a, b h3.LatLng, res h3.Resolution) int {
	d := a.DistanceRads(b)
	if d < 1e-15 {
		return 0
	}
	return int(math.Ceil(d / (res.EdgeLengthRads() / 2)))
}

// walkSegment indexes sample points from a to b, skipping cells already
// in seen. Returns false when the consumer stops.
func walkSegment(a, b h3.LatLng, res h3.Resolution, seen map[h3.Cell]struct{}, yield func(h3.Cell) bool) bool {
	steps := segmentSteps(a, b, res)
	az := a.AzimuthTo(b)
	d := a.DistanceRads(b)
	for i := 0; i <= steps; i++ {
		pt := a
		if i > 0 {
			pt = a.AtAzDistance(az, d*float64(i)/float64(steps))
		}
		c, err := h3.LatLngToCell(pt, res)
		if err != nil {
			return false
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if !yield(c) {
			return false
		}
	}
	return true
}

func (l Line) MaxCellsCount(res h3.Resolution) int {
	if !res.IsValid() {
		return 0
	}
	return segmentSteps(l.a, l.b, res) + 1
}

func (l Line) ToCells(res h3.Resolution) iter.Seq[h3.Cell] {
	if !res.IsValid() {
		return emptySeq
	}
	return func(yield func(h3.Cell) bool) {
		walkSegment(l.a, l.b, res, make(map[h3.Cell]struct{}), yield)
	}
}

// LineString is a connected chain of segments.
type LineString struct {
	coords []h3.LatLng
}

// NewLineString builds a chain from radian (lat, lng) pairs.
func NewLineString(coords [][2]float64) (LineString, error) {
	out := make([]h3.LatLng, 0, len(coords))
	for _, c := range coords {
		ll, err := newCoord("linestring", c[0], c[1])
		if err != nil {
			return LineString{}, err
		}
		out = append(out, ll)
	}
	return LineString{coords: out}, nil
}

// NewLineStringDegrees builds a chain from degree (lat, lng) pairs.
func NewLineStringDegrees(coords [][2]float64) (LineString, error) {
	rads := make([][2]float64, len(coords))
	for i, c := range coords {
		rads[i] = [2]float64{degsToRads(c[0]), degsToRads(c[1])}
	}
	return NewLineString(rads)
}

func (l LineString) MaxCellsCount(res h3.Resolution) int {
	if !res.IsValid() {
		return 0
	}
	if len(l.coords) == 1 {
		return 1
	}
	n := 0
	for i := 1; i < len(l.coords); i++ {
		n += segmentSteps(l.coords[i-1], l.coords[i], res) + 1
	}
	return n
}

func (l LineString) ToCells(res h3.Resolution) iter.Seq[h3.Cell] {
	if !res.IsValid() || len(l.coords) == 0 {
		return emptySeq
	}
	return func(yield func(h3.Cell) bool) {
		seen := make(map[h3.Cell]struct{})
		if len(l.coords) == 1 {
			walkSegment(l.coords[0], l.coords[0], res, seen, yield)
			return
		}
		for i := 1; i < len(l.coords); i++ {
			if !walkSegment(l.coords[i-1], l.coords[i], res, seen, yield) {
				return
			}
		}
	}
}

// MultiLineString is a bag of chains. Its covering is the concatenation
// of the members' coverings, duplicates included.
type MultiLineString []LineString

func (m MultiLineString) MaxCellsCount(res h3.Resolution) int {
	n := 0
	for _, l := range m {
		n += l.MaxCellsCount(res)
	}
	return n
}

func (m MultiLineString) ToCells(res h3.Resolution) iter.Seq[h3.Cell] {
	return func(yield func(h3.Cell) bool) {
		for _, l := range m {
			for c := range l.ToCells(res) {
				if !yield(c) {
					return
				}
			}
		}
	}
}
