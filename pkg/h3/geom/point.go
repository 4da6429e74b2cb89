package geom

import (
	"iter"

	"github.com/mohammed-shakir/hexgrid/pkg/h3"
)

// Point is a single coordinate.
type Point struct {
	ll h3.LatLng
}

// NewPoint builds a point from radian coordinates.
func NewPoint(lat, lng float64) (Point, error) {
	ll, err := newCoord("point", lat, lng)
	if err != nil {
		return Point{}, err
	}
	return Point{ll: ll}, nil
}

// NewPointDegrees builds a point from degree coordinates.
func NewPointDegrees(lat, lng float64) (Point, error) {
	return NewPoint(degsToRads(lat), degsToRads(lng))
}

// LatLng returns the point's coordinate.
func (p Point) LatLng() h3.LatLng { return p.ll }

func (p Point) MaxCellsCount(res h3.Resolution) int {
	if !res.IsValid() {
		return 0
	}
	return 1
}

func (p Point) ToCells(res h3.Resolution) iter.Seq[h3.Cell] {
	return func(yield func(h3.Cell) bool) {
		c, err := h3.LatLngToCell(p.ll, res)
		if err != nil {
			return
		}
		yield(c)
	}
}

// MultiPoint is a bag of points. Its covering is the concatenation of
// the members' coverings, duplicates included.
type MultiPoint []Point

func (m MultiPoint) MaxCellsCount(res h3.Resolution) int {
	if !res.IsValid() {
		return 0
	}
	return len(m)
}

func (m MultiPoint) ToCells(res h3.Resolution) iter.Seq[h3.Cell] {
	return func(yield func(h3.Cell) bool) {
		for _, p := range m {
			for c := range p.ToCells(res) {
				if !yield(c) {
					return
				}
			}
		}
	}
}
