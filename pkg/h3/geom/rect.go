package geom

import (
	"iter"

	"github.com/mohammed-shakir/hexgrid/pkg/h3"
)

// Rect is an axis-aligned box bounded by two parallels and two
// meridians. It rasterizes as the equivalent four-corner polygon.
type Rect struct {
	poly Polygon
}

// NewRect builds a box from radian bounds, south <= north and
// west <= east.
func NewRect(south, west, north, east float64) (Rect, error) {
	poly, err := NewPolygon([][2]float64{
		{south, west},
		{south, east},
		{north, east},
		{north, west},
	})
	if err != nil {
		return Rect{}, err
	}
	return Rect{poly: poly}, nil
}

// NewRectDegrees builds a box from degree bounds.
func NewRectDegrees(south, west, north, east float64) (Rect, error) {
	return NewRect(degsToRads(south), degsToRads(west), degsToRads(north), degsToRads(east))
}

func (r Rect) MaxCellsCount(res h3.Resolution) int { return r.poly.MaxCellsCount(res) }

func (r Rect) ToCells(res h3.Resolution) iter.Seq[h3.Cell] { return r.poly.ToCells(res) }

// Triangle is a three-vertex polygon.
type Triangle struct {
	poly Polygon
}

// NewTriangle builds a triangle from radian (lat, lng) vertices.
func NewTriangle(a, b, c [2]float64) (Triangle, error) {
	poly, err := NewPolygon([][2]float64{a, b, c})
	if err != nil {
		return Triangle{}, err
	}
	return Triangle{poly: poly}, nil
}

// NewTriangleDegrees builds a triangle from degree (lat, lng) vertices.
func NewTriangleDegrees(a, b, c [2]float64) (Triangle, error) {
	conv := func(v [2]float64) [2]float64 {
		return [2]float64{degsToRads(v[0]), degsToRads(v[1])}
	}
	return NewTriangle(conv(a), conv(b), conv(c))
}

func (t Triangle) MaxCellsCount(res h3.Resolution) int { return t.poly.MaxCellsCount(res) }

func (t Triangle) ToCells(res h3.Resolution) iter.Seq[h3.Cell] { return t.poly.ToCells(res) }
