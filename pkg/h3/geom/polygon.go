package geom

import (
	"iter"
	"math"

	planar "github.com/ctessum/geom"

	"github.com/mohammed-shakir/hexgrid/pkg/h3"
)

// Polygon is an outer ring with optional holes. Rings need not repeat
// their first vertex; they are closed automatically. A ring with fewer
// than three vertices is degenerate and covers nothing.
type Polygon struct {
	outer []h3.LatLng
	holes [][]h3.LatLng
	shape planar.Polygon
}

// NewPolygon builds a polygon from radian (lat, lng) rings.
func NewPolygon(outer [][2]float64, holes ...[][2]float64) (Polygon, error) {
	ring, err := newRing(outer)
	if err != nil {
		return Polygon{}, err
	}
	p := Polygon{outer: ring}
	for _, h := range holes {
		hole, err := newRing(h)
		if err != nil {
			return Polygon{}, err
		}
		p.holes = append(p.holes, hole)
	}
	p.shape = planar.Polygon{ringPath(p.outer)}
	for _, h := range p.holes {
		p.shape = append(p.shape, ringPath(h))
	}
	return p, nil
}

// NewPolygonDegrees builds a polygon from degree (lat, lng) rings.
func NewPolygonDegrees(outer [][2]float64, holes ...[][2]float64) (Polygon, error) {
	conv := func(ring [][2]float64) [][2]float64 {
		out := make([][2]float64, len(ring))
		for i, c := range ring {
			out[i] = [2]float64{degsToRads(c[0]), degsToRads(c[1])}
		}
		return out
	}
	radHoles := make([][][2]float64, len(holes))
	for i, h := range holes {
		radHoles[i] = conv(h)
	}
	return NewPolygon(conv(outer), radHoles...)
}

func newRing(coords [][2]float64) ([]h3.LatLng, error) {
	ring := make([]h3.LatLng, 0, len(coords))
	for _, c := range coords {
		ll, err := newCoord("polygon", c[0], c[1])
		if err != nil {
			return nil, err
		}
		ring = append(ring, ll)
	}
	return ring, nil
}

// perimeterRads is the great circle length of the closed outer ring.
func (p Polygon) perimeterRads() float64 {
	n := len(p.outer)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += p.outer[i].DistanceRads(p.outer[(i+1)%n])
	}
	return total
}

func (p Polygon) MaxCellsCount(res h3.Resolution) int {
	if !res.IsValid() || len(p.outer) < 3 {
		return 0
	}
	b := p.shape.Bounds()
	dLng := b.Max.X - b.Min.X
	dLat := b.Max.Y - b.Min.Y
	// width of the box at its widest parallel
	cosLat := 1.0
	if b.Min.Y > 0 {
		cosLat = math.Cos(b.Min.Y)
	} else if b.Max.Y < 0 {
		cosLat = math.Cos(b.Max.Y)
	}
	areaRads2 := dLat * dLng * cosLat
	// cell areas vary around the mean, so pad the interior estimate and
	// add a band of boundary cells
	interior := 3 * areaRads2 / res.AreaRads2()
	boundary := 3 * p.perimeterRads() / res.EdgeLengthRads()
	return int(math.Ceil(interior)) + int(math.Ceil(boundary)) + 12
}

func (p Polygon) ToCells(res h3.Resolution) iter.Seq[h3.Cell] {
	if !res.IsValid() || len(p.outer) < 3 {
		return emptySeq
	}
	return rasterize(p.shape, p.outer, res)
}

// MultiPolygon is a bag of polygons. Its covering is the concatenation
// of the members' coverings, duplicates included.
type MultiPolygon []Polygon

func (m MultiPolygon) MaxCellsCount(res h3.Resolution) int {
	n := 0
	for _, p := range m {
		n += p.MaxCellsCount(res)
	}
	return n
}

func (m MultiPolygon) ToCells(res h3.Resolution) iter.Seq[h3.Cell] {
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
