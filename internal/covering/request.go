package covering

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mohammed-shakir/hexgrid/pkg/h3"
	hexgeom "github.com/mohammed-shakir/hexgrid/pkg/h3/geom"
)

// GeometryDoc is the wire form of a covering request geometry. Exactly
// one coordinate field is used, selected by Kind. Coordinates are
// (lat, lng) pairs, in degrees when Degrees is set and radians
// otherwise.
type GeometryDoc struct {
	Kind       string           `json:"kind"`
	Degrees    bool             `json:"degrees,omitempty"`
	Coord      [2]float64       `json:"coord,omitempty"`
	Coords     [][2]float64     `json:"coords,omitempty"`
	Rings      [][][2]float64   `json:"rings,omitempty"`
	Lines      [][][2]float64   `json:"lines,omitempty"`
	Polygons   [][][][2]float64 `json:"polygons,omitempty"`
	Rect       *[4]float64      `json:"rect,omitempty"` // south, west, north, east
	Triangle   *[3][2]float64   `json:"triangle,omitempty"`
	Geometries []GeometryDoc    `json:"geometries,omitempty"`
}

// Canonical returns the deterministic encoding of the document used for
// cache keying.
func (d GeometryDoc) Canonical() []byte {
	b, _ := json.Marshal(d)
	return b
}

// Build validates the document and constructs the geometry.
func (d GeometryDoc) Build() (hexgeom.Geometry, error) {
	rad := func(v float64) float64 { return v }
	if d.Degrees {
		rad = degsToRads
	}
	pair := func(c [2]float64) [2]float64 { return [2]float64{rad(c[0]), rad(c[1])} }
	pairs := func(cs [][2]float64) [][2]float64 {
		out := make([][2]float64, len(cs))
		for i, c := range cs {
			out[i] = pair(c)
		}
		return out
	}

	switch d.Kind {
	case "point":
		return hexgeom.NewPoint(rad(d.Coord[0]), rad(d.Coord[1]))
	case "multipoint":
		mp := make(hexgeom.MultiPoint, 0, len(d.Coords))
		for _, c := range d.Coords {
			p, err := hexgeom.NewPoint(rad(c[0]), rad(c[1]))
			if err != nil {
				return nil, err
			}
			mp = append(mp, p)
		}
		return mp, nil
	case "line":
		if len(d.Coords) != 2 {
			return nil, fmt.Errorf("line: want 2 coords, got %d", len(d.Coords))
		}
		a, b := pair(d.Coords[0]), pair(d.Coords[1])
		return hexgeom.NewLine(a[0], a[1], b[0], b[1])
	case "linestring":
		return hexgeom.NewLineString(pairs(d.Coords))
	case "multilinestring":
		ml := make(hexgeom.MultiLineString, 0, len(d.Lines))
		for _, l := range d.Lines {
			ls, err := hexgeom.NewLineString(pairs(l))
			if err != nil {
				return nil, err
			}
			ml = append(ml, ls)
		}
		return ml, nil
	case "polygon":
		if len(d.Rings) == 0 {
			return nil, fmt.Errorf("polygon: no rings")
		}
		holes := make([][][2]float64, 0, len(d.Rings)-1)
		for _, h := range d.Rings[1:] {
			holes = append(holes, pairs(h))
		}
		return hexgeom.NewPolygon(pairs(d.Rings[0]), holes...)
	case "multipolygon":
		mp := make(hexgeom.MultiPolygon, 0, len(d.Polygons))
		for _, rings := range d.Polygons {
			if len(rings) == 0 {
				return nil, fmt.Errorf("multipolygon: member with no rings")
			}
			holes := make([][][2]float64, 0, len(rings)-1)
			for _, h := range rings[1:] {
				holes = append(holes, pairs(h))
			}
			p, err := hexgeom.NewPolygon(pairs(rings[0]), holes...)
			if err != nil {
				return nil, err
			}
			mp = append(mp, p)
		}
		return mp, nil
	case "rect":
		if d.Rect == nil {
			return nil, fmt.Errorf("rect: missing bounds")
		}
		r := *d.Rect
		return hexgeom.NewRect(rad(r[0]), rad(r[1]), rad(r[2]), rad(r[3]))
	case "triangle":
		if d.Triangle == nil {
			return nil, fmt.Errorf("triangle: missing vertices")
		}
		tr := *d.Triangle
		return hexgeom.NewTriangle(pair(tr[0]), pair(tr[1]), pair(tr[2]))
	case "collection":
		coll := make(hexgeom.Collection, 0, len(d.Geometries))
		for _, m := range d.Geometries {
			// nested documents inherit nothing; each carries its own units
			g, err := m.Build()
			if err != nil {
				return nil, err
			}
			coll = append(coll, g)
		}
		return coll, nil
	default:
		return nil, fmt.Errorf("unknown geometry kind %q", d.Kind)
	}
}

func degsToRads(v float64) float64 { return v * math.Pi / 180 }

// Request pairs a parsed geometry with its covering resolution.
type Request struct {
	Kind       string
	Geometry   hexgeom.Geometry
	Canonical  []byte
	Resolution h3.Resolution
}

// ParseRequest builds a Request from a wire document and resolution.
func ParseRequest(doc GeometryDoc, res int) (Request, error) {
	r, err := h3.NewResolution(res)
	if err != nil {
		return Request{}, err
	}
	g, err := doc.Build()
	if err != nil {
		return Request{}, err
	}
	return Request{
		Kind:       doc.Kind,
		Geometry:   g,
		Canonical:  doc.Canonical(),
		Resolution: r,
	}, nil
}
