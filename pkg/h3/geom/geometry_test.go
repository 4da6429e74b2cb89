package geom

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/mohammed-shakir/hexgrid/pkg/h3"
)

func collect(t *testing.T, g Geometry, res h3.Resolution) []h3.Cell {
	t.Helper()
	var out []h3.Cell
	for c := range g.ToCells(res) {
		if !c.IsValid() {
			t.Fatalf("covering produced invalid cell %s", c)
		}
		if c.Resolution() != res {
			t.Fatalf("covering produced %s at resolution %d, want %d", c, c.Resolution(), res)
		}
		out = append(out, c)
	}
	if bound := g.MaxCellsCount(res); len(out) > bound {
		t.Fatalf("covering has %d cells, bound promised %d", len(out), bound)
	}
	return out
}

func TestPointToCells(t *testing.T) {
	p, err := NewPointDegrees(59.3293, 18.0686)
	if err != nil {
		t.Fatalf("NewPointDegrees: %v", err)
	}
	cells := collect(t, p, h3.Resolution5)
	if len(cells) != 1 {
		t.Fatalf("point covering = %d cells", len(cells))
	}
	want, err := h3.LatLngToCell(p.LatLng(), h3.Resolution5)
	if err != nil {
		t.Fatalf("LatLngToCell: %v", err)
	}
	if cells[0] != want {
		t.Fatalf("point covering = %s, want %s", cells[0], want)
	}
}

func TestInvalidCoordinates(t *testing.T) {
	cases := []struct {
		name string
		make func() error
	}{
		{"nan latitude", func() error { _, err := NewPoint(math.NaN(), 0); return err }},
		{"latitude out of range", func() error { _, err := NewPoint(4, 0); return err }},
		{"longitude out of range", func() error { _, err := NewLine(0, 0, 0, 7); return err }},
		{"inf in ring", func() error {
			_, err := NewPolygon([][2]float64{{0, 0}, {0, math.Inf(1)}, {1, 1}})
			return err
		}},
		{"bad linestring vertex", func() error {
			_, err := NewLineString([][2]float64{{0, 0}, {math.NaN(), 1}})
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.make()
			if err == nil {
				t.Fatal("constructor accepted an invalid coordinate")
			}
			var invalid *InvalidGeometryError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %v, want InvalidGeometryError", err)
			}
		})
	}
}

func TestLineToCells(t *testing.T) {
	// Stockholm to Gothenburg
	l, err := NewLineDegrees(59.3293, 18.0686, 57.7089, 11.9746)
	if err != nil {
		t.Fatalf("NewLineDegrees: %v", err)
	}
	res := h3.Resolution4
	cells := collect(t, l, res)
	if len(cells) < 2 {
		t.Fatalf("line covering = %d cells", len(cells))
	}

	seen := make(map[h3.Cell]struct{}, len(cells))
	for _, c := range cells {
		if _, dup := seen[c]; dup {
			t.Fatalf("duplicate cell %s in a single line covering", c)
		}
		seen[c] = struct{}{}
	}

	a, _ := h3.NewLatLngDegrees(59.3293, 18.0686)
	b, _ := h3.NewLatLngDegrees(57.7089, 11.9746)
	for _, end := range []h3.LatLng{a, b} {
		c, _ := h3.LatLngToCell(end, res)
		if _, ok := seen[c]; !ok {
			t.Errorf("endpoint cell %s missing from line covering", c)
		}
	}

	again := collect(t, l, res)
	if !slices.Equal(cells, again) {
		t.Error("line covering is not deterministic")
	}
}

func TestDegenerateLine(t *testing.T) {
	l, err := NewLine(0.7, 0.3, 0.7, 0.3)
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	cells := collect(t, l, h3.Resolution7)
	if len(cells) != 1 {
		t.Fatalf("zero length line covering = %d cells", len(cells))
	}
}

func TestLineStringToCells(t *testing.T) {
	ls, err := NewLineStringDegrees([][2]float64{
		{59.3293, 18.0686},
		{58.4108, 15.6214},
		{57.7089, 11.9746},
	})
	if err != nil {
		t.Fatalf("NewLineStringDegrees: %v", err)
	}
	cells := collect(t, ls, h3.Resolution4)
	if len(cells) < 3 {
		t.Fatalf("linestring covering = %d cells", len(cells))
	}
	seen := make(map[h3.Cell]struct{}, len(cells))
	for _, c := range cells {
		if _, dup := seen[c]; dup {
			t.Fatalf("duplicate cell %s in a single linestring covering", c)
		}
		seen[c] = struct{}{}
	}
	// the interior vertex must be covered too
	mid, _ := h3.NewLatLngDegrees(58.4108, 15.6214)
	c, _ := h3.LatLngToCell(mid, h3.Resolution4)
	if _, ok := seen[c]; !ok {
		t.Error("interior vertex cell missing from linestring covering")
	}
}

// Coverings of multi-part geometries concatenate without deduplication.
func TestMultiGeometryKeepsDuplicates(t *testing.T) {
	p, err := NewPointDegrees(59.3293, 18.0686)
	if err != nil {
		t.Fatalf("NewPointDegrees: %v", err)
	}
	res := h3.Resolution6

	mp := MultiPoint{p, p}
	cells := collect(t, mp, res)
	if len(cells) != 2 || cells[0] != cells[1] {
		t.Fatalf("MultiPoint of twin points = %v", cells)
	}

	coll := Collection{p, p, mp}
	if got := collect(t, coll, res); len(got) != 4 {
		t.Fatalf("Collection covering = %d cells, want 4", len(got))
	}
}

func TestMultiLineString(t *testing.T) {
	seg, err := NewLineStringDegrees([][2]float64{{10, 10}, {10.5, 10.5}})
	if err != nil {
		t.Fatalf("NewLineStringDegrees: %v", err)
	}
	ml := MultiLineString{seg, seg}
	cells := collect(t, ml, h3.Resolution4)
	single := collect(t, seg, h3.Resolution4)
	if len(cells) != 2*len(single) {
		t.Fatalf("MultiLineString covering = %d cells, members give %d", len(cells), len(single))
	}
}

func TestOutOfRangeResolution(t *testing.T) {
	p, _ := NewPointDegrees(10, 10)
	for c := range p.ToCells(h3.Resolution(16)) {
		t.Fatalf("out of range resolution produced %s", c)
	}
	if n := p.MaxCellsCount(h3.Resolution(16)); n != 0 {
		t.Fatalf("MaxCellsCount at invalid resolution = %d", n)
	}
}
