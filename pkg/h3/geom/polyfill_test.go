package geom

import (
	"slices"
	"testing"

	"github.com/mohammed-shakir/hexgrid/pkg/h3"
)

// a box over southern Sweden, a few dozen cells wide at resolution 5
func testBox(t *testing.T) Polygon {
	t.Helper()
	p, err := NewPolygonDegrees([][2]float64{
		{59, 17},
		{59, 19},
		{60, 19},
		{60, 17},
	})
	if err != nil {
		t.Fatalf("NewPolygonDegrees: %v", err)
	}
	return p
}

func asSet(cells []h3.Cell) map[h3.Cell]struct{} {
	set := make(map[h3.Cell]struct{}, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return set
}

func TestPolygonToCells(t *testing.T) {
	p := testBox(t)
	res := h3.Resolution5
	cells := collect(t, p, res)
	if len(cells) < 10 {
		t.Fatalf("box covering = %d cells", len(cells))
	}
	if len(asSet(cells)) != len(cells) {
		t.Fatal("duplicate cells in a single polygon covering")
	}

	// the box center must be covered
	center, _ := h3.NewLatLngDegrees(59.5, 18)
	c, _ := h3.LatLngToCell(center, res)
	if _, ok := asSet(cells)[c]; !ok {
		t.Error("cell at the box center missing from covering")
	}

	// a point well outside must not be
	outside, _ := h3.NewLatLngDegrees(55, 13)
	oc, _ := h3.LatLngToCell(outside, res)
	if _, ok := asSet(cells)[oc]; ok {
		t.Error("covering includes a cell far outside the box")
	}
}

func TestPolygonIdempotent(t *testing.T) {
	p := testBox(t)
	first := collect(t, p, h3.Resolution5)
	second := collect(t, p, h3.Resolution5)
	if !slices.Equal(first, second) {
		t.Fatal("repeated rasterization differs")
	}
}

func TestPolygonHole(t *testing.T) {
	full := testBox(t)
	holed, err := NewPolygonDegrees(
		[][2]float64{{59, 17}, {59, 19}, {60, 19}, {60, 17}},
		[][2]float64{{59.25, 17.5}, {59.25, 18.5}, {59.75, 18.5}, {59.75, 17.5}},
	)
	if err != nil {
		t.Fatalf("NewPolygonDegrees: %v", err)
	}
	res := h3.Resolution5
	fullSet := asSet(collect(t, full, res))
	holedCells := collect(t, holed, res)
	if len(holedCells) >= len(fullSet) {
		t.Fatalf("hole removed nothing: %d vs %d cells", len(holedCells), len(fullSet))
	}
	for _, c := range holedCells {
		if _, ok := fullSet[c]; !ok {
			t.Fatalf("holed covering has cell %s outside the full covering", c)
		}
	}
	// the hole center itself must be excluded
	hc, _ := h3.NewLatLngDegrees(59.5, 18)
	c, _ := h3.LatLngToCell(hc, res)
	if _, ok := asSet(holedCells)[c]; ok {
		t.Error("covering includes the cell at the hole center")
	}
}

func TestPolygonFinerResolutionGrows(t *testing.T) {
	p := testBox(t)
	coarse := collect(t, p, h3.Resolution4)
	fine := collect(t, p, h3.Resolution5)
	if len(fine) <= len(coarse) {
		t.Fatalf("finer covering not larger: %d vs %d", len(fine), len(coarse))
	}
}

func TestDegeneratePolygons(t *testing.T) {
	// two vertices cannot close a ring
	flat, err := NewPolygon([][2]float64{{0.1, 0.1}, {0.2, 0.2}})
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	if cells := collect(t, flat, h3.Resolution5); len(cells) != 0 {
		t.Fatalf("two-vertex polygon covered %d cells", len(cells))
	}

	// zero-area ring still has a defined (possibly empty) covering
	point, err := NewPolygon([][2]float64{{0.1, 0.1}, {0.1, 0.1}, {0.1, 0.1}})
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	collect(t, point, h3.Resolution5)
}

func TestRectMatchesPolygon(t *testing.T) {
	r, err := NewRectDegrees(59, 17, 60, 19)
	if err != nil {
		t.Fatalf("NewRectDegrees: %v", err)
	}
	rect := collect(t, r, h3.Resolution5)
	poly := collect(t, testBox(t), h3.Resolution5)
	if !slices.Equal(rect, poly) {
		t.Fatal("rect and equivalent polygon coverings differ")
	}
}

func TestTriangleToCells(t *testing.T) {
	tri, err := NewTriangleDegrees(
		[2]float64{59, 17},
		[2]float64{59, 19},
		[2]float64{60, 18},
	)
	if err != nil {
		t.Fatalf("NewTriangleDegrees: %v", err)
	}
	res := h3.Resolution5
	cells := collect(t, tri, res)
	if len(cells) == 0 {
		t.Fatal("triangle covering is empty")
	}
	// the triangle fits inside its bounding box
	box := asSet(collect(t, testBox(t), res))
	for _, c := range cells {
		if _, ok := box[c]; !ok {
			t.Fatalf("triangle covering has cell %s outside its bounding box", c)
		}
	}
}

func TestMultiPolygonKeepsDuplicates(t *testing.T) {
	p := testBox(t)
	single := collect(t, p, h3.Resolution5)
	double := collect(t, MultiPolygon{p, p}, h3.Resolution5)
	if len(double) != 2*len(single) {
		t.Fatalf("MultiPolygon covering = %d cells, member gives %d", len(double), len(single))
	}
}
