package h3

import (
	"math"
	"testing"
)

func TestNewLatLng(t *testing.T) {
	if _, err := NewLatLng(0.6, -2.1); err != nil {
		t.Fatalf("NewLatLng: %v", err)
	}
	bad := [][2]float64{
		{math.NaN(), 0},
		{0, math.Inf(1)},
		{4.0, 0}, // latitude beyond pi
		{0, 7.0}, // longitude beyond 2 pi
	}
	for _, c := range bad {
		if _, err := NewLatLng(c[0], c[1]); err == nil {
			t.Errorf("NewLatLng(%v, %v) accepted", c[0], c[1])
		}
	}
}

func TestLatLngDegrees(t *testing.T) {
	g, err := NewLatLngDegrees(40.689167, -74.044444)
	if err != nil {
		t.Fatalf("NewLatLngDegrees: %v", err)
	}
	if math.Abs(g.LatDegrees()-40.689167) > 1e-12 {
		t.Errorf("LatDegrees = %v", g.LatDegrees())
	}
	if math.Abs(g.Lat()-0.7101599340438235) > 1e-9 {
		t.Errorf("Lat = %v", g.Lat())
	}
}

// The center of the base cell at a face center is the face center itself.
func TestCellCenterAtFaceCenter(t *testing.T) {
	c := mustCell(t, "8021fffffffffff") // base cell 16, centered on face 0
	g := c.LatLng()
	want := faceCenterGeo[0]
	if math.Abs(g.Lat()-want.Lat()) > 1e-9 || math.Abs(g.Lng()-want.Lng()) > 1e-9 {
		t.Fatalf("center = (%v, %v), want (%v, %v)", g.Lat(), g.Lng(), want.Lat(), want.Lng())
	}
}

// Indexing a cell's own center must return the cell.
func TestLatLngToCellRoundtrip(t *testing.T) {
	cells := []string{
		"8001fffffffffff", // res 0, base cell 0
		"8009fffffffffff", // res 0 pentagon
		"8021fffffffffff", // res 0, face center
		"81083ffffffffff", // res 1 pentagon
		"823147fffffffff", // res 2 under a pentagon
		"85283473fffffff", // res 5 hexagon
		"8a1fb46622dffff", // res 10 hexagon
		"8fc3b0804200001", // res 15, under pentagon base cell 97
	}
	for _, s := range cells {
		c := mustCell(t, s)
		g := c.LatLng()
		back, err := LatLngToCell(g, c.Resolution())
		if err != nil {
			t.Fatalf("%s: LatLngToCell: %v", s, err)
		}
		if back != c {
			t.Fatalf("%s: roundtrip = %s", s, back)
		}
	}
}

// A point indexed at a coarse resolution must contain the same point's
// finer index.
func TestLatLngToCellHierarchy(t *testing.T) {
	g, err := NewLatLngDegrees(59.3293, 18.0686)
	if err != nil {
		t.Fatalf("NewLatLngDegrees: %v", err)
	}
	fine, err := LatLngToCell(g, Resolution9)
	if err != nil {
		t.Fatalf("LatLngToCell: %v", err)
	}
	for r := Resolution0; r <= Resolution9; r++ {
		coarse, err := LatLngToCell(g, r)
		if err != nil {
			t.Fatalf("LatLngToCell(%d): %v", r, err)
		}
		parent, _ := fine.Parent(r)
		if coarse != parent {
			t.Fatalf("res %d: indexed %s, parent is %s", r, coarse, parent)
		}
	}
}

// Centers of neighboring cells are roughly an edge-length apart, never
// wildly off.
func TestNeighborCenterDistance(t *testing.T) {
	origin := mustCell(t, "8a1fb46622dffff")
	res := origin.Resolution()
	g := origin.LatLng()
	for _, n := range origin.Neighbors() {
		d := g.DistanceKm(n.LatLng())
		if d < res.EdgeLengthKm() || d > 4*res.EdgeLengthKm() {
			t.Errorf("neighbor %s center %v km away", n, d)
		}
	}
}

func TestLatLngToCellInvalidResolution(t *testing.T) {
	g, _ := NewLatLng(0, 0)
	if _, err := LatLngToCell(g, Resolution(16)); err == nil {
		t.Fatal("accepted resolution 16")
	}
}
