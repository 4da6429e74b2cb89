package h3

import (
	"errors"
	"testing"
)

func TestIsNeighbor(t *testing.T) {
	origin := mustCell(t, "8a1fb46622dffff")

	adjacent := mustCell(t, "8a1fb46622d7fff")
	ok, err := origin.IsNeighbor(adjacent)
	if err != nil {
		t.Fatalf("IsNeighbor: %v", err)
	}
	if !ok {
		t.Errorf("%s and %s should be neighbors", origin, adjacent)
	}
	// adjacency is symmetric
	ok, err = adjacent.IsNeighbor(origin)
	if err != nil || !ok {
		t.Errorf("IsNeighbor is not symmetric (%v)", err)
	}

	far := mustCell(t, "8a1fb4644937fff")
	ok, err = origin.IsNeighbor(far)
	if err != nil {
		t.Fatalf("IsNeighbor: %v", err)
	}
	if ok {
		t.Errorf("%s and %s should not be neighbors", origin, far)
	}

	if ok, err := origin.IsNeighbor(origin); err != nil || ok {
		t.Errorf("a cell neighbors itself (%v)", err)
	}

	coarser, _ := adjacent.Parent(Resolution9)
	if _, err := origin.IsNeighbor(coarser); !errors.Is(err, ErrResolutionMismatch) {
		t.Errorf("resolution mismatch error = %v", err)
	}
}

func TestNeighbors(t *testing.T) {
	origin := mustCell(t, "8a1fb46622dffff")
	neighbors := origin.Neighbors()
	if len(neighbors) != 6 {
		t.Fatalf("hexagon has %d neighbors", len(neighbors))
	}
	found := false
	for _, n := range neighbors {
		if !n.IsValid() {
			t.Fatalf("invalid neighbor %s", n)
		}
		if n.Resolution() != origin.Resolution() {
			t.Fatalf("neighbor %s at wrong resolution", n)
		}
		if n == mustCell(t, "8a1fb46622d7fff") {
			found = true
		}
	}
	if !found {
		t.Error("known adjacent cell missing from Neighbors")
	}
}

func TestNeighborsPentagon(t *testing.T) {
	for _, s := range []string{"8009fffffffffff", "81083ffffffffff"} {
		pent := mustCell(t, s)
		neighbors := pent.Neighbors()
		if len(neighbors) != 5 {
			t.Fatalf("pentagon %s has %d neighbors", s, len(neighbors))
		}
		seen := make(map[Cell]struct{}, 5)
		for _, n := range neighbors {
			if !n.IsValid() {
				t.Fatalf("pentagon %s: invalid neighbor %s", s, n)
			}
			if _, dup := seen[n]; dup {
				t.Fatalf("pentagon %s: duplicate neighbor %s", s, n)
			}
			seen[n] = struct{}{}
		}
	}
}

// Every neighbor must see the origin among its own neighbors.
func TestNeighborsSymmetric(t *testing.T) {
	cells := []string{
		"8a1fb46622dffff", // hexagon, face interior
		"8009fffffffffff", // res 0 pentagon
		"81083ffffffffff", // res 1 pentagon
		"8029fffffffffff", // res 0 hexagon
		"823147fffffffff", // res 2 under a pentagon base cell
	}
	for _, s := range cells {
		origin := mustCell(t, s)
		for _, n := range origin.Neighbors() {
			back := n.Neighbors()
			ok := false
			for _, b := range back {
				if b == origin {
					ok = true
					break
				}
			}
			if !ok {
				t.Errorf("%s lists %s, but not vice versa", origin, n)
			}
		}
	}
}

func TestBaseCellNeighborTable(t *testing.T) {
	for bc := BaseCell(0); bc < NumBaseCells; bc++ {
		if got := baseCellNeighbors[bc][DirectionCenter]; got != bc {
			t.Fatalf("base cell %d: center slot holds %d", bc, got)
		}
		for d := DirectionK; d < DirectionInvalid; d++ {
			n := baseCellNeighbors[bc][d]
			if n == invalidBaseCell {
				// the only deleted edge is a pentagon's k axis
				if !bc.IsPentagon() || d != DirectionK {
					t.Fatalf("base cell %d: missing neighbor in direction %d", bc, d)
				}
				continue
			}
			if bc.IsPentagon() && d == DirectionK {
				t.Fatalf("pentagon %d has a k neighbor %d", bc, n)
			}
			if n >= NumBaseCells {
				t.Fatalf("base cell %d: neighbor %d out of range", bc, n)
			}
			if n == bc {
				t.Fatalf("base cell %d: neighbors itself in direction %d", bc, d)
			}
			back := n.directionTo(bc)
			if back == DirectionInvalid {
				t.Fatalf("base cell %d -> %d has no reverse edge", bc, n)
			}
			if bc.IsPentagon() || n.IsPentagon() {
				// pentagon frames get extra rotation fixups during
				// traversal, so the raw table entries are not paired
				continue
			}
			fwd := int(baseCellNeighborRotations[bc][d])
			rev := int(baseCellNeighborRotations[n][back])
			if (fwd+rev)%6 != 0 {
				t.Fatalf("base cell %d <-> %d: rotations %d and %d do not cancel",
					bc, n, fwd, rev)
			}
		}
	}
}
