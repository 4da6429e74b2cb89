package h3

// Digit transition tables for single-step traversal: moving in a
// direction from a cell whose digit is oldDigit yields a new digit, plus
// a carry direction to apply at the next coarser resolution (center when
// the move stays inside the parent).
//
// Computed once at startup by decomposing unit vector sums against the
// aperture 7 sub-grid, counterclockwise for digits at Class III
// resolutions and clockwise for Class II.
var (
	newDigitII       [7][7]Direction
	newAdjustmentII  [7][7]Direction
	newDigitIII      [7][7]Direction
	newAdjustmentIII [7][7]Direction
)

func init() {
	solve := func(down func(coordIJK) coordIJK, old, dir Direction) (Direction, Direction) {
		ti, tj := unitVectors[old].add(unitVectors[dir]).toIJ()
		for carry := DirectionCenter; carry < DirectionInvalid; carry++ {
			for digit := DirectionCenter; digit < DirectionInvalid; digit++ {
				ci, cj := down(unitVectors[carry]).add(unitVectors[digit]).toIJ()
				if ci == ti && cj == tj {
					return digit, carry
				}
			}
		}
		return DirectionInvalid, DirectionInvalid
	}
	for old := DirectionCenter; old < DirectionInvalid; old++ {
		for dir := DirectionCenter; dir < DirectionInvalid; dir++ {
			newDigitII[old][dir], newAdjustmentII[old][dir] =
				solve(coordIJK.downAp7, old, dir)
			newDigitIII[old][dir], newAdjustmentIII[old][dir] =
				solve(coordIJK.downAp7r, old, dir)
		}
	}
}

// neighborRotations returns the cell adjacent to c in the given direction,
// along with the updated rotation count for continued traversal.
// rotations is the number of ccw rotations dir has already undergone. ok
// is false when the step runs into a pentagon's deleted wedge.
func (c Cell) neighborRotations(dir Direction, rotations int) (Cell, int, bool) {
	current := c
	for i := 0; i < rotations; i++ {
		dir = dir.rotate60ccw()
	}
	newRotations := 0
	oldBase := current.Base()
	oldLeading := current.leadingNonZeroDigit()

	// walk up the digits, applying the transition carry
	r := current.Resolution()
	for {
		if r == Resolution0 {
			next, rot, ok := oldBase.neighbor(dir)
			if !ok {
				// the k edge of a pentagon borders the ik neighbor
				next, rot, _ = oldBase.neighbor(DirectionIK)
				current = current.rotate60ccw()
				rotations++
			}
			current = current.setBase(next)
			newRotations = rot
			break
		}
		oldDigit := current.digit(r)
		var nextDir Direction
		if r.isClassIII() {
			current = current.setDigit(r, newDigitII[oldDigit][dir])
			nextDir = newAdjustmentII[oldDigit][dir]
		} else {
			current = current.setDigit(r, newDigitIII[oldDigit][dir])
			nextDir = newAdjustmentIII[oldDigit][dir]
		}
		if nextDir == DirectionCenter {
			// no more carries to propagate
			break
		}
		dir = nextDir
		r--
	}

	newBase := current.Base()
	if newBase.IsPentagon() {
		adjustedK := false
		if current.leadingNonZeroDigit() == DirectionK {
			if oldBase != newBase {
				// traversed into the deleted k subsequence of a
				// neighboring pentagon
				if newBase.isCwOffset(baseCellData[oldBase].home.face) {
					current = current.rotate60cw()
				} else {
					current = current.rotate60ccw()
				}
				adjustedK = true
			} else {
				switch oldLeading {
				case DirectionCenter:
					// undefined: k direction from a pentagon center
					return 0, 0, false
				case DirectionJK:
					current = current.rotate60ccw()
					rotations++
				case DirectionIK:
					current = current.rotate60cw()
					rotations += 5
				default:
					return 0, 0, false
				}
			}
		}
		for i := 0; i < newRotations; i++ {
			current = current.rotatePent60ccw()
		}
		if newBase != oldBase {
			if newBase.isPolarPentagon() {
				// polar pentagons have every neighbor on the i axis
				if oldBase != 118 && oldBase != 8 &&
					current.leadingNonZeroDigit() != DirectionJK {
					rotations++
				}
			} else if current.leadingNonZeroDigit() == DirectionIK && !adjustedK {
				rotations++
			}
		}
	} else {
		for i := 0; i < newRotations; i++ {
			current = current.rotate60ccw()
		}
	}
	return current, (rotations + newRotations) % 6, true
}

// Neighbors returns the cells sharing an edge with c, in a deterministic
// order. Hexagons have six neighbors, pentagons five.
func (c Cell) Neighbors() []Cell {
	out := make([]Cell, 0, 6)
	pent := c.IsPentagon()
	for d := DirectionK; d < DirectionInvalid; d++ {
		if pent && d == DirectionK {
			// the deleted k axis has no edge of its own; stepping there
			// would revisit the ik neighbor
			continue
		}
		n, _, ok := c.neighborRotations(d, 0)
		if !ok {
			continue
		}
		out = append(out, n)
	}
	return out
}

// IsNeighbor reports whether the two cells share an edge. Cells at
// different resolutions cannot be compared and yield
// ErrResolutionMismatch.
func (c Cell) IsNeighbor(o Cell) (bool, error) {
	if c.Resolution() != o.Resolution() {
		return false, ErrResolutionMismatch
	}
	if c == o {
		return false, nil
	}
	for _, n := range c.Neighbors() {
		if n == o {
			return true, nil
		}
	}
	return false, nil
}
