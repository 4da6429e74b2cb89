package h3

// Rotations (in 60 degree cw steps) to apply to a cell's coordinates when
// its path crosses a pentagon distortion, selected by leading digit and
// traversal direction. -1 entries are unreachable (K rows and columns).
var pentagonRotations = [7][7]int{
	{0, -1, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, -1, 0, 0, 0, 1, 0},
	{0, -1, 0, 0, 1, 1, 0},
	{0, -1, 0, 5, 0, 0, 0},
	{0, -1, 5, 5, 0, 0, 0},
	{0, -1, 0, 0, 0, 0, 0},
}

// Reverse-direction counterpart of pentagonRotations, in ccw steps.
var pentagonRotationsReverse = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 5, 0, 0, 0, 0, 0},
	{0, 5, 0, 5, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

// Variants of pentagonRotationsReverse applied on the pentagon side,
// depending on whether the pentagon is one of the two polar ones.
var pentagonRotationsReverseNonpolar = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 0, 0, 0, 0, 0},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 5, 0, 0, 0, 0, 0},
	{0, 1, 0, 5, 1, 1, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

var pentagonRotationsReversePolar = [7][7]int{
	{0, 0, 0, 0, 0, 0, 0},
	{-1, -1, -1, -1, -1, -1, -1},
	{0, 1, 1, 1, 1, 1, 1},
	{0, 1, 0, 0, 0, 1, 0},
	{0, 1, 0, 0, 1, 1, 0},
	{0, 1, 0, 5, 1, 1, 0},
	{0, 1, 1, 0, 1, 1, 1},
}

// Leading digit/traversal direction pairs whose coordinates cannot be
// recovered without a second distortion crossing.
var failedDirections = [7][7]bool{
	{false, false, false, false, false, false, false},
	{false, false, false, false, false, false, false},
	{false, false, false, false, true, true, false},
	{false, false, false, false, true, false, true},
	{false, false, true, true, false, false, false},
	{false, false, true, false, false, false, true},
	{false, false, false, true, false, true, false},
}

// LocalIJ is a cell position in a two-axis coordinate system local to an
// anchor cell. Coordinates are only comparable when produced from the
// same anchor.
type LocalIJ struct {
	anchor Cell
	i, j   int
}

// NewLocalIJ assembles local coordinates around an anchor, for conversion
// back to a cell.
func NewLocalIJ(anchor Cell, i, j int) LocalIJ {
	return LocalIJ{anchor: anchor, i: i, j: j}
}

// Anchor returns the cell the coordinate system is centered on.
func (l LocalIJ) Anchor() Cell { return l.anchor }

// I returns the i coordinate.
func (l LocalIJ) I() int { return l.i }

// J returns the j coordinate.
func (l LocalIJ) J() int { return l.j }

// ToLocalIJ projects the cell into the local IJ coordinate system of the
// anchor. This can fail when the cells are on opposite sides of a
// pentagon distortion or too far apart, roughly more than one base cell
// away.
func (c Cell) ToLocalIJ(anchor Cell) (LocalIJ, error) {
	ijk, err := cellToLocalIJK(anchor, c)
	if err != nil {
		return LocalIJ{}, err
	}
	i, j := ijk.toIJ()
	return LocalIJ{anchor: anchor, i: i, j: j}, nil
}

// Cell recovers the cell at the local coordinates; the inverse of
// ToLocalIJ.
func (l LocalIJ) Cell() (Cell, error) {
	ijk := coordIJK{i: l.i, j: l.j}.normalize()
	return localIJKToCell(l.anchor, ijk)
}

// cellToLocalIJK produces IJK coordinates for h relative to the origin
// cell, in the origin base cell's coordinate system.
func cellToLocalIJK(origin, h Cell) (coordIJK, error) {
	res := origin.Resolution()
	if res != h.Resolution() {
		return coordIJK{}, &LocalIJError{Anchor: origin, Target: h,
			Reason: "resolution mismatch"}
	}
	originBase := origin.Base()
	base := h.Base()

	dir := DirectionCenter
	revDir := DirectionCenter
	if originBase != base {
		dir = originBase.directionTo(base)
		if dir == DirectionInvalid {
			return coordIJK{}, &LocalIJError{Anchor: origin, Target: h,
				Reason: "base cells are not neighbors"}
		}
		revDir = base.directionTo(originBase)
	}

	originOnPent := originBase.IsPentagon()
	indexOnPent := base.IsPentagon()

	if dir != DirectionCenter {
		// rotate the index into the origin base cell's orientation
		rotations := int(baseCellNeighborRotations[originBase][dir])
		if indexOnPent {
			for i := 0; i < rotations; i++ {
				h = h.rotatePent60ccw()
				revDir = revDir.rotate60ccw()
				if revDir == DirectionK {
					revDir = revDir.rotate60ccw()
				}
			}
		} else {
			for i := 0; i < rotations; i++ {
				h = h.rotate60ccw()
			}
		}
	}

	fijk, _ := h.toFaceIJKWithInitializedFijk(faceIJK{})
	ijk := fijk.coord

	if dir != DirectionCenter {
		pentRotations := 0
		dirRotations := 0
		if originOnPent {
			lead := origin.leadingNonZeroDigit()
			if failedDirections[lead][dir] {
				return coordIJK{}, &LocalIJError{Anchor: origin, Target: h,
					Reason: "pentagon distortion between the cells"}
			}
			dirRotations = pentagonRotations[lead][dir]
			pentRotations = dirRotations
		} else if indexOnPent {
			lead := h.leadingNonZeroDigit()
			if failedDirections[lead][revDir] {
				return coordIJK{}, &LocalIJError{Anchor: origin, Target: h,
					Reason: "pentagon distortion between the cells"}
			}
			pentRotations = pentagonRotations[lead][revDir]
		}
		for i := 0; i < pentRotations; i++ {
			ijk = ijk.rotate60cw()
		}

		// translate the index into the origin's coordinate space
		offset := coordIJK{}.neighbor(dir)
		for r := res; r > Resolution0; r-- {
			if r.isClassIII() {
				offset = offset.downAp7()
			} else {
				offset = offset.downAp7r()
			}
		}
		for i := 0; i < dirRotations; i++ {
			offset = offset.rotate60cw()
		}
		ijk = ijk.add(offset).normalize()
	} else if originOnPent && indexOnPent {
		// on the same pentagon; the paths may straddle the deleted wedge
		originLead := origin.leadingNonZeroDigit()
		indexLead := h.leadingNonZeroDigit()
		if failedDirections[originLead][indexLead] {
			return coordIJK{}, &LocalIJError{Anchor: origin, Target: h,
				Reason: "pentagon distortion between the cells"}
		}
		for i := 0; i < pentagonRotations[originLead][indexLead]; i++ {
			ijk = ijk.rotate60cw()
		}
	}
	return ijk, nil
}

// localIJKToCell indexes the cell at the given IJK coordinates relative
// to the origin cell; the inverse of cellToLocalIJK.
func localIJKToCell(origin Cell, ijk coordIJK) (Cell, error) {
	res := origin.Resolution()
	originBase := origin.Base()
	originOnPent := originBase.IsPentagon()

	out := FirstCell(res)

	outOfRange := func(c coordIJK) error {
		return &LocalIJError{Anchor: origin, Target: 0,
			Reason: "coordinates out of range"}
	}

	if res == Resolution0 {
		if ijk.i > 1 || ijk.j > 1 || ijk.k > 1 {
			return 0, outOfRange(ijk)
		}
		dir := ijk.unitToDirection()
		if dir == DirectionInvalid {
			return 0, outOfRange(ijk)
		}
		base, _, ok := originBase.neighbor(dir)
		if !ok {
			return 0, &LocalIJError{Anchor: origin, Target: 0,
				Reason: "coordinates in a pentagon's deleted wedge"}
		}
		return out.setBase(base), nil
	}

	// deduce the digits from the finest resolution up, leaving the base
	// cell offset in ijk
	for r := res; r >= Resolution1; r-- {
		last := ijk
		var center coordIJK
		if r.isClassIII() {
			ijk = ijk.upAp7()
			center = ijk.downAp7()
		} else {
			ijk = ijk.upAp7r()
			center = ijk.downAp7r()
		}
		diff := last.sub(center).normalize()
		out = out.setDigit(r, diff.unitToDirection())
	}

	if ijk.i > 1 || ijk.j > 1 || ijk.k > 1 {
		return 0, outOfRange(ijk)
	}
	dir := ijk.unitToDirection()
	if dir == DirectionInvalid {
		return 0, outOfRange(ijk)
	}
	base := invalidBaseCell
	if b, _, ok := originBase.neighbor(dir); ok {
		base = b
	}
	indexOnPent := base != invalidBaseCell && base.IsPentagon()

	if dir != DirectionCenter {
		pentRotations := 0
		if originOnPent {
			// unwarp the direction out of the origin pentagon's frame
			lead := origin.leadingNonZeroDigit()
			pentRotations = pentagonRotationsReverse[lead][dir]
			for i := 0; i < pentRotations; i++ {
				dir = dir.rotate60ccw()
			}
			if dir == DirectionK {
				return 0, &LocalIJError{Anchor: origin, Target: 0,
					Reason: "coordinates in a pentagon's deleted wedge"}
			}
			b, _, ok := originBase.neighbor(dir)
			if !ok {
				return 0, &LocalIJError{Anchor: origin, Target: 0,
					Reason: "coordinates in a pentagon's deleted wedge"}
			}
			base = b
			indexOnPent = false
		}
		if base == invalidBaseCell {
			return 0, outOfRange(ijk)
		}
		rotations := int(baseCellNeighborRotations[originBase][dir])

		if indexOnPent {
			revDir := base.directionTo(originBase)
			for i := 0; i < rotations; i++ {
				out = out.rotate60ccw()
			}
			lead := out.leadingNonZeroDigit()
			var reverse *[7][7]int
			if base.isPolarPentagon() {
				reverse = &pentagonRotationsReversePolar
			} else {
				reverse = &pentagonRotationsReverseNonpolar
			}
			for i := 0; i < reverse[lead][revDir]; i++ {
				out = out.rotatePent60ccw()
			}
		} else {
			for i := 0; i < pentRotations; i++ {
				out = out.rotate60ccw()
			}
			for i := 0; i < rotations; i++ {
				out = out.rotate60ccw()
			}
		}
	} else if originOnPent && indexOnPent {
		originLead := origin.leadingNonZeroDigit()
		indexLead := out.leadingNonZeroDigit()
		for i := 0; i < pentagonRotationsReverse[originLead][indexLead]; i++ {
			out = out.rotatePent60ccw()
		}
	}

	if indexOnPent && out.leadingNonZeroDigit() == DirectionK {
		return 0, &LocalIJError{Anchor: origin, Target: 0,
			Reason: "coordinates in a pentagon's deleted wedge"}
	}
	return out.setBase(base), nil
}
