package h3

// Direction is one 3-bit step of a cell's path from its base cell: the
// digit selecting one child of a cell at the next finer resolution.
// The six real directions are named after the IJK coordinate axes they
// point along. DirectionInvalid (7) is the sentinel padding digit slots
// below a cell's resolution.
type Direction uint8

const (
	DirectionCenter Direction = iota // 0, the center child
	DirectionK                       // 1, k axis
	DirectionJ                       // 2, j axis
	DirectionJK                      // 3, j+k
	DirectionI                       // 4, i axis
	DirectionIK                      // 5, i+k
	DirectionIJ                      // 6, i+j
	DirectionInvalid                 // 7, unused slot marker
)

// rotate60ccw returns the direction rotated 60 degrees counterclockwise.
func (d Direction) rotate60ccw() Direction {
	switch d {
	case DirectionK:
		return DirectionIK
	case DirectionIK:
		return DirectionI
	case DirectionI:
		return DirectionIJ
	case DirectionIJ:
		return DirectionJ
	case DirectionJ:
		return DirectionJK
	case DirectionJK:
		return DirectionK
	default:
		return d
	}
}

// rotate60cw returns the direction rotated 60 degrees clockwise.
func (d Direction) rotate60cw() Direction {
	switch d {
	case DirectionK:
		return DirectionJK
	case DirectionJK:
		return DirectionJ
	case DirectionJ:
		return DirectionIJ
	case DirectionIJ:
		return DirectionI
	case DirectionI:
		return DirectionIK
	case DirectionIK:
		return DirectionK
	default:
		return d
	}
}
