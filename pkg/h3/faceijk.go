package h3

// faceIJK is a position on one of the 20 icosahedron faces, in IJK grid
// coordinates local to that face.
type faceIJK struct {
	face  int
	coord coordIJK
}

// Quadrants of a face's coordinate system beyond the face triangle. Each
// maps to a neighboring face.
const (
	quadCentral = 0
	quadIJ      = 1
	quadKI      = 2
	quadJK      = 3
)

// faceOrientIJK describes how a neighboring face's coordinate system is
// oriented relative to this one: the face number, the translation of the
// origin in unit resolution 0 coordinates, and the number of 60 degree ccw
// rotations.
type faceOrientIJK struct {
	face      int
	translate coordIJK
	ccwRot60  int
}

// faceNeighbors gives, for each face, the orientation of the face itself
// and of the three faces reachable through the ij, ki and jk quadrants.
// Transcribed from the H3 reference dataset.
var faceNeighbors = [numIcosaFaces][4]faceOrientIJK{
	{ // face 0
		{0, coordIJK{0, 0, 0}, 0},
		{4, coordIJK{2, 0, 2}, 1},
		{1, coordIJK{2, 2, 0}, 5},
		{5, coordIJK{0, 2, 2}, 3},
	},
	{ // face 1
		{1, coordIJK{0, 0, 0}, 0},
		{0, coordIJK{2, 0, 2}, 1},
		{2, coordIJK{2, 2, 0}, 5},
		{6, coordIJK{0, 2, 2}, 3},
	},
	{ // face 2
		{2, coordIJK{0, 0, 0}, 0},
		{1, coordIJK{2, 0, 2}, 1},
		{3, coordIJK{2, 2, 0}, 5},
		{7, coordIJK{0, 2, 2}, 3},
	},
	{ // face 3
		{3, coordIJK{0, 0, 0}, 0},
		{2, coordIJK{2, 0, 2}, 1},
		{4, coordIJK{2, 2, 0}, 5},
		{8, coordIJK{0, 2, 2}, 3},
	},
	{ // face 4
		{4, coordIJK{0, 0, 0}, 0},
		{3, coordIJK{2, 0, 2}, 1},
		{0, coordIJK{2, 2, 0}, 5},
		{9, coordIJK{0, 2, 2}, 3},
	},
	{ // face 5
		{5, coordIJK{0, 0, 0}, 0},
		{10, coordIJK{2, 2, 0}, 3},
		{14, coordIJK{2, 0, 2}, 3},
		{0, coordIJK{0, 2, 2}, 3},
	},
	{ // face 6
		{6, coordIJK{0, 0, 0}, 0},
		{11, coordIJK{2, 2, 0}, 3},
		{10, coordIJK{2, 0, 2}, 3},
		{1, coordIJK{0, 2, 2}, 3},
	},
	{ // face 7
		{7, coordIJK{0, 0, 0}, 0},
		{12, coordIJK{2, 2, 0}, 3},
		{11, coordIJK{2, 0, 2}, 3},
		{2, coordIJK{0, 2, 2}, 3},
	},
	{ // face 8
		{8, coordIJK{0, 0, 0}, 0},
		{13, coordIJK{2, 2, 0}, 3},
		{12, coordIJK{2, 0, 2}, 3},
		{3, coordIJK{0, 2, 2}, 3},
	},
	{ // face 9
		{9, coordIJK{0, 0, 0}, 0},
		{14, coordIJK{2, 2, 0}, 3},
		{13, coordIJK{2, 0, 2}, 3},
		{4, coordIJK{0, 2, 2}, 3},
	},
	{ // face 10
		{10, coordIJK{0, 0, 0}, 0},
		{5, coordIJK{2, 2, 0}, 3},
		{6, coordIJK{2, 0, 2}, 3},
		{15, coordIJK{0, 2, 2}, 3},
	},
	{ // face 11
		{11, coordIJK{0, 0, 0}, 0},
		{6, coordIJK{2, 2, 0}, 3},
		{7, coordIJK{2, 0, 2}, 3},
		{16, coordIJK{0, 2, 2}, 3},
	},
	{ // face 12
		{12, coordIJK{0, 0, 0}, 0},
		{7, coordIJK{2, 2, 0}, 3},
		{8, coordIJK{2, 0, 2}, 3},
		{17, coordIJK{0, 2, 2}, 3},
	},
	{ // face 13
		{13, coordIJK{0, 0, 0}, 0},
		{8, coordIJK{2, 2, 0}, 3},
		{9, coordIJK{2, 0, 2}, 3},
		{18, coordIJK{0, 2, 2}, 3},
	},
	{ // face 14
		{14, coordIJK{0, 0, 0}, 0},
		{9, coordIJK{2, 2, 0}, 3},
		{5, coordIJK{2, 0, 2}, 3},
		{19, coordIJK{0, 2, 2}, 3},
	},
	{ // face 15
		{15, coordIJK{0, 0, 0}, 0},
		{16, coordIJK{2, 0, 2}, 1},
		{19, coordIJK{2, 2, 0}, 5},
		{10, coordIJK{0, 2, 2}, 3},
	},
	{ // face 16
		{16, coordIJK{0, 0, 0}, 0},
		{17, coordIJK{2, 0, 2}, 1},
		{15, coordIJK{2, 2, 0}, 5},
		{11, coordIJK{0, 2, 2}, 3},
	},
	{ // face 17
		{17, coordIJK{0, 0, 0}, 0},
		{18, coordIJK{2, 0, 2}, 1},
		{16, coordIJK{2, 2, 0}, 5},
		{12, coordIJK{0, 2, 2}, 3},
	},
	{ // face 18
		{18, coordIJK{0, 0, 0}, 0},
		{19, coordIJK{2, 0, 2}, 1},
		{17, coordIJK{2, 2, 0}, 5},
		{13, coordIJK{0, 2, 2}, 3},
	},
	{ // face 19
		{19, coordIJK{0, 0, 0}, 0},
		{15, coordIJK{2, 0, 2}, 1},
		{18, coordIJK{2, 2, 0}, 5},
		{14, coordIJK{0, 2, 2}, 3},
	},
}

const numIcosaFaces = 20

// quadrant classifies an out-of-triangle coordinate by the neighboring
// face it reaches into.
func (c coordIJK) quadrant() int {
	if c.k > 0 {
		if c.j > 0 {
			return quadJK
		}
		return quadKI
	}
	return quadIJ
}

// adjustToNeighborFace moves a position that lies beyond a face's lookup
// domain onto the adjacent face in unit resolution 0 coordinates. It
// returns the adjusted position and the number of ccw rotations applied.
func (f faceIJK) adjustToNeighborFace() (faceIJK, int) {
	orient := &faceNeighbors[f.face][f.coord.quadrant()]
	c := f.coord
	for i := 0; i < orient.ccwRot60; i++ {
		c = c.rotate60ccw()
	}
	c = c.add(orient.translate).normalize()
	return faceIJK{face: orient.face, coord: c}, orient.ccwRot60
}

// overage classifies the result of adjustOverage.
type overage int

const (
	noOverage overage = iota
	faceEdge          // on a substrate grid edge between faces
	newFace           // moved onto another face
)

// maxDimByCIIres is the maximum unit distance from the face center at a
// Class II resolution (2 * 7^(r/2)).
func maxDimByCIIres(res Resolution) int {
	dim := 2
	for r := Resolution0; r+2 <= res; r += 2 {
		dim *= 7
	}
	return dim
}

// unitScaleByCIIres is the scale of a unit translation vector at a Class
// II resolution (7^(r/2)).
func unitScaleByCIIres(res Resolution) int {
	scale := 1
	for r := Resolution0; r+2 <= res; r += 2 {
		scale *= 7
	}
	return scale
}

// adjustOverage moves a Class II position that overflows its face onto the
// proper neighboring face. pentLeading4 adjusts for the deleted wedge of a
// pentagon whose path leads with an i digit; substrate doubles as the
// triple-scaled grid used for cell boundary vertices.
func (f faceIJK) adjustOverage(res Resolution, pentLeading4, substrate bool) (faceIJK, overage) {
	over := noOverage
	c := f.coord
	maxDim := maxDimByCIIres(res)
	if substrate {
		maxDim *= 3
	}
	sum := c.i + c.j + c.k
	if substrate && sum == maxDim {
		return f, faceEdge
	}
	if sum <= maxDim {
		return f, noOverage
	}
	over = newFace
	quad := c.quadrant()
	if quad == quadKI && pentLeading4 {
		// rotate out of the deleted wedge, pivoting on the pentagon
		origin := coordIJK{i: maxDim}
		c = c.sub(origin).rotate60cw().add(origin)
	}
	orient := &faceNeighbors[f.face][quad]
	for i := 0; i < orient.ccwRot60; i++ {
		c = c.rotate60ccw()
	}
	scale := unitScaleByCIIres(res)
	if substrate {
		scale *= 3
	}
	c = c.add(orient.translate.scale(scale)).normalize()
	out := faceIJK{face: orient.face, coord: c}
	if substrate && c.i+c.j+c.k == maxDim {
		return out, faceEdge
	}
	return out, over
}
