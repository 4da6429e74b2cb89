package h3

import "math"

const (
	// scale of a resolution 0 cell in gnomonic face coordinates
	res0UGnomonic = 0.38196601125010500003

	// rotation between Class II and Class III resolution axes
	ap7RotRads = 0.333473172251832115336090755351601070065900389

	sqrt7 = 2.6457513110645905905016157536392604257102
	sin60 = 0.8660254037844386467637231707529361834714
)

// faceCenterGeo holds the spherical coordinates of each icosahedron face
// center. Values match the H3 reference tables bit-for-bit.
var faceCenterGeo = [numIcosaFaces]LatLng{
	{0.803582649718989942, 1.248397419617396099},   // face 0
	{1.307747883455638156, 2.536945009877921159},   // face 1
	{1.054751253523952054, -1.347517358900396623},  // face 2
	{0.600191595538186799, -0.450603909469755746},  // face 3
	{0.491715428198773866, 0.401988202911306943},   // face 4
	{0.172745327415618701, 1.678146885280433686},   // face 5
	{0.605929321571350690, 2.953923329812411617},   // face 6
	{0.427370518328979641, -1.888876200336285401},  // face 7
	{-0.079066118549212831, -0.733429513380867741}, // face 8
	{-0.230961644455383637, 0.506495587332349035},  // face 9
	{0.079066118549212831, 2.408163140208925497},   // face 10
	{0.230961644455383637, -2.635097066257444203},  // face 11
	{-0.172745327415618701, -1.463445768309359553}, // face 12
	{-0.605929321571350690, -0.187669323777381622}, // face 13
	{-0.427370518328979641, 1.252716453253507838},  // face 14
	{-0.600191595538186799, 2.690988744120037492},  // face 15
	{-0.491715428198773866, -2.739604450678486295}, // face 16
	{-0.803582649718989942, -1.893195233972397139}, // face 17
	{-1.307747883455638156, -0.604647643711872080}, // face 18
	{-1.054751253523952054, 1.794075294689396615},  // face 19
}

// faceAxesAzRadsCII holds, for each face, the azimuth from the face center
// to each of the three Class II coordinate axes. Only axis 0 (the i axis)
// is used for projection; the others orient cell vertices.
var faceAxesAzRadsCII = [numIcosaFaces][3]float64{
	{5.619958268523939882, 3.525563166130744542, 1.431168063737548730}, // face 0
	{5.760339081714187279, 3.665943979320991689, 1.571548876927795877}, // face 1
	{0.780213654393430055, 4.969003859179821079, 2.874608756786625655}, // face 2
	{0.430469363979999913, 4.619259568766390883, 2.524864466373195467}, // face 3
	{6.130269123335111400, 4.035874020941915804, 1.941478918548720291}, // face 4
	{2.692877706530642877, 0.598482604137447119, 4.787272808923838195}, // face 5
	{2.982963003477243874, 0.888567901084048369, 5.077358105870439581}, // face 6
	{3.532912002790141181, 1.438516900396945656, 5.627307105183336758}, // face 7
	{3.494305004259568154, 1.399909901866372864, 5.588700106652763840}, // face 8
	{3.003214169499538391, 0.908819067106342928, 5.097609271892733906}, // face 9
	{5.930472956509811562, 3.836077854116615875, 1.741682751723420374}, // face 10
	{0.138378484090254847, 4.327168688876645809, 2.232773586483450311}, // face 11
	{0.448714947059150361, 4.637505151845541521, 2.543110049452346017}, // face 12
	{0.158629650112549365, 4.347419854898940135, 2.253024752505744531}, // face 13
	{5.891865957979238535, 3.797470855586042958, 1.703075753192847583}, // face 14
	{2.711123289609793325, 0.616728187216597771, 4.805518392002988683}, // face 15
	{3.294508837434268316, 1.200113735041072948, 5.388903939827463911}, // face 16
	{3.804819692245439833, 1.710424589852244509, 5.899214794638635174}, // face 17
	{3.664438879055192436, 1.570043776661997111, 5.758833981448387776}, // face 18
	{2.361378999196363184, 0.266983896803167583, 4.455774101589558636}, // face 19
}

// faceCenterPoint is faceCenterGeo on the unit sphere, computed once at
// startup.
var faceCenterPoint [numIcosaFaces]vec3d

func init() {
	for f := range faceCenterGeo {
		faceCenterPoint[f] = faceCenterGeo[f].toVec3d()
	}
}

// closestFace finds the icosahedron face whose center is nearest to the
// point, and the squared Euclidean chord distance to it.
func closestFace(g LatLng) (int, float64) {
	p := g.toVec3d()
	face, sqd := 0, 5.0
	for f := range faceCenterPoint {
		if d := faceCenterPoint[f].squareDistance(p); d < sqd {
			face, sqd = f, d
		}
	}
	return face, sqd
}

// geoToHex2d projects a point onto the nearest face, in grid coordinates
// scaled for the given resolution.
func geoToHex2d(g LatLng, res Resolution) (int, vec2d) {
	face, sqd := closestFace(g)

	// chord to great circle arc
	r := math.Acos(1 - sqd/2)
	if r < epsilon {
		return face, vec2d{}
	}

	theta := posAngle(faceAxesAzRadsCII[face][0] - posAngle(faceCenterGeo[face].AzimuthTo(g)))
	if res.isClassIII() {
		theta = posAngle(theta - ap7RotRads)
	}

	// gnomonic scaling and per-resolution grid scaling
	r = math.Tan(r) / res0UGnomonic
	for i := Resolution0; i < res; i++ {
		r *= sqrt7
	}
	return face, vec2d{x: r * math.Cos(theta), y: r * math.Sin(theta)}
}

// hex2dToGeo is the inverse projection from face coordinates at the given
// resolution back to the sphere. substrate marks the triple-scaled grid
// used for cell vertices.
func hex2dToGeo(v vec2d, face int, res Resolution, substrate bool) LatLng {
	r := v.mag()
	if r < epsilon {
		return faceCenterGeo[face]
	}
	theta := math.Atan2(v.y, v.x)
	for i := Resolution0; i < res; i++ {
		r /= sqrt7
	}
	if substrate {
		r /= 3
		if res.isClassIII() {
			r /= sqrt7
		}
	}
	r = math.Atan(r * res0UGnomonic)
	if !substrate && res.isClassIII() {
		theta = posAngle(theta + ap7RotRads)
	}
	theta = posAngle(faceAxesAzRadsCII[face][0] - theta)
	return faceCenterGeo[face].AtAzDistance(theta, r)
}

// hex2dToCoordIJK quantizes continuous face coordinates to the containing
// cell.
func hex2dToCoordIJK(v vec2d) coordIJK {
	var h coordIJK

	a1 := math.Abs(v.x)
	a2 := math.Abs(v.y)

	// first do a reverse conversion
	x2 := a2 / sin60
	x1 := a1 + x2/2

	m1 := int(x1)
	m2 := int(x2)

	r1 := x1 - float64(m1)
	r2 := x2 - float64(m2)

	if r1 < 0.5 {
		if r1 < 1.0/3.0 {
			if r2 < (1+r1)/2 {
				h.i, h.j = m1, m2
			} else {
				h.i, h.j = m1, m2+1
			}
		} else {
			if r2 < 1-r1 {
				h.j = m2
			} else {
				h.j = m2 + 1
			}
			if 1-r1 <= r2 && r2 < 2*r1-1 {
				h.i = m1 + 1
			} else {
				h.i = m1
			}
		}
	} else {
		if r1 < 2.0/3.0 {
			if r2 < 1-r1 {
				h.j = m2
			} else {
				h.j = m2 + 1
			}
			if 2*r1-1 < r2 && r2 < 1-r1 {
				h.i = m1
			} else {
				h.i = m1 + 1
			}
		} else {
			if r2 < r1/2 {
				h.i, h.j = m1+1, m2
			} else {
				h.i, h.j = m1+1, m2+1
			}
		}
	}

	// fold across the axes if necessary
	if v.x < 0 {
		if h.j%2 == 0 {
			axisI := h.j / 2
			h.i -= 2 * (h.i - axisI)
		} else {
			axisI := (h.j + 1) / 2
			h.i -= 2*(h.i-axisI) + 1
		}
	}
	if v.y < 0 {
		h.i -= (2*h.j + 1) / 2
		h.j = -h.j
	}
	return h.normalize()
}

// toHex2d converts IJK grid coordinates to continuous face coordinates.
func (c coordIJK) toHex2d() vec2d {
	i := float64(c.i - c.k)
	j := float64(c.j - c.k)
	return vec2d{x: i - 0.5*j, y: j * sin60}
}

// toFaceIJK resolves the cell to a face and IJK coordinates at the cell's
// resolution, handling overage across face boundaries.
func (c Cell) toFaceIJK() faceIJK {
	base := c.Base()
	if base.IsPentagon() && c.leadingNonZeroDigit() == DirectionIK {
		c = c.rotate60cw()
	}
	fijk, possibleOverage := c.toFaceIJKWithInitializedFijk(baseCellData[base].home)
	if !possibleOverage {
		return fijk
	}

	orig := fijk.coord
	res := c.Resolution()
	if res.isClassIII() {
		// drop into the next finer Class II grid
		fijk.coord = fijk.coord.downAp7r()
		res++
	}
	pentLeading4 := base.IsPentagon() && c.leadingNonZeroDigit() == DirectionI
	adjusted, over := fijk.adjustOverage(res, pentLeading4, false)
	fijk = adjusted
	if over != noOverage {
		if base.IsPentagon() {
			for {
				adjusted, over = fijk.adjustOverage(res, false, false)
				fijk = adjusted
				if over == noOverage {
					break
				}
			}
		}
		if res != c.Resolution() {
			fijk.coord = fijk.coord.upAp7r()
		}
	} else if res != c.Resolution() {
		fijk.coord = orig
	}
	return fijk
}

// toFaceIJKWithInitializedFijk walks the cell's digits down from the given
// base cell position. It reports whether the result might lie beyond the
// face it started on.
func (c Cell) toFaceIJKWithInitializedFijk(start faceIJK) (faceIJK, bool) {
	fijk := start
	res := c.Resolution()
	possibleOverage := true
	if !c.Base().IsPentagon() && (res == Resolution0 || fijk.coord == (coordIJK{})) {
		possibleOverage = false
	}
	for r := Resolution1; r <= res; r++ {
		if r.isClassIII() {
			fijk.coord = fijk.coord.downAp7()
		} else {
			fijk.coord = fijk.coord.downAp7r()
		}
		fijk.coord = fijk.coord.neighbor(c.digit(r))
	}
	return fijk, possibleOverage
}

// faceIJKToCell indexes the cell containing a face position at the given
// resolution. ok is false when the coordinates fall outside the grid
// around the face.
func faceIJKToCell(fijk faceIJK, res Resolution) (Cell, bool) {
	c := FirstCell(res)
	if res == Resolution0 {
		if !fijk.inBaseCellDomain() {
			return 0, false
		}
		entry := faceIjkBaseCells[fijk.face][fijk.coord.i][fijk.coord.j][fijk.coord.k]
		return c.setBase(entry.baseCell), true
	}

	// work upwards from the finest resolution, deducing one digit per
	// step from the offset against the coarser cell's center
	ijk := fijk.coord
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
		c = c.setDigit(r, diff.unitToDirection())
	}

	bcFijk := faceIJK{face: fijk.face, coord: ijk}
	if !bcFijk.inBaseCellDomain() {
		return 0, false
	}
	entry := faceIjkBaseCells[bcFijk.face][ijk.i][ijk.j][ijk.k]
	base := entry.baseCell
	c = c.setBase(base)

	if base.IsPentagon() {
		// the deleted k subsequence cannot be the leading digit
		if c.leadingNonZeroDigit() == DirectionK {
			if base.isCwOffset(bcFijk.face) {
				c = c.rotate60cw()
			} else {
				c = c.rotate60ccw()
			}
		}
		for i := 0; i < entry.ccwRot60; i++ {
			c = c.rotatePent60ccw()
		}
	} else {
		for i := 0; i < entry.ccwRot60; i++ {
			c = c.rotate60ccw()
		}
	}
	return c, true
}

// LatLngToCell indexes the cell containing the point at the given
// resolution.
func LatLngToCell(g LatLng, res Resolution) (Cell, error) {
	if !res.IsValid() {
		return 0, &InvalidResolutionError{Value: int(res)}
	}
	face, v := geoToHex2d(g, res)
	fijk := faceIJK{face: face, coord: hex2dToCoordIJK(v)}
	c, ok := faceIJKToCell(fijk, res)
	if !ok {
		return 0, &InvalidLatLngError{Lat: g.lat, Lng: g.lng}
	}
	return c, nil
}

// LatLng returns the spherical coordinates of the cell's center.
func (c Cell) LatLng() LatLng {
	fijk := c.toFaceIJK()
	v := fijk.coord.toHex2d()
	return hex2dToGeo(v, fijk.face, c.Resolution(), false)
}
