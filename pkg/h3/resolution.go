package h3

import "iter"

// Resolution is the depth of a cell in the grid hierarchy: 0 is the
// coarsest (the 122 base cells), 15 the finest. Each step down subdivides
// a cell into roughly seven children.
type Resolution int

const (
	Resolution0 Resolution = iota
	Resolution1
	Resolution2
	Resolution3
	Resolution4
	Resolution5
	Resolution6
	Resolution7
	Resolution8
	Resolution9
	Resolution10
	Resolution11
	Resolution12
	Resolution13
	Resolution14
	Resolution15
)

// MaxResolution is the finest resolution supported by the grid.
const MaxResolution = Resolution15

// earthRadiusKm is the authalic Earth radius used by the reference
// constant tables.
const earthRadiusKm = 6371.007180918475

// NewResolution validates an integer resolution.
func NewResolution(v int) (Resolution, error) {
	if v < 0 || v > int(MaxResolution) {
		return 0, &InvalidResolutionError{Value: v}
	}
	return Resolution(v), nil
}

// IsValid reports whether r is within 0..15.
func (r Resolution) IsValid() bool {
	return r >= Resolution0 && r <= MaxResolution
}

// Succ returns the next finer resolution, or false at Resolution15.
func (r Resolution) Succ() (Resolution, bool) {
	if r >= MaxResolution {
		return 0, false
	}
	return r + 1, true
}

// Pred returns the next coarser resolution, or false at Resolution0.
func (r Resolution) Pred() (Resolution, bool) {
	if r <= Resolution0 {
		return 0, false
	}
	return r - 1, true
}

// Range iterates over resolutions from r to end, inclusive.
func Range(r, end Resolution) iter.Seq[Resolution] {
	return func(yield func(Resolution) bool) {
		for res := r; res <= end; res++ {
			if !yield(res) {
				return
			}
		}
	}
}

// isClassIII reports whether the resolution uses a Class III orientation
// (rotated ~19.1 degrees versus the Class II orientation of even
// resolutions).
func (r Resolution) isClassIII() bool { return r&1 == 1 }

// CellCount returns the total number of cells at this resolution
// (2 + 120 * 7^r).
func (r Resolution) CellCount() uint64 {
	count := uint64(120)
	for i := Resolution0; i < r; i++ {
		count *= 7
	}
	return count + 2
}

// AreaKm2 returns the average cell area at this resolution, in km².
func (r Resolution) AreaKm2() float64 { return hexAreaKm2[r] }

// AreaM2 returns the average cell area at this resolution, in m².
func (r Resolution) AreaM2() float64 { return hexAreaKm2[r] * 1e6 }

// AreaRads2 returns the average cell area at this resolution, in
// steradians.
func (r Resolution) AreaRads2() float64 {
	return hexAreaKm2[r] / (earthRadiusKm * earthRadiusKm)
}

// EdgeLengthKm returns the average cell edge length at this resolution,
// in km.
func (r Resolution) EdgeLengthKm() float64 { return edgeLengthKm[r] }

// EdgeLengthM returns the average cell edge length at this resolution,
// in meters.
func (r Resolution) EdgeLengthM() float64 { return edgeLengthKm[r] * 1e3 }

// EdgeLengthRads returns the average cell edge length at this resolution,
// as an angle on the unit sphere.
func (r Resolution) EdgeLengthRads() float64 { return edgeLengthKm[r] / earthRadiusKm }

// Reference per-resolution constants, consumed as opaque lookup data.
// Values match the H3 reference tables bit-for-bit.
var hexAreaKm2 = [16]float64{
	4357449.416078383,
	609788.441794133,
	86801.780398997,
	12393.434655088,
	1770.347654491,
	252.903858182,
	36.129062164,
	5.161293360,
	0.737327598,
	0.105332513,
	0.015047502,
	0.002149643,
	0.000307097,
	0.000043870,
	0.000006267,
	0.000000895,
}

var edgeLengthKm = [16]float64{
	1281.256011,
	483.0568391,
	182.5129565,
	68.97922179,
	26.07175968,
	9.854090990,
	3.724532667,
	1.406475763,
	0.531414010,
	0.200786148,
	0.075863783,
	0.028663897,
	0.010830188,
	0.004092010,
	0.001546100,
	0.000584169,
}
