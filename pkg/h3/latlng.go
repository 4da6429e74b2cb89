package h3

import "math"

// epsilon below which floating point quantities are treated as zero.
const epsilon = 0.0000000000000001

// LatLng is a point on the sphere in radians.
type LatLng struct {
	lat, lng float64
}

// NewLatLng validates a coordinate given in radians. Latitude must lie in
// [-pi, pi] and longitude in [-2pi, 2pi]; both must be finite.
func NewLatLng(lat, lng float64) (LatLng, error) {
	if !coordIsValid(lat, math.Pi) || !coordIsValid(lng, 2*math.Pi) {
		return LatLng{}, &InvalidLatLngError{Lat: lat, Lng: lng}
	}
	return LatLng{lat: lat, lng: lng}, nil
}

// NewLatLngDegrees validates a coordinate given in degrees.
func NewLatLngDegrees(lat, lng float64) (LatLng, error) {
	return NewLatLng(lat*math.Pi/180, lng*math.Pi/180)
}

func coordIsValid(v, bound float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) <= bound
}

// Lat returns the latitude in radians.
func (g LatLng) Lat() float64 { return g.lat }

// Lng returns the longitude in radians.
func (g LatLng) Lng() float64 { return g.lng }

// LatDegrees returns the latitude in degrees.
func (g LatLng) LatDegrees() float64 { return g.lat * 180 / math.Pi }

// LngDegrees returns the longitude in degrees.
func (g LatLng) LngDegrees() float64 { return g.lng * 180 / math.Pi }

// DistanceRads returns the great circle distance to o, as an angle on the
// unit sphere.
func (g LatLng) DistanceRads(o LatLng) float64 {
	sinLat := math.Sin((o.lat - g.lat) / 2)
	sinLng := math.Sin((o.lng - g.lng) / 2)
	a := sinLat*sinLat + math.Cos(g.lat)*math.Cos(o.lat)*sinLng*sinLng
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// DistanceKm returns the great circle distance to o in kilometers.
func (g LatLng) DistanceKm(o LatLng) float64 {
	return g.DistanceRads(o) * earthRadiusKm
}

// DistanceM returns the great circle distance to o in meters.
func (g LatLng) DistanceM(o LatLng) float64 {
	return g.DistanceKm(o) * 1000
}

// posAngle normalizes an angle into [0, 2pi).
func posAngle(rads float64) float64 {
	if rads < 0 {
		return rads + 2*math.Pi
	}
	if rads >= 2*math.Pi {
		return rads - 2*math.Pi
	}
	return rads
}

// constrainLng normalizes a longitude into (-pi, pi].
func constrainLng(lng float64) float64 {
	for lng > math.Pi {
		lng -= 2 * math.Pi
	}
	for lng < -math.Pi {
		lng += 2 * math.Pi
	}
	return lng
}

// AzimuthTo returns the azimuth from g to o in radians.
func (g LatLng) AzimuthTo(o LatLng) float64 {
	return math.Atan2(
		math.Cos(o.lat)*math.Sin(o.lng-g.lng),
		math.Cos(g.lat)*math.Sin(o.lat)-math.Sin(g.lat)*math.Cos(o.lat)*math.Cos(o.lng-g.lng),
	)
}

// AtAzDistance returns the point at the given azimuth and great circle
// distance (both radians) from g.
func (g LatLng) AtAzDistance(az, distance float64) LatLng {
	if distance < epsilon {
		return g
	}
	az = posAngle(az)
	var out LatLng
	if az < epsilon || math.Abs(az-math.Pi) < epsilon {
		// due north or south
		if az < epsilon {
			out.lat = g.lat + distance
		} else {
			out.lat = g.lat - distance
		}
		switch {
		case math.Abs(out.lat-math.Pi/2) < epsilon:
			return LatLng{lat: math.Pi / 2}
		case math.Abs(out.lat+math.Pi/2) < epsilon:
			return LatLng{lat: -math.Pi / 2}
		}
		out.lng = constrainLng(g.lng)
		return out
	}
	sinLat := math.Sin(g.lat)*math.Cos(distance) + math.Cos(g.lat)*math.Sin(distance)*math.Cos(az)
	sinLat = clamp(sinLat, -1, 1)
	out.lat = math.Asin(sinLat)
	switch {
	case math.Abs(out.lat-math.Pi/2) < epsilon:
		return LatLng{lat: math.Pi / 2}
	case math.Abs(out.lat+math.Pi/2) < epsilon:
		return LatLng{lat: -math.Pi / 2}
	}
	cosLat := math.Cos(out.lat)
	sinLng := clamp(math.Sin(az)*math.Sin(distance)/cosLat, -1, 1)
	cosLng := clamp((math.Cos(distance)-math.Sin(g.lat)*sinLat)/math.Cos(g.lat)/cosLat, -1, 1)
	out.lng = constrainLng(g.lng + math.Atan2(sinLng, cosLng))
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// vec2d is a point in face-local planar coordinates.
type vec2d struct {
	x, y float64
}

func (v vec2d) mag() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y)
}

// vec3d is a point on the unit sphere in Cartesian coordinates.
type vec3d struct {
	x, y, z float64
}

func (g LatLng) toVec3d() vec3d {
	r := math.Cos(g.lat)
	return vec3d{
		x: math.Cos(g.lng) * r,
		y: math.Sin(g.lng) * r,
		z: math.Sin(g.lat),
	}
}

func (v vec3d) squareDistance(o vec3d) float64 {
	dx, dy, dz := v.x-o.x, v.y-o.y, v.z-o.z
	return dx*dx + dy*dy + dz*dz
}
