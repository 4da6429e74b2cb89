// Package geom converts vector geometry into covering cell sets.
//
// A Geometry is one of ten closed variants (Point, Line, LineString,
// Polygon, MultiPoint, MultiLineString, MultiPolygon, Rect, Triangle,
// Collection). Coordinates are stored in radians and validated at
// construction; degree constructors convert on the way in. Every variant
// answers two questions: an upper bound on how many cells its covering
// can contain at a resolution, and the covering itself as a lazy
// sequence.
//
// Coverings of multi-part geometries are concatenations of their
// members' coverings. Members sharing a boundary can both produce the
// boundary cells, so the concatenation may contain duplicates; callers
// that need a set must deduplicate themselves.
package geom
