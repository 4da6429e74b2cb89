// Package h3 is a pure-Go implementation of the H3 discrete global grid:
// a hierarchy of hexagonal (and 12 pentagonal) cells covering the sphere
// across sixteen resolutions, identified by a compact, totally-ordered
// 64-bit index.
//
// The package replaces the cgo bindings previously used by this project.
// It provides the cell-index algebra (validation, parent/child navigation,
// ordered succ/pred enumeration, neighbor tests, local-IJ projection) and
// the coordinate conversions between cells and spherical positions. The
// geometry-to-cells conversion lives in the geom subpackage.
//
// All types are immutable values; every operation is safe for concurrent
// use without coordination.
package h3
