package geom

import (
	"iter"

	planar "github.com/ctessum/geom"

	"github.com/mohammed-shakir/hexgrid/pkg/h3"
)

// cellCenterIn reports whether the cell's center point lies inside the
// ring set. A center exactly on a boundary counts as inside, so cells
// straddling a shared edge land in both adjacent polygons.
func cellCenterIn(shape planar.Polygon, c h3.Cell) bool {
	return planarPoint(c.LatLng()).Within(shape) != planar.Outside
}

// seeds locates starting cells whose centers are inside the ring set,
// probing the centroid and every outer ring vertex with its immediate
// neighborhood. Several seeds keep lobes connected only by a
// thinner-than-a-cell neck from being missed. No seed at all means the
// shape is thinner than a cell everywhere and covers nothing at this
// resolution.
func seeds(shape planar.Polygon, outer []h3.LatLng, res h3.Resolution) []h3.Cell {
	var found []h3.Cell
	have := make(map[h3.Cell]struct{})
	probe := func(ll h3.LatLng) {
		c, err := h3.LatLngToCell(ll, res)
		if err != nil {
			return
		}
		for _, cand := range append([]h3.Cell{c}, c.Neighbors()...) {
			if _, dup := have[cand]; dup {
				continue
			}
			if cellCenterIn(shape, cand) {
				have[cand] = struct{}{}
				found = append(found, cand)
			}
		}
	}

	centroid := shape.Centroid()
	if ll, err := h3.NewLatLng(centroid.Y, centroid.X); err == nil {
		probe(ll)
	}
	for _, v := range outer {
		probe(v)
	}
	return found
}

// rasterize grows the covering outward from the seed cells. The frontier
// expands through grid adjacency only; a cell whose center tests outside
// is recorded as visited but never expanded, so the expansion cannot
// leak across the boundary.
func rasterize(shape planar.Polygon, outer []h3.LatLng, res h3.Resolution) iter.Seq[h3.Cell] {
	return func(yield func(h3.Cell) bool) {
		queue := seeds(shape, outer, res)
		visited := make(map[h3.Cell]struct{}, len(queue))
		for _, s := range queue {
			visited[s] = struct{}{}
			if !yield(s) {
				return
			}
		}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, n := range cur.Neighbors() {
				if _, done := visited[n]; done {
					continue
				}
				visited[n] = struct{}{}
				if !cellCenterIn(shape, n) {
					continue
				}
				if !yield(n) {
					return
				}
				queue = append(queue, n)
			}
		}
	}
}
