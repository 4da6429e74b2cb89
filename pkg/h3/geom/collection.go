package geom

import (
	"iter"

	"github.com/mohammed-shakir/hexgrid/pkg/h3"
)

// Collection is a heterogeneous bag of geometries. Its covering is the
// concatenation of the members' coverings, duplicates included.
type Collection []Geometry

func (g Collection) MaxCellsCount(res h3.Resolution) int {
	n := 0
	for _, m := range g {
		n += m.MaxCellsCount(res)
	}
	return n
}

func (g Collection) ToCells(res h3.Resolution) iter.Seq[h3.Cell] {
	return func(yield func(h3.Cell) bool) {
		for _, m := range g {
			for c := range m.ToCells(res) {
				if !yield(c) {
					return
				}
			}
		}
	}
}
