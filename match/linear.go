package match

import (
	"github.com/tsawler/wordgrid/geom"
	"github.com/tsawler/wordgrid/grid"
)

// Linear reports whether p appears in g starting at start and walking one
// cell per character in direction dir. The walk stops at the first mismatch
// or at the first probe outside the grid.
func Linear(g *grid.Grid, start geom.Point, dir geom.Direction, p Pattern) bool {
	return walk(g, start, dir, p, false)
}

// LinearEither reports whether p or its reverse appears from start in
// direction dir.
func LinearEither(g *grid.Grid, start geom.Point, dir geom.Direction, p Pattern) bool {
	return walk(g, start, dir, p, false) || walk(g, start, dir, p, true)
}

// walk compares p against the cells from start in direction dir. With
// reversed set, p is read from its last character.
func walk(g *grid.Grid, start geom.Point, dir geom.Direction, p Pattern, reversed bool) bool {
	if len(p) == 0 {
		return false
	}
	for i := range p {
		want := p[i]
		if reversed {
			want = p[len(p)-1-i]
		}
		r, ok := g.AtPoint(start.Step(dir, i))
		if !ok || r != want {
			return false
		}
	}
	return true
}
