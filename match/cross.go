package match

import (
	"github.com/tsawler/wordgrid/geom"
	"github.com/tsawler/wordgrid/grid"
)

// Cross reports whether p forms an X centered on center: the center cell
// holds the middle character of p, and both diagonal axes through it read
// as p forwards or backwards. The two axes are checked independently, so
// there are four accepted orientations.
//
// Patterns that are not cross-shaped never match.
func Cross(g *grid.Grid, center geom.Point, p Pattern) bool {
	mid, ok := p.Center()
	if !ok || !p.IsCrossShaped() {
		return false
	}
	if r, ok := g.AtPoint(center); !ok || r != mid {
		return false
	}

	return axis(g, center, geom.NorthWest, p) && axis(g, center, geom.NorthEast, p)
}

// axis checks the diagonal through center that starts arm cells away in
// direction from and runs the opposite way.
func axis(g *grid.Grid, center geom.Point, from geom.Direction, p Pattern) bool {
	start := center.Step(from, p.Arm())
	dir := from.Opposite()
	return walk(g, start, dir, p, false) || walk(g, start, dir, p, true)
}
