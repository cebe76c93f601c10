package match

import (
	"github.com/tsawler/wordgrid/geom"
	"github.com/tsawler/wordgrid/grid"
)

// halfDirections holds one direction of each of the four line axes.
var halfDirections = []geom.Direction{geom.East, geom.SouthEast, geom.South, geom.SouthWest}

// PlacementMatcher counts each straight-line placement of a pattern once,
// whichever way it reads. A palindrome found in both directions along the
// same cells is one placement, where LinearMatcher reports two.
type PlacementMatcher struct{}

// NewPlacementMatcher returns a placement matcher.
func NewPlacementMatcher() *PlacementMatcher {
	return &PlacementMatcher{}
}

// Name returns "placement".
func (m *PlacementMatcher) Name() string {
	return "placement"
}

// Validate rejects empty patterns.
func (m *PlacementMatcher) Validate(p Pattern) error {
	if len(p) == 0 {
		return ErrEmptyPattern
	}
	return nil
}

// axes returns the directions to walk from a cell. A one-character
// placement covers a single cell, so one axis is enough.
func (m *PlacementMatcher) axes(p Pattern) []geom.Direction {
	if len(p) == 1 {
		return halfDirections[:1]
	}
	return halfDirections
}

// CountAt counts the axes along which p or its reverse starts at cell at.
func (m *PlacementMatcher) CountAt(g *grid.Grid, at geom.Point, p Pattern) int {
	n := 0
	for _, d := range m.axes(p) {
		if LinearEither(g, at, d, p) {
			n++
		}
	}
	return n
}

// AppendAt appends one match per placement anchored at cell at. A placement
// that reads backwards from at is reported from its far end, in the
// direction it reads.
func (m *PlacementMatcher) AppendAt(dst []Match, g *grid.Grid, at geom.Point, p Pattern) []Match {
	for _, d := range m.axes(p) {
		switch {
		case Linear(g, at, d, p):
			dst = append(dst, Match{Kind: KindLinear, At: at, Direction: d, Length: len(p)})
		case LinearEither(g, at, d, p):
			dst = append(dst, Match{Kind: KindLinear, At: at.Step(d, len(p)-1), Direction: d.Opposite(), Length: len(p)})
		}
	}
	return dst
}
