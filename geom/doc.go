// Package geom provides the grid geometry shared by the scanning packages.
//
// # Points
//
// A [Point] addresses a cell by row and column. Coordinates are plain signed
// integers, so a probe one step past any edge is an ordinary value:
//
//	p := geom.Point{Row: 0, Col: 3}
//	next := p.Step(geom.North, 1) // (-1,3), outside every grid
//
// # Directions
//
// A [Direction] is a unit step with row and column deltas in {-1, 0, 1}.
// Rows grow downwards, so [North] is {-1, 0}.
//
// The canonical sets are:
//
//   - [All] - the eight compass directions, used by linear scans
//   - [Diagonals] - NE, SE, SW, NW, used by cross scans
//   - [Orthogonals] - N, E, S, W
//
// Each set function returns a fresh slice. Scans sum independent boolean
// checks, so results never depend on the order of a set.
//
// [ParseDirections] accepts compass names ("N,SE,w") plus the shorthands
// "all", "diagonal" and "orthogonal", for command-line use.
package geom
