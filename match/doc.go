// Package match implements the per-cell pattern checks.
//
// # Linear matches
//
// [Linear] walks a [Pattern] from a start cell along one direction, one
// cell per character, and fails at the first mismatch or the first probe
// off the grid:
//
//	p, _ := match.NewPattern("XMAS")
//	ok := match.Linear(g, geom.Point{Row: 0, Col: 4}, geom.East, p)
//
// Scanning all eight directions with the forward pattern finds every
// reversed occurrence too, from its other end. [LinearEither] checks both
// readings in a single direction, for use with half direction sets.
//
// # Cross matches
//
// [Cross] anchors an odd-length pattern on its center character and
// requires both diagonals through that cell to read as the pattern, each
// independently forwards or backwards. For "MAS" this accepts the four
// arrangements
//
//	M.S   S.M   M.M   S.S
//	.A.   .A.   .A.   .A.
//	M.S   S.M   S.S   M.M
//
// # Matchers
//
// [Matcher] wraps a per-cell check for the scan package. Two are
// registered globally:
//
//   - "linear" - [LinearMatcher], all eight directions
//   - "cross" - [CrossMatcher]
//
// Further matchers can be added with [RegisterMatcher] and looked up with
// [GetMatcher].
package match
