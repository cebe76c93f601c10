// Package scan runs matchers over every cell of a grid.
//
// A [Scanner] probes each cell with a [match.Matcher] and sums the results.
// There is no early exit at the grid level: every cell is checked, and the
// cost is O(height × width × directions × pattern length).
//
//	s := scan.New()
//	n := s.CountLinear(g, match.Pattern("XMAS")) // all eight directions
//	x := s.CountCross(g, match.Pattern("MAS"))
//
// FindLinear and FindCross return the individual matches in row-major
// order instead of a count.
//
// # Configuration
//
//	config := scan.DefaultConfig()
//	config.Directions = geom.Diagonals()
//	config.Workers = 4
//	s := scan.NewWithConfig(config)
//
// With Workers above 1, rows are shared among that many goroutines. Each
// row produces its own partial result and the partials are combined once
// all rows are done, so the answer is identical to a sequential scan.
package scan
