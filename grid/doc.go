// Package grid holds the immutable character grid that scans run over.
//
// A [Grid] is rectangular: every row has the same number of cells. It is
// built once from text, one row per line and one cell per rune, and never
// changes afterwards.
//
//	g, err := grid.Parse("XMAS\nSAMX")
//	if err != nil {
//	    // ErrEmpty, or a *ShapeError wrapping ErrRagged
//	}
//
// # Lookups
//
// [Grid.At] takes signed coordinates and reports whether they are inside
// the grid. Reading one step past an edge is an ordinary absent result, not
// a fault, so callers never pre-check bounds:
//
//	if r, ok := g.At(row-1, col+1); ok && r == 'M' {
//	    // ...
//	}
//
// # Parsing
//
// Malformed input fails at construction time. Empty input returns
// [ErrEmpty]; rows of different lengths, including a blank line between
// rows, return a [*ShapeError] naming the offending line.
//
// [ParseOptions] selects optional clean-up of the text before it is split:
//
//   - Normalize - Unicode NFC plus fullwidth/halfwidth folding
//   - UpperCase - map letters to upper case
//   - TrimSpace - strip surrounding whitespace from each line
//   - LettersOnly - reject cells that are not letters
package grid
