// Package wordgrid provides a fluent API for counting word occurrences in
// letter grids read from text, HTML, or images.
//
// Basic usage:
//
//	n, err := wordgrid.Open("puzzle.txt").CountLinear("XMAS")
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	n, err := wordgrid.Open("puzzle.html").
//	    Normalize().
//	    UpperCase().
//	    Directions(geom.Diagonals()...).
//	    CountLinear("xmas")
//
// The grid, match, and scan packages are available for lower-level use.
package wordgrid

import (
	"github.com/tsawler/wordgrid/grid"
)

// Open returns a Search over the grid stored in filename. The file is read
// by each terminal operation; its format is taken from the extension, or
// from its content when the extension is not recognized.
//
// Example:
//
//	n, err := wordgrid.Open("puzzle.txt").CountCross("MAS")
func Open(filename string) *Search {
	return &Search{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromString returns a Search over a grid given as text, one row per line.
//
// Example:
//
//	n, err := wordgrid.FromString("XMAS\nMASX").CountLinear("XMAS")
func FromString(s string) *Search {
	return &Search{
		text:     s,
		fromText: true,
		options:  defaultOptions(),
	}
}

// FromGrid returns a Search over an already built grid. Text handling
// options do not change g but still apply to searched words.
//
// Example:
//
//	g, err := grid.Parse(text)
//	if err != nil {
//	    // handle error
//	}
//	n, err := wordgrid.FromGrid(g).CountLinear("XMAS")
func FromGrid(g *grid.Grid) *Search {
	return &Search{
		grid:    g,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	n := wordgrid.Must(wordgrid.Open("puzzle.txt").CountLinear("XMAS"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
