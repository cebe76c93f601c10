package wordgrid

import (
	"github.com/tsawler/wordgrid/geom"
	"github.com/tsawler/wordgrid/grid"
)

// SearchOptions holds configuration for loading a grid and scanning it.
type SearchOptions struct {
	// Linear scan directions; nil means all eight
	directions []geom.Direction

	// Row-parallel scanning
	workers int

	// Text handling, applied to the grid and to every searched word
	parse grid.ParseOptions

	// Tesseract language for image sources, such as "eng"
	ocrLanguage string
}

// defaultOptions returns the default search options.
func defaultOptions() SearchOptions {
	return SearchOptions{
		directions:  nil, // nil means all directions
		workers:     1,
		parse:       grid.DefaultParseOptions(),
		ocrLanguage: "",
	}
}

// clone creates a deep copy of SearchOptions.
func (o SearchOptions) clone() SearchOptions {
	newOpts := SearchOptions{
		workers:     o.workers,
		parse:       o.parse,
		ocrLanguage: o.ocrLanguage,
	}

	// Deep copy directions slice
	if o.directions != nil {
		newOpts.directions = make([]geom.Direction, len(o.directions))
		copy(newOpts.directions, o.directions)
	}

	return newOpts
}
