package scan

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/wordgrid/geom"
	"github.com/tsawler/wordgrid/grid"
	"github.com/tsawler/wordgrid/match"
)

// Config holds scanner configuration
type Config struct {
	// Directions walked by linear scans. Empty means all eight.
	Directions []geom.Direction

	// Number of goroutines sharing the rows of a scan. Values below 2 scan
	// sequentially.
	Workers int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Directions: geom.All(),
		Workers:    1,
	}
}

// Scanner counts and collects pattern occurrences over a whole grid.
type Scanner struct {
	config Config
	linear *match.LinearMatcher
	cross  *match.CrossMatcher
}

// New creates a scanner with the default configuration.
func New() *Scanner {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a scanner with the given configuration.
func NewWithConfig(config Config) *Scanner {
	return &Scanner{
		config: config,
		linear: match.NewLinearMatcher(config.Directions...),
		cross:  match.NewCrossMatcher(),
	}
}

// Config returns the scanner configuration.
func (s *Scanner) Config() Config {
	return s.config
}

// CountLinear counts every (cell, direction) pair from which p reads in a
// straight line.
func (s *Scanner) CountLinear(g *grid.Grid, p match.Pattern) int {
	return s.Count(g, s.linear, p)
}

// CountCross counts every cell on which p forms a cross.
func (s *Scanner) CountCross(g *grid.Grid, p match.Pattern) int {
	return s.Count(g, s.cross, p)
}

// FindLinear returns the linear matches of p in row-major order of their
// start cells, then in direction order.
func (s *Scanner) FindLinear(g *grid.Grid, p match.Pattern) []match.Match {
	return s.Find(g, s.linear, p)
}

// FindCross returns the cross matches of p in row-major order.
func (s *Scanner) FindCross(g *grid.Grid, p match.Pattern) []match.Match {
	return s.Find(g, s.cross, p)
}

// Count probes every cell of g with m and returns the total.
func (s *Scanner) Count(g *grid.Grid, m match.Matcher, p match.Pattern) int {
	counts := make([]int, g.Height())
	s.eachRow(g.Height(), func(row int) {
		n := 0
		for col := 0; col < g.Width(); col++ {
			n += m.CountAt(g, geom.Point{Row: row, Col: col}, p)
		}
		counts[row] = n
	})

	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// Find probes every cell of g with m and returns the matches in row-major
// order.
func (s *Scanner) Find(g *grid.Grid, m match.Matcher, p match.Pattern) []match.Match {
	rows := make([][]match.Match, g.Height())
	s.eachRow(g.Height(), func(row int) {
		var found []match.Match
		for col := 0; col < g.Width(); col++ {
			found = m.AppendAt(found, g, geom.Point{Row: row, Col: col}, p)
		}
		rows[row] = found
	})

	var all []match.Match
	for _, found := range rows {
		all = append(all, found...)
	}
	return all
}

// Run validates p against the named matcher and counts its occurrences.
// The "linear" name uses the scanner's own directions.
func (s *Scanner) Run(g *grid.Grid, name string, p match.Pattern) (int, error) {
	m, err := s.matcher(name)
	if err != nil {
		return 0, err
	}
	if err := m.Validate(p); err != nil {
		return 0, fmt.Errorf("%s pattern %q: %w", name, p, err)
	}
	return s.Count(g, m, p), nil
}

// matcher resolves a matcher name, preferring the scanner's configured
// instances over the global registry.
func (s *Scanner) matcher(name string) (match.Matcher, error) {
	switch name {
	case s.linear.Name():
		return s.linear, nil
	case s.cross.Name():
		return s.cross, nil
	}
	if m := match.GetMatcher(name); m != nil {
		return m, nil
	}
	return nil, fmt.Errorf("unknown matcher %q", name)
}

// eachRow calls fn once for every row index. Each call writes only to its
// own row's slot, so workers need no locking; results are combined by the
// caller after every row is done.
func (s *Scanner) eachRow(height int, fn func(row int)) {
	if s.config.Workers < 2 || height < 2 {
		for row := 0; row < height; row++ {
			fn(row)
		}
		return
	}

	var eg errgroup.Group
	eg.SetLimit(s.config.Workers)
	for row := 0; row < height; row++ {
		row := row
		eg.Go(func() error {
			fn(row)
			return nil
		})
	}
	// Wait only joins the workers: fn has no error to report.
	_ = eg.Wait()
}
