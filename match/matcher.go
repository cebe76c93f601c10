package match

import (
	"sort"

	"github.com/tsawler/wordgrid/geom"
	"github.com/tsawler/wordgrid/grid"
)

// Matcher is the interface for the per-cell match algorithms a scan runs.
type Matcher interface {
	// Name returns the matcher name
	Name() string

	// Validate reports whether p can be used with this matcher
	Validate(p Pattern) error

	// CountAt returns the number of matches anchored at cell at
	CountAt(g *grid.Grid, at geom.Point, p Pattern) int

	// AppendAt appends the matches anchored at cell at to dst
	AppendAt(dst []Match, g *grid.Grid, at geom.Point, p Pattern) []Match
}

// LinearMatcher anchors a pattern at a start cell and walks it along each
// of its directions.
type LinearMatcher struct {
	directions []geom.Direction
}

// NewLinearMatcher returns a matcher that walks the given directions, or
// all eight when none are given.
func NewLinearMatcher(directions ...geom.Direction) *LinearMatcher {
	if len(directions) == 0 {
		directions = geom.All()
	}
	return &LinearMatcher{directions: append([]geom.Direction(nil), directions...)}
}

// Name returns "linear".
func (m *LinearMatcher) Name() string {
	return "linear"
}

// Directions returns a copy of the directions the matcher walks.
func (m *LinearMatcher) Directions() []geom.Direction {
	return append([]geom.Direction(nil), m.directions...)
}

// Validate rejects empty patterns.
func (m *LinearMatcher) Validate(p Pattern) error {
	if len(p) == 0 {
		return ErrEmptyPattern
	}
	return nil
}

// CountAt counts the directions in which p starts at cell at.
func (m *LinearMatcher) CountAt(g *grid.Grid, at geom.Point, p Pattern) int {
	n := 0
	for _, d := range m.directions {
		if Linear(g, at, d, p) {
			n++
		}
	}
	return n
}

// AppendAt appends one match per direction in which p starts at cell at.
func (m *LinearMatcher) AppendAt(dst []Match, g *grid.Grid, at geom.Point, p Pattern) []Match {
	for _, d := range m.directions {
		if Linear(g, at, d, p) {
			dst = append(dst, Match{Kind: KindLinear, At: at, Direction: d, Length: len(p)})
		}
	}
	return dst
}

// CrossMatcher anchors a pattern on its center cell and checks both
// diagonals.
type CrossMatcher struct{}

// NewCrossMatcher returns a cross matcher.
func NewCrossMatcher() *CrossMatcher {
	return &CrossMatcher{}
}

// Name returns "cross".
func (m *CrossMatcher) Name() string {
	return "cross"
}

// Validate rejects patterns without a single center character.
func (m *CrossMatcher) Validate(p Pattern) error {
	if len(p) == 0 {
		return ErrEmptyPattern
	}
	if !p.IsCrossShaped() {
		return ErrCrossShape
	}
	return nil
}

// CountAt returns 1 if p forms a cross centered on at.
func (m *CrossMatcher) CountAt(g *grid.Grid, at geom.Point, p Pattern) int {
	if Cross(g, at, p) {
		return 1
	}
	return 0
}

// AppendAt appends the cross centered on at, if any.
func (m *CrossMatcher) AppendAt(dst []Match, g *grid.Grid, at geom.Point, p Pattern) []Match {
	if Cross(g, at, p) {
		dst = append(dst, Match{Kind: KindCross, At: at, Length: len(p)})
	}
	return dst
}

// Registry holds matchers by name.
type Registry struct {
	matchers map[string]Matcher
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		matchers: make(map[string]Matcher),
	}
}

// Register adds a matcher, replacing any matcher with the same name.
func (r *Registry) Register(m Matcher) {
	r.matchers[m.Name()] = m
}

// Get returns the matcher registered under name, or nil.
func (r *Registry) Get(name string) Matcher {
	return r.matchers[name]
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.matchers))
	for name := range r.matchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var globalRegistry = NewRegistry()

// RegisterMatcher registers a matcher globally.
func RegisterMatcher(m Matcher) {
	globalRegistry.Register(m)
}

// GetMatcher returns a globally registered matcher, or nil.
func GetMatcher(name string) Matcher {
	return globalRegistry.Get(name)
}

// ListMatchers returns the names of all globally registered matchers.
func ListMatchers() []string {
	return globalRegistry.List()
}

func init() {
	RegisterMatcher(NewLinearMatcher())
	RegisterMatcher(NewCrossMatcher())
	RegisterMatcher(NewPlacementMatcher())
}
