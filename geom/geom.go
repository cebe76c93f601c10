package geom

import (
	"fmt"
	"strings"
)

// Point addresses a cell by row and column. Coordinates are signed so that a
// point one step past any edge is still representable.
type Point struct {
	Row, Col int
}

// Add returns p moved one step in direction d.
func (p Point) Add(d Direction) Point {
	return Point{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Step returns p moved n steps in direction d.
func (p Point) Step(d Direction, n int) Point {
	return Point{Row: p.Row + d.DRow*n, Col: p.Col + d.DCol*n}
}

// String returns the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is a unit step on the grid. Each component is -1, 0 or 1 and
// the two are never both zero.
type Direction struct {
	DRow, DCol int
}

// The eight compass directions. Rows grow downwards, so North is DRow -1.
var (
	North     = Direction{DRow: -1, DCol: 0}
	NorthEast = Direction{DRow: -1, DCol: 1}
	East      = Direction{DRow: 0, DCol: 1}
	SouthEast = Direction{DRow: 1, DCol: 1}
	South     = Direction{DRow: 1, DCol: 0}
	SouthWest = Direction{DRow: 1, DCol: -1}
	West      = Direction{DRow: 0, DCol: -1}
	NorthWest = Direction{DRow: -1, DCol: -1}
)

var all = [...]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var names = map[Direction]string{
	North:     "N",
	NorthEast: "NE",
	East:      "E",
	SouthEast: "SE",
	South:     "S",
	SouthWest: "SW",
	West:      "W",
	NorthWest: "NW",
}

// All returns the eight unit directions in clockwise order starting at North.
// The returned slice is a fresh copy.
func All() []Direction {
	out := make([]Direction, len(all))
	copy(out, all[:])
	return out
}

// Diagonals returns the four diagonal directions: NE, SE, SW, NW.
func Diagonals() []Direction {
	return []Direction{NorthEast, SouthEast, SouthWest, NorthWest}
}

// Orthogonals returns the four axis-aligned directions: N, E, S, W.
func Orthogonals() []Direction {
	return []Direction{North, East, South, West}
}

// Valid reports whether d is one of the eight unit directions.
func (d Direction) Valid() bool {
	if d.DRow == 0 && d.DCol == 0 {
		return false
	}
	return d.DRow >= -1 && d.DRow <= 1 && d.DCol >= -1 && d.DCol <= 1
}

// IsDiagonal reports whether d moves along both axes.
func (d Direction) IsDiagonal() bool {
	return d.DRow != 0 && d.DCol != 0
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// String returns the compass name of the direction ("N", "SE", ...), or the
// raw deltas for an invalid direction.
func (d Direction) String() string {
	if name, ok := names[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d,%d)", d.DRow, d.DCol)
}

// ParseDirection converts a compass name (case-insensitive) into a Direction.
func ParseDirection(name string) (Direction, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for d, n := range names {
		if n == upper {
			return d, nil
		}
	}
	return Direction{}, fmt.Errorf("unknown direction %q", name)
}

// ParseDirections parses a comma-separated list of compass names. The
// special values "all", "diagonal" and "orthogonal" expand to the matching
// sets. Duplicates are dropped, keeping the first occurrence.
func ParseDirections(list string) ([]Direction, error) {
	var out []Direction
	seen := make(map[Direction]bool)
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		var set []Direction
		switch strings.ToLower(field) {
		case "all":
			set = All()
		case "diagonal", "diagonals":
			set = Diagonals()
		case "orthogonal", "orthogonals":
			set = Orthogonals()
		default:
			d, err := ParseDirection(field)
			if err != nil {
				return nil, err
			}
			set = []Direction{d}
		}

		for _, d := range set {
			if !seen[d] {
				seen[d] = true
				out = append(out, d)
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no directions in %q", list)
	}
	return out, nil
}
