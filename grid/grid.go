package grid

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/tsawler/wordgrid/geom"
)

var (
	// ErrEmpty is returned when the input contains no rows.
	ErrEmpty = errors.New("grid: empty input")

	// ErrRagged is returned when rows differ in length.
	ErrRagged = errors.New("grid: rows have unequal length")

	// ErrInvalidRune is returned when LettersOnly is set and a cell is not a letter.
	ErrInvalidRune = errors.New("grid: invalid character")
)

// ShapeError reports the first row whose width differs from the first row.
type ShapeError struct {
	Line  int // 1-based line number
	Width int // width of the offending line
	Want  int // width of the first line
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("grid: line %d has %d characters, want %d", e.Line, e.Width, e.Want)
}

// Unwrap lets errors.Is match ErrRagged.
func (e *ShapeError) Unwrap() error {
	return ErrRagged
}

// RuneError reports a cell that is not a letter.
type RuneError struct {
	Line   int // 1-based line number
	Column int // 1-based column
	Rune   rune
}

func (e *RuneError) Error() string {
	return fmt.Sprintf("grid: line %d column %d: %q is not a letter", e.Line, e.Column, e.Rune)
}

// Unwrap lets errors.Is match ErrInvalidRune.
func (e *RuneError) Unwrap() error {
	return ErrInvalidRune
}

// Grid is an immutable rectangular matrix of characters.
type Grid struct {
	cells  [][]rune
	height int
	width  int
}

// New builds a grid from pre-split rows. The rows are copied.
func New(rows [][]rune) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	width := len(rows[0])
	if width == 0 {
		for i, row := range rows {
			if len(row) != 0 {
				return nil, &ShapeError{Line: i + 1, Width: len(row), Want: 0}
			}
		}
		return nil, ErrEmpty
	}

	cells := make([][]rune, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, &ShapeError{Line: i + 1, Width: len(row), Want: width}
		}
		cells[i] = append([]rune(nil), row...)
	}

	return &Grid{cells: cells, height: len(cells), width: width}, nil
}

// byteOrderMark is written at the start of text files by some editors.
const byteOrderMark = "\uFEFF"

// Parse builds a grid from text with the default options.
func Parse(s string) (*Grid, error) {
	return ParseWithOptions(s, DefaultParseOptions())
}

// ParseReader reads all of r and parses it with the default options.
func ParseReader(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}
	return Parse(string(data))
}

// Open reads and parses a grid file with the given options.
func Open(filename string, opts ParseOptions) (*Grid, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return ParseWithOptions(string(data), opts)
}

// ParseWithOptions builds a grid from text, one row per line. A leading byte
// order mark and a single trailing newline are ignored, and "\r\n" line
// endings are accepted. Any other empty line, including one between rows, is
// a ragged row.
func ParseWithOptions(s string, opts ParseOptions) (*Grid, error) {
	s = strings.TrimPrefix(s, byteOrderMark)
	s = opts.Transform(s)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	if s == "" {
		return nil, ErrEmpty
	}

	lines := strings.Split(s, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if opts.TrimSpace {
			line = strings.TrimSpace(line)
		}
		rows[i] = []rune(line)

		if opts.LettersOnly {
			for j, r := range rows[i] {
				if !unicode.IsLetter(r) {
					return nil, &RuneError{Line: i + 1, Column: j + 1, Rune: r}
				}
			}
		}
	}

	return New(rows)
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// At returns the character at (row, col). The second result is false when
// the coordinates lie outside the grid.
func (g *Grid) At(row, col int) (rune, bool) {
	if row < 0 || col < 0 || row >= g.height || col >= g.width {
		return 0, false
	}
	return g.cells[row][col], true
}

// AtPoint is At for a geom.Point.
func (g *Grid) AtPoint(p geom.Point) (rune, bool) {
	return g.At(p.Row, p.Col)
}

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p geom.Point) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < g.height && p.Col < g.width
}

// Row returns row i as a string, or "" if i is out of range.
func (g *Grid) Row(i int) string {
	if i < 0 || i >= g.height {
		return ""
	}
	return string(g.cells[i])
}

// Points returns every cell coordinate in row-major order.
func (g *Grid) Points() []geom.Point {
	points := make([]geom.Point, 0, g.height*g.width)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			points = append(points, geom.Point{Row: r, Col: c})
		}
	}
	return points
}

// String returns the grid as newline-separated rows.
func (g *Grid) String() string {
	var sb strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}
