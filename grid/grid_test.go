package grid

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/wordgrid/geom"
)

func mustParse(t *testing.T, s string) *Grid {
	t.Helper()
	g, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", s, err)
	}
	return g
}

func TestParse(t *testing.T) {
	g := mustParse(t, "MMMSXXMASM\nMSAMXMSMSA")

	if g.Height() != 2 || g.Width() != 10 {
		t.Fatalf("size = %dx%d, want 2x10", g.Height(), g.Width())
	}

	want := []string{"MMMSXXMASM", "MSAMXMSMSA"}
	for i, w := range want {
		if got := g.Row(i); got != w {
			t.Errorf("Row(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestParseLineEndings(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain", "AB\nCD"},
		{"trailing newline", "AB\nCD\n"},
		{"crlf", "AB\r\nCD\r\n"},
		{"mixed", "AB\r\nCD"},
		{"byte order mark", "\uFEFFAB\r\nCD\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.input)
			if got := g.String(); got != "AB\nCD" {
				t.Errorf("String() = %q, want %q", got, "AB\nCD")
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{"empty", "", ErrEmpty, 0},
		{"only newline", "\n", ErrEmpty, 0},
		{"blank lines", "\n\n\n", ErrEmpty, 0},
		{"short row", "ABC\nAB\nABC", ErrRagged, 2},
		{"long row", "ABC\nABC\nABCD", ErrRagged, 3},
		{"blank row between", "ABC\n\nABC", ErrRagged, 2},
		{"leading blank row", "\nABC", ErrRagged, 2},
		{"double trailing newline", "ABC\nABC\n\n", ErrRagged, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.input, g)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if tt.wantLine > 0 {
				var se *ShapeError
				if !errors.As(err, &se) {
					t.Fatalf("error %v is not a *ShapeError", err)
				}
				if se.Line != tt.wantLine {
					t.Errorf("ShapeError.Line = %d, want %d", se.Line, tt.wantLine)
				}
			}
		})
	}
}

func TestNewCopiesRows(t *testing.T) {
	rows := [][]rune{[]rune("AB"), []rune("CD")}
	g, err := New(rows)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	rows[0][0] = 'Z'
	if r, _ := g.At(0, 0); r != 'A' {
		t.Errorf("At(0,0) = %q after mutating input, want 'A'", r)
	}
}

func TestAtInBounds(t *testing.T) {
	g := mustParse(t, "ABC\nDEF\nGHI")

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := rune('A' + r*3 + c)
			got, ok := g.At(r, c)
			if !ok || got != want {
				t.Errorf("At(%d,%d) = %q, %v; want %q, true", r, c, got, ok, want)
			}
		}
	}
}

func TestAtOutOfBounds(t *testing.T) {
	g := mustParse(t, "ABCD\nEFGH\nIJKL")
	h, w := g.Height(), g.Width()

	var probes []geom.Point

	// One step outside every edge, along its full length.
	for c := -1; c <= w; c++ {
		probes = append(probes, geom.Point{Row: -1, Col: c}, geom.Point{Row: h, Col: c})
	}
	for r := -1; r <= h; r++ {
		probes = append(probes, geom.Point{Row: r, Col: -1}, geom.Point{Row: r, Col: w})
	}

	// Diagonal neighbours of the four corners, and far away points.
	probes = append(probes,
		geom.Point{Row: -1, Col: -1},
		geom.Point{Row: -1, Col: w},
		geom.Point{Row: h, Col: -1},
		geom.Point{Row: h, Col: w},
		geom.Point{Row: -100, Col: 2},
		geom.Point{Row: 1, Col: 1 << 30},
	)

	for _, p := range probes {
		if r, ok := g.AtPoint(p); ok {
			t.Errorf("AtPoint(%v) = %q, true; want absent", p, r)
		}
		if g.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestAtCorners(t *testing.T) {
	g := mustParse(t, "ABCD\nEFGH\nIJKL")

	corners := []struct {
		p    geom.Point
		want rune
	}{
		{geom.Point{Row: 0, Col: 0}, 'A'},
		{geom.Point{Row: 0, Col: 3}, 'D'},
		{geom.Point{Row: 2, Col: 0}, 'I'},
		{geom.Point{Row: 2, Col: 3}, 'L'},
	}

	for _, tt := range corners {
		got, ok := g.AtPoint(tt.p)
		if !ok || got != tt.want {
			t.Errorf("AtPoint(%v) = %q, %v; want %q, true", tt.p, got, ok, tt.want)
		}
	}
}

func TestRowOutOfRange(t *testing.T) {
	g := mustParse(t, "AB")
	if got := g.Row(-1); got != "" {
		t.Errorf("Row(-1) = %q, want empty", got)
	}
	if got := g.Row(1); got != "" {
		t.Errorf("Row(1) = %q, want empty", got)
	}
}

func TestPoints(t *testing.T) {
	g := mustParse(t, "ABC\nDEF")
	points := g.Points()
	if len(points) != 6 {
		t.Fatalf("len(Points()) = %d, want 6", len(points))
	}
	if points[0] != (geom.Point{Row: 0, Col: 0}) || points[5] != (geom.Point{Row: 1, Col: 2}) {
		t.Errorf("Points() not in row-major order: %v", points)
	}
	if points[3] != (geom.Point{Row: 1, Col: 0}) {
		t.Errorf("Points()[3] = %v, want (1,0)", points[3])
	}
}

func TestParseReader(t *testing.T) {
	g, err := ParseReader(strings.NewReader("XMAS\nSAMX\n"))
	if err != nil {
		t.Fatalf("ParseReader() error: %v", err)
	}
	if g.Height() != 2 || g.Width() != 4 {
		t.Errorf("size = %dx%d, want 2x4", g.Height(), g.Width())
	}
}

func TestOpen(t *testing.T) {
	g, err := Open("testdata/sample.txt", DefaultParseOptions())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if g.Height() != 10 || g.Width() != 10 {
		t.Errorf("size = %dx%d, want 10x10", g.Height(), g.Width())
	}

	if _, err := Open("testdata/missing.txt", DefaultParseOptions()); err == nil {
		t.Error("expected error for missing file")
	}
}
