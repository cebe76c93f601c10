package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/tsawler/wordgrid/geom"
	"github.com/tsawler/wordgrid/grid"
	"github.com/tsawler/wordgrid/match"
	"github.com/tsawler/wordgrid/scan"
)

func mustGrid(t *testing.T, s string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(s)
	if err != nil {
		t.Fatalf("grid.Parse() error: %v", err)
	}
	return g
}

func TestText(t *testing.T) {
	g := mustGrid(t, "..X...\n.SAMX.\n.A..A.\nXMAS.S\n.X....")
	matches := scan.New().FindLinear(g, match.Pattern("XMAS"))
	if len(matches) != 4 {
		t.Fatalf("FindLinear() = %d matches, want 4", len(matches))
	}

	want := "..X...\n.SAMX.\n.A..A.\nXMAS.S\n.X...."
	if got := Text(g, matches); got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestTextBlanksUncovered(t *testing.T) {
	g := mustGrid(t, "XMASQ\nQQQQQ")
	matches := []match.Match{{Kind: match.KindLinear, At: geom.Point{}, Direction: geom.East, Length: 4}}
	if got := Text(g, matches); got != "XMAS.\n....." {
		t.Errorf("Text() = %q", got)
	}

	if got := Text(g, nil); got != ".....\n....." {
		t.Errorf("Text(nil) = %q", got)
	}
}

func TestMaskCross(t *testing.T) {
	g := mustGrid(t, "MXS\nXAX\nMXS")
	matches := scan.New().FindCross(g, match.Pattern("MAS"))
	mask := Mask(g, matches)

	want := [][]bool{
		{true, false, true},
		{false, true, false},
		{true, false, true},
	}
	for r := range want {
		for c := range want[r] {
			if mask[r][c] != want[r][c] {
				t.Errorf("mask[%d][%d] = %v, want %v", r, c, mask[r][c], want[r][c])
			}
		}
	}
}

func TestMaskIgnoresOutsideCells(t *testing.T) {
	g := mustGrid(t, "AB")
	matches := []match.Match{{Kind: match.KindLinear, At: geom.Point{Row: 0, Col: 1}, Direction: geom.East, Length: 3}}
	mask := Mask(g, matches)
	if mask[0][0] || !mask[0][1] {
		t.Errorf("Mask() = %v", mask)
	}
}

func TestImage(t *testing.T) {
	g := mustGrid(t, "XMAS\nQQQQ")
	matches := []match.Match{{Kind: match.KindLinear, At: geom.Point{}, Direction: geom.East, Length: 4}}
	config := DefaultConfig()

	img := Image(g, matches, config)

	b := img.Bounds()
	wantW := 4*config.CellSize + 2*config.Padding
	wantH := 2*config.CellSize + 2*config.Padding
	if b.Dx() != wantW || b.Dy() != wantH {
		t.Fatalf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}

	// Corner pixel of the margin is background.
	if got := img.At(0, 0); !sameColor(got, config.Background) {
		t.Errorf("margin pixel = %v, want background", got)
	}

	// Top-left pixel of a covered cell is highlight; of an uncovered cell,
	// background.
	covered := img.At(config.Padding+1, config.Padding+1)
	if !sameColor(covered, config.Highlight) {
		t.Errorf("covered cell pixel = %v, want highlight", covered)
	}
	uncovered := img.At(config.Padding+1, config.Padding+config.CellSize+1)
	if !sameColor(uncovered, config.Background) {
		t.Errorf("uncovered cell pixel = %v, want background", uncovered)
	}

	// Each covered cell has some glyph pixels drawn in the foreground.
	for col := 0; col < 4; col++ {
		if !hasColor(img, col, 0, config, config.Foreground) {
			t.Errorf("cell (0,%d) has no foreground pixels", col)
		}
	}
	if !hasColor(img, 0, 1, config, config.Dim) {
		t.Error("cell (1,0) has no dimmed glyph pixels")
	}
}

func TestWritePNG(t *testing.T) {
	g := mustGrid(t, "AB\nCD")
	img := Image(g, nil, DefaultConfig())

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func hasColor(img interface {
	At(x, y int) color.Color
}, col, row int, config Config, want color.Color) bool {
	x0 := config.Padding + col*config.CellSize
	y0 := config.Padding + row*config.CellSize
	for y := y0; y < y0+config.CellSize; y++ {
		for x := x0; x < x0+config.CellSize; x++ {
			if sameColor(img.At(x, y), want) {
				return true
			}
		}
	}
	return false
}
