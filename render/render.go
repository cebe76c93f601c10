package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/wordgrid/grid"
	"github.com/tsawler/wordgrid/match"
)

// Blank replaces uncovered cells in Text output.
const Blank = '.'

// Config holds image rendering options
type Config struct {
	// Side of one square cell, in pixels
	CellSize int

	// Margin around the grid, in pixels
	Padding int

	Background color.Color
	Highlight  color.Color // fill of covered cells
	Foreground color.Color // letters of covered cells
	Dim        color.Color // letters of uncovered cells
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		CellSize:   20,
		Padding:    10,
		Background: color.White,
		Highlight:  color.RGBA{R: 0xFD, G: 0xE6, B: 0x8A, A: 0xFF},
		Foreground: color.Black,
		Dim:        color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF},
	}
}

// Mask returns, for every cell of g, whether some match covers it. Cells of
// matches that fall outside g are ignored.
func Mask(g *grid.Grid, matches []match.Match) [][]bool {
	mask := make([][]bool, g.Height())
	for i := range mask {
		mask[i] = make([]bool, g.Width())
	}
	for _, m := range matches {
		for _, p := range m.Cells() {
			if g.Contains(p) {
				mask[p.Row][p.Col] = true
			}
		}
	}
	return mask
}

// Text returns g with every cell not covered by a match replaced by Blank.
func Text(g *grid.Grid, matches []match.Match) string {
	mask := Mask(g, matches)

	var sb strings.Builder
	for row := 0; row < g.Height(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.Width(); col++ {
			if !mask[row][col] {
				sb.WriteRune(Blank)
				continue
			}
			r, _ := g.At(row, col)
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Image draws g with covered cells highlighted.
func Image(g *grid.Grid, matches []match.Match, config Config) *image.RGBA {
	mask := Mask(g, matches)
	cell := config.CellSize
	pad := config.Padding

	img := image.NewRGBA(image.Rect(0, 0, g.Width()*cell+2*pad, g.Height()*cell+2*pad))
	draw.Draw(img, img.Bounds(), image.NewUniform(config.Background), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	metrics := face.Metrics()
	baseline := (cell + metrics.Ascent.Ceil() - metrics.Descent.Ceil()) / 2

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			x0 := pad + col*cell
			y0 := pad + row*cell

			fg := config.Dim
			if mask[row][col] {
				fg = config.Foreground
				rect := image.Rect(x0, y0, x0+cell, y0+cell)
				draw.Draw(img, rect, image.NewUniform(config.Highlight), image.Point{}, draw.Src)
			}

			r, _ := g.At(row, col)
			s := string(r)
			advance := font.MeasureString(face, s).Round()

			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(fg),
				Face: face,
				Dot:  fixed.P(x0+(cell-advance)/2, y0+baseline),
			}
			d.DrawString(s)
		}
	}

	return img
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
