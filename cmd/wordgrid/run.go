package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tsawler/wordgrid"
	"github.com/tsawler/wordgrid/geom"
	"github.com/tsawler/wordgrid/grid"
	"github.com/tsawler/wordgrid/match"
	"github.com/tsawler/wordgrid/render"
)

var (
	highlight = color.New(color.FgYellow, color.Bold)
	dim       = color.New(color.Faint)
)

func run(cmd *cobra.Command, opts *options, source string) error {
	if opts.noColor {
		color.NoColor = true
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	dirs, err := geom.ParseDirections(opts.directions)
	if err != nil {
		return err
	}

	var base *wordgrid.Search
	if source == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}
		base = wordgrid.FromString(string(data))
	} else {
		base = wordgrid.Open(source)
	}

	g, err := configure(base, opts, dirs).Grid()
	if err != nil {
		return fmt.Errorf("loading %s: %w", source, err)
	}
	logger.Debug("grid loaded", "source", source, "height", g.Height(), "width", g.Width())

	search := configure(wordgrid.FromGrid(g), opts, dirs)
	out := cmd.OutOrStdout()
	var all []match.Match

	for _, word := range nonEmpty(opts.words) {
		matches, err := search.FindLinear(word)
		if err != nil {
			return err
		}
		logger.Debug("linear search done", "word", word, "directions", opts.directions, "matches", len(matches))
		fmt.Fprintf(out, "%s %s: %d\n", color.CyanString("linear"), word, len(matches))
		all = append(all, matches...)
	}

	for _, word := range nonEmpty(opts.crosses) {
		matches, err := search.FindCross(word)
		if err != nil {
			return err
		}
		logger.Debug("cross search done", "word", word, "matches", len(matches))
		fmt.Fprintf(out, "%s %s: %d\n", color.MagentaString("cross"), word, len(matches))
		all = append(all, matches...)
	}

	if opts.show {
		fmt.Fprintln(out)
		fmt.Fprintln(out, showGrid(g, all))
	}

	if opts.pngPath != "" {
		if err := writeImage(opts.pngPath, g, all); err != nil {
			return err
		}
		logger.Info("image written", "path", opts.pngPath)
	}

	return nil
}

// configure applies the command line options to s.
func configure(s *wordgrid.Search, opts *options, dirs []geom.Direction) *wordgrid.Search {
	s = s.Directions(dirs...).Workers(opts.workers)
	if opts.normalize {
		s = s.Normalize()
	}
	if opts.upper {
		s = s.UpperCase()
	}
	if opts.letters {
		s = s.LettersOnly()
	}
	if opts.lang != "" {
		s = s.Language(opts.lang)
	}
	return s
}

// showGrid renders g for the terminal. Without color, uncovered cells are
// blanked out instead of dimmed.
func showGrid(g *grid.Grid, matches []match.Match) string {
	if color.NoColor {
		return render.Text(g, matches)
	}

	mask := render.Mask(g, matches)
	var sb strings.Builder
	for row := 0; row < g.Height(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.Width(); col++ {
			r, _ := g.At(row, col)
			if mask[row][col] {
				sb.WriteString(highlight.Sprint(string(r)))
			} else {
				sb.WriteString(dim.Sprint(string(r)))
			}
		}
	}
	return sb.String()
}

func writeImage(path string, g *grid.Grid, matches []match.Match) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image: %w", err)
	}
	if err := render.WritePNG(f, render.Image(g, matches, render.DefaultConfig())); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func nonEmpty(words []string) []string {
	var out []string
	for _, w := range words {
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
