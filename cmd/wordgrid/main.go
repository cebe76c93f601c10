// Command wordgrid counts word occurrences in a letter grid.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// options holds the command line flags.
type options struct {
	words      []string
	crosses    []string
	directions string
	workers    int
	normalize  bool
	upper      bool
	letters    bool
	lang       string
	show       bool
	pngPath    string
	noColor    bool
	verbose    bool
}

// newRootCmd builds the wordgrid command.
func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "wordgrid [flags] FILE|-",
		Short: "Count word occurrences in a letter grid",
		Long: `Wordgrid reads a letter grid and counts how often words appear in it.

A word is found in a straight line in any of the eight directions, or as a
cross where it reads along both diagonals through a shared center cell.

The grid can be plain text (one row per line), an HTML page with a table or
pre block, or a PNG/JPEG/TIFF image when built with -tags ocr. Use - to read
text from standard input.

Examples:
  # Count XMAS in lines and MAS as crosses
  wordgrid puzzle.txt

  # Only diagonal lines, case-insensitive
  wordgrid --word xmas --upper --directions diagonal puzzle.html

  # Print the grid with every match highlighted and save a picture
  wordgrid --show --png matches.png puzzle.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&opts.words, "word", []string{"XMAS"}, "Word to count in straight lines (repeatable)")
	flags.StringSliceVar(&opts.crosses, "cross", []string{"MAS"}, "Word to count as diagonal crosses (repeatable)")
	flags.StringVar(&opts.directions, "directions", "all", "Comma-separated line directions: N,NE,E,SE,S,SW,W,NW, all, diagonal, orthogonal")
	flags.IntVar(&opts.workers, "workers", 1, "Goroutines sharing the rows of each scan")
	flags.BoolVar(&opts.normalize, "normalize", false, "Compose accents and fold fullwidth letters")
	flags.BoolVar(&opts.upper, "upper", false, "Ignore case by upper-casing grid and words")
	flags.BoolVar(&opts.letters, "letters-only", false, "Reject grids holding anything other than letters")
	flags.StringVar(&opts.lang, "lang", "", "Language for case mapping and OCR, such as en, tur or eng+deu")
	flags.BoolVar(&opts.show, "show", false, "Print the grid with matched cells highlighted")
	flags.StringVar(&opts.pngPath, "png", "", "Write the grid with matched cells highlighted to a PNG file")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
