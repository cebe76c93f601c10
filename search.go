package wordgrid

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/tsawler/wordgrid/format"
	"github.com/tsawler/wordgrid/geom"
	"github.com/tsawler/wordgrid/grid"
	"github.com/tsawler/wordgrid/htmlgrid"
	"github.com/tsawler/wordgrid/match"
	"github.com/tsawler/wordgrid/ocr"
	"github.com/tsawler/wordgrid/scan"
)

// ErrUnsupportedFormat is returned when a file is neither text, HTML, nor a
// supported image.
var ErrUnsupportedFormat = errors.New("unsupported grid format")

// Search provides a fluent interface for counting and locating words in a
// grid. Each configuration method returns a new Search instance, making it
// safe for concurrent use and allowing method chaining.
type Search struct {
	// Source (exactly one is set)
	filename string
	text     string
	fromText bool
	grid     *grid.Grid

	// Configuration
	options SearchOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Search with a deep copy of options.
func (s *Search) clone() *Search {
	return &Search{
		filename: s.filename,
		text:     s.text,
		fromText: s.fromText,
		grid:     s.grid,
		options:  s.options.clone(),
		err:      s.err,
	}
}

// ============================================================================
// Configuration Methods (return new Search instance)
// ============================================================================

// Directions restricts linear searches to the given directions. Multiple
// calls are cumulative and a repeated direction is walked once.
//
// Example:
//
//	n, err := wordgrid.Open("puzzle.txt").Directions(geom.Diagonals()...).CountLinear("XMAS")
func (s *Search) Directions(dirs ...geom.Direction) *Search {
	newSearch := s.clone()
	for _, d := range dirs {
		if !d.Valid() {
			if newSearch.err == nil {
				newSearch.err = fmt.Errorf("invalid direction %s", d)
			}
			return newSearch
		}
	}
	for _, d := range dirs {
		if !slices.Contains(newSearch.options.directions, d) {
			newSearch.options.directions = append(newSearch.options.directions, d)
		}
	}
	return newSearch
}

// Workers spreads the rows of each scan over n goroutines. Counts and match
// order do not depend on n.
func (s *Search) Workers(n int) *Search {
	newSearch := s.clone()
	newSearch.options.workers = n
	return newSearch
}

// Normalize composes decomposed accents and folds fullwidth letters, in the
// grid and in every searched word.
func (s *Search) Normalize() *Search {
	newSearch := s.clone()
	newSearch.options.parse.Normalize = true
	return newSearch
}

// UpperCase makes searches case-insensitive by upper-casing the grid and
// every searched word.
//
// Example:
//
//	n, err := wordgrid.FromString("xmas").UpperCase().CountLinear("Xmas")
func (s *Search) UpperCase() *Search {
	newSearch := s.clone()
	newSearch.options.parse.UpperCase = true
	return newSearch
}

// LettersOnly rejects grids holding anything other than letters.
func (s *Search) LettersOnly() *Search {
	newSearch := s.clone()
	newSearch.options.parse.LettersOnly = true
	return newSearch
}

// Language sets the language used for case mapping and, for image sources,
// for recognition. lang is a BCP 47 tag such as "en" or "tr-TR", or a
// Tesseract code such as "eng" or "deu_frak". Several languages joined with
// "+" are all passed to recognition; the first one drives case mapping.
//
// Example:
//
//	n, err := wordgrid.Open("scan.png").Language("de+en").CountLinear("XMAS")
func (s *Search) Language(lang string) *Search {
	newSearch := s.clone()

	var codes []string
	var caseTag language.Tag
	for i, part := range strings.Split(lang, "+") {
		code, tag, err := tesseractCode(part)
		if err != nil {
			if newSearch.err == nil {
				newSearch.err = fmt.Errorf("invalid language %q: %w", lang, err)
			}
			return newSearch
		}
		if i == 0 {
			caseTag = tag
		}
		codes = append(codes, code)
	}

	newSearch.options.parse.Language = caseTag
	newSearch.options.ocrLanguage = strings.Join(codes, "+")
	return newSearch
}

// tesseractCode maps one language name to the ISO 639-3 code Tesseract
// names its models by. Names that already are such a code, with an optional
// script suffix as in "deu_frak", are kept.
func tesseractCode(name string) (string, language.Tag, error) {
	base, _, _ := strings.Cut(name, "_")
	tag, err := language.Parse(base)
	if err != nil {
		return "", language.Und, err
	}
	if len(base) == 3 && base == strings.ToLower(base) {
		return name, tag, nil
	}
	b, _ := tag.Base()
	return b.ISO3(), tag, nil
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Grid loads and returns the grid.
func (s *Search) Grid() (*grid.Grid, error) {
	if s.err != nil {
		return nil, s.err
	}

	switch {
	case s.grid != nil:
		return s.grid, nil
	case s.fromText:
		return grid.ParseWithOptions(s.text, s.options.parse)
	case s.filename == "":
		return nil, fmt.Errorf("no filename specified")
	}

	file, err := os.Open(s.filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	f := format.Detect(s.filename)
	if f == format.Unknown {
		if f, err = format.DetectFromReader(file); err != nil {
			return nil, fmt.Errorf("detecting format: %w", err)
		}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if len(data) == 0 {
		// An empty file of any name is an empty grid.
		f = format.Text
	}

	text, err := s.sourceText(f, data)
	if err != nil {
		return nil, err
	}

	g, err := grid.ParseWithOptions(text, s.options.parse)
	if err != nil {
		return nil, fmt.Errorf("parsing %s grid: %w", f, err)
	}
	return g, nil
}

// CountLinear counts the straight-line occurrences of word in every
// configured direction.
//
// Example:
//
//	n, err := wordgrid.Open("puzzle.txt").CountLinear("XMAS")
func (s *Search) CountLinear(word string) (int, error) {
	g, p, err := s.prepare(word, match.NewPattern)
	if err != nil {
		return 0, err
	}
	return s.scanner().CountLinear(g, p), nil
}

// CountCross counts the cells where word crosses itself on both diagonals.
// word must have odd length of at least three.
//
// Example:
//
//	n, err := wordgrid.Open("puzzle.txt").CountCross("MAS")
func (s *Search) CountCross(word string) (int, error) {
	g, p, err := s.prepare(word, match.NewCrossPattern)
	if err != nil {
		return 0, err
	}
	return s.scanner().CountCross(g, p), nil
}

// FindLinear returns every straight-line occurrence of word, in row-major
// order of the start cell.
func (s *Search) FindLinear(word string) ([]match.Match, error) {
	g, p, err := s.prepare(word, match.NewPattern)
	if err != nil {
		return nil, err
	}
	return s.scanner().FindLinear(g, p), nil
}

// FindCross returns every cross occurrence of word, in row-major order of
// the center cell.
func (s *Search) FindCross(word string) ([]match.Match, error) {
	g, p, err := s.prepare(word, match.NewCrossPattern)
	if err != nil {
		return nil, err
	}
	return s.scanner().FindCross(g, p), nil
}

// Count counts word with the matcher registered under name, such as
// "linear" or "cross".
func (s *Search) Count(name, word string) (int, error) {
	g, p, err := s.prepare(word, match.NewPattern)
	if err != nil {
		return 0, err
	}
	return s.scanner().Run(g, name, p)
}

// prepare loads the grid and builds the pattern for word with the same text
// handling as the grid.
func (s *Search) prepare(word string, newPattern func(string) (match.Pattern, error)) (*grid.Grid, match.Pattern, error) {
	if s.err != nil {
		return nil, nil, s.err
	}

	p, err := newPattern(s.options.parse.Transform(word))
	if err != nil {
		return nil, nil, fmt.Errorf("word %q: %w", word, err)
	}

	g, err := s.Grid()
	if err != nil {
		return nil, nil, err
	}
	return g, p, nil
}

func (s *Search) scanner() *scan.Scanner {
	return scan.NewWithConfig(scan.Config{
		Directions: s.options.directions,
		Workers:    s.options.workers,
	})
}

// sourceText turns file content of format f into grid text.
func (s *Search) sourceText(f format.Format, data []byte) (string, error) {
	switch {
	case f == format.Text:
		return string(data), nil

	case f == format.HTML:
		rows, err := htmlgrid.Extract(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("failed to read HTML grid: %w", err)
		}
		return strings.Join(rows, "\n"), nil

	case f.IsImage():
		return s.recognize(data)

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s.filename)
	}
}

// recognize runs OCR over image data.
func (s *Search) recognize(data []byte) (string, error) {
	config := ocr.DefaultConfig()
	if s.options.ocrLanguage != "" {
		config.Language = s.options.ocrLanguage
	}

	client, err := ocr.NewWithConfig(config)
	if err != nil {
		return "", fmt.Errorf("failed to create OCR client: %w", err)
	}
	defer client.Close()

	text, err := client.RecognizeGrid(data)
	if err != nil {
		return "", fmt.Errorf("failed to recognize grid: %w", err)
	}
	return text, nil
}
