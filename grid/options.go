package grid

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// ParseOptions controls how text is turned into a grid.
type ParseOptions struct {
	// Normalize applies Unicode NFC composition and folds fullwidth and
	// halfwidth forms to their canonical width, so "ＸＭＡＳ" reads as "XMAS".
	// OCR and HTML sources produce these forms often.
	Normalize bool

	// UpperCase maps every cell to upper case after normalization.
	UpperCase bool

	// Language selects language-specific case mapping for UpperCase, such
	// as the dotted capital I of Turkish. The zero value is language.Und.
	Language language.Tag

	// TrimSpace removes leading and trailing whitespace from every line.
	TrimSpace bool

	// LettersOnly rejects any cell that is not a Unicode letter.
	LettersOnly bool
}

// DefaultParseOptions returns options that keep the input exactly as given.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Normalize:   false,
		UpperCase:   false,
		Language:    language.Und,
		TrimSpace:   false,
		LettersOnly: false,
	}
}

// Transform applies the text-level transformations selected by o. Patterns
// searched in a grid parsed with o should go through the same transform.
func (o ParseOptions) Transform(s string) string {
	if o.Normalize {
		s = norm.NFC.String(s)
		s = width.Fold.String(s)
	}
	if o.UpperCase {
		s = cases.Upper(o.Language).String(s)
	}
	return s
}
