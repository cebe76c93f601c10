package ocr

import (
	"errors"
	"strings"
	"unicode"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// GridWhitelist restricts recognition to the letters a grid may hold.
const GridWhitelist = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CleanGridText turns raw OCR output into grid text. Tesseract reports the
// gaps between printed letters as spaces and separates text blocks with
// blank lines, so every whitespace rune inside a line is removed and blank
// lines are dropped.
func CleanGridText(text string) string {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		row := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, line)
		if row != "" {
			rows = append(rows, row)
		}
	}
	return strings.Join(rows, "\n")
}
