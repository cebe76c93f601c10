// Package ocr reads letter grids from scanned or photographed puzzles.
//
// Recognition uses the Tesseract engine through gosseract and is compiled in
// only with the "ocr" build tag:
//
//	go build -tags ocr
//
// Tesseract must be installed on the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Without the tag, New and NewWithConfig return ErrOCRNotEnabled.
// CleanGridText is available either way.
package ocr
