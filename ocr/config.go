package ocr

// Config holds recognition settings
type Config struct {
	// Tesseract language code; "+" joins several, as in "eng+deu"
	Language string

	// Characters recognition may produce; empty allows any
	Whitelist string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Language:  "eng",
		Whitelist: GridWhitelist,
	}
}
