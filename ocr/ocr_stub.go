//go:build !ocr

package ocr

// Client is a stub OCR client that returns errors for all operations.
type Client struct {
	config Config
}

// New returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// NewWithConfig returns an error indicating OCR support is not enabled.
func NewWithConfig(config Config) (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// RecognizeGrid returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeGrid(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}
