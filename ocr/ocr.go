//go:build ocr

package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Client recognizes grids with Tesseract. A Client is not safe for
// concurrent use.
type Client struct {
	client *gosseract.Client
	config Config
}

// New creates a client with the default configuration.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a client with the given configuration.
func NewWithConfig(config Config) (*Client, error) {
	c := &Client{client: gosseract.NewClient(), config: config}
	if err := c.configure(); err != nil {
		c.client.Close()
		return nil, err
	}
	return c, nil
}

// configure pushes the configuration to Tesseract. Grids are read as one
// uniform block of text.
func (c *Client) configure() error {
	if c.config.Language != "" {
		if err := c.client.SetLanguage(c.config.Language); err != nil {
			return fmt.Errorf("failed to set language: %w", err)
		}
	}
	if c.config.Whitelist != "" {
		if err := c.client.SetWhitelist(c.config.Whitelist); err != nil {
			return fmt.Errorf("failed to set whitelist: %w", err)
		}
	}
	if err := c.client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return fmt.Errorf("failed to set page segmentation: %w", err)
	}
	return nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// SetLanguage switches the recognition language.
func (c *Client) SetLanguage(lang string) error {
	if err := c.client.SetLanguage(lang); err != nil {
		return fmt.Errorf("failed to set language: %w", err)
	}
	c.config.Language = lang
	return nil
}

// RecognizeGrid reads a block of letters from image data (PNG, JPEG, TIFF)
// and returns it as grid text, one row per line.
func (c *Client) RecognizeGrid(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return CleanGridText(text), nil
}
