// Package readarr is a client for the Readarr v1 API.
package readarr

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/s0up4200/arrkit/arr"
)

// API identifies Readarr to the dispatcher
var API = arr.API{Name: "readarr", Version: "v1", Item: "Author"}

// DefaultURL is where Readarr listens out of the box
const DefaultURL = "http://localhost:8787"

// Client talks to one Readarr instance
type Client struct {
	*arr.Client
}

// NewClient creates a new Readarr client
func NewClient(url, apiKey string, logger zerolog.Logger, opts ...arr.Option) (*Client, error) {
	c, err := arr.New(url, apiKey, API, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Readarr client: %w", err)
	}
	return &Client{Client: c}, nil
}
