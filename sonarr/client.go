// Package sonarr is a client for the Sonarr v3 API.
package sonarr

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/s0up4200/arrkit/arr"
)

// API identifies Sonarr to the dispatcher
var API = arr.API{Name: "sonarr", Version: "v3", Item: "Series"}

// DefaultURL is where Sonarr listens out of the box
const DefaultURL = "http://localhost:8989"

// Client talks to one Sonarr instance. The endpoints every manager shares
// (tags, queue, commands, ...) come from the embedded dispatcher.
type Client struct {
	*arr.Client
}

// NewClient creates a new Sonarr client. No request is made; use
// TestConnection to verify the URL and API key.
func NewClient(url, apiKey string, logger zerolog.Logger, opts ...arr.Option) (*Client, error) {
	c, err := arr.New(url, apiKey, API, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sonarr client: %w", err)
	}
	return &Client{Client: c}, nil
}
