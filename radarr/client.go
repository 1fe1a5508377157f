// Package radarr is a client for the Radarr v3 API.
package radarr

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/s0up4200/arrkit/arr"
)

// API identifies Radarr to the dispatcher
var API = arr.API{Name: "radarr", Version: "v3", Item: "Movie"}

// DefaultURL is where Radarr listens out of the box
const DefaultURL = "http://localhost:7878"

// Client wraps the shared dispatcher with the movie endpoints
type Client struct {
	*arr.Client
}

// NewClient creates a new Radarr client
func NewClient(url, apiKey string, logger zerolog.Logger, opts ...arr.Option) (*Client, error) {
	c, err := arr.New(url, apiKey, API, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Radarr client: %w", err)
	}
	return &Client{Client: c}, nil
}
