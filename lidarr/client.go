// Package lidarr is a client for the Lidarr v1 API.
package lidarr

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/s0up4200/arrkit/arr"
)

// API identifies Lidarr to the dispatcher
var API = arr.API{Name: "lidarr", Version: "v1", Item: "Artist"}

// DefaultURL is where Lidarr listens out of the box
const DefaultURL = "http://localhost:8686"

// Client talks to one Lidarr instance
type Client struct {
	*arr.Client
}

// NewClient creates a new Lidarr client
func NewClient(url, apiKey string, logger zerolog.Logger, opts ...arr.Option) (*Client, error) {
	c, err := arr.New(url, apiKey, API, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Lidarr client: %w", err)
	}
	return &Client{Client: c}, nil
}
