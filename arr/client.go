package arr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// apiKeyHeader carries the manager API key on every request.
//
//nolint:gosec // header name, not a credential
const apiKeyHeader = "X-Api-Key"

// Client dispatches requests to one manager instance. It is safe for
// concurrent use; the underlying HTTP client is shared by all calls.
type Client struct {
	api       API
	host      string
	apiKey    string
	username  string
	password  string
	userAgent string

	timeout      time.Duration
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration

	base       *http.Client
	httpClient *retryablehttp.Client
	logger     zerolog.Logger
}

// API identifies the remote application a Client talks to.
type API struct {
	// Name is the application name, used in logs.
	Name string
	// Version is the API path segment, e.g. "v3".
	Version string
	// Item is the collection item noun used in query keys such as
	// includeUnknownMovieItems.
	Item string
}

// New creates a request dispatcher for the API rooted at
// {host}/api/{api.Version}.
func New(host, apiKey string, api API, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if host == "" {
		return nil, ErrHostRequired
	}
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	host = strings.TrimRight(host, "/")
	parsed, err := url.Parse(host)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid host URL %q", host)
	}

	c := &Client{
		api:          api,
		host:         host,
		apiKey:       apiKey,
		userAgent:    defaultUserAgent,
		timeout:      defaultTimeout,
		retryWaitMin: defaultRetryWaitMin,
		retryWaitMax: defaultRetryWaitMax,
		logger:       logger.With().Str("app", api.Name).Str("host", host).Logger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	base := c.base
	if base == nil {
		base = &http.Client{Timeout: c.timeout}
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = base
	rc.RetryMax = c.retryMax
	rc.RetryWaitMin = c.retryWaitMin
	rc.RetryWaitMax = c.retryWaitMax
	rc.Logger = &leveledLogger{logger: c.logger}
	// Hand the last response back so its status can be mapped.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	c.httpClient = rc

	return c, nil
}

// Host returns the base URL of the manager instance
func (c *Client) Host() string {
	return c.host
}

// API returns the identity of the remote application
func (c *Client) API() API {
	return c.api
}

// Logger returns the logger used by the client
func (c *Client) Logger() *zerolog.Logger {
	return &c.logger
}

// URL composes {host}/api/{version}/{path} with the encoded query.
func (c *Client) URL(path string, params url.Values) string {
	u := c.host + "/api/" + c.api.Version + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// Do performs a request and returns the response together with its fully read
// body. A non-2xx status is returned as an *APIError alongside the response.
func (c *Client) Do(ctx context.Context, method, path string, params url.Values, body any) (*http.Response, []byte, error) {
	reqURL := c.URL(path, params)

	var payload interface{}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = data
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, reqURL, payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("method", method).
			Str("url", reqURL).
			Msg("Request failed")
		return nil, nil, fmt.Errorf("%w: %s %s: %w", ErrConnection, method, reqURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("%w: failed to read response body: %w", ErrConnection, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", reqURL).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, data, newAPIError(method, reqURL, resp.StatusCode, data)
	}

	return resp, data, nil
}

// call performs a request and decodes a JSON response into out. Empty
// bodies leave out untouched.
func (c *Client) call(ctx context.Context, method, path string, params url.Values, body, out any) error {
	_, data, err := c.Do(ctx, method, path, params, body)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Get performs a GET request and decodes the response into out
func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	return c.call(ctx, http.MethodGet, path, params, nil, out)
}

// Post performs a POST request with a JSON body and decodes the response into out
func (c *Client) Post(ctx context.Context, path string, params url.Values, body, out any) error {
	return c.call(ctx, http.MethodPost, path, params, body, out)
}

// Put performs a PUT request with a JSON body and decodes the response into out
func (c *Client) Put(ctx context.Context, path string, params url.Values, body, out any) error {
	return c.call(ctx, http.MethodPut, path, params, body, out)
}

// Delete performs a DELETE request. body is optional; the bulk editor
// endpoints take one.
func (c *Client) Delete(ctx context.Context, path string, params url.Values, body any) error {
	return c.call(ctx, http.MethodDelete, path, params, body, nil)
}
