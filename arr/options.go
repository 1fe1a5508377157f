package arr

import (
	"net/http"
	"time"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultRetryWaitMin = 1 * time.Second
	defaultRetryWaitMax = 30 * time.Second
	defaultUserAgent    = "arrkit"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. It is ignored when a custom
// HTTP client is supplied with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient sets the underlying HTTP client. Sharing one client between
// several manager clients shares its connection pool.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.base = client
	}
}

// WithBasicAuth adds basic-auth credentials to every request, for managers
// sitting behind an authenticating reverse proxy.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithRetries enables retrying of connection errors and 5xx responses.
// The default is a single attempt.
func WithRetries(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		if maxRetries >= 0 {
			c.retryMax = maxRetries
		}
		if waitMin > 0 {
			c.retryWaitMin = waitMin
		}
		if waitMax > 0 {
			c.retryWaitMax = waitMax
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}
