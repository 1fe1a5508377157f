package arr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// Configuration errors
var (
	// ErrHostRequired indicates the client was created without a host
	ErrHostRequired = errors.New("host URL is required")
	// ErrAPIKeyRequired indicates the client was created without an API key
	ErrAPIKeyRequired = errors.New("API key is required")
)

// Response kinds. An *APIError for one of the mapped status codes unwraps to
// exactly one of these, so callers can use errors.Is.
var (
	// ErrUnauthorized is returned for 401 responses
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
	// ErrAccessRestricted is returned for 403 responses
	ErrAccessRestricted = errors.New("access restricted")
	// ErrNotFound is returned for 404 responses and for lookups with no result
	ErrNotFound = errors.New("resource not found")
	// ErrMethodNotAllowed is returned for 405 responses
	ErrMethodNotAllowed = errors.New("method not allowed")
	// ErrBadGateway is returned for 502 responses
	ErrBadGateway = errors.New("bad gateway")
	// ErrConnection wraps transport failures and timeouts
	ErrConnection = errors.New("connection failed")
)

// statusKinds maps the status codes with a dedicated error kind.
var statusKinds = map[int]error{
	http.StatusUnauthorized:     ErrUnauthorized,
	http.StatusForbidden:        ErrAccessRestricted,
	http.StatusNotFound:         ErrNotFound,
	http.StatusMethodNotAllowed: ErrMethodNotAllowed,
	http.StatusBadGateway:       ErrBadGateway,
}

// APIError represents a non-2xx response from a manager API
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
	Body       string
	kind       error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
}

// Unwrap returns the error kind for mapped status codes, nil otherwise.
func (e *APIError) Unwrap() error {
	return e.kind
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsAccessRestricted checks if the error indicates a forbidden response
func (e *APIError) IsAccessRestricted() bool {
	return e.StatusCode == http.StatusForbidden
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsMethodNotAllowed checks if the endpoint rejected the HTTP method
func (e *APIError) IsMethodNotAllowed() bool {
	return e.StatusCode == http.StatusMethodNotAllowed
}

// IsBadGateway checks if a proxy in front of the manager failed
func (e *APIError) IsBadGateway() bool {
	return e.StatusCode == http.StatusBadGateway
}

// newAPIError builds the error for a non-2xx response.
func newAPIError(method, url string, status int, body []byte) *APIError {
	return &APIError{
		StatusCode: status,
		Method:     method,
		URL:        url,
		Message:    errorMessage(body),
		Body:       string(body),
		kind:       statusKinds[status],
	}
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// *APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

const maxMessageLen = 200

// errorMessage extracts a readable message from an error body. The managers
// answer with either {"message": ...} or a list of validation failures.
func errorMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var single struct {
		Message     string `json:"message"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body, &single); err == nil && single.Message != "" {
		if single.Description != "" {
			return single.Message + ": " + single.Description
		}
		return single.Message
	}

	var failures []struct {
		PropertyName string `json:"propertyName"`
		ErrorMessage string `json:"errorMessage"`
	}
	if err := json.Unmarshal(body, &failures); err == nil && len(failures) > 0 {
		msgs := make([]string, 0, len(failures))
		for _, f := range failures {
			if f.PropertyName != "" {
				msgs = append(msgs, f.PropertyName+": "+f.ErrorMessage)
			} else {
				msgs = append(msgs, f.ErrorMessage)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return truncate(trimmed, maxMessageLen)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
