package arr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAPI = API{Name: "radarr", Version: "v3", Item: "Movie"}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(server.URL, "test-key", testAPI, zerolog.Nop(), opts...)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		apiKey  string
		wantErr error
		errMsg  string
	}{
		{
			name:   "valid config",
			host:   "http://localhost:7878",
			apiKey: "test-key",
		},
		{
			name:    "missing host",
			apiKey:  "test-key",
			wantErr: ErrHostRequired,
		},
		{
			name:    "missing API key",
			host:    "http://localhost:7878",
			wantErr: ErrAPIKeyRequired,
		},
		{
			name:   "host without scheme",
			host:   "localhost:7878",
			apiKey: "test-key",
			errMsg: "invalid host URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.host, tt.apiKey, testAPI, zerolog.Nop())
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.host, c.Host())
				assert.Equal(t, testAPI, c.API())
			}
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	c, err := New("http://localhost:7878", "key", testAPI, zerolog.New(&buf))
	require.NoError(t, err)

	c.Logger().Info().Int64("id", 1).Msg("Movie added")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Movie added", entry["message"])
	assert.Equal(t, "radarr", entry["app"])
	assert.Equal(t, "http://localhost:7878", entry["host"])
}

func TestURL(t *testing.T) {
	c, err := New("http://localhost:7878/radarr/", "key", testAPI, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:7878/radarr", c.Host())
	assert.Equal(t, "http://localhost:7878/radarr/api/v3/movie", c.URL("movie", nil))
	assert.Equal(t, "http://localhost:7878/radarr/api/v3/movie", c.URL("/movie", url.Values{}))

	params := url.Values{}
	params.Set("tmdbId", "603")
	assert.Equal(t, "http://localhost:7878/radarr/api/v3/movie?tmdbId=603", c.URL("movie", params))
}

func TestRequestHeaders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v3/system/status", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "arrkit-test", r.Header.Get("User-Agent"))
		assert.Empty(t, r.Header.Get("Content-Type"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "secret", pass)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"appName":"Radarr","version":"5.2.6.8376"}`))
	}, WithUserAgent("arrkit-test"), WithBasicAuth("admin", "secret"))

	status, err := c.GetSystemStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Radarr", status.AppName)

	v, err := status.Semver()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), v.Major)
	assert.Equal(t, uint64(2), v.Minor)
}

func TestNoBasicAuthByDefault(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _, ok := r.BasicAuth()
		assert.False(t, ok)
		w.Write([]byte(`[]`))
	})

	_, err := c.GetTags(context.Background())
	require.NoError(t, err)
}

func TestPostEncodesBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v3/tag", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "4k", body["label"])

		w.Write([]byte(`{"id":3,"label":"4k"}`))
	})

	tag, err := c.CreateTag(context.Background(), "4k")
	require.NoError(t, err)
	assert.Equal(t, 3, tag.ID)
	assert.Equal(t, "4k", tag.Label)
}

func TestEmptyBodyIsNotDecoded(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "no content", status: http.StatusNoContent},
		{name: "empty ok", status: http.StatusOK},
		{name: "whitespace", status: http.StatusOK, body: "  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			out := map[string]any{"kept": true}
			err := c.Get(context.Background(), "anything", nil, &out)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"kept": true}, out)
		})
	}
}

func TestDecodeFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>login</html>`))
	})

	_, err := c.GetTags(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		kind   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrAccessRestricted},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusMethodNotAllowed, ErrMethodNotAllowed},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusBadRequest, nil},
		{http.StatusConflict, nil},
		{http.StatusInternalServerError, nil},
	}

	kinds := []error{ErrUnauthorized, ErrAccessRestricted, ErrNotFound, ErrMethodNotAllowed, ErrBadGateway, ErrConnection}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"message":"nope"}`))
			})

			err := c.Get(context.Background(), "movie/1", nil, nil)
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, http.MethodGet, apiErr.Method)
			assert.Equal(t, "nope", apiErr.Message)
			assert.Equal(t, tt.status, StatusCode(err))

			for _, kind := range kinds {
				assert.Equal(t, kind == tt.kind, errors.Is(err, kind), "kind %v", kind)
			}
		})
	}
}

func TestConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	host := server.URL
	server.Close()

	c, err := New(host, "key", testAPI, zerolog.Nop())
	require.NoError(t, err)

	err = c.Get(context.Background(), "system/status", nil, nil)
	require.ErrorIs(t, err, ErrConnection)
	assert.Equal(t, 0, StatusCode(err))
}

func TestTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}, WithTimeout(50*time.Millisecond))

	err := c.Get(context.Background(), "system/status", nil, nil)
	require.ErrorIs(t, err, ErrConnection)
}

func TestContextCancel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Get(ctx, "system/status", nil, nil)
	require.ErrorIs(t, err, ErrConnection)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetries(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[{"id":1,"label":"a"}]`))
	}, WithRetries(3, time.Millisecond, 5*time.Millisecond))

	tags, err := c.GetTags(context.Background())
	require.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestNoRetriesByDefault(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.Get(context.Background(), "system/status", nil, nil)
	require.ErrorIs(t, err, ErrBadGateway)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetriesExhaustedKeepStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}, WithRetries(1, time.Millisecond, time.Millisecond))

	err := c.Get(context.Background(), "system/status", nil, nil)
	require.ErrorIs(t, err, ErrBadGateway)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestDoReturnsRawBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("log line"))
	})

	resp, body, err := c.Do(context.Background(), http.MethodGet, "log/file/radarr.txt", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	assert.Equal(t, "log line", string(body))
}

func TestDeleteWithBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"movieIds":[1,2]}`, string(data))
		w.WriteHeader(http.StatusOK)
	})

	err := c.Delete(context.Background(), "movie/editor", nil, map[string]any{"movieIds": []int{1, 2}})
	require.NoError(t, err)
}

func TestSharedHTTPClient(t *testing.T) {
	shared := &http.Client{Timeout: 5 * time.Second}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}, WithHTTPClient(shared))

	assert.Same(t, shared, c.httpClient.HTTPClient)
	_, err := c.GetHealth(context.Background())
	require.NoError(t, err)
}

func TestSemver(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"5.2.6.8376", "5.2.6+8376"},
		{"4.0.0.2", "4.0.0+2"},
		{"v1.2.3", "1.2.3"},
		{"2.1", "2.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			s := SystemStatus{Version: tt.version}
			v, err := s.Semver()
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}
