package arr

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQueue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/queue", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "50", q.Get("pageSize"))
		assert.Equal(t, "true", q.Get("includeUnknownMovieItems"))
		assert.Equal(t, "true", q.Get("includeMovie"))
		assert.Empty(t, q.Get("sortKey"))

		w.Write([]byte(`{"page":2,"pageSize":50,"totalRecords":51,"records":[{"id":9,"title":"Heat.1995","movieId":4}]}`))
	})

	page, err := c.GetQueue(context.Background(), QueueParams{
		PageParams:     PageParams{Page: 2, PageSize: 50},
		IncludeUnknown: true,
		IncludeItem:    true,
	})
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, int64(4), page.Records[0].MovieID)
	assert.False(t, page.HasMorePages())
}

func TestGetAllQueue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			w.Write([]byte(`{"page":1,"pageSize":2,"totalRecords":3,"records":[{"id":1},{"id":2}]}`))
		case "2":
			w.Write([]byte(`{"page":2,"pageSize":2,"totalRecords":3,"records":[{"id":3}]}`))
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	})

	records, err := c.GetAllQueue(context.Background(), QueueParams{PageParams: PageParams{PageSize: 2}})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, int64(3), records[2].ID)
}

func TestGetAllQueueIgnoredPageParam(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		// always the first page, whatever was asked for
		w.Write([]byte(`{"page":1,"pageSize":2,"totalRecords":5,"records":[{"id":1},{"id":2}]}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	records, err := c.GetAllQueue(ctx, QueueParams{PageParams: PageParams{PageSize: 2}})
	require.NoError(t, err)
	assert.Len(t, records, 6)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetAllQueueShortPage(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"page":1,"pageSize":100,"totalRecords":10,"records":[{"id":1}]}`))
	})

	records, err := c.GetAllQueue(context.Background(), QueueParams{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDeleteQueueItem(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v3/queue/12", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("removeFromClient"))
		assert.Equal(t, "false", r.URL.Query().Get("blocklist"))
	})

	require.NoError(t, c.DeleteQueueItem(context.Background(), 12, true, false))
}

func TestPostCommand(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v3/command", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "MoviesSearch", body["name"])
		assert.Equal(t, []any{float64(1), float64(2)}, body["movieIds"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":77,"name":"MoviesSearch","status":"queued"}`))
	})

	fields := map[string]any{"movieIds": []int64{1, 2}}
	cmd, err := c.PostCommand(context.Background(), "MoviesSearch", fields)
	require.NoError(t, err)
	assert.Equal(t, int64(77), cmd.ID)
	assert.False(t, cmd.Done())
	assert.NotContains(t, fields, "name")
}

func TestGetTagByName(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"label":"keep"},{"id":2,"label":"4k"}]`))
	})

	tag, err := c.GetTagByName(context.Background(), "4k")
	require.NoError(t, err)
	assert.Equal(t, 2, tag.ID)

	_, err = c.GetTagByName(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTagEndpoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/api/v3/tag/5":
			w.Write([]byte(`{"id":5,"label":"renamed"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v3/tag/5":
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodGet && r.URL.Path == "/api/v3/tag/detail/5":
			w.Write([]byte(`{"id":5,"label":"renamed","movieIds":[1,2]}`))
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	})
	ctx := context.Background()

	tag, err := c.UpdateTag(ctx, Tag{ID: 5, Label: "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", tag.Label)

	details, err := c.GetTagDetails(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, details.MovieIDs)

	require.NoError(t, c.DeleteTag(ctx, 5))
}

func TestGetCalendar(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(7 * 24 * time.Hour)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/calendar", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2024-01-01T00:00:00Z", q.Get("start"))
		assert.Equal(t, "2024-01-08T00:00:00Z", q.Get("end"))
		assert.Equal(t, "false", q.Get("unmonitored"))
		w.Write([]byte(`[{"title":"Dune"}]`))
	})

	items, err := c.GetCalendar(context.Background(), start, end, false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Dune", items[0]["title"])
}

func TestProviderEndpoints(t *testing.T) {
	var mu sync.Mutex
	paths := map[string]string{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths[r.Method+" "+r.URL.Path] = ""
		mu.Unlock()
		if r.Method == http.MethodGet {
			if r.URL.Path == "/api/v3/indexer/3" {
				w.Write([]byte(`{"id":3,"name":"nzb","implementation":"Newznab","fields":[{"order":0,"name":"baseUrl","value":"https://x"}]}`))
				return
			}
			w.Write([]byte(`[]`))
		}
	})
	ctx := context.Background()

	indexer, err := c.GetIndexer(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Newznab", indexer.Implementation)
	require.Len(t, indexer.Fields, 1)
	assert.Equal(t, "https://x", indexer.Fields[0].Value)

	_, err = c.GetDownloadClients(ctx)
	require.NoError(t, err)
	_, err = c.GetNotifications(ctx)
	require.NoError(t, err)
	_, err = c.GetImportLists(ctx)
	require.NoError(t, err)
	_, err = c.GetRemotePathMappings(ctx)
	require.NoError(t, err)
	require.NoError(t, c.DeleteDownloadClient(ctx, 1))
	require.NoError(t, c.DeleteRemotePathMapping(ctx, 2))

	mu.Lock()
	defer mu.Unlock()
	for _, want := range []string{
		"GET /api/v3/indexer/3",
		"GET /api/v3/downloadclient",
		"GET /api/v3/notification",
		"GET /api/v3/importlist",
		"GET /api/v3/remotepathmapping",
		"DELETE /api/v3/downloadclient/1",
		"DELETE /api/v3/remotepathmapping/2",
	} {
		assert.Contains(t, paths, want)
	}
}

func TestConfigDocuments(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/config/naming", r.URL.Path)
		w.Write([]byte(`{"renameMovies":true,"standardMovieFormat":"{Movie Title} ({Release Year})"}`))
	})

	doc, err := c.GetNamingConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, true, doc["renameMovies"])
}

func TestRootFolderEndpoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var folder RootFolder
			require.NoError(t, json.NewDecoder(r.Body).Decode(&folder))
			assert.Equal(t, "/movies", folder.Path)
			w.Write([]byte(`{"id":1,"path":"/movies","accessible":true,"freeSpace":1000}`))
		case http.MethodGet:
			w.Write([]byte(`[{"id":1,"path":"/movies","unmappedFolders":[{"name":"Heat","path":"/movies/Heat"}]}]`))
		}
	})
	ctx := context.Background()

	created, err := c.AddRootFolder(ctx, RootFolder{Path: "/movies"})
	require.NoError(t, err)
	assert.True(t, created.Accessible)

	folders, err := c.GetRootFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Len(t, folders[0].UnmappedFolders, 1)
}
