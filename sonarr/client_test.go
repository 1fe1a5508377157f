package sonarr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/arrkit/arr"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "test-key", zerolog.Nop())
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	c, err := NewClient("http://localhost:8989/", "key", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8989/api/v3/series", c.URL("series", nil))

	_, err = NewClient("", "key", zerolog.Nop())
	require.ErrorIs(t, err, arr.ErrHostRequired)
}

func TestGetSeries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v3/series", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		w.Write([]byte(`[
			{"id":1,"title":"The Wire","tvdbId":79126,"monitored":true,"tags":[2],
			 "seasons":[{"seasonNumber":1,"monitored":true}],
			 "statistics":{"episodeCount":60,"sizeOnDisk":1024}}
		]`))
	})

	series, err := c.GetSeries(context.Background())
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "The Wire", series[0].Title)
	assert.Equal(t, int64(79126), series[0].TvdbID)
	assert.Equal(t, []int{2}, series[0].Tags)
	require.NotNil(t, series[0].Statistics)
	assert.Equal(t, int64(1024), series[0].Statistics.SizeOnDisk)
}

func TestLookupSeriesByTVDBID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/series/lookup", r.URL.Path)
		switch r.URL.Query().Get("term") {
		case "tvdb:79126":
			w.Write([]byte(`[{"title":"The Wire","tvdbId":79126}]`))
		default:
			w.Write([]byte(`[]`))
		}
	})

	series, err := c.LookupSeriesByTVDBID(context.Background(), 79126)
	require.NoError(t, err)
	assert.Equal(t, "The Wire", series.Title)

	_, err = c.LookupSeriesByTVDBID(context.Background(), 1)
	require.ErrorIs(t, err, arr.ErrNotFound)
	assert.Contains(t, err.Error(), "TVDB ID 1")
}

func TestAddSeries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v3/series/lookup":
			assert.Equal(t, "tvdb:79126", r.URL.Query().Get("term"))
			w.Write([]byte(`[{"title":"The Wire","tvdbId":79126,"year":2002,"seasons":[{"seasonNumber":1}]}]`))

		case r.Method == http.MethodPost && r.URL.Path == "/api/v3/series":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

			assert.Equal(t, "The Wire", body["title"])
			assert.Equal(t, float64(4), body["qualityProfileId"])
			assert.Equal(t, float64(1), body["languageProfileId"])
			assert.Equal(t, "/tv", body["rootFolderPath"])
			assert.Equal(t, true, body["monitored"])
			assert.Equal(t, true, body["seasonFolder"])
			assert.Equal(t, "standard", body["seriesType"])
			assert.Equal(t, []any{}, body["tags"])

			addOptions, ok := body["addOptions"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "all", addOptions["monitor"])
			assert.Equal(t, true, addOptions["searchForMissingEpisodes"])
			assert.Equal(t, false, addOptions["searchForCutoffUnmetEpisodes"])

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":12,"title":"The Wire","tvdbId":79126}`))

		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})

	added, err := c.AddSeries(context.Background(), 79126, AddSeriesOptions{
		QualityProfileID:         4,
		LanguageProfileID:        1,
		RootFolderPath:           "/tv",
		Monitored:                true,
		SeasonFolder:             true,
		SeriesType:               SeriesTypeStandard,
		Monitor:                  MonitorAll,
		SearchForMissingEpisodes: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), added.ID)
}

func TestAddSeriesRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`[{"title":"The Wire","tvdbId":79126}]`))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`[{"propertyName":"TvdbId","errorMessage":"This series has already been added"}]`))
	})

	_, err := c.AddSeries(context.Background(), 79126, AddSeriesOptions{RootFolderPath: "/tv"})
	require.Error(t, err)

	var apiErr *arr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "already been added")
}

func TestUpdateAndDeleteSeries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/series/12", r.URL.Path)
		switch r.Method {
		case http.MethodPut:
			assert.Equal(t, "true", r.URL.Query().Get("moveFiles"))
			w.Write([]byte(`{"id":12,"title":"The Wire","monitored":false}`))
		case http.MethodDelete:
			assert.Equal(t, "true", r.URL.Query().Get("deleteFiles"))
			assert.Equal(t, "false", r.URL.Query().Get("addImportListExclusion"))
		}
	})
	ctx := context.Background()

	updated, err := c.UpdateSeries(ctx, &Series{ID: 12, Title: "The Wire"}, true)
	require.NoError(t, err)
	assert.False(t, updated.Monitored)

	require.NoError(t, c.DeleteSeries(ctx, 12, true, false))
}

func TestDeleteSeriesNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := c.DeleteSeries(context.Background(), 99, false, false)
	require.ErrorIs(t, err, arr.ErrNotFound)
	assert.Contains(t, err.Error(), "series ID 99")
}

func TestEpisodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/episode":
			assert.Equal(t, "12", r.URL.Query().Get("seriesId"))
			w.Write([]byte(`[{"id":100,"seriesId":12,"seasonNumber":1,"episodeNumber":1,"title":"The Target","hasFile":true}]`))
		case "/api/v3/episode/monitor":
			assert.Equal(t, http.MethodPut, r.Method)
			var body struct {
				EpisodeIDs []int64 `json:"episodeIds"`
				Monitored  bool    `json:"monitored"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, []int64{100, 101}, body.EpisodeIDs)
			assert.False(t, body.Monitored)
			w.WriteHeader(http.StatusAccepted)
		case "/api/v3/episodefile":
			assert.Equal(t, "12", r.URL.Query().Get("seriesId"))
			w.Write([]byte(`[{"id":7,"seriesId":12,"path":"/tv/The Wire/S01E01.mkv","quality":{"quality":{"id":7,"name":"Bluray-1080p"}}}]`))
		case "/api/v3/episodefile/7":
			assert.Equal(t, http.MethodDelete, r.Method)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})
	ctx := context.Background()

	episodes, err := c.GetEpisodes(ctx, 12)
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, "The Target", episodes[0].Title)

	monitored, err := c.MonitorEpisodes(ctx, []int64{100, 101}, false)
	require.NoError(t, err)
	assert.Empty(t, monitored)

	files, err := c.GetEpisodeFiles(ctx, 12)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "Bluray-1080p", files[0].Quality.Quality.Name)

	require.NoError(t, c.DeleteEpisodeFile(ctx, 7))
}

func TestWanted(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "airDateUtc", r.URL.Query().Get("sortKey"))
		assert.Equal(t, arr.SortDescending, r.URL.Query().Get("sortDirection"))
		w.Write([]byte(`{"page":1,"pageSize":10,"totalRecords":25,"records":[{"id":5,"title":"Pilot"}]}`))
	})

	params := arr.PageParams{PageSize: 10, SortKey: "airDateUtc", SortDirection: arr.SortDescending}

	missing, err := c.GetWantedMissing(context.Background(), params)
	require.NoError(t, err)
	assert.True(t, missing.HasMorePages())
	assert.Equal(t, "Pilot", missing.Records[0].Title)

	cutoff, err := c.GetCutoffUnmet(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 25, cutoff.TotalRecords)
}

func TestParseTitleAndReleases(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/parse":
			assert.Equal(t, "The.Wire.S01E01.1080p.BluRay", r.URL.Query().Get("title"))
			w.Write([]byte(`{"title":"The.Wire.S01E01.1080p.BluRay","parsedEpisodeInfo":{"seriesTitle":"The Wire","seasonNumber":1,"episodeNumbers":[1]}}`))
		case "/api/v3/release":
			if r.Method == http.MethodPost {
				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "abc", body["guid"])
				assert.Equal(t, float64(3), body["indexerId"])
				w.Write([]byte(`{"guid":"abc","title":"The.Wire.S01E01"}`))
				return
			}
			assert.Equal(t, "100", r.URL.Query().Get("episodeId"))
			w.Write([]byte(`[{"guid":"abc","indexerId":3,"title":"The.Wire.S01E01","approved":true}]`))
		}
	})
	ctx := context.Background()

	parsed, err := c.ParseTitle(ctx, "The.Wire.S01E01.1080p.BluRay")
	require.NoError(t, err)
	require.NotNil(t, parsed.ParsedEpisodeInfo)
	assert.Equal(t, []int{1}, parsed.ParsedEpisodeInfo.EpisodeNumbers)

	releases, err := c.GetReleases(ctx, 100)
	require.NoError(t, err)
	require.Len(t, releases, 1)

	grabbed, err := c.GrabRelease(ctx, releases[0])
	require.NoError(t, err)
	assert.Equal(t, "abc", grabbed.GUID)
}

func TestCommands(t *testing.T) {
	var (
		mu  sync.Mutex
		got []map[string]any
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/command", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		mu.Lock()
		got = append(got, body)
		mu.Unlock()
		w.Write([]byte(`{"id":1,"status":"queued"}`))
	})
	ctx := context.Background()

	_, err := c.RefreshSeries(ctx, 0)
	require.NoError(t, err)
	_, err = c.SearchSeries(ctx, 12)
	require.NoError(t, err)
	_, err = c.SearchSeason(ctx, 12, 2)
	require.NoError(t, err)
	_, err = c.SearchEpisodes(ctx, []int64{100})
	require.NoError(t, err)
	_, err = c.RescanSeries(ctx, 12)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 5)
	assert.Equal(t, map[string]any{"name": "RefreshSeries"}, got[0])
	assert.Equal(t, map[string]any{"name": "SeriesSearch", "seriesId": float64(12)}, got[1])
	assert.Equal(t, map[string]any{"name": "SeasonSearch", "seriesId": float64(12), "seasonNumber": float64(2)}, got[2])
	assert.Equal(t, map[string]any{"name": "EpisodeSearch", "episodeIds": []any{float64(100)}}, got[3])
	assert.Equal(t, "RescanSeries", got[4]["name"])
}

func TestGetCalendar(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/calendar", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("includeSeries"))
		assert.Equal(t, "true", r.URL.Query().Get("unmonitored"))
		w.Write([]byte(`[{"id":1,"title":"Pilot","series":{"title":"Show"}}]`))
	})

	start := time.Now()
	episodes, err := c.GetCalendar(context.Background(), start, start.Add(24*time.Hour), true)
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, "Show", episodes[0].Series.Title)
}

func TestQueueUsesSeriesKeys(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("includeUnknownSeriesItems"))
		w.Write([]byte(`{"page":1,"pageSize":10,"totalRecords":0,"records":[]}`))
	})

	_, err := c.GetQueue(context.Background(), arr.QueueParams{IncludeUnknown: true})
	require.NoError(t, err)
}
