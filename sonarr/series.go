package sonarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/s0up4200/arrkit/arr"
)

// GetSeries retrieves every series in the collection
func (c *Client) GetSeries(ctx context.Context) ([]Series, error) {
	var series []Series
	if err := c.Get(ctx, "series", nil, &series); err != nil {
		return nil, fmt.Errorf("failed to get series: %w", err)
	}

	c.Logger().Debug().Msgf("Retrieved %d series from Sonarr", len(series))
	return series, nil
}

// GetSeriesByID retrieves a series by its Sonarr id
func (c *Client) GetSeriesByID(ctx context.Context, id int64) (*Series, error) {
	var series Series
	if err := c.Get(ctx, arr.Int64Path("series", id), nil, &series); err != nil {
		return nil, fmt.Errorf("failed to get series ID %d: %w", id, err)
	}
	return &series, nil
}

// LookupSeries searches the metadata source for series matching term.
// Terms of the form tvdb:{id} or imdb:{id} match a single show.
func (c *Client) LookupSeries(ctx context.Context, term string) ([]Series, error) {
	params := url.Values{}
	params.Set("term", term)

	var results []Series
	if err := c.Get(ctx, "series/lookup", params, &results); err != nil {
		return nil, fmt.Errorf("failed to look up series %q: %w", term, err)
	}
	return results, nil
}

// LookupSeriesByTVDBID looks up a single show by its TVDB id
func (c *Client) LookupSeriesByTVDBID(ctx context.Context, tvdbID int64) (*Series, error) {
	results, err := c.LookupSeries(ctx, "tvdb:"+strconv.FormatInt(tvdbID, 10))
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("series with TVDB ID %d: %w", tvdbID, arr.ErrNotFound)
	}
	return &results[0], nil
}

// AddSeries looks up a show by TVDB id, applies the local settings and adds
// it to the collection.
func (c *Client) AddSeries(ctx context.Context, tvdbID int64, opts AddSeriesOptions) (*Series, error) {
	series, err := c.LookupSeriesByTVDBID(ctx, tvdbID)
	if err != nil {
		return nil, fmt.Errorf("failed to add series: %w", err)
	}

	series.QualityProfileID = opts.QualityProfileID
	series.LanguageProfileID = opts.LanguageProfileID
	series.RootFolderPath = opts.RootFolderPath
	series.Monitored = opts.Monitored
	series.SeasonFolder = opts.SeasonFolder
	series.Tags = opts.Tags
	if series.Tags == nil {
		series.Tags = []int{}
	}
	if opts.SeriesType != "" {
		series.SeriesType = opts.SeriesType
	}
	series.AddOptions = &AddOptions{
		Monitor:                      opts.Monitor,
		SearchForMissingEpisodes:     opts.SearchForMissingEpisodes,
		SearchForCutoffUnmetEpisodes: opts.SearchForCutoffUnmetEpisodes,
	}

	var added Series
	if err := c.Post(ctx, "series", nil, series, &added); err != nil {
		return nil, fmt.Errorf("failed to add series %s: %w", series.Title, err)
	}

	c.Logger().Info().
		Int64("series_id", added.ID).
		Int64("tvdb_id", tvdbID).
		Str("title", added.Title).
		Msg("Added series")
	return &added, nil
}

// UpdateSeries saves changes to a series. With moveFiles set, Sonarr moves
// the files when the path changed.
func (c *Client) UpdateSeries(ctx context.Context, series *Series, moveFiles bool) (*Series, error) {
	params := url.Values{}
	params.Set("moveFiles", strconv.FormatBool(moveFiles))

	var updated Series
	if err := c.Put(ctx, arr.Int64Path("series", series.ID), params, series, &updated); err != nil {
		return nil, fmt.Errorf("failed to update series ID %d: %w", series.ID, err)
	}
	return &updated, nil
}

// DeleteSeries removes a series from the collection
func (c *Client) DeleteSeries(ctx context.Context, id int64, deleteFiles, addImportListExclusion bool) error {
	params := arr.DeleteParams(deleteFiles, addImportListExclusion, "addImportListExclusion")
	if err := c.Delete(ctx, arr.Int64Path("series", id), params, nil); err != nil {
		return fmt.Errorf("failed to delete series ID %d: %w", id, err)
	}

	c.Logger().Info().Int64("series_id", id).Bool("delete_files", deleteFiles).
		Msg("Successfully deleted series")
	return nil
}

// GetLanguageProfiles retrieves the language profiles
func (c *Client) GetLanguageProfiles(ctx context.Context) ([]LanguageProfile, error) {
	var profiles []LanguageProfile
	if err := c.Get(ctx, "languageprofile", nil, &profiles); err != nil {
		return nil, fmt.Errorf("failed to get language profiles: %w", err)
	}
	return profiles, nil
}

// ParseTitle asks Sonarr how it would interpret a release title
func (c *Client) ParseTitle(ctx context.Context, title string) (*ParseResult, error) {
	params := url.Values{}
	params.Set("title", title)

	var result ParseResult
	if err := c.Get(ctx, "parse", params, &result); err != nil {
		return nil, fmt.Errorf("failed to parse title %q: %w", title, err)
	}
	return &result, nil
}

// GetReleases searches the indexers for releases of an episode
func (c *Client) GetReleases(ctx context.Context, episodeID int64) ([]Release, error) {
	params := url.Values{}
	params.Set("episodeId", strconv.FormatInt(episodeID, 10))

	var releases []Release
	if err := c.Get(ctx, "release", params, &releases); err != nil {
		return nil, fmt.Errorf("failed to get releases for episode ID %d: %w", episodeID, err)
	}
	return releases, nil
}

// GrabRelease sends a release found by GetReleases to the download client
func (c *Client) GrabRelease(ctx context.Context, release Release) (*Release, error) {
	body := map[string]any{"guid": release.GUID, "indexerId": release.IndexerID}

	var grabbed Release
	if err := c.Post(ctx, "release", nil, body, &grabbed); err != nil {
		return nil, fmt.Errorf("failed to grab release %s: %w", release.Title, err)
	}
	return &grabbed, nil
}
