package sonarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/s0up4200/arrkit/arr"
)

func seriesParams(seriesID int64) url.Values {
	params := url.Values{}
	params.Set("seriesId", strconv.FormatInt(seriesID, 10))
	return params
}

// GetEpisodes retrieves the episodes of a series
func (c *Client) GetEpisodes(ctx context.Context, seriesID int64) ([]Episode, error) {
	var episodes []Episode
	if err := c.Get(ctx, "episode", seriesParams(seriesID), &episodes); err != nil {
		return nil, fmt.Errorf("failed to get episodes for series ID %d: %w", seriesID, err)
	}
	return episodes, nil
}

// GetEpisode retrieves an episode by id
func (c *Client) GetEpisode(ctx context.Context, id int64) (*Episode, error) {
	var episode Episode
	if err := c.Get(ctx, arr.Int64Path("episode", id), nil, &episode); err != nil {
		return nil, fmt.Errorf("failed to get episode ID %d: %w", id, err)
	}
	return &episode, nil
}

// UpdateEpisode saves changes to an episode, in practice its monitored flag
func (c *Client) UpdateEpisode(ctx context.Context, episode *Episode) (*Episode, error) {
	var updated Episode
	if err := c.Put(ctx, arr.Int64Path("episode", episode.ID), nil, episode, &updated); err != nil {
		return nil, fmt.Errorf("failed to update episode ID %d: %w", episode.ID, err)
	}
	return &updated, nil
}

// MonitorEpisodes sets the monitored flag of several episodes at once
func (c *Client) MonitorEpisodes(ctx context.Context, ids []int64, monitored bool) ([]Episode, error) {
	body := map[string]any{"episodeIds": ids, "monitored": monitored}

	var episodes []Episode
	if err := c.Put(ctx, "episode/monitor", nil, body, &episodes); err != nil {
		return nil, fmt.Errorf("failed to monitor episodes: %w", err)
	}
	return episodes, nil
}

// GetEpisodeFiles retrieves the files of a series
func (c *Client) GetEpisodeFiles(ctx context.Context, seriesID int64) ([]EpisodeFile, error) {
	var files []EpisodeFile
	if err := c.Get(ctx, "episodefile", seriesParams(seriesID), &files); err != nil {
		return nil, fmt.Errorf("failed to get episode files for series ID %d: %w", seriesID, err)
	}
	return files, nil
}

// GetEpisodeFile retrieves an episode file by id
func (c *Client) GetEpisodeFile(ctx context.Context, id int64) (*EpisodeFile, error) {
	var file EpisodeFile
	if err := c.Get(ctx, arr.Int64Path("episodefile", id), nil, &file); err != nil {
		return nil, fmt.Errorf("failed to get episode file ID %d: %w", id, err)
	}
	return &file, nil
}

// DeleteEpisodeFile deletes an episode file from disk
func (c *Client) DeleteEpisodeFile(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, arr.Int64Path("episodefile", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete episode file ID %d: %w", id, err)
	}
	return nil
}

// GetWantedMissing retrieves a page of monitored episodes without a file
func (c *Client) GetWantedMissing(ctx context.Context, params arr.PageParams) (*arr.Page[Episode], error) {
	var page arr.Page[Episode]
	if err := c.Get(ctx, "wanted/missing", params.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to get missing episodes: %w", err)
	}
	return &page, nil
}

// GetCutoffUnmet retrieves a page of episodes whose file is below the
// profile cutoff
func (c *Client) GetCutoffUnmet(ctx context.Context, params arr.PageParams) (*arr.Page[Episode], error) {
	var page arr.Page[Episode]
	if err := c.Get(ctx, "wanted/cutoff", params.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to get cutoff unmet episodes: %w", err)
	}
	return &page, nil
}

// GetCalendar retrieves the episodes airing between start and end
func (c *Client) GetCalendar(ctx context.Context, start, end time.Time, unmonitored bool) ([]Episode, error) {
	params := arr.CalendarParams(start, end, unmonitored)
	params.Set("includeSeries", "true")

	var episodes []Episode
	if err := c.Get(ctx, "calendar", params, &episodes); err != nil {
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}
	return episodes, nil
}
