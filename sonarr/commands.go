package sonarr

import (
	"context"

	"github.com/s0up4200/arrkit/arr"
)

// RefreshSeries refreshes metadata and rescans a series. An id of 0
// refreshes every series.
func (c *Client) RefreshSeries(ctx context.Context, id int64) (*arr.Command, error) {
	fields := map[string]any{}
	if id > 0 {
		fields["seriesId"] = id
	}
	return c.PostCommand(ctx, "RefreshSeries", fields)
}

// RescanSeries rescans the folder of a series for files
func (c *Client) RescanSeries(ctx context.Context, id int64) (*arr.Command, error) {
	return c.PostCommand(ctx, "RescanSeries", map[string]any{"seriesId": id})
}

// SearchSeries searches the indexers for every monitored episode of a series
func (c *Client) SearchSeries(ctx context.Context, id int64) (*arr.Command, error) {
	return c.PostCommand(ctx, "SeriesSearch", map[string]any{"seriesId": id})
}

// SearchSeason searches the indexers for one season of a series
func (c *Client) SearchSeason(ctx context.Context, seriesID int64, seasonNumber int) (*arr.Command, error) {
	return c.PostCommand(ctx, "SeasonSearch", map[string]any{
		"seriesId":     seriesID,
		"seasonNumber": seasonNumber,
	})
}

// SearchEpisodes searches the indexers for the given episodes
func (c *Client) SearchEpisodes(ctx context.Context, ids []int64) (*arr.Command, error) {
	return c.PostCommand(ctx, "EpisodeSearch", map[string]any{"episodeIds": ids})
}
