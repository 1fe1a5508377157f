package radarr

import (
	"context"

	"github.com/s0up4200/arrkit/arr"
)

// RefreshMovie refreshes metadata of the given movies, or of every movie
// when ids is empty
func (c *Client) RefreshMovie(ctx context.Context, ids []int64) (*arr.Command, error) {
	fields := map[string]any{}
	if len(ids) > 0 {
		fields["movieIds"] = ids
	}
	return c.PostCommand(ctx, "RefreshMovie", fields)
}

// RescanMovie rescans the folder of a movie for files
func (c *Client) RescanMovie(ctx context.Context, id int64) (*arr.Command, error) {
	return c.PostCommand(ctx, "RescanMovie", map[string]any{"movieId": id})
}

// SearchMovies searches the indexers for the given movies
func (c *Client) SearchMovies(ctx context.Context, ids []int64) (*arr.Command, error) {
	return c.PostCommand(ctx, "MoviesSearch", map[string]any{"movieIds": ids})
}
