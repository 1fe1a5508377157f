package lidarr

import (
	"context"

	"github.com/s0up4200/arrkit/arr"
)

// RefreshArtist refreshes an artist's metadata, or every artist for id 0
func (c *Client) RefreshArtist(ctx context.Context, id int64) (*arr.Command, error) {
	fields := map[string]any{}
	if id > 0 {
		fields["artistId"] = id
	}
	return c.PostCommand(ctx, "RefreshArtist", fields)
}

// SearchArtist searches the indexers for every monitored album of an artist
func (c *Client) SearchArtist(ctx context.Context, id int64) (*arr.Command, error) {
	return c.PostCommand(ctx, "ArtistSearch", map[string]any{"artistId": id})
}

// SearchAlbums searches the indexers for the given albums
func (c *Client) SearchAlbums(ctx context.Context, ids []int64) (*arr.Command, error) {
	return c.PostCommand(ctx, "AlbumSearch", map[string]any{"albumIds": ids})
}
