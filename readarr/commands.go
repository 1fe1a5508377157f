package readarr

import (
	"context"

	"github.com/s0up4200/arrkit/arr"
)

// RefreshAuthor refreshes an author's metadata, or every author for id 0
func (c *Client) RefreshAuthor(ctx context.Context, id int64) (*arr.Command, error) {
	fields := map[string]any{}
	if id > 0 {
		fields["authorId"] = id
	}
	return c.PostCommand(ctx, "RefreshAuthor", fields)
}

// SearchAuthor searches the indexers for every monitored book of an author
func (c *Client) SearchAuthor(ctx context.Context, id int64) (*arr.Command, error) {
	return c.PostCommand(ctx, "AuthorSearch", map[string]any{"authorId": id})
}

// SearchBooks searches the indexers for the given books
func (c *Client) SearchBooks(ctx context.Context, ids []int64) (*arr.Command, error) {
	return c.PostCommand(ctx, "BookSearch", map[string]any{"bookIds": ids})
}
