package readarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/s0up4200/arrkit/arr"
)

// GetAuthors retrieves every author in the collection
func (c *Client) GetAuthors(ctx context.Context) ([]Author, error) {
	var authors []Author
	if err := c.Get(ctx, "author", nil, &authors); err != nil {
		return nil, fmt.Errorf("failed to get authors: %w", err)
	}

	c.Logger().Debug().Msgf("Retrieved %d authors from Readarr", len(authors))
	return authors, nil
}

// GetAuthor retrieves an author by id
func (c *Client) GetAuthor(ctx context.Context, id int64) (*Author, error) {
	var author Author
	if err := c.Get(ctx, arr.Int64Path("author", id), nil, &author); err != nil {
		return nil, fmt.Errorf("failed to get author ID %d: %w", id, err)
	}
	return &author, nil
}

// LookupAuthor searches the metadata source for authors matching term
func (c *Client) LookupAuthor(ctx context.Context, term string) ([]Author, error) {
	params := url.Values{}
	params.Set("term", term)

	var authors []Author
	if err := c.Get(ctx, "author/lookup", params, &authors); err != nil {
		return nil, fmt.Errorf("failed to look up author %q: %w", term, err)
	}
	return authors, nil
}

// applyAuthorOptions sets the local settings on an author
func applyAuthorOptions(author *Author, opts AddAuthorOptions) {
	author.QualityProfileID = opts.QualityProfileID
	author.MetadataProfileID = opts.MetadataProfileID
	author.RootFolderPath = opts.RootFolderPath
	author.Monitored = opts.Monitored
	author.MonitorNewItems = opts.MonitorNewItems
	if author.MonitorNewItems == "" {
		author.MonitorNewItems = MonitorNewAll
	}
	author.Tags = opts.Tags
	if author.Tags == nil {
		author.Tags = []int{}
	}

	monitor := opts.Monitor
	if monitor == "" {
		monitor = MonitorAll
	}
	author.AddOptions = &AuthorAddOptions{
		Monitor:               monitor,
		Monitored:             opts.Monitored,
		SearchForMissingBooks: opts.SearchForMissingBooks,
	}
}

// AddAuthor looks up term, applies the local settings to the first result
// and adds it to the collection
func (c *Client) AddAuthor(ctx context.Context, term string, opts AddAuthorOptions) (*Author, error) {
	results, err := c.LookupAuthor(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to add author: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("failed to add author: no author matching %q: %w", term, arr.ErrNotFound)
	}

	author := results[0]
	applyAuthorOptions(&author, opts)

	var added Author
	if err := c.Post(ctx, "author", nil, author, &added); err != nil {
		return nil, fmt.Errorf("failed to add author %s: %w", author.AuthorName, err)
	}

	c.Logger().Info().
		Int64("author_id", added.ID).
		Str("name", added.AuthorName).
		Msg("Added author")
	return &added, nil
}

// UpdateAuthor saves changes to an author
func (c *Client) UpdateAuthor(ctx context.Context, author *Author, moveFiles bool) (*Author, error) {
	params := url.Values{}
	params.Set("moveFiles", strconv.FormatBool(moveFiles))

	var updated Author
	if err := c.Put(ctx, arr.Int64Path("author", author.ID), params, author, &updated); err != nil {
		return nil, fmt.Errorf("failed to update author ID %d: %w", author.ID, err)
	}
	return &updated, nil
}

// DeleteAuthor removes an author and their books from the collection
func (c *Client) DeleteAuthor(ctx context.Context, id int64, deleteFiles, addImportListExclusion bool) error {
	params := arr.DeleteParams(deleteFiles, addImportListExclusion, "addImportListExclusion")
	if err := c.Delete(ctx, arr.Int64Path("author", id), params, nil); err != nil {
		return fmt.Errorf("failed to delete author ID %d: %w", id, err)
	}

	c.Logger().Info().Int64("author_id", id).Bool("delete_files", deleteFiles).
		Msg("Successfully deleted author")
	return nil
}

// GetMetadataProfiles retrieves the metadata profiles
func (c *Client) GetMetadataProfiles(ctx context.Context) ([]MetadataProfile, error) {
	var profiles []MetadataProfile
	if err := c.Get(ctx, "metadataprofile", nil, &profiles); err != nil {
		return nil, fmt.Errorf("failed to get metadata profiles: %w", err)
	}
	return profiles, nil
}

// GetMetadataProfile retrieves a metadata profile by id
func (c *Client) GetMetadataProfile(ctx context.Context, id int64) (*MetadataProfile, error) {
	var profile MetadataProfile
	if err := c.Get(ctx, arr.Int64Path("metadataprofile", id), nil, &profile); err != nil {
		return nil, fmt.Errorf("failed to get metadata profile ID %d: %w", id, err)
	}
	return &profile, nil
}
