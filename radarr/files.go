package radarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/s0up4200/arrkit/arr"
)

// GetMovieFiles retrieves the files of a movie
func (c *Client) GetMovieFiles(ctx context.Context, movieID int64) ([]MovieFile, error) {
	params := url.Values{}
	params.Set("movieId", strconv.FormatInt(movieID, 10))

	var files []MovieFile
	if err := c.Get(ctx, "moviefile", params, &files); err != nil {
		return nil, fmt.Errorf("failed to get files for movie ID %d: %w", movieID, err)
	}
	return files, nil
}

// GetMovieFile retrieves a movie file by ID
func (c *Client) GetMovieFile(ctx context.Context, id int64) (*MovieFile, error) {
	var file MovieFile
	if err := c.Get(ctx, arr.Int64Path("moviefile", id), nil, &file); err != nil {
		return nil, fmt.Errorf("failed to get movie file ID %d: %w", id, err)
	}
	return &file, nil
}

// DeleteMovieFile deletes a movie file from disk, the movie stays
func (c *Client) DeleteMovieFile(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, arr.Int64Path("moviefile", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete movie file ID %d: %w", id, err)
	}
	return nil
}

// GetCustomFormats retrieves all custom formats
func (c *Client) GetCustomFormats(ctx context.Context) ([]CustomFormat, error) {
	var formats []CustomFormat
	if err := c.Get(ctx, "customformat", nil, &formats); err != nil {
		return nil, fmt.Errorf("failed to get custom formats: %w", err)
	}
	return formats, nil
}

// DeleteCustomFormat deletes a custom format
func (c *Client) DeleteCustomFormat(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, arr.Int64Path("customformat", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete custom format ID %d: %w", id, err)
	}
	return nil
}

// GetImportExclusions retrieves the movies excluded from import lists
func (c *Client) GetImportExclusions(ctx context.Context) ([]ImportExclusion, error) {
	var exclusions []ImportExclusion
	if err := c.Get(ctx, "exclusions", nil, &exclusions); err != nil {
		return nil, fmt.Errorf("failed to get import exclusions: %w", err)
	}
	return exclusions, nil
}

// DeleteImportExclusion removes an import exclusion
func (c *Client) DeleteImportExclusion(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, arr.Int64Path("exclusions", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete import exclusion ID %d: %w", id, err)
	}
	return nil
}
