package radarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/s0up4200/arrkit/arr"
)

// GetMovies retrieves all movies from Radarr
func (c *Client) GetMovies(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	if err := c.Get(ctx, "movie", nil, &movies); err != nil {
		return nil, fmt.Errorf("failed to get movies: %w", err)
	}

	c.Logger().Debug().Msgf("Retrieved %d movies from Radarr", len(movies))
	return movies, nil
}

// GetMovieByTMDBID finds a movie of the collection by its TMDB id
func (c *Client) GetMovieByTMDBID(ctx context.Context, tmdbID int64) (*Movie, error) {
	params := url.Values{}
	params.Set("tmdbId", strconv.FormatInt(tmdbID, 10))

	var movies []Movie
	if err := c.Get(ctx, "movie", params, &movies); err != nil {
		return nil, fmt.Errorf("failed to get movie with TMDB ID %d: %w", tmdbID, err)
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("movie with TMDB ID %d: %w", tmdbID, arr.ErrNotFound)
	}
	return &movies[0], nil
}

// GetMovie retrieves a movie by its Radarr id
func (c *Client) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	var movie Movie
	if err := c.Get(ctx, arr.Int64Path("movie", id), nil, &movie); err != nil {
		return nil, fmt.Errorf("failed to get movie ID %d: %w", id, err)
	}
	return &movie, nil
}

// LookupMovie searches TMDB for movies matching term
func (c *Client) LookupMovie(ctx context.Context, term string) ([]Movie, error) {
	params := url.Values{}
	params.Set("term", term)

	var movies []Movie
	if err := c.Get(ctx, "movie/lookup", params, &movies); err != nil {
		return nil, fmt.Errorf("failed to look up movie %q: %w", term, err)
	}
	return movies, nil
}

// LookupMovieByTMDBID looks up a single movie by its TMDB id
func (c *Client) LookupMovieByTMDBID(ctx context.Context, tmdbID int64) (*Movie, error) {
	params := url.Values{}
	params.Set("tmdbId", strconv.FormatInt(tmdbID, 10))

	var movie Movie
	if err := c.Get(ctx, "movie/lookup/tmdb", params, &movie); err != nil {
		return nil, fmt.Errorf("failed to look up movie with TMDB ID %d: %w", tmdbID, err)
	}
	return &movie, nil
}

// LookupMovieByIMDBID looks up a single movie by its IMDb id (tt0113277)
func (c *Client) LookupMovieByIMDBID(ctx context.Context, imdbID string) (*Movie, error) {
	params := url.Values{}
	params.Set("imdbId", imdbID)

	var movie Movie
	if err := c.Get(ctx, "movie/lookup/imdb", params, &movie); err != nil {
		return nil, fmt.Errorf("failed to look up movie with IMDb ID %s: %w", imdbID, err)
	}
	return &movie, nil
}

// AddMovie looks up a movie by TMDB id, applies the local settings and adds
// it to the collection
func (c *Client) AddMovie(ctx context.Context, tmdbID int64, opts AddMovieOptions) (*Movie, error) {
	movie, err := c.LookupMovieByTMDBID(ctx, tmdbID)
	if err != nil {
		return nil, fmt.Errorf("failed to add movie: %w", err)
	}

	movie.QualityProfileID = opts.QualityProfileID
	movie.RootFolderPath = opts.RootFolderPath
	movie.Monitored = opts.Monitored
	movie.Tags = opts.Tags
	if movie.Tags == nil {
		movie.Tags = []int{}
	}
	movie.MinimumAvailability = opts.MinimumAvailability
	if movie.MinimumAvailability == "" {
		movie.MinimumAvailability = AvailabilityReleased
	}
	monitor := opts.Monitor
	if monitor == "" {
		monitor = MonitorMovieOnly
	}
	movie.AddOptions = &AddOptions{SearchForMovie: opts.SearchForMovie, Monitor: monitor}

	var added Movie
	if err := c.Post(ctx, "movie", nil, movie, &added); err != nil {
		return nil, fmt.Errorf("failed to add movie %s: %w", movie.Title, err)
	}

	c.Logger().Info().
		Int64("movie_id", added.ID).
		Int64("tmdb_id", tmdbID).
		Str("title", added.Title).
		Msg("Added movie")
	return &added, nil
}

// UpdateMovie saves changes to a movie. With moveFiles set, Radarr moves the
// files when the path changed.
func (c *Client) UpdateMovie(ctx context.Context, movie *Movie, moveFiles bool) (*Movie, error) {
	params := url.Values{}
	params.Set("moveFiles", strconv.FormatBool(moveFiles))

	var updated Movie
	if err := c.Put(ctx, arr.Int64Path("movie", movie.ID), params, movie, &updated); err != nil {
		return nil, fmt.Errorf("failed to update movie ID %d: %w", movie.ID, err)
	}
	return &updated, nil
}

// EditMovies applies one change to several movies
func (c *Client) EditMovies(ctx context.Context, editor MovieEditor) ([]Movie, error) {
	var movies []Movie
	if err := c.Put(ctx, "movie/editor", nil, editor, &movies); err != nil {
		return nil, fmt.Errorf("failed to edit %d movies: %w", len(editor.MovieIDs), err)
	}
	return movies, nil
}

// DeleteMovie deletes a movie from Radarr
func (c *Client) DeleteMovie(ctx context.Context, id int64, deleteFiles, addImportExclusion bool) error {
	params := arr.DeleteParams(deleteFiles, addImportExclusion, "addImportExclusion")
	if err := c.Delete(ctx, arr.Int64Path("movie", id), params, nil); err != nil {
		return fmt.Errorf("failed to delete movie ID %d: %w", id, err)
	}

	c.Logger().Info().Int64("movie_id", id).Bool("delete_files", deleteFiles).
		Msg("Successfully deleted movie")
	return nil
}

// DeleteMovies deletes several movies in one call through the editor
func (c *Client) DeleteMovies(ctx context.Context, ids []int64, deleteFiles, addImportExclusion bool) error {
	editor := MovieEditor{
		MovieIDs:           ids,
		DeleteFiles:        deleteFiles,
		AddImportExclusion: addImportExclusion,
	}
	if err := c.Delete(ctx, "movie/editor", nil, editor); err != nil {
		return fmt.Errorf("failed to delete %d movies: %w", len(ids), err)
	}
	return nil
}

// GetCredits retrieves the cast and crew of a movie
func (c *Client) GetCredits(ctx context.Context, movieID int64) ([]Credit, error) {
	params := url.Values{}
	params.Set("movieId", strconv.FormatInt(movieID, 10))

	var credits []Credit
	if err := c.Get(ctx, "credit", params, &credits); err != nil {
		return nil, fmt.Errorf("failed to get credits for movie ID %d: %w", movieID, err)
	}
	return credits, nil
}

// GetWantedMissing retrieves a page of monitored movies without a file
func (c *Client) GetWantedMissing(ctx context.Context, params arr.PageParams) (*arr.Page[Movie], error) {
	var page arr.Page[Movie]
	if err := c.Get(ctx, "wanted/missing", params.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to get missing movies: %w", err)
	}
	return &page, nil
}

// GetCalendar retrieves the movies releasing between start and end
func (c *Client) GetCalendar(ctx context.Context, start, end time.Time, unmonitored bool) ([]Movie, error) {
	var movies []Movie
	if err := c.Get(ctx, "calendar", arr.CalendarParams(start, end, unmonitored), &movies); err != nil {
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}
	return movies, nil
}
