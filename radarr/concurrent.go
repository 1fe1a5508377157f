package radarr

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultConcurrency bounds parallel requests of the batch helpers
	DefaultConcurrency = 10
	// deleteConcurrency is lower, deletes hit the disk
	deleteConcurrency = 5
	searchBatchSize   = 10
)

// FetchMovieFiles replaces the embedded file of each movie with the full
// record from the moviefile endpoint. Failures are logged and skipped.
func (c *Client) FetchMovieFiles(ctx context.Context, movies []Movie) error {
	if len(movies) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)

	var mu sync.Mutex
	for i := range movies {
		movie := &movies[i]
		if movie.MovieFile == nil || movie.MovieFile.ID == 0 {
			continue
		}
		fileID := movie.MovieFile.ID

		g.Go(func() error {
			file, err := c.GetMovieFile(ctx, fileID)
			if err != nil {
				c.Logger().Warn().
					Err(err).
					Int64("file_id", fileID).
					Str("movie", movie.Title).
					Msg("Failed to get movie file details")
				return nil
			}

			mu.Lock()
			movie.MovieFile = file
			mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}

// BatchDeleteResult contains the results of a batch delete operation
type BatchDeleteResult struct {
	Requested  int
	Successful []int64
	Failed     []DeleteError
}

// DeleteError contains information about a failed delete operation
type DeleteError struct {
	MovieID    int64
	MovieTitle string
	Err        error
}

// Error implements the error interface
func (e DeleteError) Error() string {
	return fmt.Sprintf("failed to delete movie %s (ID: %d): %v", e.MovieTitle, e.MovieID, e.Err)
}

// Unwrap returns the underlying error
func (e DeleteError) Unwrap() error {
	return e.Err
}

// BatchDeleteMovies deletes movies one by one, concurrently. A failed
// delete does not stop the others.
func (c *Client) BatchDeleteMovies(ctx context.Context, movies []Movie, deleteFiles, addImportExclusion bool) BatchDeleteResult {
	result := BatchDeleteResult{Requested: len(movies)}
	if len(movies) == 0 {
		return result
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(deleteConcurrency)

	var mu sync.Mutex
	for _, movie := range movies {
		movie := movie
		g.Go(func() error {
			err := c.DeleteMovie(ctx, movie.ID, deleteFiles, addImportExclusion)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, DeleteError{
					MovieID:    movie.ID,
					MovieTitle: movie.Title,
					Err:        err,
				})
				return nil
			}
			result.Successful = append(result.Successful, movie.ID)
			return nil
		})
	}

	_ = g.Wait()
	return result
}

// BatchSearchMovies triggers searches in batches of ten movies per command
func (c *Client) BatchSearchMovies(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(3)

	var mu sync.Mutex
	var failed []error
	for start := 0; start < len(ids); start += searchBatchSize {
		batch := ids[start:min(start+searchBatchSize, len(ids))]

		g.Go(func() error {
			if _, err := c.SearchMovies(ctx, batch); err != nil {
				c.Logger().Error().
					Err(err).
					Interface("movie_ids", batch).
					Msg("Failed to trigger search for batch")
				mu.Lock()
				failed = append(failed, err)
				mu.Unlock()
				return nil
			}

			c.Logger().Info().
				Interface("movie_ids", batch).
				Msg("Successfully triggered search for batch")
			return nil
		})
	}

	_ = g.Wait()
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d search batches failed: %w", len(failed), (len(ids)+searchBatchSize-1)/searchBatchSize, failed[0])
	}
	return nil
}
