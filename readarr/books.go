package readarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/s0up4200/arrkit/arr"
)

func int64Values(params url.Values, key string, ids []int64) {
	for _, id := range ids {
		params.Add(key, strconv.FormatInt(id, 10))
	}
}

// GetBooks retrieves the books of an author, or every book when authorID
// is 0
func (c *Client) GetBooks(ctx context.Context, authorID int64) ([]Book, error) {
	params := url.Values{}
	if authorID > 0 {
		params.Set("authorId", strconv.FormatInt(authorID, 10))
	}

	var books []Book
	if err := c.Get(ctx, "book", params, &books); err != nil {
		return nil, fmt.Errorf("failed to get books: %w", err)
	}
	return books, nil
}

// GetBook retrieves a book by id
func (c *Client) GetBook(ctx context.Context, id int64) (*Book, error) {
	var book Book
	if err := c.Get(ctx, arr.Int64Path("book", id), nil, &book); err != nil {
		return nil, fmt.Errorf("failed to get book ID %d: %w", id, err)
	}
	return &book, nil
}

// LookupBook searches the metadata source for books matching term.
// Prefixes isbn:, asin: and edition: narrow the search.
func (c *Client) LookupBook(ctx context.Context, term string) ([]Book, error) {
	params := url.Values{}
	params.Set("term", term)

	var books []Book
	if err := c.Get(ctx, "book/lookup", params, &books); err != nil {
		return nil, fmt.Errorf("failed to look up book %q: %w", term, err)
	}
	return books, nil
}

// AddBook looks up term and adds the first result together with its author.
// The author is added with opts.Author when not in the collection yet.
func (c *Client) AddBook(ctx context.Context, term string, opts AddBookOptions) (*Book, error) {
	results, err := c.LookupBook(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to add book: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("failed to add book: no book matching %q: %w", term, arr.ErrNotFound)
	}

	book := results[0]
	if book.Author == nil {
		book.Author = &Author{}
	}
	applyAuthorOptions(book.Author, opts.Author)
	book.Monitored = opts.Monitored
	book.AddOptions = &BookAddOptions{SearchForNewBook: opts.SearchForNewBook}

	// Readarr adds the edition flagged as monitored.
	if len(book.Editions) > 0 {
		monitored := false
		for _, e := range book.Editions {
			monitored = monitored || e.Monitored
		}
		if !monitored {
			book.Editions[0].Monitored = true
		}
	}

	var added Book
	if err := c.Post(ctx, "book", nil, book, &added); err != nil {
		return nil, fmt.Errorf("failed to add book %s: %w", book.Title, err)
	}

	c.Logger().Info().
		Int64("book_id", added.ID).
		Str("title", added.Title).
		Msg("Added book")
	return &added, nil
}

// UpdateBook saves changes to a book
func (c *Client) UpdateBook(ctx context.Context, book *Book) (*Book, error) {
	var updated Book
	if err := c.Put(ctx, arr.Int64Path("book", book.ID), nil, book, &updated); err != nil {
		return nil, fmt.Errorf("failed to update book ID %d: %w", book.ID, err)
	}
	return &updated, nil
}

// MonitorBooks sets the monitored flag of several books at once
func (c *Client) MonitorBooks(ctx context.Context, ids []int64, monitored bool) ([]Book, error) {
	body := map[string]any{"bookIds": ids, "monitored": monitored}

	var books []Book
	if err := c.Put(ctx, "book/monitor", nil, body, &books); err != nil {
		return nil, fmt.Errorf("failed to monitor books: %w", err)
	}
	return books, nil
}

// DeleteBook removes a book from the collection
func (c *Client) DeleteBook(ctx context.Context, id int64, deleteFiles, addImportListExclusion bool) error {
	params := arr.DeleteParams(deleteFiles, addImportListExclusion, "addImportListExclusion")
	if err := c.Delete(ctx, arr.Int64Path("book", id), params, nil); err != nil {
		return fmt.Errorf("failed to delete book ID %d: %w", id, err)
	}
	return nil
}

// GetBookFiles retrieves book files matching params
func (c *Client) GetBookFiles(ctx context.Context, p BookFileParams) ([]BookFile, error) {
	params := url.Values{}
	if p.AuthorID > 0 {
		params.Set("authorId", strconv.FormatInt(p.AuthorID, 10))
	}
	int64Values(params, "bookId", p.BookIDs)
	int64Values(params, "bookFileIds", p.BookFileIDs)
	if p.Unmapped {
		params.Set("unmapped", "true")
	}

	var files []BookFile
	if err := c.Get(ctx, "bookfile", params, &files); err != nil {
		return nil, fmt.Errorf("failed to get book files: %w", err)
	}
	return files, nil
}

// DeleteBookFile deletes a book file from disk
func (c *Client) DeleteBookFile(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, arr.Int64Path("bookfile", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete book file ID %d: %w", id, err)
	}
	return nil
}

// GetWantedMissing retrieves a page of monitored books without a file
func (c *Client) GetWantedMissing(ctx context.Context, params arr.PageParams) (*arr.Page[Book], error) {
	var page arr.Page[Book]
	if err := c.Get(ctx, "wanted/missing", params.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to get missing books: %w", err)
	}
	return &page, nil
}

// GetCutoffUnmet retrieves a page of books whose file is below the profile
// cutoff
func (c *Client) GetCutoffUnmet(ctx context.Context, params arr.PageParams) (*arr.Page[Book], error) {
	var page arr.Page[Book]
	if err := c.Get(ctx, "wanted/cutoff", params.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to get cutoff unmet books: %w", err)
	}
	return &page, nil
}

// GetCalendar retrieves the books releasing between start and end
func (c *Client) GetCalendar(ctx context.Context, start, end time.Time, unmonitored bool) ([]Book, error) {
	var books []Book
	if err := c.Get(ctx, "calendar", arr.CalendarParams(start, end, unmonitored), &books); err != nil {
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}
	return books, nil
}
