package readarr

import (
	"time"

	"github.com/s0up4200/arrkit/arr"
)

// Monitor options applied to the books of a newly added author
const (
	MonitorAll      = "all"
	MonitorFuture   = "future"
	MonitorMissing  = "missing"
	MonitorExisting = "existing"
	MonitorFirst    = "first"
	MonitorLatest   = "latest"
	MonitorNone     = "none"
)

// New item monitoring of an author
const (
	MonitorNewAll  = "all"
	MonitorNewNone = "none"
	MonitorNewNew  = "new"
)

// Author is a writer in the collection, or a lookup result when ID is 0
type Author struct {
	ID                  int64             `json:"id,omitempty"`
	AuthorName          string            `json:"authorName"`
	AuthorNameLastFirst string            `json:"authorNameLastFirst,omitempty"`
	ForeignAuthorID     string            `json:"foreignAuthorId"`
	TitleSlug           string            `json:"titleSlug,omitempty"`
	Overview            string            `json:"overview,omitempty"`
	Disambiguation      string            `json:"disambiguation,omitempty"`
	Status              string            `json:"status,omitempty"`
	Ended               bool              `json:"ended,omitempty"`
	Images              []arr.Image       `json:"images,omitempty"`
	Links               []arr.Link        `json:"links,omitempty"`
	Path                string            `json:"path,omitempty"`
	QualityProfileID    int64             `json:"qualityProfileId,omitempty"`
	MetadataProfileID   int64             `json:"metadataProfileId,omitempty"`
	Monitored           bool              `json:"monitored"`
	MonitorNewItems     string            `json:"monitorNewItems,omitempty"`
	RootFolderPath      string            `json:"rootFolderPath,omitempty"`
	Genres              []string          `json:"genres,omitempty"`
	CleanName           string            `json:"cleanName,omitempty"`
	SortName            string            `json:"sortName,omitempty"`
	Tags                []int             `json:"tags"`
	Added               time.Time         `json:"added,omitempty"`
	Ratings             *arr.Ratings      `json:"ratings,omitempty"`
	Statistics          *AuthorStatistics `json:"statistics,omitempty"`
	AddOptions          *AuthorAddOptions `json:"addOptions,omitempty"`
}

// AuthorStatistics summarises the books of an author
type AuthorStatistics struct {
	BookFileCount      int     `json:"bookFileCount"`
	BookCount          int     `json:"bookCount"`
	AvailableBookCount int     `json:"availableBookCount"`
	TotalBookCount     int     `json:"totalBookCount"`
	SizeOnDisk         int64   `json:"sizeOnDisk"`
	PercentOfBooks     float64 `json:"percentOfBooks"`
}

// AuthorAddOptions control what Readarr does right after adding an author
type AuthorAddOptions struct {
	Monitor               string   `json:"monitor,omitempty"`
	BooksToMonitor        []string `json:"booksToMonitor,omitempty"`
	Monitored             bool     `json:"monitored"`
	SearchForMissingBooks bool     `json:"searchForMissingBooks"`
}

// AddAuthorOptions are the local settings injected into a lookup result
// before it is posted. AddBook reuses them for the embedded author.
type AddAuthorOptions struct {
	QualityProfileID  int64
	MetadataProfileID int64
	RootFolderPath    string
	Monitored         bool
	// MonitorNewItems is one of the MonitorNew constants, defaults to all.
	MonitorNewItems string
	Tags            []int
	// Monitor selects the existing books to monitor, defaults to all.
	Monitor               string
	SearchForMissingBooks bool
}

// AddBookOptions are the settings of AddBook
type AddBookOptions struct {
	Author           AddAuthorOptions
	Monitored        bool
	SearchForNewBook bool
}

// Book is a work of an author
type Book struct {
	ID               int64           `json:"id,omitempty"`
	Title            string          `json:"title"`
	AuthorTitle      string          `json:"authorTitle,omitempty"`
	SeriesTitle      string          `json:"seriesTitle,omitempty"`
	Disambiguation   string          `json:"disambiguation,omitempty"`
	Overview         string          `json:"overview,omitempty"`
	AuthorID         int64           `json:"authorId,omitempty"`
	ForeignBookID    string          `json:"foreignBookId"`
	ForeignEditionID string          `json:"foreignEditionId,omitempty"`
	TitleSlug        string          `json:"titleSlug,omitempty"`
	Monitored        bool            `json:"monitored"`
	AnyEditionOk     bool            `json:"anyEditionOk"`
	Ratings          *arr.Ratings    `json:"ratings,omitempty"`
	ReleaseDate      time.Time       `json:"releaseDate,omitempty"`
	PageCount        int             `json:"pageCount,omitempty"`
	Genres           []string        `json:"genres,omitempty"`
	Images           []arr.Image     `json:"images,omitempty"`
	Links            []arr.Link      `json:"links,omitempty"`
	Author           *Author         `json:"author,omitempty"`
	Editions         []Edition       `json:"editions,omitempty"`
	Statistics       *BookStatistics `json:"statistics,omitempty"`
	Added            time.Time       `json:"added,omitempty"`
	Grabbed          bool            `json:"grabbed,omitempty"`
	AddOptions       *BookAddOptions `json:"addOptions,omitempty"`
}

// BookAddOptions control what Readarr does right after adding a book
type BookAddOptions struct {
	SearchForNewBook bool `json:"searchForNewBook"`
}

// BookStatistics summarises the files of a book
type BookStatistics struct {
	BookFileCount  int     `json:"bookFileCount"`
	BookCount      int     `json:"bookCount"`
	TotalBookCount int     `json:"totalBookCount"`
	SizeOnDisk     int64   `json:"sizeOnDisk"`
	PercentOfBooks float64 `json:"percentOfBooks"`
}

// Edition is one published edition of a book
type Edition struct {
	ID               int64       `json:"id,omitempty"`
	BookID           int64       `json:"bookId,omitempty"`
	ForeignEditionID string      `json:"foreignEditionId"`
	TitleSlug        string      `json:"titleSlug,omitempty"`
	Isbn13           string      `json:"isbn13,omitempty"`
	Asin             string      `json:"asin,omitempty"`
	Title            string      `json:"title"`
	Language         string      `json:"language,omitempty"`
	Overview         string      `json:"overview,omitempty"`
	Format           string      `json:"format,omitempty"`
	IsEbook          bool        `json:"isEbook"`
	Publisher        string      `json:"publisher,omitempty"`
	PageCount        int         `json:"pageCount,omitempty"`
	ReleaseDate      time.Time   `json:"releaseDate,omitempty"`
	Images           []arr.Image `json:"images,omitempty"`
	Monitored        bool        `json:"monitored"`
	ManualAdd        bool        `json:"manualAdd,omitempty"`
}

// BookFile is an ebook or audiobook file on disk
type BookFile struct {
	ID                  int64            `json:"id"`
	AuthorID            int64            `json:"authorId"`
	BookID              int64            `json:"bookId"`
	Path                string           `json:"path"`
	Size                int64            `json:"size"`
	DateAdded           time.Time        `json:"dateAdded"`
	Quality             arr.QualityModel `json:"quality"`
	QualityWeight       int              `json:"qualityWeight,omitempty"`
	MediaInfo           map[string]any   `json:"mediaInfo,omitempty"`
	QualityCutoffNotMet bool             `json:"qualityCutoffNotMet"`
}

// BookFileParams filters the bookfile endpoint. At least one field must be
// set.
type BookFileParams struct {
	AuthorID    int64
	BookIDs     []int64
	BookFileIDs []int64
	Unmapped    bool
}

// MetadataProfile restricts which books of an author are tracked
type MetadataProfile struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	MinPopularity       float64 `json:"minPopularity"`
	SkipMissingDate     bool    `json:"skipMissingDate"`
	SkipMissingIsbn     bool    `json:"skipMissingIsbn"`
	SkipPartsAndSets    bool    `json:"skipPartsAndSets"`
	SkipSeriesSecondary bool    `json:"skipSeriesSecondary"`
	AllowedLanguages    string  `json:"allowedLanguages,omitempty"`
	MinPages            int     `json:"minPages"`
	Ignored             string  `json:"ignored,omitempty"`
}
