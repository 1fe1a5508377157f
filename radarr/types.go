package radarr

import (
	"time"

	"github.com/s0up4200/arrkit/arr"
)

// Minimum availability values
const (
	AvailabilityAnnounced = "announced"
	AvailabilityInCinemas = "inCinemas"
	AvailabilityReleased  = "released"
)

// Monitor options applied when a movie is added
const (
	MonitorMovieOnly          = "movieOnly"
	MonitorMovieAndCollection = "movieAndCollection"
	MonitorNone               = "none"
)

// Movie is a movie in the collection, or a lookup result when ID is 0
type Movie struct {
	ID                  int64                  `json:"id,omitempty"`
	Title               string                 `json:"title"`
	OriginalTitle       string                 `json:"originalTitle,omitempty"`
	SortTitle           string                 `json:"sortTitle,omitempty"`
	SizeOnDisk          int64                  `json:"sizeOnDisk,omitempty"`
	Status              string                 `json:"status,omitempty"`
	Overview            string                 `json:"overview,omitempty"`
	InCinemas           time.Time              `json:"inCinemas,omitempty"`
	PhysicalRelease     time.Time              `json:"physicalRelease,omitempty"`
	DigitalRelease      time.Time              `json:"digitalRelease,omitempty"`
	Images              []arr.Image            `json:"images,omitempty"`
	Website             string                 `json:"website,omitempty"`
	Year                int                    `json:"year,omitempty"`
	HasFile             bool                   `json:"hasFile"`
	YouTubeTrailerID    string                 `json:"youTubeTrailerId,omitempty"`
	Studio              string                 `json:"studio,omitempty"`
	Path                string                 `json:"path,omitempty"`
	QualityProfileID    int64                  `json:"qualityProfileId,omitempty"`
	Monitored           bool                   `json:"monitored"`
	MinimumAvailability string                 `json:"minimumAvailability,omitempty"`
	IsAvailable         bool                   `json:"isAvailable,omitempty"`
	FolderName          string                 `json:"folderName,omitempty"`
	Runtime             int                    `json:"runtime,omitempty"`
	CleanTitle          string                 `json:"cleanTitle,omitempty"`
	ImdbID              string                 `json:"imdbId,omitempty"`
	TmdbID              int64                  `json:"tmdbId"`
	TitleSlug           string                 `json:"titleSlug,omitempty"`
	RootFolderPath      string                 `json:"rootFolderPath,omitempty"`
	Certification       string                 `json:"certification,omitempty"`
	Genres              []string               `json:"genres,omitempty"`
	Tags                []int                  `json:"tags"`
	Added               time.Time              `json:"added,omitempty"`
	Ratings             map[string]arr.Ratings `json:"ratings,omitempty"`
	MovieFile           *MovieFile             `json:"movieFile,omitempty"`
	Collection          *Collection            `json:"collection,omitempty"`
	Popularity          float64                `json:"popularity,omitempty"`
	AddOptions          *AddOptions            `json:"addOptions,omitempty"`
}

// Collection is the TMDB collection a movie belongs to
type Collection struct {
	Title  string `json:"title"`
	TmdbID int64  `json:"tmdbId"`
}

// AddOptions control what Radarr does right after adding a movie
type AddOptions struct {
	SearchForMovie bool   `json:"searchForMovie"`
	Monitor        string `json:"monitor,omitempty"`
}

// AddMovieOptions are the local settings injected into a lookup result
// before it is posted
type AddMovieOptions struct {
	QualityProfileID    int64
	RootFolderPath      string
	Monitored           bool
	MinimumAvailability string
	Tags                []int
	// Monitor is one of the Monitor constants, defaults to movieOnly.
	Monitor        string
	SearchForMovie bool
}

// MovieFile is the media file of a movie
type MovieFile struct {
	ID                  int64            `json:"id"`
	MovieID             int64            `json:"movieId"`
	RelativePath        string           `json:"relativePath"`
	Path                string           `json:"path"`
	Size                int64            `json:"size"`
	DateAdded           time.Time        `json:"dateAdded"`
	SceneName           string           `json:"sceneName,omitempty"`
	ReleaseGroup        string           `json:"releaseGroup,omitempty"`
	Edition             string           `json:"edition,omitempty"`
	Languages           []arr.Language   `json:"languages,omitempty"`
	Quality             arr.QualityModel `json:"quality"`
	CustomFormats       []CustomFormat   `json:"customFormats,omitempty"`
	CustomFormatScore   int              `json:"customFormatScore,omitempty"`
	MediaInfo           *MediaInfo       `json:"mediaInfo,omitempty"`
	OriginalFilePath    string           `json:"originalFilePath,omitempty"`
	QualityCutoffNotMet bool             `json:"qualityCutoffNotMet"`
}

// MediaInfo is the technical description of a media file
type MediaInfo struct {
	AudioBitrate          int64   `json:"audioBitrate"`
	AudioChannels         float64 `json:"audioChannels"`
	AudioCodec            string  `json:"audioCodec"`
	AudioLanguages        string  `json:"audioLanguages"`
	AudioStreamCount      int     `json:"audioStreamCount"`
	VideoBitDepth         int     `json:"videoBitDepth"`
	VideoBitrate          int64   `json:"videoBitrate"`
	VideoCodec            string  `json:"videoCodec"`
	VideoDynamicRangeType string  `json:"videoDynamicRangeType"`
	VideoFps              float64 `json:"videoFps"`
	Resolution            string  `json:"resolution"`
	RunTime               string  `json:"runTime"`
	ScanType              string  `json:"scanType"`
	Subtitles             string  `json:"subtitles"`
}

// MovieEditor applies the same change to several movies. Nil fields are
// left untouched.
type MovieEditor struct {
	MovieIDs            []int64 `json:"movieIds"`
	Monitored           *bool   `json:"monitored,omitempty"`
	QualityProfileID    *int64  `json:"qualityProfileId,omitempty"`
	MinimumAvailability string  `json:"minimumAvailability,omitempty"`
	RootFolderPath      string  `json:"rootFolderPath,omitempty"`
	Tags                []int   `json:"tags,omitempty"`
	// ApplyTags is add, remove or replace.
	ApplyTags          string `json:"applyTags,omitempty"`
	MoveFiles          bool   `json:"moveFiles,omitempty"`
	DeleteFiles        bool   `json:"deleteFiles,omitempty"`
	AddImportExclusion bool   `json:"addImportExclusion,omitempty"`
}

// CustomFormat scores releases matching its specifications
type CustomFormat struct {
	ID                              int64            `json:"id"`
	Name                            string           `json:"name"`
	IncludeCustomFormatWhenRenaming bool             `json:"includeCustomFormatWhenRenaming,omitempty"`
	Specifications                  []map[string]any `json:"specifications,omitempty"`
}

// ImportExclusion keeps a movie from being added by import lists
type ImportExclusion struct {
	ID         int64  `json:"id,omitempty"`
	TmdbID     int64  `json:"tmdbId"`
	MovieTitle string `json:"movieTitle"`
	MovieYear  int    `json:"movieYear"`
}

// Credit is a cast or crew member of a movie
type Credit struct {
	ID           int64       `json:"id"`
	PersonName   string      `json:"personName"`
	CreditTmdbID string      `json:"creditTmdbId"`
	PersonTmdbID int64       `json:"personTmdbId"`
	MovieID      int64       `json:"movieId"`
	Images       []arr.Image `json:"images,omitempty"`
	Department   string      `json:"department,omitempty"`
	Job          string      `json:"job,omitempty"`
	Character    string      `json:"character,omitempty"`
	Order        int         `json:"order,omitempty"`
	Type         string      `json:"type"`
}
