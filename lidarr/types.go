package lidarr

import (
	"time"

	"github.com/s0up4200/arrkit/arr"
)

// Monitor options applied to the albums of a newly added artist
const (
	MonitorAll      = "all"
	MonitorFuture   = "future"
	MonitorMissing  = "missing"
	MonitorExisting = "existing"
	MonitorFirst    = "first"
	MonitorLatest   = "latest"
	MonitorNone     = "none"
)

// New item monitoring of an artist
const (
	MonitorNewAll  = "all"
	MonitorNewNone = "none"
	MonitorNewNew  = "new"
)

// Artist is a performer in the collection, or a lookup result when ID is 0
type Artist struct {
	ID                int64             `json:"id,omitempty"`
	ArtistName        string            `json:"artistName"`
	ForeignArtistID   string            `json:"foreignArtistId"`
	MbID              string            `json:"mbId,omitempty"`
	ArtistType        string            `json:"artistType,omitempty"`
	Disambiguation    string            `json:"disambiguation,omitempty"`
	Overview          string            `json:"overview,omitempty"`
	Status            string            `json:"status,omitempty"`
	Ended             bool              `json:"ended,omitempty"`
	Images            []arr.Image       `json:"images,omitempty"`
	Links             []arr.Link        `json:"links,omitempty"`
	Path              string            `json:"path,omitempty"`
	QualityProfileID  int64             `json:"qualityProfileId,omitempty"`
	MetadataProfileID int64             `json:"metadataProfileId,omitempty"`
	Monitored         bool              `json:"monitored"`
	MonitorNewItems   string            `json:"monitorNewItems,omitempty"`
	RootFolderPath    string            `json:"rootFolderPath,omitempty"`
	Genres            []string          `json:"genres,omitempty"`
	CleanName         string            `json:"cleanName,omitempty"`
	SortName          string            `json:"sortName,omitempty"`
	Tags              []int             `json:"tags"`
	Added             time.Time         `json:"added,omitempty"`
	Ratings           *arr.Ratings      `json:"ratings,omitempty"`
	Statistics        *Statistics       `json:"statistics,omitempty"`
	AddOptions        *ArtistAddOptions `json:"addOptions,omitempty"`
}

// Statistics summarises the tracks of an artist or album
type Statistics struct {
	AlbumCount      int     `json:"albumCount,omitempty"`
	TrackFileCount  int     `json:"trackFileCount"`
	TrackCount      int     `json:"trackCount"`
	TotalTrackCount int     `json:"totalTrackCount"`
	SizeOnDisk      int64   `json:"sizeOnDisk"`
	PercentOfTracks float64 `json:"percentOfTracks"`
}

// ArtistAddOptions control what Lidarr does right after adding an artist
type ArtistAddOptions struct {
	Monitor                string   `json:"monitor,omitempty"`
	AlbumsToMonitor        []string `json:"albumsToMonitor,omitempty"`
	Monitored              bool     `json:"monitored"`
	SearchForMissingAlbums bool     `json:"searchForMissingAlbums"`
}

// AddArtistOptions are the local settings injected into a lookup result
// before it is posted. AddAlbum applies them to the album's artist.
type AddArtistOptions struct {
	QualityProfileID  int64
	MetadataProfileID int64
	RootFolderPath    string
	Monitored         bool
	// MonitorNewItems is one of the MonitorNew constants, defaults to all.
	MonitorNewItems string
	Tags            []int
	// Monitor selects the existing albums to monitor, defaults to all.
	Monitor                string
	SearchForMissingAlbums bool
}

// Album is a release group of an artist
type Album struct {
	ID             int64            `json:"id,omitempty"`
	Title          string           `json:"title"`
	Disambiguation string           `json:"disambiguation,omitempty"`
	Overview       string           `json:"overview,omitempty"`
	ArtistID       int64            `json:"artistId,omitempty"`
	ForeignAlbumID string           `json:"foreignAlbumId"`
	Monitored      bool             `json:"monitored"`
	AnyReleaseOk   bool             `json:"anyReleaseOk"`
	ProfileID      int64            `json:"profileId,omitempty"`
	Duration       int64            `json:"duration,omitempty"`
	AlbumType      string           `json:"albumType,omitempty"`
	SecondaryTypes []string         `json:"secondaryTypes,omitempty"`
	MediumCount    int              `json:"mediumCount,omitempty"`
	Ratings        *arr.Ratings     `json:"ratings,omitempty"`
	ReleaseDate    time.Time        `json:"releaseDate,omitempty"`
	Releases       []Release        `json:"releases,omitempty"`
	Genres         []string         `json:"genres,omitempty"`
	Images         []arr.Image      `json:"images,omitempty"`
	Links          []arr.Link       `json:"links,omitempty"`
	Artist         *Artist          `json:"artist,omitempty"`
	Statistics     *Statistics      `json:"statistics,omitempty"`
	Grabbed        bool             `json:"grabbed,omitempty"`
	AddOptions     *AlbumAddOptions `json:"addOptions,omitempty"`
}

// AlbumAddOptions control what Lidarr does right after adding an album
type AlbumAddOptions struct {
	SearchForNewAlbum bool `json:"searchForNewAlbum"`
}

// Release is one pressing of an album
type Release struct {
	ID               int64    `json:"id,omitempty"`
	AlbumID          int64    `json:"albumId,omitempty"`
	ForeignReleaseID string   `json:"foreignReleaseId"`
	Title            string   `json:"title"`
	Status           string   `json:"status,omitempty"`
	Duration         int64    `json:"duration,omitempty"`
	TrackCount       int      `json:"trackCount"`
	MediumCount      int      `json:"mediumCount"`
	Disambiguation   string   `json:"disambiguation,omitempty"`
	Country          []string `json:"country,omitempty"`
	Label            []string `json:"label,omitempty"`
	Format           string   `json:"format,omitempty"`
	Monitored        bool     `json:"monitored"`
}

// Track is one song of an album release
type Track struct {
	ID                  int64  `json:"id"`
	ArtistID            int64  `json:"artistId"`
	AlbumID             int64  `json:"albumId"`
	ForeignTrackID      string `json:"foreignTrackId"`
	ForeignRecordingID  string `json:"foreignRecordingId"`
	TrackFileID         int64  `json:"trackFileId"`
	Explicit            bool   `json:"explicit"`
	AbsoluteTrackNumber int    `json:"absoluteTrackNumber"`
	TrackNumber         string `json:"trackNumber"`
	Title               string `json:"title"`
	Duration            int64  `json:"duration"`
	MediumNumber        int    `json:"mediumNumber"`
	HasFile             bool   `json:"hasFile"`
}

// TrackFile is an audio file on disk
type TrackFile struct {
	ID                  int64            `json:"id"`
	ArtistID            int64            `json:"artistId"`
	AlbumID             int64            `json:"albumId"`
	Path                string           `json:"path"`
	Size                int64            `json:"size"`
	DateAdded           time.Time        `json:"dateAdded"`
	Quality             arr.QualityModel `json:"quality"`
	QualityWeight       int              `json:"qualityWeight,omitempty"`
	MediaInfo           map[string]any   `json:"mediaInfo,omitempty"`
	QualityCutoffNotMet bool             `json:"qualityCutoffNotMet"`
}

// AlbumParams filters the album endpoint
type AlbumParams struct {
	ArtistID               int64
	AlbumIDs               []int64
	ForeignAlbumID         string
	IncludeAllArtistAlbums bool
}

// TrackParams filters the track endpoint. At least one field must be set.
type TrackParams struct {
	ArtistID       int64
	AlbumID        int64
	AlbumReleaseID int64
	TrackIDs       []int64
}

// TrackFileParams filters the trackfile endpoint. At least one field must
// be set.
type TrackFileParams struct {
	ArtistID     int64
	AlbumIDs     []int64
	TrackFileIDs []int64
	Unmapped     bool
}

// ProfileType is a primary or secondary album type, or a release status,
// allowed or rejected by a metadata profile
type ProfileType struct {
	Allowed bool `json:"allowed"`
	// AlbumType, ReleaseStatus: only one of them is set per list.
	AlbumType     *NamedID `json:"albumType,omitempty"`
	ReleaseStatus *NamedID `json:"releaseStatus,omitempty"`
}

// NamedID is an id with a display name
type NamedID struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MetadataProfile restricts which albums of an artist are tracked
type MetadataProfile struct {
	ID                  int64         `json:"id"`
	Name                string        `json:"name"`
	PrimaryAlbumTypes   []ProfileType `json:"primaryAlbumTypes"`
	SecondaryAlbumTypes []ProfileType `json:"secondaryAlbumTypes"`
	ReleaseStatuses     []ProfileType `json:"releaseStatuses"`
}
