package arr

import (
	"strings"
	"time"

	"github.com/blang/semver"
)

// Document is a JSON object passed through without a fixed schema, used
// for configuration resources whose shape differs between managers.
type Document map[string]any

// SystemStatus is returned by system/status
type SystemStatus struct {
	AppName                string    `json:"appName"`
	InstanceName           string    `json:"instanceName"`
	Version                string    `json:"version"`
	BuildTime              time.Time `json:"buildTime"`
	IsDebug                bool      `json:"isDebug"`
	IsProduction           bool      `json:"isProduction"`
	IsAdmin                bool      `json:"isAdmin"`
	IsUserInteractive      bool      `json:"isUserInteractive"`
	StartupPath            string    `json:"startupPath"`
	AppData                string    `json:"appData"`
	OsName                 string    `json:"osName"`
	OsVersion              string    `json:"osVersion"`
	IsDocker               bool      `json:"isDocker"`
	IsLinux                bool      `json:"isLinux"`
	IsOsx                  bool      `json:"isOsx"`
	IsWindows              bool      `json:"isWindows"`
	Branch                 string    `json:"branch"`
	Authentication         string    `json:"authentication"`
	URLBase                string    `json:"urlBase"`
	RuntimeVersion         string    `json:"runtimeVersion"`
	RuntimeName            string    `json:"runtimeName"`
	StartTime              time.Time `json:"startTime"`
	PackageVersion         string    `json:"packageVersion"`
	PackageUpdateMechanism string    `json:"packageUpdateMechanism"`
}

// Semver parses the reported application version. The build number of
// four-part versions such as 5.2.6.8376 becomes build metadata.
func (s *SystemStatus) Semver() (semver.Version, error) {
	v := strings.TrimSpace(s.Version)
	if parts := strings.SplitN(v, ".", 4); len(parts) == 4 {
		v = strings.Join(parts[:3], ".") + "+" + parts[3]
	}
	return semver.ParseTolerant(v)
}

// HealthCheck is one entry of the health endpoint
type HealthCheck struct {
	Source  string `json:"source"`
	Type    string `json:"type"`
	Message string `json:"message"`
	WikiURL string `json:"wikiUrl"`
}

// DiskSpace describes a mounted volume
type DiskSpace struct {
	Path       string `json:"path"`
	Label      string `json:"label"`
	FreeSpace  int64  `json:"freeSpace"`
	TotalSpace int64  `json:"totalSpace"`
}

// Tag is a label that can be attached to most resources
type Tag struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// TagDetails lists the resources using a tag. Only the id lists relevant to
// the manager are populated.
type TagDetails struct {
	ID                int    `json:"id"`
	Label             string `json:"label"`
	DelayProfileIDs   []int  `json:"delayProfileIds,omitempty"`
	ImportListIDs     []int  `json:"importListIds,omitempty"`
	NotificationIDs   []int  `json:"notificationIds,omitempty"`
	RestrictionIDs    []int  `json:"restrictionIds,omitempty"`
	IndexerIDs        []int  `json:"indexerIds,omitempty"`
	DownloadClientIDs []int  `json:"downloadClientIds,omitempty"`
	AutoTagIDs        []int  `json:"autoTagIds,omitempty"`
	SeriesIDs         []int  `json:"seriesIds,omitempty"`
	MovieIDs          []int  `json:"movieIds,omitempty"`
	AuthorIDs         []int  `json:"authorIds,omitempty"`
	ArtistIDs         []int  `json:"artistIds,omitempty"`
}

// RootFolder is a filesystem path where the manager stores media.
// Readarr and Lidarr require the name and default profile fields on create.
type RootFolder struct {
	ID                       int64            `json:"id,omitempty"`
	Name                     string           `json:"name,omitempty"`
	Path                     string           `json:"path"`
	Accessible               bool             `json:"accessible,omitempty"`
	FreeSpace                int64            `json:"freeSpace,omitempty"`
	TotalSpace               int64            `json:"totalSpace,omitempty"`
	DefaultQualityProfileID  int64            `json:"defaultQualityProfileId,omitempty"`
	DefaultMetadataProfileID int64            `json:"defaultMetadataProfileId,omitempty"`
	DefaultMonitorOption     string           `json:"defaultMonitorOption,omitempty"`
	DefaultNewItemMonitor    string           `json:"defaultNewItemMonitorOption,omitempty"`
	DefaultTags              []int            `json:"defaultTags,omitempty"`
	IsCalibreLibrary         bool             `json:"isCalibreLibrary,omitempty"`
	UnmappedFolders          []UnmappedFolder `json:"unmappedFolders,omitempty"`
}

// UnmappedFolder is a folder under a root folder not matched to any item
type UnmappedFolder struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	RelativePath string `json:"relativePath,omitempty"`
}

// Quality names a quality definition
type Quality struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Source     string `json:"source,omitempty"`
	Resolution int    `json:"resolution,omitempty"`
	Modifier   string `json:"modifier,omitempty"`
}

// Revision tracks proper/repack releases of a quality
type Revision struct {
	Version  int  `json:"version"`
	Real     int  `json:"real"`
	IsRepack bool `json:"isRepack,omitempty"`
}

// QualityModel is the quality attached to a file or release
type QualityModel struct {
	Quality  Quality  `json:"quality"`
	Revision Revision `json:"revision"`
}

// QualityProfileItem is an allowed quality, or a group of them
type QualityProfileItem struct {
	ID      int                  `json:"id,omitempty"`
	Name    string               `json:"name,omitempty"`
	Quality *Quality             `json:"quality,omitempty"`
	Items   []QualityProfileItem `json:"items"`
	Allowed bool                 `json:"allowed"`
}

// FormatItem scores a custom format inside a quality profile
type FormatItem struct {
	Format int    `json:"format"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
}

// QualityProfile is referenced by id when adding new items
type QualityProfile struct {
	ID                int64                `json:"id"`
	Name              string               `json:"name"`
	UpgradeAllowed    bool                 `json:"upgradeAllowed"`
	Cutoff            int                  `json:"cutoff"`
	Items             []QualityProfileItem `json:"items"`
	MinFormatScore    int                  `json:"minFormatScore,omitempty"`
	CutoffFormatScore int                  `json:"cutoffFormatScore,omitempty"`
	FormatItems       []FormatItem         `json:"formatItems,omitempty"`
}

// Image is a poster, banner or cover
type Image struct {
	CoverType string `json:"coverType"`
	URL       string `json:"url,omitempty"`
	RemoteURL string `json:"remoteUrl,omitempty"`
	Extension string `json:"extension,omitempty"`
}

// Link is an external reference such as a MusicBrainz or Goodreads page
type Link struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// Ratings is a vote summary
type Ratings struct {
	Votes      int64   `json:"votes"`
	Value      float64 `json:"value"`
	Popularity float64 `json:"popularity,omitempty"`
}

// Language names a language definition
type Language struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// StatusMessage is attached to queue items with warnings
type StatusMessage struct {
	Title    string   `json:"title"`
	Messages []string `json:"messages"`
}

// QueueRecord is one download in the activity queue. Only the id fields
// relevant to the manager are set.
type QueueRecord struct {
	ID                      int64           `json:"id"`
	Title                   string          `json:"title"`
	Status                  string          `json:"status"`
	TrackedDownloadStatus   string          `json:"trackedDownloadStatus,omitempty"`
	TrackedDownloadState    string          `json:"trackedDownloadState,omitempty"`
	StatusMessages          []StatusMessage `json:"statusMessages,omitempty"`
	ErrorMessage            string          `json:"errorMessage,omitempty"`
	DownloadID              string          `json:"downloadId,omitempty"`
	Protocol                string          `json:"protocol"`
	DownloadClient          string          `json:"downloadClient,omitempty"`
	Indexer                 string          `json:"indexer,omitempty"`
	OutputPath              string          `json:"outputPath,omitempty"`
	Size                    float64         `json:"size"`
	Sizeleft                float64         `json:"sizeleft"`
	Timeleft                string          `json:"timeleft,omitempty"`
	EstimatedCompletionTime time.Time       `json:"estimatedCompletionTime,omitempty"`
	Quality                 QualityModel    `json:"quality"`
	SeriesID                int64           `json:"seriesId,omitempty"`
	EpisodeID               int64           `json:"episodeId,omitempty"`
	MovieID                 int64           `json:"movieId,omitempty"`
	AuthorID                int64           `json:"authorId,omitempty"`
	BookID                  int64           `json:"bookId,omitempty"`
	ArtistID                int64           `json:"artistId,omitempty"`
	AlbumID                 int64           `json:"albumId,omitempty"`
}

// HistoryRecord is one entry of the activity history
type HistoryRecord struct {
	ID          int64             `json:"id"`
	EventType   string            `json:"eventType"`
	Date        time.Time         `json:"date"`
	SourceTitle string            `json:"sourceTitle"`
	DownloadID  string            `json:"downloadId,omitempty"`
	Quality     QualityModel      `json:"quality"`
	Data        map[string]string `json:"data,omitempty"`
	SeriesID    int64             `json:"seriesId,omitempty"`
	EpisodeID   int64             `json:"episodeId,omitempty"`
	MovieID     int64             `json:"movieId,omitempty"`
	AuthorID    int64             `json:"authorId,omitempty"`
	BookID      int64             `json:"bookId,omitempty"`
	ArtistID    int64             `json:"artistId,omitempty"`
	AlbumID     int64             `json:"albumId,omitempty"`
}

// BlocklistItem is a release that will not be grabbed again
type BlocklistItem struct {
	ID          int64        `json:"id"`
	SourceTitle string       `json:"sourceTitle"`
	Date        time.Time    `json:"date"`
	Protocol    string       `json:"protocol"`
	Indexer     string       `json:"indexer,omitempty"`
	Message     string       `json:"message,omitempty"`
	Quality     QualityModel `json:"quality"`
	SeriesID    int64        `json:"seriesId,omitempty"`
	MovieID     int64        `json:"movieId,omitempty"`
	AuthorID    int64        `json:"authorId,omitempty"`
	ArtistID    int64        `json:"artistId,omitempty"`
}

// LogRecord is one line of the application log
type LogRecord struct {
	ID        int64     `json:"id"`
	Time      time.Time `json:"time"`
	Level     string    `json:"level"`
	Logger    string    `json:"logger"`
	Message   string    `json:"message"`
	Exception string    `json:"exception,omitempty"`
}

// Command is a background task queued on the manager
type Command struct {
	ID                  int64          `json:"id"`
	Name                string         `json:"name"`
	CommandName         string         `json:"commandName"`
	Message             string         `json:"message,omitempty"`
	Body                map[string]any `json:"body,omitempty"`
	Priority            string         `json:"priority,omitempty"`
	Status              string         `json:"status"`
	Result              string         `json:"result,omitempty"`
	Queued              time.Time      `json:"queued"`
	Started             time.Time      `json:"started,omitempty"`
	Ended               time.Time      `json:"ended,omitempty"`
	Duration            string         `json:"duration,omitempty"`
	Trigger             string         `json:"trigger,omitempty"`
	StateChangeTime     time.Time      `json:"stateChangeTime,omitempty"`
	SendUpdatesToClient bool           `json:"sendUpdatesToClient,omitempty"`
	UpdateScheduledTask bool           `json:"updateScheduledTask,omitempty"`
}

// Backup is a stored configuration backup
type Backup struct {
	ID   int64     `json:"id"`
	Name string    `json:"name"`
	Path string    `json:"path"`
	Type string    `json:"type"`
	Size int64     `json:"size"`
	Time time.Time `json:"time"`
}

// UpdateChanges lists the release notes of an update
type UpdateChanges struct {
	New   []string `json:"new"`
	Fixed []string `json:"fixed"`
}

// UpdateInfo describes an available or installed application update
type UpdateInfo struct {
	Version     string        `json:"version"`
	Branch      string        `json:"branch"`
	ReleaseDate time.Time     `json:"releaseDate"`
	FileName    string        `json:"fileName"`
	URL         string        `json:"url"`
	Installed   bool          `json:"installed"`
	InstalledOn time.Time     `json:"installedOn,omitempty"`
	Installable bool          `json:"installable"`
	Latest      bool          `json:"latest"`
	Changes     UpdateChanges `json:"changes"`
	Hash        string        `json:"hash"`
}

// Field is one setting of a provider
type Field struct {
	Order    int    `json:"order"`
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Value    any    `json:"value,omitempty"`
	Type     string `json:"type,omitempty"`
	Advanced bool   `json:"advanced,omitempty"`
	HelpText string `json:"helpText,omitempty"`
}

// Provider is the common shape of indexers, download clients,
// notifications and import lists.
type Provider struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Implementation     string  `json:"implementation"`
	ImplementationName string  `json:"implementationName"`
	ConfigContract     string  `json:"configContract"`
	InfoLink           string  `json:"infoLink,omitempty"`
	Enable             bool    `json:"enable,omitempty"`
	EnableRss          bool    `json:"enableRss,omitempty"`
	Protocol           string  `json:"protocol,omitempty"`
	Priority           int     `json:"priority,omitempty"`
	Tags               []int   `json:"tags"`
	Fields             []Field `json:"fields"`
}

// RemotePathMapping translates download client paths to local paths
type RemotePathMapping struct {
	ID         int64  `json:"id"`
	Host       string `json:"host"`
	RemotePath string `json:"remotePath"`
	LocalPath  string `json:"localPath"`
}

// Page is the envelope of paged endpoints
type Page[T any] struct {
	Page          int    `json:"page"`
	PageSize      int    `json:"pageSize"`
	SortKey       string `json:"sortKey"`
	SortDirection string `json:"sortDirection"`
	TotalRecords  int    `json:"totalRecords"`
	Records       []T    `json:"records"`
}

// HasMorePages reports whether records beyond this page exist
func (p *Page[T]) HasMorePages() bool {
	return p.PageSize > 0 && p.Page*p.PageSize < p.TotalRecords
}
