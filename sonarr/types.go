package sonarr

import (
	"time"

	"github.com/s0up4200/arrkit/arr"
)

// Series types
const (
	SeriesTypeStandard = "standard"
	SeriesTypeDaily    = "daily"
	SeriesTypeAnime    = "anime"
)

// Monitor options applied when a series is added
const (
	MonitorAll          = "all"
	MonitorFuture       = "future"
	MonitorMissing      = "missing"
	MonitorExisting     = "existing"
	MonitorFirstSeason  = "firstSeason"
	MonitorLatestSeason = "latestSeason"
	MonitorPilot        = "pilot"
	MonitorNone         = "none"
)

// Series is a TV show in the collection, or a lookup result when ID is 0
type Series struct {
	ID                int64             `json:"id,omitempty"`
	Title             string            `json:"title"`
	SortTitle         string            `json:"sortTitle,omitempty"`
	AlternateTitles   []AlternateTitle  `json:"alternateTitles,omitempty"`
	Status            string            `json:"status,omitempty"`
	Ended             bool              `json:"ended,omitempty"`
	Overview          string            `json:"overview,omitempty"`
	Network           string            `json:"network,omitempty"`
	AirTime           string            `json:"airTime,omitempty"`
	Images            []arr.Image       `json:"images,omitempty"`
	Seasons           []Season          `json:"seasons,omitempty"`
	Year              int               `json:"year,omitempty"`
	Path              string            `json:"path,omitempty"`
	QualityProfileID  int64             `json:"qualityProfileId,omitempty"`
	LanguageProfileID int64             `json:"languageProfileId,omitempty"`
	SeasonFolder      bool              `json:"seasonFolder"`
	Monitored         bool              `json:"monitored"`
	UseSceneNumbering bool              `json:"useSceneNumbering,omitempty"`
	Runtime           int               `json:"runtime,omitempty"`
	TvdbID            int64             `json:"tvdbId"`
	TvRageID          int64             `json:"tvRageId,omitempty"`
	TvMazeID          int64             `json:"tvMazeId,omitempty"`
	ImdbID            string            `json:"imdbId,omitempty"`
	FirstAired        time.Time         `json:"firstAired,omitempty"`
	SeriesType        string            `json:"seriesType,omitempty"`
	CleanTitle        string            `json:"cleanTitle,omitempty"`
	TitleSlug         string            `json:"titleSlug,omitempty"`
	RootFolderPath    string            `json:"rootFolderPath,omitempty"`
	Certification     string            `json:"certification,omitempty"`
	Genres            []string          `json:"genres,omitempty"`
	Tags              []int             `json:"tags"`
	Added             time.Time         `json:"added,omitempty"`
	Ratings           *arr.Ratings      `json:"ratings,omitempty"`
	Statistics        *SeriesStatistics `json:"statistics,omitempty"`
	AddOptions        *AddOptions       `json:"addOptions,omitempty"`
}

// AlternateTitle is a scene or localized title of a series
type AlternateTitle struct {
	Title             string `json:"title"`
	SeasonNumber      int    `json:"seasonNumber,omitempty"`
	SceneSeasonNumber int    `json:"sceneSeasonNumber,omitempty"`
}

// Season is one season of a series
type Season struct {
	SeasonNumber int               `json:"seasonNumber"`
	Monitored    bool              `json:"monitored"`
	Statistics   *SeasonStatistics `json:"statistics,omitempty"`
}

// SeasonStatistics summarises the files of a season
type SeasonStatistics struct {
	EpisodeFileCount  int       `json:"episodeFileCount"`
	EpisodeCount      int       `json:"episodeCount"`
	TotalEpisodeCount int       `json:"totalEpisodeCount"`
	SizeOnDisk        int64     `json:"sizeOnDisk"`
	PercentOfEpisodes float64   `json:"percentOfEpisodes"`
	PreviousAiring    time.Time `json:"previousAiring,omitempty"`
	NextAiring        time.Time `json:"nextAiring,omitempty"`
}

// SeriesStatistics summarises the files of a series
type SeriesStatistics struct {
	SeasonCount       int     `json:"seasonCount"`
	EpisodeFileCount  int     `json:"episodeFileCount"`
	EpisodeCount      int     `json:"episodeCount"`
	TotalEpisodeCount int     `json:"totalEpisodeCount"`
	SizeOnDisk        int64   `json:"sizeOnDisk"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes"`
}

// AddOptions control what Sonarr does right after adding a series
type AddOptions struct {
	Monitor                      string `json:"monitor,omitempty"`
	SearchForMissingEpisodes     bool   `json:"searchForMissingEpisodes"`
	SearchForCutoffUnmetEpisodes bool   `json:"searchForCutoffUnmetEpisodes"`
	IgnoreEpisodesWithFiles      bool   `json:"ignoreEpisodesWithFiles,omitempty"`
	IgnoreEpisodesWithoutFiles   bool   `json:"ignoreEpisodesWithoutFiles,omitempty"`
}

// AddSeriesOptions are the local settings injected into a lookup result
// before it is posted
type AddSeriesOptions struct {
	QualityProfileID  int64
	LanguageProfileID int64
	RootFolderPath    string
	Monitored         bool
	SeasonFolder      bool
	SeriesType        string
	Tags              []int
	// Monitor selects the episodes to monitor, one of the Monitor constants.
	Monitor                      string
	SearchForMissingEpisodes     bool
	SearchForCutoffUnmetEpisodes bool
}

// Episode is one episode of a series
type Episode struct {
	ID                       int64        `json:"id"`
	SeriesID                 int64        `json:"seriesId"`
	TvdbID                   int64        `json:"tvdbId,omitempty"`
	EpisodeFileID            int64        `json:"episodeFileId"`
	SeasonNumber             int          `json:"seasonNumber"`
	EpisodeNumber            int          `json:"episodeNumber"`
	AbsoluteEpisodeNumber    int          `json:"absoluteEpisodeNumber,omitempty"`
	SceneSeasonNumber        int          `json:"sceneSeasonNumber,omitempty"`
	SceneEpisodeNumber       int          `json:"sceneEpisodeNumber,omitempty"`
	Title                    string       `json:"title"`
	AirDate                  string       `json:"airDate,omitempty"`
	AirDateUtc               time.Time    `json:"airDateUtc,omitempty"`
	Runtime                  int          `json:"runtime,omitempty"`
	Overview                 string       `json:"overview,omitempty"`
	HasFile                  bool         `json:"hasFile"`
	Monitored                bool         `json:"monitored"`
	UnverifiedSceneNumbering bool         `json:"unverifiedSceneNumbering,omitempty"`
	Series                   *Series      `json:"series,omitempty"`
	EpisodeFile              *EpisodeFile `json:"episodeFile,omitempty"`
}

// EpisodeFile is a media file on disk holding one or more episodes
type EpisodeFile struct {
	ID                  int64            `json:"id"`
	SeriesID            int64            `json:"seriesId"`
	SeasonNumber        int              `json:"seasonNumber"`
	RelativePath        string           `json:"relativePath"`
	Path                string           `json:"path"`
	Size                int64            `json:"size"`
	DateAdded           time.Time        `json:"dateAdded"`
	SceneName           string           `json:"sceneName,omitempty"`
	ReleaseGroup        string           `json:"releaseGroup,omitempty"`
	Languages           []arr.Language   `json:"languages,omitempty"`
	Quality             arr.QualityModel `json:"quality"`
	MediaInfo           map[string]any   `json:"mediaInfo,omitempty"`
	QualityCutoffNotMet bool             `json:"qualityCutoffNotMet"`
}

// LanguageProfile is a Sonarr v3 language profile
type LanguageProfile struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	UpgradeAllowed bool           `json:"upgradeAllowed"`
	Cutoff         arr.Language   `json:"cutoff"`
	Languages      []LanguageItem `json:"languages"`
}

// LanguageItem is one language allowed or rejected by a language profile
type LanguageItem struct {
	Language arr.Language `json:"language"`
	Allowed  bool         `json:"allowed"`
}

// ParsedEpisodeInfo is what Sonarr extracts from a release title
type ParsedEpisodeInfo struct {
	ReleaseTitle   string           `json:"releaseTitle"`
	SeriesTitle    string           `json:"seriesTitle"`
	SeasonNumber   int              `json:"seasonNumber"`
	EpisodeNumbers []int            `json:"episodeNumbers"`
	FullSeason     bool             `json:"fullSeason"`
	ReleaseGroup   string           `json:"releaseGroup,omitempty"`
	ReleaseHash    string           `json:"releaseHash,omitempty"`
	Quality        arr.QualityModel `json:"quality"`
	Languages      []arr.Language   `json:"languages,omitempty"`
}

// ParseResult is the response of the parse endpoint
type ParseResult struct {
	Title             string             `json:"title"`
	ParsedEpisodeInfo *ParsedEpisodeInfo `json:"parsedEpisodeInfo"`
	Series            *Series            `json:"series,omitempty"`
	Episodes          []Episode          `json:"episodes,omitempty"`
}

// Release is a search result from the indexers
type Release struct {
	GUID         string           `json:"guid"`
	Title        string           `json:"title"`
	Indexer      string           `json:"indexer"`
	IndexerID    int64            `json:"indexerId"`
	Protocol     string           `json:"protocol"`
	Size         int64            `json:"size"`
	Age          int              `json:"age"`
	Quality      arr.QualityModel `json:"quality"`
	Approved     bool             `json:"approved"`
	Rejected     bool             `json:"rejected"`
	Rejections   []string         `json:"rejections,omitempty"`
	Seeders      int              `json:"seeders,omitempty"`
	Leechers     int              `json:"leechers,omitempty"`
	DownloadURL  string           `json:"downloadUrl,omitempty"`
	InfoURL      string           `json:"infoUrl,omitempty"`
	PublishDate  time.Time        `json:"publishDate"`
	SeasonNumber int              `json:"seasonNumber"`
	FullSeason   bool             `json:"fullSeason"`
}
