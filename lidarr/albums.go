package lidarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/s0up4200/arrkit/arr"
)

func setID(params url.Values, key string, id int64) {
	if id > 0 {
		params.Set(key, strconv.FormatInt(id, 10))
	}
}

func addIDs(params url.Values, key string, ids []int64) {
	for _, id := range ids {
		params.Add(key, strconv.FormatInt(id, 10))
	}
}

func (p AlbumParams) values() url.Values {
	params := url.Values{}
	setID(params, "artistId", p.ArtistID)
	addIDs(params, "albumIds", p.AlbumIDs)
	if p.ForeignAlbumID != "" {
		params.Set("foreignAlbumId", p.ForeignAlbumID)
	}
	if p.IncludeAllArtistAlbums {
		params.Set("includeAllArtistAlbums", "true")
	}
	return params
}

// GetAlbums retrieves albums matching params. Zero params return every
// album.
func (c *Client) GetAlbums(ctx context.Context, params AlbumParams) ([]Album, error) {
	var albums []Album
	if err := c.Get(ctx, "album", params.values(), &albums); err != nil {
		return nil, fmt.Errorf("failed to get albums: %w", err)
	}
	return albums, nil
}

// GetAlbum retrieves an album by id
func (c *Client) GetAlbum(ctx context.Context, id int64) (*Album, error) {
	var album Album
	if err := c.Get(ctx, arr.Int64Path("album", id), nil, &album); err != nil {
		return nil, fmt.Errorf("failed to get album ID %d: %w", id, err)
	}
	return &album, nil
}

// LookupAlbum searches MusicBrainz for albums matching term
func (c *Client) LookupAlbum(ctx context.Context, term string) ([]Album, error) {
	params := url.Values{}
	params.Set("term", term)

	var albums []Album
	if err := c.Get(ctx, "album/lookup", params, &albums); err != nil {
		return nil, fmt.Errorf("failed to look up album %q: %w", term, err)
	}
	return albums, nil
}

// AddAlbum looks up term and adds the first result. The album's artist gets
// the settings in opts and is added too when not in the collection; the
// album itself follows opts.Monitored and is searched for when
// opts.SearchForMissingAlbums is set.
func (c *Client) AddAlbum(ctx context.Context, term string, opts AddArtistOptions) (*Album, error) {
	results, err := c.LookupAlbum(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to add album: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("failed to add album: no album matching %q: %w", term, arr.ErrNotFound)
	}

	album := results[0]
	if album.Artist == nil {
		album.Artist = &Artist{}
	}
	applyArtistOptions(album.Artist, opts)
	album.Monitored = opts.Monitored
	album.AddOptions = &AlbumAddOptions{SearchForNewAlbum: opts.SearchForMissingAlbums}

	var added Album
	if err := c.Post(ctx, "album", nil, album, &added); err != nil {
		return nil, fmt.Errorf("failed to add album %s: %w", album.Title, err)
	}

	c.Logger().Info().
		Int64("album_id", added.ID).
		Str("title", added.Title).
		Msg("Added album")
	return &added, nil
}

// UpdateAlbum saves changes to an album
func (c *Client) UpdateAlbum(ctx context.Context, album *Album) (*Album, error) {
	var updated Album
	if err := c.Put(ctx, arr.Int64Path("album", album.ID), nil, album, &updated); err != nil {
		return nil, fmt.Errorf("failed to update album ID %d: %w", album.ID, err)
	}
	return &updated, nil
}

// MonitorAlbums sets the monitored flag of several albums at once
func (c *Client) MonitorAlbums(ctx context.Context, ids []int64, monitored bool) ([]Album, error) {
	body := map[string]any{"albumIds": ids, "monitored": monitored}

	var albums []Album
	if err := c.Put(ctx, "album/monitor", nil, body, &albums); err != nil {
		return nil, fmt.Errorf("failed to monitor albums: %w", err)
	}
	return albums, nil
}

// DeleteAlbum removes an album from the collection
func (c *Client) DeleteAlbum(ctx context.Context, id int64, deleteFiles, addImportListExclusion bool) error {
	params := arr.DeleteParams(deleteFiles, addImportListExclusion, "addImportListExclusion")
	if err := c.Delete(ctx, arr.Int64Path("album", id), params, nil); err != nil {
		return fmt.Errorf("failed to delete album ID %d: %w", id, err)
	}
	return nil
}

// GetTracks retrieves tracks matching params
func (c *Client) GetTracks(ctx context.Context, p TrackParams) ([]Track, error) {
	params := url.Values{}
	setID(params, "artistId", p.ArtistID)
	setID(params, "albumId", p.AlbumID)
	setID(params, "albumReleaseId", p.AlbumReleaseID)
	addIDs(params, "trackIds", p.TrackIDs)

	var tracks []Track
	if err := c.Get(ctx, "track", params, &tracks); err != nil {
		return nil, fmt.Errorf("failed to get tracks: %w", err)
	}
	return tracks, nil
}

// GetTrack retrieves a track by id
func (c *Client) GetTrack(ctx context.Context, id int64) (*Track, error) {
	var track Track
	if err := c.Get(ctx, arr.Int64Path("track", id), nil, &track); err != nil {
		return nil, fmt.Errorf("failed to get track ID %d: %w", id, err)
	}
	return &track, nil
}

// GetTrackFiles retrieves track files matching params
func (c *Client) GetTrackFiles(ctx context.Context, p TrackFileParams) ([]TrackFile, error) {
	params := url.Values{}
	setID(params, "artistId", p.ArtistID)
	addIDs(params, "albumId", p.AlbumIDs)
	addIDs(params, "trackFileIds", p.TrackFileIDs)
	if p.Unmapped {
		params.Set("unmapped", "true")
	}

	var files []TrackFile
	if err := c.Get(ctx, "trackfile", params, &files); err != nil {
		return nil, fmt.Errorf("failed to get track files: %w", err)
	}
	return files, nil
}

// DeleteTrackFile deletes a track file from disk
func (c *Client) DeleteTrackFile(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, arr.Int64Path("trackfile", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete track file ID %d: %w", id, err)
	}
	return nil
}

// GetWantedMissing retrieves a page of monitored albums missing tracks
func (c *Client) GetWantedMissing(ctx context.Context, params arr.PageParams) (*arr.Page[Album], error) {
	var page arr.Page[Album]
	if err := c.Get(ctx, "wanted/missing", params.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to get missing albums: %w", err)
	}
	return &page, nil
}

// GetCutoffUnmet retrieves a page of albums below the profile cutoff
func (c *Client) GetCutoffUnmet(ctx context.Context, params arr.PageParams) (*arr.Page[Album], error) {
	var page arr.Page[Album]
	if err := c.Get(ctx, "wanted/cutoff", params.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to get cutoff unmet albums: %w", err)
	}
	return &page, nil
}

// GetCalendar retrieves the albums releasing between start and end
func (c *Client) GetCalendar(ctx context.Context, start, end time.Time, unmonitored bool) ([]Album, error) {
	var albums []Album
	if err := c.Get(ctx, "calendar", arr.CalendarParams(start, end, unmonitored), &albums); err != nil {
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}
	return albums, nil
}
