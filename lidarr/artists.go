package lidarr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/s0up4200/arrkit/arr"
)

// GetArtists retrieves every artist in the collection
func (c *Client) GetArtists(ctx context.Context) ([]Artist, error) {
	var artists []Artist
	if err := c.Get(ctx, "artist", nil, &artists); err != nil {
		return nil, fmt.Errorf("failed to get artists: %w", err)
	}

	c.Logger().Debug().Msgf("Retrieved %d artists from Lidarr", len(artists))
	return artists, nil
}

// GetArtist retrieves an artist by id
func (c *Client) GetArtist(ctx context.Context, id int64) (*Artist, error) {
	var artist Artist
	if err := c.Get(ctx, arr.Int64Path("artist", id), nil, &artist); err != nil {
		return nil, fmt.Errorf("failed to get artist ID %d: %w", id, err)
	}
	return &artist, nil
}

// LookupArtist searches MusicBrainz for artists matching term. Use
// lidarr:{mbid} to match a single artist.
func (c *Client) LookupArtist(ctx context.Context, term string) ([]Artist, error) {
	params := url.Values{}
	params.Set("term", term)

	var artists []Artist
	if err := c.Get(ctx, "artist/lookup", params, &artists); err != nil {
		return nil, fmt.Errorf("failed to look up artist %q: %w", term, err)
	}
	return artists, nil
}

func applyArtistOptions(artist *Artist, opts AddArtistOptions) {
	artist.QualityProfileID = opts.QualityProfileID
	artist.MetadataProfileID = opts.MetadataProfileID
	artist.RootFolderPath = opts.RootFolderPath
	artist.Monitored = opts.Monitored
	artist.MonitorNewItems = opts.MonitorNewItems
	if artist.MonitorNewItems == "" {
		artist.MonitorNewItems = MonitorNewAll
	}
	artist.Tags = opts.Tags
	if artist.Tags == nil {
		artist.Tags = []int{}
	}

	monitor := opts.Monitor
	if monitor == "" {
		monitor = MonitorAll
	}
	artist.AddOptions = &ArtistAddOptions{
		Monitor:                monitor,
		Monitored:              opts.Monitored,
		SearchForMissingAlbums: opts.SearchForMissingAlbums,
	}
}

// AddArtist looks up term, applies the local settings to the first result
// and adds it to the collection
func (c *Client) AddArtist(ctx context.Context, term string, opts AddArtistOptions) (*Artist, error) {
	results, err := c.LookupArtist(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to add artist: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("failed to add artist: no artist matching %q: %w", term, arr.ErrNotFound)
	}

	artist := results[0]
	applyArtistOptions(&artist, opts)

	var added Artist
	if err := c.Post(ctx, "artist", nil, artist, &added); err != nil {
		return nil, fmt.Errorf("failed to add artist %s: %w", artist.ArtistName, err)
	}

	c.Logger().Info().
		Int64("artist_id", added.ID).
		Str("name", added.ArtistName).
		Msg("Added artist")
	return &added, nil
}

// UpdateArtist saves changes to an artist
func (c *Client) UpdateArtist(ctx context.Context, artist *Artist, moveFiles bool) (*Artist, error) {
	params := url.Values{}
	params.Set("moveFiles", strconv.FormatBool(moveFiles))

	var updated Artist
	if err := c.Put(ctx, arr.Int64Path("artist", artist.ID), params, artist, &updated); err != nil {
		return nil, fmt.Errorf("failed to update artist ID %d: %w", artist.ID, err)
	}
	return &updated, nil
}

// DeleteArtist removes an artist and their albums from the collection
func (c *Client) DeleteArtist(ctx context.Context, id int64, deleteFiles, addImportListExclusion bool) error {
	params := arr.DeleteParams(deleteFiles, addImportListExclusion, "addImportListExclusion")
	if err := c.Delete(ctx, arr.Int64Path("artist", id), params, nil); err != nil {
		return fmt.Errorf("failed to delete artist ID %d: %w", id, err)
	}

	c.Logger().Info().Int64("artist_id", id).Bool("delete_files", deleteFiles).
		Msg("Successfully deleted artist")
	return nil
}

// GetMetadataProfiles retrieves the metadata profiles
func (c *Client) GetMetadataProfiles(ctx context.Context) ([]MetadataProfile, error) {
	var profiles []MetadataProfile
	if err := c.Get(ctx, "metadataprofile", nil, &profiles); err != nil {
		return nil, fmt.Errorf("failed to get metadata profiles: %w", err)
	}
	return profiles, nil
}
