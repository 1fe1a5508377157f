package arr

import (
	"context"
	"fmt"
)

// GetRootFolders retrieves all root folders
func (c *Client) GetRootFolders(ctx context.Context) ([]RootFolder, error) {
	var folders []RootFolder
	if err := c.Get(ctx, "rootfolder", nil, &folders); err != nil {
		return nil, fmt.Errorf("failed to get root folders: %w", err)
	}
	return folders, nil
}

// GetRootFolder retrieves a root folder by id
func (c *Client) GetRootFolder(ctx context.Context, id int64) (*RootFolder, error) {
	var folder RootFolder
	if err := c.Get(ctx, Int64Path("rootfolder", id), nil, &folder); err != nil {
		return nil, fmt.Errorf("failed to get root folder ID %d: %w", id, err)
	}
	return &folder, nil
}

// AddRootFolder registers a new root folder. The path must exist on the
// manager's host.
func (c *Client) AddRootFolder(ctx context.Context, folder RootFolder) (*RootFolder, error) {
	var created RootFolder
	if err := c.Post(ctx, "rootfolder", nil, folder, &created); err != nil {
		return nil, fmt.Errorf("failed to add root folder %s: %w", folder.Path, err)
	}
	return &created, nil
}

// DeleteRootFolder removes a root folder. Files on disk are left alone.
func (c *Client) DeleteRootFolder(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, Int64Path("rootfolder", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete root folder ID %d: %w", id, err)
	}
	return nil
}

// GetQualityProfiles retrieves all quality profiles
func (c *Client) GetQualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var profiles []QualityProfile
	if err := c.Get(ctx, "qualityprofile", nil, &profiles); err != nil {
		return nil, fmt.Errorf("failed to get quality profiles: %w", err)
	}
	return profiles, nil
}

// GetQualityProfile retrieves a quality profile by id
func (c *Client) GetQualityProfile(ctx context.Context, id int64) (*QualityProfile, error) {
	var profile QualityProfile
	if err := c.Get(ctx, Int64Path("qualityprofile", id), nil, &profile); err != nil {
		return nil, fmt.Errorf("failed to get quality profile ID %d: %w", id, err)
	}
	return &profile, nil
}

// DeleteQualityProfile deletes a quality profile. The manager refuses
// profiles still in use.
func (c *Client) DeleteQualityProfile(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, Int64Path("qualityprofile", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete quality profile ID %d: %w", id, err)
	}
	return nil
}
