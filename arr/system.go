package arr

import (
	"context"
	"fmt"
)

// GetSystemStatus retrieves the application status
func (c *Client) GetSystemStatus(ctx context.Context) (*SystemStatus, error) {
	var status SystemStatus
	if err := c.Get(ctx, "system/status", nil, &status); err != nil {
		return nil, fmt.Errorf("failed to get system status: %w", err)
	}
	return &status, nil
}

// TestConnection checks that the manager is reachable and the API key is
// accepted.
func (c *Client) TestConnection(ctx context.Context) error {
	status, err := c.GetSystemStatus(ctx)
	if err != nil {
		return err
	}

	c.logger.Debug().
		Str("name", status.AppName).
		Str("version", status.Version).
		Msg("Connected")
	return nil
}

// GetHealth retrieves the current health check warnings
func (c *Client) GetHealth(ctx context.Context) ([]HealthCheck, error) {
	var checks []HealthCheck
	if err := c.Get(ctx, "health", nil, &checks); err != nil {
		return nil, fmt.Errorf("failed to get health: %w", err)
	}
	return checks, nil
}

// GetDiskSpace retrieves free and total space of every mounted volume
func (c *Client) GetDiskSpace(ctx context.Context) ([]DiskSpace, error) {
	var disks []DiskSpace
	if err := c.Get(ctx, "diskspace", nil, &disks); err != nil {
		return nil, fmt.Errorf("failed to get disk space: %w", err)
	}
	return disks, nil
}

// GetBackups lists the stored backups
func (c *Client) GetBackups(ctx context.Context) ([]Backup, error) {
	var backups []Backup
	if err := c.Get(ctx, "system/backup", nil, &backups); err != nil {
		return nil, fmt.Errorf("failed to get backups: %w", err)
	}
	return backups, nil
}

// GetUpdates lists recent and available application updates
func (c *Client) GetUpdates(ctx context.Context) ([]UpdateInfo, error) {
	var updates []UpdateInfo
	if err := c.Get(ctx, "update", nil, &updates); err != nil {
		return nil, fmt.Errorf("failed to get updates: %w", err)
	}
	return updates, nil
}

// GetLogs retrieves a page of the application log
func (c *Client) GetLogs(ctx context.Context, params PageParams) (*Page[LogRecord], error) {
	var page Page[LogRecord]
	if err := c.Get(ctx, "log", params.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to get logs: %w", err)
	}
	return &page, nil
}

func (c *Client) getConfig(ctx context.Context, name string) (Document, error) {
	var doc Document
	if err := c.Get(ctx, "config/"+name, nil, &doc); err != nil {
		return nil, fmt.Errorf("failed to get %s config: %w", name, err)
	}
	return doc, nil
}

// GetMediaManagementConfig retrieves the media management settings
func (c *Client) GetMediaManagementConfig(ctx context.Context) (Document, error) {
	return c.getConfig(ctx, "mediamanagement")
}

// GetNamingConfig retrieves the file naming settings
func (c *Client) GetNamingConfig(ctx context.Context) (Document, error) {
	return c.getConfig(ctx, "naming")
}

// GetUIConfig retrieves the UI settings
func (c *Client) GetUIConfig(ctx context.Context) (Document, error) {
	return c.getConfig(ctx, "ui")
}

// GetHostConfig retrieves the host settings. The response includes the API
// key.
func (c *Client) GetHostConfig(ctx context.Context) (Document, error) {
	return c.getConfig(ctx, "host")
}
