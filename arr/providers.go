package arr

import (
	"context"
	"fmt"
)

func (c *Client) getProviders(ctx context.Context, resource, what string) ([]Provider, error) {
	var providers []Provider
	if err := c.Get(ctx, resource, nil, &providers); err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	return providers, nil
}

func (c *Client) getProvider(ctx context.Context, resource, what string, id int64) (*Provider, error) {
	var provider Provider
	if err := c.Get(ctx, Int64Path(resource, id), nil, &provider); err != nil {
		return nil, fmt.Errorf("failed to get %s ID %d: %w", what, id, err)
	}
	return &provider, nil
}

func (c *Client) deleteProvider(ctx context.Context, resource, what string, id int64) error {
	if err := c.Delete(ctx, Int64Path(resource, id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete %s ID %d: %w", what, id, err)
	}
	return nil
}

// GetIndexers retrieves all configured indexers
func (c *Client) GetIndexers(ctx context.Context) ([]Provider, error) {
	return c.getProviders(ctx, "indexer", "indexers")
}

// GetIndexer retrieves an indexer by id
func (c *Client) GetIndexer(ctx context.Context, id int64) (*Provider, error) {
	return c.getProvider(ctx, "indexer", "indexer", id)
}

// DeleteIndexer deletes an indexer
func (c *Client) DeleteIndexer(ctx context.Context, id int64) error {
	return c.deleteProvider(ctx, "indexer", "indexer", id)
}

// GetDownloadClients retrieves all configured download clients
func (c *Client) GetDownloadClients(ctx context.Context) ([]Provider, error) {
	return c.getProviders(ctx, "downloadclient", "download clients")
}

// GetDownloadClient retrieves a download client by id
func (c *Client) GetDownloadClient(ctx context.Context, id int64) (*Provider, error) {
	return c.getProvider(ctx, "downloadclient", "download client", id)
}

// DeleteDownloadClient deletes a download client
func (c *Client) DeleteDownloadClient(ctx context.Context, id int64) error {
	return c.deleteProvider(ctx, "downloadclient", "download client", id)
}

// GetNotifications retrieves all configured notification connections
func (c *Client) GetNotifications(ctx context.Context) ([]Provider, error) {
	return c.getProviders(ctx, "notification", "notifications")
}

// GetNotification retrieves a notification connection by id
func (c *Client) GetNotification(ctx context.Context, id int64) (*Provider, error) {
	return c.getProvider(ctx, "notification", "notification", id)
}

// DeleteNotification deletes a notification connection
func (c *Client) DeleteNotification(ctx context.Context, id int64) error {
	return c.deleteProvider(ctx, "notification", "notification", id)
}

// GetImportLists retrieves all configured import lists
func (c *Client) GetImportLists(ctx context.Context) ([]Provider, error) {
	return c.getProviders(ctx, "importlist", "import lists")
}

// GetImportList retrieves an import list by id
func (c *Client) GetImportList(ctx context.Context, id int64) (*Provider, error) {
	return c.getProvider(ctx, "importlist", "import list", id)
}

// DeleteImportList deletes an import list
func (c *Client) DeleteImportList(ctx context.Context, id int64) error {
	return c.deleteProvider(ctx, "importlist", "import list", id)
}

// GetRemotePathMappings retrieves all remote path mappings
func (c *Client) GetRemotePathMappings(ctx context.Context) ([]RemotePathMapping, error) {
	var mappings []RemotePathMapping
	if err := c.Get(ctx, "remotepathmapping", nil, &mappings); err != nil {
		return nil, fmt.Errorf("failed to get remote path mappings: %w", err)
	}
	return mappings, nil
}

// DeleteRemotePathMapping deletes a remote path mapping
func (c *Client) DeleteRemotePathMapping(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, Int64Path("remotepathmapping", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete remote path mapping ID %d: %w", id, err)
	}
	return nil
}
