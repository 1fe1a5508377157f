package arr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// GetQueue retrieves a page of the activity queue
func (c *Client) GetQueue(ctx context.Context, params QueueParams) (*Page[QueueRecord], error) {
	var page Page[QueueRecord]
	if err := c.Get(ctx, "queue", params.values(c.api.Item), &page); err != nil {
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}

	c.logger.Debug().
		Int("page", page.Page).
		Int("count", len(page.Records)).
		Int("total", page.TotalRecords).
		Msg("Retrieved queue")
	return &page, nil
}

// GetAllQueue walks every page of the activity queue
func (c *Client) GetAllQueue(ctx context.Context, params QueueParams) ([]QueueRecord, error) {
	if params.PageSize == 0 {
		params.PageSize = 100
	}
	params.Page = 1

	// Progress is tracked from what was requested and received, not from
	// the page number the server echoes back.
	var records []QueueRecord
	for {
		page, err := c.GetQueue(ctx, params)
		if err != nil {
			return nil, err
		}
		records = append(records, page.Records...)

		if len(page.Records) < params.PageSize || len(records) >= page.TotalRecords {
			break
		}
		params.Page++
	}

	return records, nil
}

// DeleteQueueItem removes a download from the queue, optionally removing it
// from the download client and blocklisting the release.
func (c *Client) DeleteQueueItem(ctx context.Context, id int64, removeFromClient, blocklist bool) error {
	params := url.Values{}
	params.Set("removeFromClient", strconv.FormatBool(removeFromClient))
	params.Set("blocklist", strconv.FormatBool(blocklist))

	if err := c.Delete(ctx, Int64Path("queue", id), params, nil); err != nil {
		return fmt.Errorf("failed to delete queue item ID %d: %w", id, err)
	}
	return nil
}

// GetHistory retrieves a page of the activity history
func (c *Client) GetHistory(ctx context.Context, params PageParams) (*Page[HistoryRecord], error) {
	var page Page[HistoryRecord]
	if err := c.Get(ctx, "history", params.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return &page, nil
}

// GetBlocklist retrieves a page of blocklisted releases
func (c *Client) GetBlocklist(ctx context.Context, params PageParams) (*Page[BlocklistItem], error) {
	var page Page[BlocklistItem]
	if err := c.Get(ctx, "blocklist", params.Values(), &page); err != nil {
		return nil, fmt.Errorf("failed to get blocklist: %w", err)
	}
	return &page, nil
}

// DeleteBlocklistItem removes a release from the blocklist
func (c *Client) DeleteBlocklistItem(ctx context.Context, id int64) error {
	if err := c.Delete(ctx, Int64Path("blocklist", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete blocklist item ID %d: %w", id, err)
	}
	return nil
}

// GetCalendar retrieves the items airing or releasing between start and
// end as raw documents. Manager clients shadow it with a typed variant.
func (c *Client) GetCalendar(ctx context.Context, start, end time.Time, unmonitored bool) ([]Document, error) {
	var items []Document
	if err := c.Get(ctx, "calendar", CalendarParams(start, end, unmonitored), &items); err != nil {
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}
	return items, nil
}
