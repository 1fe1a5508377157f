package arr

import (
	"context"
	"fmt"
	"strconv"
)

func tagPath(id int) string {
	return "tag/" + strconv.Itoa(id)
}

// GetTags retrieves all tags
func (c *Client) GetTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.Get(ctx, "tag", nil, &tags); err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	c.logger.Debug().Msgf("Retrieved %d tags", len(tags))
	return tags, nil
}

// GetTag retrieves a tag by id
func (c *Client) GetTag(ctx context.Context, id int) (*Tag, error) {
	var tag Tag
	if err := c.Get(ctx, tagPath(id), nil, &tag); err != nil {
		return nil, fmt.Errorf("failed to get tag ID %d: %w", id, err)
	}
	return &tag, nil
}

// GetTagByName finds a tag by its label. Labels are compared as stored,
// the manager lowercases them on create.
func (c *Client) GetTagByName(ctx context.Context, label string) (*Tag, error) {
	tags, err := c.GetTags(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tags {
		if tags[i].Label == label {
			return &tags[i], nil
		}
	}

	return nil, fmt.Errorf("tag %q: %w", label, ErrNotFound)
}

// GetTagDetails lists the resources a tag is attached to
func (c *Client) GetTagDetails(ctx context.Context, id int) (*TagDetails, error) {
	var details TagDetails
	if err := c.Get(ctx, "tag/detail/"+strconv.Itoa(id), nil, &details); err != nil {
		return nil, fmt.Errorf("failed to get tag details for ID %d: %w", id, err)
	}
	return &details, nil
}

// CreateTag creates a tag and returns it with its assigned id
func (c *Client) CreateTag(ctx context.Context, label string) (*Tag, error) {
	var tag Tag
	if err := c.Post(ctx, "tag", nil, Tag{Label: label}, &tag); err != nil {
		return nil, fmt.Errorf("failed to create tag %q: %w", label, err)
	}

	c.logger.Debug().Int("tag_id", tag.ID).Str("label", tag.Label).Msg("Created tag")
	return &tag, nil
}

// UpdateTag renames a tag
func (c *Client) UpdateTag(ctx context.Context, tag Tag) (*Tag, error) {
	var updated Tag
	if err := c.Put(ctx, tagPath(tag.ID), nil, tag, &updated); err != nil {
		return nil, fmt.Errorf("failed to update tag ID %d: %w", tag.ID, err)
	}
	return &updated, nil
}

// DeleteTag deletes a tag
func (c *Client) DeleteTag(ctx context.Context, id int) error {
	if err := c.Delete(ctx, tagPath(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete tag ID %d: %w", id, err)
	}
	return nil
}
