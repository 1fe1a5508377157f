package arr

import (
	"context"
	"fmt"
)

// Command status values
const (
	CommandQueued    = "queued"
	CommandStarted   = "started"
	CommandCompleted = "completed"
	CommandFailed    = "failed"
	CommandAborted   = "aborted"
)

// Done reports whether the command has stopped running
func (c *Command) Done() bool {
	switch c.Status {
	case CommandCompleted, CommandFailed, CommandAborted:
		return true
	}
	return false
}

// GetCommands lists queued and recently run commands
func (c *Client) GetCommands(ctx context.Context) ([]Command, error) {
	var commands []Command
	if err := c.Get(ctx, "command", nil, &commands); err != nil {
		return nil, fmt.Errorf("failed to get commands: %w", err)
	}
	return commands, nil
}

// GetCommand retrieves the state of a command
func (c *Client) GetCommand(ctx context.Context, id int64) (*Command, error) {
	var command Command
	if err := c.Get(ctx, Int64Path("command", id), nil, &command); err != nil {
		return nil, fmt.Errorf("failed to get command ID %d: %w", id, err)
	}
	return &command, nil
}

// PostCommand queues a named command. fields are sent next to the name,
// e.g. {"movieIds": [1, 2]} for MoviesSearch.
func (c *Client) PostCommand(ctx context.Context, name string, fields map[string]any) (*Command, error) {
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["name"] = name

	var command Command
	if err := c.Post(ctx, "command", nil, body, &command); err != nil {
		return nil, fmt.Errorf("failed to run command %s: %w", name, err)
	}

	c.logger.Debug().
		Str("command", name).
		Int64("command_id", command.ID).
		Str("status", command.Status).
		Msg("Queued command")
	return &command, nil
}
