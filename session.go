package transmission

import (
	"context"
	"fmt"
)

const (
	methodSessionGet      = "session-get"
	methodSessionSet      = "session-set"
	methodSessionStats    = "session-stats"
	methodSessionClose    = "session-close"
	methodFreeSpace       = "free-space"
	methodPortTest        = "port-test"
	methodBlocklistUpdate = "blocklist-update"
)

func (c *Client) GetSession(ctx context.Context) (*Session, error) {
	var session Session
	if err := c.Call(ctx, methodSessionGet, nil, &session); err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

func (c *Client) SetSession(ctx context.Context, req SessionSetRequest) error {
	args, err := marshalArgs(req, sessionSetRenames)
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	if err := c.Call(ctx, methodSessionSet, args, nil); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

func (c *Client) GetSessionStats(ctx context.Context) (*SessionStats, error) {
	var stats SessionStats
	if err := c.Call(ctx, methodSessionStats, nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to get session stats: %w", err)
	}
	return &stats, nil
}

// CloseSession asks the daemon to shut down. The daemon usually answers
// before exiting, but a connection dropped mid-shutdown also counts as done.
func (c *Client) CloseSession(ctx context.Context) error {
	if err := c.Call(ctx, methodSessionClose, nil, nil); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}

type freeSpaceRequest struct {
	Path string `json:"path"`
}

// FreeSpace reports how much room the daemon sees in the given directory,
// which is useful before pointing a download at it.
func (c *Client) FreeSpace(ctx context.Context, path string) (*FreeSpaceInfo, error) {
	var info FreeSpaceInfo
	if err := c.Call(ctx, methodFreeSpace, freeSpaceRequest{Path: path}, &info); err != nil {
		return nil, fmt.Errorf("failed to get free space: %w", err)
	}
	return &info, nil
}

// TestPort reports whether the daemon's peer port is reachable from the
// outside.
func (c *Client) TestPort(ctx context.Context) (bool, error) {
	var result portCheck
	if err := c.Call(ctx, methodPortTest, nil, &result); err != nil {
		return false, fmt.Errorf("failed to test port: %w", err)
	}
	return result.PortIsOpen, nil
}

// UpdateBlocklist triggers a blocklist refresh and returns the new rule
// count.
func (c *Client) UpdateBlocklist(ctx context.Context) (int64, error) {
	var result blocklistUpdate
	if err := c.Call(ctx, methodBlocklistUpdate, nil, &result); err != nil {
		return 0, fmt.Errorf("failed to update blocklist: %w", err)
	}
	return result.BlocklistSize, nil
}
