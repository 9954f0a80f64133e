package transmission

import "context"

const (
	methodQueueMoveTop    = "queue-move-top"
	methodQueueMoveUp     = "queue-move-up"
	methodQueueMoveDown   = "queue-move-down"
	methodQueueMoveBottom = "queue-move-bottom"
)

// The queue methods shuffle download/seed queue positions for the selected
// torrents. A nil selector moves every torrent.

func (c *Client) QueueMoveTop(ctx context.Context, ids TorrentIDs) error {
	return c.torrentAction(ctx, methodQueueMoveTop, ids)
}

func (c *Client) QueueMoveUp(ctx context.Context, ids TorrentIDs) error {
	return c.torrentAction(ctx, methodQueueMoveUp, ids)
}

func (c *Client) QueueMoveDown(ctx context.Context, ids TorrentIDs) error {
	return c.torrentAction(ctx, methodQueueMoveDown, ids)
}

func (c *Client) QueueMoveBottom(ctx context.Context, ids TorrentIDs) error {
	return c.torrentAction(ctx, methodQueueMoveBottom, ids)
}
