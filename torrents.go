package transmission

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

const (
	methodTorrentGet         = "torrent-get"
	methodTorrentAdd         = "torrent-add"
	methodTorrentRemove      = "torrent-remove"
	methodTorrentSet         = "torrent-set"
	methodTorrentSetLocation = "torrent-set-location"
	methodTorrentStart       = "torrent-start"
	methodTorrentStartNow    = "torrent-start-now"
	methodTorrentStop        = "torrent-stop"
	methodTorrentVerify      = "torrent-verify"
	methodTorrentReannounce  = "torrent-reannounce"
	methodTorrentRenamePath  = "torrent-rename-path"
)

func (c *Client) GetTorrents(ctx context.Context, req TorrentGetRequest) ([]Torrent, error) {
	if len(req.Fields) == 0 {
		req.Fields = defaultTorrentFields
	}

	var result TorrentList
	if err := c.Call(ctx, methodTorrentGet, req, &result); err != nil {
		return nil, fmt.Errorf("failed to get torrents: %w", err)
	}

	return result.Torrents, nil
}

// GetRecentTorrents lists the torrents with recent activity together with
// the ids removed since the previous recent query. An empty fields list
// falls back to the default field set.
func (c *Client) GetRecentTorrents(ctx context.Context, fields []string) (*TorrentList, error) {
	if len(fields) == 0 {
		fields = defaultTorrentFields
	}

	var result TorrentList
	req := TorrentGetRequest{IDs: RecentlyActive, Fields: fields}
	if err := c.Call(ctx, methodTorrentGet, req, &result); err != nil {
		return nil, fmt.Errorf("failed to get recent torrents: %w", err)
	}

	return &result, nil
}

// AddTorrent hands a torrent to the daemon. The result reports whether the
// daemon created it or already had it.
func (c *Client) AddTorrent(ctx context.Context, req AddTorrentRequest) (*AddedTorrent, error) {
	if req.Filename == "" && req.Metainfo == "" {
		return nil, errors.New("either Filename or Metainfo must be set")
	}

	args, err := marshalArgs(req, torrentAddRenames)
	if err != nil {
		return nil, fmt.Errorf("failed to add torrent: %w", err)
	}

	var result addTorrentResult
	if err := c.Call(ctx, methodTorrentAdd, args, &result); err != nil {
		return nil, fmt.Errorf("failed to add torrent: %w", err)
	}

	switch {
	case result.Added != nil:
		return &AddedTorrent{TorrentAdded: *result.Added}, nil
	case result.Duplicate != nil:
		return &AddedTorrent{TorrentAdded: *result.Duplicate, Duplicate: true}, nil
	}
	return nil, errors.New("daemon reported success without a torrent-added or torrent-duplicate payload")
}

// AddTorrentFile reads a local .torrent file and submits its contents, so
// the file does not need to be reachable from the daemon host.
func (c *Client) AddTorrentFile(ctx context.Context, path string, req AddTorrentRequest) (*AddedTorrent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read torrent file")
	}

	req.Filename = ""
	req.Metainfo = base64.StdEncoding.EncodeToString(data)

	return c.AddTorrent(ctx, req)
}

type removeTorrentsRequest struct {
	IDs             TorrentIDs `json:"ids,omitempty"`
	DeleteLocalData bool       `json:"deleteLocalData"`
}

// RemoveTorrents drops torrents from the daemon. With deleteLocalData the
// downloaded files are deleted from disk as well.
func (c *Client) RemoveTorrents(ctx context.Context, ids TorrentIDs, deleteLocalData bool) error {
	req := removeTorrentsRequest{IDs: ids, DeleteLocalData: deleteLocalData}

	args, err := marshalArgs(req, torrentRemoveRenames)
	if err != nil {
		return fmt.Errorf("failed to remove torrents: %w", err)
	}

	if err := c.Call(ctx, methodTorrentRemove, args, nil); err != nil {
		return fmt.Errorf("failed to remove torrents: %w", err)
	}
	return nil
}

func (c *Client) SetTorrents(ctx context.Context, req SetTorrentsRequest) error {
	args, err := marshalArgs(req, torrentSetRenames)
	if err != nil {
		return fmt.Errorf("failed to set torrents: %w", err)
	}

	if err := c.Call(ctx, methodTorrentSet, args, nil); err != nil {
		return fmt.Errorf("failed to set torrents: %w", err)
	}
	return nil
}

type setLocationRequest struct {
	IDs      TorrentIDs `json:"ids,omitempty"`
	Location string     `json:"location"`
	Move     bool       `json:"move"`
}

// SetTorrentLocation points torrents at a new download directory. With move
// the daemon relocates the data, otherwise it expects to find it there.
func (c *Client) SetTorrentLocation(ctx context.Context, ids TorrentIDs, location string, move bool) error {
	req := setLocationRequest{IDs: ids, Location: location, Move: move}
	if err := c.Call(ctx, methodTorrentSetLocation, req, nil); err != nil {
		return fmt.Errorf("failed to set torrent location: %w", err)
	}
	return nil
}

type renamePathRequest struct {
	IDs  TorrentIDs `json:"ids"`
	Path string     `json:"path"`
	Name string     `json:"name"`
}

// RenameTorrentPath renames a file or directory inside a single torrent.
// The selector must address exactly one torrent or the daemon refuses.
func (c *Client) RenameTorrentPath(ctx context.Context, ids TorrentIDs, path, name string) (*RenamedPath, error) {
	req := renamePathRequest{IDs: ids, Path: path, Name: name}

	var result RenamedPath
	if err := c.Call(ctx, methodTorrentRenamePath, req, &result); err != nil {
		return nil, fmt.Errorf("failed to rename torrent path: %w", err)
	}
	return &result, nil
}

type actionRequest struct {
	IDs TorrentIDs `json:"ids,omitempty"`
}

// Reusable helper for the id-selector-only methods
func (c *Client) torrentAction(ctx context.Context, method string, ids TorrentIDs) error {
	if err := c.Call(ctx, method, actionRequest{IDs: ids}, nil); err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}
	return nil
}

func (c *Client) StartTorrents(ctx context.Context, ids TorrentIDs) error {
	return c.torrentAction(ctx, methodTorrentStart, ids)
}

// StartTorrentsNow starts torrents even when the queue is full.
func (c *Client) StartTorrentsNow(ctx context.Context, ids TorrentIDs) error {
	return c.torrentAction(ctx, methodTorrentStartNow, ids)
}

func (c *Client) StopTorrents(ctx context.Context, ids TorrentIDs) error {
	return c.torrentAction(ctx, methodTorrentStop, ids)
}

func (c *Client) VerifyTorrents(ctx context.Context, ids TorrentIDs) error {
	return c.torrentAction(ctx, methodTorrentVerify, ids)
}

func (c *Client) ReannounceTorrents(ctx context.Context, ids TorrentIDs) error {
	return c.torrentAction(ctx, methodTorrentReannounce, ids)
}
