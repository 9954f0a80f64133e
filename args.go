package transmission

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// recentlyActiveMarker is the daemon-interpreted id selector for torrents
// with recent activity. It travels as a bare string, not as a list element.
const recentlyActiveMarker = "recently-active"

// TorrentIDs selects which torrents an operation applies to. A nil value
// addresses every torrent; build non-empty selectors with IDs, Hashes or
// RecentlyActive. Numeric ids and hash strings may be mixed freely.
type TorrentIDs []any

// RecentlyActive addresses the torrents with activity since the previous
// recently-active query, and makes torrent listings report removed ids too.
var RecentlyActive = TorrentIDs{recentlyActiveMarker}

// IDs builds a selector from daemon-assigned numeric ids.
func IDs(ids ...int64) TorrentIDs {
	out := make(TorrentIDs, 0, len(ids))
	for _, id := range ids {
		out = append(out, id)
	}
	return out
}

// Hashes builds a selector from torrent hash strings.
func Hashes(hashes ...string) TorrentIDs {
	out := make(TorrentIDs, 0, len(hashes))
	for _, hash := range hashes {
		out = append(out, hash)
	}
	return out
}

// MarshalJSON emits the wire union: the bare marker string for
// RecentlyActive, a JSON array for everything else.
func (ids TorrentIDs) MarshalJSON() ([]byte, error) {
	if len(ids) == 1 {
		if s, ok := ids[0].(string); ok && s == recentlyActiveMarker {
			return json.Marshal(s)
		}
	}
	return json.Marshal([]any(ids))
}

// Bool returns a pointer to b for optional mutation fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i for optional mutation fields.
func Int(i int64) *int64 { return &i }

// Float returns a pointer to f for optional mutation fields.
func Float(f float64) *float64 { return &f }

// String returns a pointer to s for optional mutation fields.
func String(s string) *string { return &s }

// ===== Argument shapes =====

// TorrentGetRequest selects which torrents and which fields a listing
// returns. An empty Fields list is replaced by DefaultTorrentFields.
type TorrentGetRequest struct {
	IDs    TorrentIDs `json:"ids,omitempty"`
	Fields []string   `json:"fields,omitempty"`
}

// AddTorrentRequest describes a torrent to add. Exactly one of Filename and
// Metainfo should be set: Filename carries a magnet link, an URL or a path
// readable by the daemon, Metainfo carries base64-encoded .torrent contents.
type AddTorrentRequest struct {
	Cookies           string    `json:"cookies,omitempty"`
	DownloadDir       string    `json:"downloadDir,omitempty"`
	Filename          string    `json:"filename,omitempty"`
	Labels            []string  `json:"labels,omitempty"`
	Metainfo          string    `json:"metainfo,omitempty"`
	Paused            *bool     `json:"paused,omitempty"`
	PeerLimit         int64     `json:"peerLimit,omitempty"`
	BandwidthPriority *Priority `json:"bandwidthPriority,omitempty"`
	FilesWanted       []int64   `json:"filesWanted,omitempty"`
	FilesUnwanted     []int64   `json:"filesUnwanted,omitempty"`
	PriorityHigh      []int64   `json:"priorityHigh,omitempty"`
	PriorityLow       []int64   `json:"priorityLow,omitempty"`
	PriorityNormal    []int64   `json:"priorityNormal,omitempty"`
}

// SetTorrentsRequest mutates per-torrent settings. Only non-nil fields are
// sent, so the daemon leaves everything else untouched.
type SetTorrentsRequest struct {
	IDs                 TorrentIDs `json:"ids,omitempty"`
	BandwidthPriority   *Priority  `json:"bandwidthPriority,omitempty"`
	DownloadLimit       *int64     `json:"downloadLimit,omitempty"`
	DownloadLimited     *bool      `json:"downloadLimited,omitempty"`
	FilesWanted         []int64    `json:"filesWanted,omitempty"`
	FilesUnwanted       []int64    `json:"filesUnwanted,omitempty"`
	HonorsSessionLimits *bool      `json:"honorsSessionLimits,omitempty"`
	Labels              []string   `json:"labels,omitempty"`
	Location            *string    `json:"location,omitempty"`
	PeerLimit           *int64     `json:"peerLimit,omitempty"`
	PriorityHigh        []int64    `json:"priorityHigh,omitempty"`
	PriorityLow         []int64    `json:"priorityLow,omitempty"`
	PriorityNormal      []int64    `json:"priorityNormal,omitempty"`
	QueuePosition       *int64     `json:"queuePosition,omitempty"`
	SeedIdleLimit       *int64     `json:"seedIdleLimit,omitempty"`
	SeedIdleMode        *IdleMode  `json:"seedIdleMode,omitempty"`
	SeedRatioLimit      *float64   `json:"seedRatioLimit,omitempty"`
	SeedRatioMode       *RatioMode `json:"seedRatioMode,omitempty"`
	TrackerAdd          []string   `json:"trackerAdd,omitempty"`
	TrackerRemove       []int64    `json:"trackerRemove,omitempty"`
	UploadLimit         *int64     `json:"uploadLimit,omitempty"`
	UploadLimited       *bool      `json:"uploadLimited,omitempty"`
}

// SessionSetRequest mutates daemon-wide settings. Only non-nil fields are
// sent. Read-only session fields (version, rpcVersion, blocklistSize,
// configDir, sessionId) intentionally have no counterpart here.
type SessionSetRequest struct {
	AltSpeedDown              *int64   `json:"altSpeedDown,omitempty"`
	AltSpeedEnabled           *bool    `json:"altSpeedEnabled,omitempty"`
	AltSpeedTimeBegin         *int64   `json:"altSpeedTimeBegin,omitempty"`
	AltSpeedTimeDay           *int64   `json:"altSpeedTimeDay,omitempty"`
	AltSpeedTimeEnabled       *bool    `json:"altSpeedTimeEnabled,omitempty"`
	AltSpeedTimeEnd           *int64   `json:"altSpeedTimeEnd,omitempty"`
	AltSpeedUp                *int64   `json:"altSpeedUp,omitempty"`
	BlocklistEnabled          *bool    `json:"blocklistEnabled,omitempty"`
	BlocklistURL              *string  `json:"blocklistUrl,omitempty"`
	CacheSizeMB               *int64   `json:"cacheSizeMb,omitempty"`
	DHTEnabled                *bool    `json:"dhtEnabled,omitempty"`
	DownloadDir               *string  `json:"downloadDir,omitempty"`
	DownloadQueueEnabled      *bool    `json:"downloadQueueEnabled,omitempty"`
	DownloadQueueSize         *int64   `json:"downloadQueueSize,omitempty"`
	Encryption                *string  `json:"encryption,omitempty"`
	IdleSeedingLimit          *int64   `json:"idleSeedingLimit,omitempty"`
	IdleSeedingLimitEnabled   *bool    `json:"idleSeedingLimitEnabled,omitempty"`
	IncompleteDir             *string  `json:"incompleteDir,omitempty"`
	IncompleteDirEnabled      *bool    `json:"incompleteDirEnabled,omitempty"`
	LPDEnabled                *bool    `json:"lpdEnabled,omitempty"`
	PeerLimitGlobal           *int64   `json:"peerLimitGlobal,omitempty"`
	PeerLimitPerTorrent       *int64   `json:"peerLimitPerTorrent,omitempty"`
	PeerPort                  *int64   `json:"peerPort,omitempty"`
	PeerPortRandomOnStart     *bool    `json:"peerPortRandomOnStart,omitempty"`
	PEXEnabled                *bool    `json:"pexEnabled,omitempty"`
	PortForwardingEnabled     *bool    `json:"portForwardingEnabled,omitempty"`
	QueueStalledEnabled       *bool    `json:"queueStalledEnabled,omitempty"`
	QueueStalledMinutes       *int64   `json:"queueStalledMinutes,omitempty"`
	RenamePartialFiles        *bool    `json:"renamePartialFiles,omitempty"`
	ScriptTorrentDoneEnabled  *bool    `json:"scriptTorrentDoneEnabled,omitempty"`
	ScriptTorrentDoneFilename *string  `json:"scriptTorrentDoneFilename,omitempty"`
	SeedQueueEnabled          *bool    `json:"seedQueueEnabled,omitempty"`
	SeedQueueSize             *int64   `json:"seedQueueSize,omitempty"`
	SeedRatioLimit            *float64 `json:"seedRatioLimit,omitempty"`
	SeedRatioLimited          *bool    `json:"seedRatioLimited,omitempty"`
	SpeedLimitDown            *int64   `json:"speedLimitDown,omitempty"`
	SpeedLimitDownEnabled     *bool    `json:"speedLimitDownEnabled,omitempty"`
	SpeedLimitUp              *int64   `json:"speedLimitUp,omitempty"`
	SpeedLimitUpEnabled       *bool    `json:"speedLimitUpEnabled,omitempty"`
	StartAddedTorrents        *bool    `json:"startAddedTorrents,omitempty"`
	TrashOriginalTorrentFiles *bool    `json:"trashOriginalTorrentFiles,omitempty"`
	UTPEnabled                *bool    `json:"utpEnabled,omitempty"`
}

// ===== Wire key renames =====

// Rename tables map application key names to their wire spelling, covering
// only the keys whose wire form is not plain camel case. Response keys never
// need tables: camelizeRaw re-cases them generically.
var (
	torrentAddRenames = map[string]string{
		"downloadDir":    "download-dir",
		"filesWanted":    "files-wanted",
		"filesUnwanted":  "files-unwanted",
		"peerLimit":      "peer-limit",
		"priorityHigh":   "priority-high",
		"priorityLow":    "priority-low",
		"priorityNormal": "priority-normal",
	}

	torrentSetRenames = map[string]string{
		"filesWanted":    "files-wanted",
		"filesUnwanted":  "files-unwanted",
		"peerLimit":      "peer-limit",
		"priorityHigh":   "priority-high",
		"priorityLow":    "priority-low",
		"priorityNormal": "priority-normal",
	}

	torrentRemoveRenames = map[string]string{
		"deleteLocalData": "delete-local-data",
	}

	// seedRatioLimit and seedRatioLimited stay camel cased on the wire, so
	// they are deliberately absent.
	sessionSetRenames = map[string]string{
		"altSpeedDown":              "alt-speed-down",
		"altSpeedEnabled":           "alt-speed-enabled",
		"altSpeedTimeBegin":         "alt-speed-time-begin",
		"altSpeedTimeDay":           "alt-speed-time-day",
		"altSpeedTimeEnabled":       "alt-speed-time-enabled",
		"altSpeedTimeEnd":           "alt-speed-time-end",
		"altSpeedUp":                "alt-speed-up",
		"blocklistEnabled":          "blocklist-enabled",
		"blocklistUrl":              "blocklist-url",
		"cacheSizeMb":               "cache-size-mb",
		"dhtEnabled":                "dht-enabled",
		"downloadDir":               "download-dir",
		"downloadQueueEnabled":      "download-queue-enabled",
		"downloadQueueSize":         "download-queue-size",
		"idleSeedingLimit":          "idle-seeding-limit",
		"idleSeedingLimitEnabled":   "idle-seeding-limit-enabled",
		"incompleteDir":             "incomplete-dir",
		"incompleteDirEnabled":      "incomplete-dir-enabled",
		"lpdEnabled":                "lpd-enabled",
		"peerLimitGlobal":           "peer-limit-global",
		"peerLimitPerTorrent":       "peer-limit-per-torrent",
		"peerPort":                  "peer-port",
		"peerPortRandomOnStart":     "peer-port-random-on-start",
		"pexEnabled":                "pex-enabled",
		"portForwardingEnabled":     "port-forwarding-enabled",
		"queueStalledEnabled":       "queue-stalled-enabled",
		"queueStalledMinutes":       "queue-stalled-minutes",
		"renamePartialFiles":        "rename-partial-files",
		"scriptTorrentDoneEnabled":  "script-torrent-done-enabled",
		"scriptTorrentDoneFilename": "script-torrent-done-filename",
		"seedQueueEnabled":          "seed-queue-enabled",
		"seedQueueSize":             "seed-queue-size",
		"speedLimitDown":            "speed-limit-down",
		"speedLimitDownEnabled":     "speed-limit-down-enabled",
		"speedLimitUp":              "speed-limit-up",
		"speedLimitUpEnabled":       "speed-limit-up-enabled",
		"startAddedTorrents":        "start-added-torrents",
		"trashOriginalTorrentFiles": "trash-original-torrent-files",
		"utpEnabled":                "utp-enabled",
	}
)

// marshalArgs flattens a typed argument struct into a generic map and applies
// the method's rename table. Numbers ride through as json.Number so 64-bit
// values survive the round trip.
func marshalArgs(v any, renames map[string]string) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode arguments")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil, errors.Wrap(err, "failed to flatten arguments")
	}

	for app, wire := range renames {
		if val, ok := args[app]; ok {
			delete(args, app)
			args[wire] = val
		}
	}
	return args, nil
}
