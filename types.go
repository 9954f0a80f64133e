package transmission

// All struct tags below use the application casing produced by camelizeRaw,
// not the raw wire casing. A torrent's "peer-limit" therefore decodes
// through the "peerLimit" tag.

// TorrentStatus is the daemon's activity state for a torrent.
type TorrentStatus int64

const (
	StatusStopped TorrentStatus = iota
	StatusCheckWait
	StatusCheck
	StatusDownloadWait
	StatusDownload
	StatusSeedWait
	StatusSeed
)

func (s TorrentStatus) String() string {
	switch s {
	case StatusStopped:
		return "stopped"
	case StatusCheckWait:
		return "check queued"
	case StatusCheck:
		return "checking"
	case StatusDownloadWait:
		return "download queued"
	case StatusDownload:
		return "downloading"
	case StatusSeedWait:
		return "seed queued"
	case StatusSeed:
		return "seeding"
	default:
		return "unknown"
	}
}

// Priority is a bandwidth priority for a torrent or a file within one.
type Priority int64

const (
	PriorityLow    Priority = -1
	PriorityNormal Priority = 0
	PriorityHigh   Priority = 1
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// RatioMode selects which seed ratio limit applies to a torrent.
type RatioMode int64

const (
	// RatioModeGlobal follows the session-wide seed ratio settings.
	RatioModeGlobal RatioMode = iota
	// RatioModeSingle uses the torrent's own seedRatioLimit.
	RatioModeSingle
	// RatioModeUnlimited seeds regardless of ratio.
	RatioModeUnlimited
)

// IdleMode selects which idle seeding limit applies to a torrent.
type IdleMode int64

const (
	IdleModeGlobal IdleMode = iota
	IdleModeSingle
	IdleModeUnlimited
)

// Torrent is one torrent as reported by the daemon. Fields outside the
// requested field set keep their zero value.
type Torrent struct {
	ActivityDate            int64         `json:"activityDate"`
	AddedDate               int64         `json:"addedDate"`
	BandwidthPriority       Priority      `json:"bandwidthPriority"`
	Comment                 string        `json:"comment"`
	CorruptEver             int64         `json:"corruptEver"`
	Creator                 string        `json:"creator"`
	DateCreated             int64         `json:"dateCreated"`
	DesiredAvailable        int64         `json:"desiredAvailable"`
	DoneDate                int64         `json:"doneDate"`
	DownloadDir             string        `json:"downloadDir"`
	DownloadedEver          int64         `json:"downloadedEver"`
	DownloadLimit           int64         `json:"downloadLimit"`
	DownloadLimited         bool          `json:"downloadLimited"`
	EditDate                int64         `json:"editDate"`
	Error                   int64         `json:"error"`
	ErrorString             string        `json:"errorString"`
	ETA                     int64         `json:"eta"`
	ETAIdle                 int64         `json:"etaIdle"`
	FileCount               int64         `json:"fileCount"`
	Files                   []File        `json:"files"`
	FileStats               []FileStat    `json:"fileStats"`
	HashString              string        `json:"hashString"`
	HaveUnchecked           int64         `json:"haveUnchecked"`
	HaveValid               int64         `json:"haveValid"`
	HonorsSessionLimits     bool          `json:"honorsSessionLimits"`
	ID                      int64         `json:"id"`
	IsFinished              bool          `json:"isFinished"`
	IsPrivate               bool          `json:"isPrivate"`
	IsStalled               bool          `json:"isStalled"`
	Labels                  []string      `json:"labels"`
	LeftUntilDone           int64         `json:"leftUntilDone"`
	MagnetLink              string        `json:"magnetLink"`
	ManualAnnounceTime      int64         `json:"manualAnnounceTime"`
	MaxConnectedPeers       int64         `json:"maxConnectedPeers"`
	MetadataPercentComplete float64       `json:"metadataPercentComplete"`
	Name                    string        `json:"name"`
	PeerLimit               int64         `json:"peerLimit"`
	Peers                   []Peer        `json:"peers"`
	PeersConnected          int64         `json:"peersConnected"`
	PeersFrom               PeersFrom     `json:"peersFrom"`
	PeersGettingFromUs      int64         `json:"peersGettingFromUs"`
	PeersSendingToUs        int64         `json:"peersSendingToUs"`
	PercentDone             float64       `json:"percentDone"`
	PieceCount              int64         `json:"pieceCount"`
	PieceSize               int64         `json:"pieceSize"`
	Pieces                  string        `json:"pieces"`
	Priorities              []Priority    `json:"priorities"`
	PrimaryMimeType         string        `json:"primaryMimeType"`
	QueuePosition           int64         `json:"queuePosition"`
	RateDownload            int64         `json:"rateDownload"`
	RateUpload              int64         `json:"rateUpload"`
	RecheckProgress         float64       `json:"recheckProgress"`
	SecondsDownloading      int64         `json:"secondsDownloading"`
	SecondsSeeding          int64         `json:"secondsSeeding"`
	SeedIdleLimit           int64         `json:"seedIdleLimit"`
	SeedIdleMode            IdleMode      `json:"seedIdleMode"`
	SeedRatioLimit          float64       `json:"seedRatioLimit"`
	SeedRatioMode           RatioMode     `json:"seedRatioMode"`
	SizeWhenDone            int64         `json:"sizeWhenDone"`
	StartDate               int64         `json:"startDate"`
	Status                  TorrentStatus `json:"status"`
	TorrentFile             string        `json:"torrentFile"`
	TotalSize               int64         `json:"totalSize"`
	Trackers                []Tracker     `json:"trackers"`
	TrackerStats            []TrackerStat `json:"trackerStats"`
	UploadedEver            int64         `json:"uploadedEver"`
	UploadLimit             int64         `json:"uploadLimit"`
	UploadLimited           bool          `json:"uploadLimited"`
	UploadRatio             float64       `json:"uploadRatio"`
	Wanted                  []int64       `json:"wanted"`
	Webseeds                []string      `json:"webseeds"`
	WebseedsSendingToUs     int64         `json:"webseedsSendingToUs"`
}

// File is one file inside a torrent.
type File struct {
	BytesCompleted int64  `json:"bytesCompleted"`
	Length         int64  `json:"length"`
	Name           string `json:"name"`
}

// FileStat is the mutable per-file state matching Torrent.Files by index.
type FileStat struct {
	BytesCompleted int64    `json:"bytesCompleted"`
	Wanted         bool     `json:"wanted"`
	Priority       Priority `json:"priority"`
}

// Peer is one connected peer of a torrent.
type Peer struct {
	Address            string  `json:"address"`
	ClientName         string  `json:"clientName"`
	ClientIsChoked     bool    `json:"clientIsChoked"`
	ClientIsInterested bool    `json:"clientIsInterested"`
	FlagStr            string  `json:"flagStr"`
	IsDownloadingFrom  bool    `json:"isDownloadingFrom"`
	IsEncrypted        bool    `json:"isEncrypted"`
	IsIncoming         bool    `json:"isIncoming"`
	IsUploadingTo      bool    `json:"isUploadingTo"`
	IsUTP              bool    `json:"isUTP"`
	PeerIsChoked       bool    `json:"peerIsChoked"`
	PeerIsInterested   bool    `json:"peerIsInterested"`
	Port               int64   `json:"port"`
	Progress           float64 `json:"progress"`
	RateToClient       int64   `json:"rateToClient"`
	RateToPeer         int64   `json:"rateToPeer"`
}

// PeersFrom counts connected peers by discovery mechanism.
type PeersFrom struct {
	FromCache    int64 `json:"fromCache"`
	FromDht      int64 `json:"fromDht"`
	FromIncoming int64 `json:"fromIncoming"`
	FromLpd      int64 `json:"fromLpd"`
	FromLtep     int64 `json:"fromLtep"`
	FromPex      int64 `json:"fromPex"`
	FromTracker  int64 `json:"fromTracker"`
}

// Tracker is one announce endpoint of a torrent.
type Tracker struct {
	Announce string `json:"announce"`
	ID       int64  `json:"id"`
	Scrape   string `json:"scrape"`
	Tier     int64  `json:"tier"`
}

// TrackerStat is the announce and scrape history for one tracker.
type TrackerStat struct {
	Announce              string `json:"announce"`
	AnnounceState         int64  `json:"announceState"`
	DownloadCount         int64  `json:"downloadCount"`
	HasAnnounced          bool   `json:"hasAnnounced"`
	HasScraped            bool   `json:"hasScraped"`
	Host                  string `json:"host"`
	ID                    int64  `json:"id"`
	IsBackup              bool   `json:"isBackup"`
	LastAnnouncePeerCount int64  `json:"lastAnnouncePeerCount"`
	LastAnnounceResult    string `json:"lastAnnounceResult"`
	LastAnnounceStartTime int64  `json:"lastAnnounceStartTime"`
	LastAnnounceSucceeded bool   `json:"lastAnnounceSucceeded"`
	LastAnnounceTime      int64  `json:"lastAnnounceTime"`
	LastAnnounceTimedOut  bool   `json:"lastAnnounceTimedOut"`
	LastScrapeResult      string `json:"lastScrapeResult"`
	LastScrapeStartTime   int64  `json:"lastScrapeStartTime"`
	LastScrapeSucceeded   bool   `json:"lastScrapeSucceeded"`
	LastScrapeTime        int64  `json:"lastScrapeTime"`
	LastScrapeTimedOut    bool   `json:"lastScrapeTimedOut"`
	LeecherCount          int64  `json:"leecherCount"`
	NextAnnounceTime      int64  `json:"nextAnnounceTime"`
	NextScrapeTime        int64  `json:"nextScrapeTime"`
	Scrape                string `json:"scrape"`
	ScrapeState           int64  `json:"scrapeState"`
	SeederCount           int64  `json:"seederCount"`
	Tier                  int64  `json:"tier"`
}

// TorrentList is a torrent-get payload. Removed is only populated when the
// listing was selected with RecentlyActive.
type TorrentList struct {
	Torrents []Torrent `json:"torrents"`
	Removed  []int64   `json:"removed"`
}

// TorrentAdded identifies a torrent accepted by the daemon.
type TorrentAdded struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	HashString string `json:"hashString"`
}

// AddedTorrent is the outcome of an add operation. Duplicate reports whether
// the daemon already knew the torrent instead of adding it again.
type AddedTorrent struct {
	TorrentAdded
	Duplicate bool
}

// addTorrentResult is the raw torrent-add payload with its two variants.
type addTorrentResult struct {
	Added     *TorrentAdded `json:"torrentAdded"`
	Duplicate *TorrentAdded `json:"torrentDuplicate"`
}

// Session is the daemon-wide configuration and its read-only properties.
type Session struct {
	AltSpeedDown              int64   `json:"altSpeedDown"`
	AltSpeedEnabled           bool    `json:"altSpeedEnabled"`
	AltSpeedTimeBegin         int64   `json:"altSpeedTimeBegin"`
	AltSpeedTimeDay           int64   `json:"altSpeedTimeDay"`
	AltSpeedTimeEnabled       bool    `json:"altSpeedTimeEnabled"`
	AltSpeedTimeEnd           int64   `json:"altSpeedTimeEnd"`
	AltSpeedUp                int64   `json:"altSpeedUp"`
	BlocklistEnabled          bool    `json:"blocklistEnabled"`
	BlocklistSize             int64   `json:"blocklistSize"`
	BlocklistURL              string  `json:"blocklistUrl"`
	CacheSizeMB               int64   `json:"cacheSizeMb"`
	ConfigDir                 string  `json:"configDir"`
	DHTEnabled                bool    `json:"dhtEnabled"`
	DownloadDir               string  `json:"downloadDir"`
	DownloadDirFreeSpace      int64   `json:"downloadDirFreeSpace"`
	DownloadQueueEnabled      bool    `json:"downloadQueueEnabled"`
	DownloadQueueSize         int64   `json:"downloadQueueSize"`
	Encryption                string  `json:"encryption"`
	IdleSeedingLimit          int64   `json:"idleSeedingLimit"`
	IdleSeedingLimitEnabled   bool    `json:"idleSeedingLimitEnabled"`
	IncompleteDir             string  `json:"incompleteDir"`
	IncompleteDirEnabled      bool    `json:"incompleteDirEnabled"`
	LPDEnabled                bool    `json:"lpdEnabled"`
	PeerLimitGlobal           int64   `json:"peerLimitGlobal"`
	PeerLimitPerTorrent       int64   `json:"peerLimitPerTorrent"`
	PeerPort                  int64   `json:"peerPort"`
	PeerPortRandomOnStart     bool    `json:"peerPortRandomOnStart"`
	PEXEnabled                bool    `json:"pexEnabled"`
	PortForwardingEnabled     bool    `json:"portForwardingEnabled"`
	QueueStalledEnabled       bool    `json:"queueStalledEnabled"`
	QueueStalledMinutes       int64   `json:"queueStalledMinutes"`
	RenamePartialFiles        bool    `json:"renamePartialFiles"`
	RPCVersion                int64   `json:"rpcVersion"`
	RPCVersionMinimum         int64   `json:"rpcVersionMinimum"`
	ScriptTorrentDoneEnabled  bool    `json:"scriptTorrentDoneEnabled"`
	ScriptTorrentDoneFilename string  `json:"scriptTorrentDoneFilename"`
	SeedQueueEnabled          bool    `json:"seedQueueEnabled"`
	SeedQueueSize             int64   `json:"seedQueueSize"`
	SeedRatioLimit            float64 `json:"seedRatioLimit"`
	SeedRatioLimited          bool    `json:"seedRatioLimited"`
	SessionID                 string  `json:"sessionId"`
	SpeedLimitDown            int64   `json:"speedLimitDown"`
	SpeedLimitDownEnabled     bool    `json:"speedLimitDownEnabled"`
	SpeedLimitUp              int64   `json:"speedLimitUp"`
	SpeedLimitUpEnabled       bool    `json:"speedLimitUpEnabled"`
	StartAddedTorrents        bool    `json:"startAddedTorrents"`
	TrashOriginalTorrentFiles bool    `json:"trashOriginalTorrentFiles"`
	Units                     Units   `json:"units"`
	UTPEnabled                bool    `json:"utpEnabled"`
	Version                   string  `json:"version"`
}

// Units describes how the daemon formats byte and speed quantities.
type Units struct {
	MemoryBytes int64    `json:"memoryBytes"`
	MemoryUnits []string `json:"memoryUnits"`
	SizeBytes   int64    `json:"sizeBytes"`
	SizeUnits   []string `json:"sizeUnits"`
	SpeedBytes  int64    `json:"speedBytes"`
	SpeedUnits  []string `json:"speedUnits"`
}

// SessionStats is the daemon's transfer statistics snapshot.
type SessionStats struct {
	ActiveTorrentCount int64 `json:"activeTorrentCount"`
	DownloadSpeed      int64 `json:"downloadSpeed"`
	PausedTorrentCount int64 `json:"pausedTorrentCount"`
	TorrentCount       int64 `json:"torrentCount"`
	UploadSpeed        int64 `json:"uploadSpeed"`
	CumulativeStats    Stats `json:"cumulativeStats"`
	CurrentStats       Stats `json:"currentStats"`
}

// Stats is one bucket of transfer statistics.
type Stats struct {
	DownloadedBytes int64 `json:"downloadedBytes"`
	FilesAdded      int64 `json:"filesAdded"`
	SecondsActive   int64 `json:"secondsActive"`
	SessionCount    int64 `json:"sessionCount"`
	UploadedBytes   int64 `json:"uploadedBytes"`
}

// FreeSpaceInfo reports how much room a daemon-side directory has left.
type FreeSpaceInfo struct {
	Path      string `json:"path"`
	SizeBytes int64  `json:"sizeBytes"`
	TotalSize int64  `json:"totalSize"`
}

// RenamedPath is the daemon's confirmation of a path rename.
type RenamedPath struct {
	ID   int64  `json:"id"`
	Path string `json:"path"`
	Name string `json:"name"`
}

type portCheck struct {
	PortIsOpen bool `json:"portIsOpen"`
}

type blocklistUpdate struct {
	BlocklistSize int64 `json:"blocklistSize"`
}

// defaultTorrentFields is requested when a listing does not pick its own
// field set. Heavyweight fields (pieces, peers, trackerStats) are left out;
// ask for them explicitly when needed. Names are spelled the wire way.
var defaultTorrentFields = []string{
	"activityDate",
	"addedDate",
	"bandwidthPriority",
	"comment",
	"corruptEver",
	"creator",
	"dateCreated",
	"desiredAvailable",
	"doneDate",
	"downloadDir",
	"downloadedEver",
	"downloadLimit",
	"downloadLimited",
	"error",
	"errorString",
	"eta",
	"etaIdle",
	"file-count",
	"files",
	"fileStats",
	"hashString",
	"haveUnchecked",
	"haveValid",
	"honorsSessionLimits",
	"id",
	"isFinished",
	"isPrivate",
	"isStalled",
	"labels",
	"leftUntilDone",
	"magnetLink",
	"metadataPercentComplete",
	"name",
	"peer-limit",
	"peersConnected",
	"peersGettingFromUs",
	"peersSendingToUs",
	"percentDone",
	"pieceCount",
	"pieceSize",
	"primary-mime-type",
	"queuePosition",
	"rateDownload",
	"rateUpload",
	"recheckProgress",
	"secondsDownloading",
	"secondsSeeding",
	"seedIdleLimit",
	"seedIdleMode",
	"seedRatioLimit",
	"seedRatioMode",
	"sizeWhenDone",
	"startDate",
	"status",
	"totalSize",
	"trackers",
	"uploadedEver",
	"uploadLimit",
	"uploadLimited",
	"uploadRatio",
	"wanted",
	"webseeds",
	"webseedsSendingToUs",
}

// DefaultTorrentFields returns the field set GetTorrents asks for when the
// request does not name one. The returned slice is a copy and safe to extend.
func DefaultTorrentFields() []string {
	return append([]string(nil), defaultTorrentFields...)
}
