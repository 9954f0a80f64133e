package transmission

import (
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/juju/loggo/v2"
	"github.com/pkg/errors"
)

var logger = loggo.GetLogger("transmission")

const (
	// DefaultRPCPath is appended to the configured URL when it carries no
	// explicit path.
	DefaultRPCPath = "/transmission/rpc"

	// DefaultTimeout bounds each HTTP exchange with the daemon when no
	// timeout or custom client is configured.
	DefaultTimeout = 10 * time.Second
)

// Config holds the settings used to build a Client.
type Config struct {
	// URL is the daemon address, e.g. "http://localhost:9091". Credentials
	// embedded in the URL take precedence over Username and Password. A URL
	// without a path (or with only "/") gets DefaultRPCPath appended; any
	// other path is kept as given.
	URL string

	// Username and Password enable HTTP Basic authentication. While both
	// are empty no Authorization header is ever sent.
	Username string
	Password string

	// RequestTimeout bounds each HTTP exchange, DefaultTimeout when zero.
	// Ignored when HTTPClient is set.
	RequestTimeout time.Duration

	// HTTPClient replaces the internally built client. Timeouts and
	// transport settings then belong to the caller.
	HTTPClient *http.Client
}

// Client talks to a single Transmission daemon. It is safe for concurrent
// use; the session token is renegotiated transparently whenever the daemon
// rejects it.
type Client struct {
	mu        sync.RWMutex
	sessionID string

	url      string
	username string
	password string
	client   *http.Client
	tag      atomic.Int64
}

// New validates the configuration and builds a Client. No network traffic
// happens here; the first call negotiates the session token on demand.
func New(config Config) (*Client, error) {
	if config.URL == "" {
		return nil, errors.New("missing daemon URL")
	}

	u, err := url.Parse(config.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid daemon URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("unsupported URL scheme %q", u.Scheme)
	}

	username, password := config.Username, config.Password
	if u.User != nil {
		username = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			password = pw
		}
		u.User = nil
	}

	if u.Path == "" || u.Path == "/" {
		u.Path = DefaultRPCPath
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.RequestTimeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		url:      u.String(),
		username: username,
		password: password,
		client:   httpClient,
	}, nil
}

// URL returns the normalized RPC endpoint the client talks to, with any
// URL-embedded credentials stripped.
func (c *Client) URL() string {
	return c.url
}

// SessionID returns the session token currently held, or "" before the
// first exchange with the daemon.
func (c *Client) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionID
}

func (c *Client) setSessionID(id string) {
	c.mu.Lock()
	c.sessionID = id
	c.mu.Unlock()
}

// nextTag hands out the correlation tag for one round trip.
func (c *Client) nextTag() int64 {
	return c.tag.Add(1)
}
