package transmission

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// MagnetLink holds the components of a parsed magnet URI.
type MagnetLink struct {
	Hash             string
	HashV2           string
	DisplayName      string
	Trackers         []string
	WebSeeds         []string
	ExactLength      string
	ExactSource      string
	Keywords         string
	AcceptableSource string
}

// ParseMagnetLink extracts information from a magnet link
func ParseMagnetLink(magnetURI string) (*MagnetLink, error) {
	if !strings.HasPrefix(magnetURI, "magnet:?") {
		return nil, errors.New("invalid magnet link format")
	}

	values, err := url.ParseQuery(strings.TrimPrefix(magnetURI, "magnet:?"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse magnet link query")
	}

	magnet := &MagnetLink{}

	// A link may carry several topics, typically one per hash version
	for _, topic := range values["xt"] {
		switch {
		case strings.HasPrefix(topic, "urn:btih:"):
			magnet.Hash = strings.TrimPrefix(topic, "urn:btih:")
		case strings.HasPrefix(topic, "urn:btmh:"):
			magnet.HashV2 = strings.TrimPrefix(topic, "urn:btmh:")
		case magnet.Hash == "":
			magnet.Hash = topic
		}
	}
	if magnet.Hash == "" && magnet.HashV2 == "" {
		return nil, errors.New("magnet link carries no info hash")
	}

	magnet.DisplayName = values.Get("dn")
	magnet.Trackers = values["tr"]
	magnet.WebSeeds = values["ws"]
	magnet.ExactLength = values.Get("xl")
	magnet.ExactSource = values.Get("xs")
	magnet.Keywords = values.Get("kt")
	magnet.AcceptableSource = values.Get("as")

	return magnet, nil
}

// String rebuilds the magnet URI, in a form AddTorrentRequest.Filename
// accepts.
func (m *MagnetLink) String() string {
	values := url.Values{}

	if m.Hash != "" {
		values.Add("xt", "urn:btih:"+m.Hash)
	}
	if m.HashV2 != "" {
		values.Add("xt", "urn:btmh:"+m.HashV2)
	}
	if m.DisplayName != "" {
		values.Set("dn", m.DisplayName)
	}
	for _, tracker := range m.Trackers {
		values.Add("tr", tracker)
	}
	for _, seed := range m.WebSeeds {
		values.Add("ws", seed)
	}
	if m.ExactLength != "" {
		values.Set("xl", m.ExactLength)
	}
	if m.ExactSource != "" {
		values.Set("xs", m.ExactSource)
	}
	if m.Keywords != "" {
		values.Set("kt", m.Keywords)
	}
	if m.AcceptableSource != "" {
		values.Set("as", m.AcceptableSource)
	}

	return "magnet:?" + values.Encode()
}
