package transmission

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env := decodeWireEnvelope(t, r)
		if env.Method != "session-get" {
			t.Errorf("Expected session-get, got %q", env.Method)
		}

		fmt.Fprintf(w, `{"result":"success","arguments":{
			"alt-speed-down":50,
			"download-dir":"/downloads",
			"peer-limit-global":200,
			"rpc-version":17,
			"seedRatioLimit":2.5,
			"seedRatioLimited":true,
			"session-id":"abc",
			"units":{"size-bytes":1000,"size-units":["kB","MB","GB","TB"]},
			"version":"4.0.5"
		},"tag":%d}`, env.Tag)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	session, err := client.GetSession(context.Background())
	if err != nil {
		t.Fatalf("Failed to get session: %v", err)
	}

	if session.AltSpeedDown != 50 {
		t.Errorf("Expected alt speed 50, got %d", session.AltSpeedDown)
	}
	if session.DownloadDir != "/downloads" {
		t.Errorf("Expected /downloads, got %q", session.DownloadDir)
	}
	if session.PeerLimitGlobal != 200 {
		t.Errorf("Expected peer limit 200, got %d", session.PeerLimitGlobal)
	}
	if session.RPCVersion != 17 {
		t.Errorf("Expected rpc version 17, got %d", session.RPCVersion)
	}
	if session.SeedRatioLimit != 2.5 || !session.SeedRatioLimited {
		t.Errorf("Expected the camel wire keys to decode, got %v/%v", session.SeedRatioLimit, session.SeedRatioLimited)
	}
	if session.SessionID != "abc" {
		t.Errorf("Expected session-id abc, got %q", session.SessionID)
	}
	if session.Units.SizeBytes != 1000 || len(session.Units.SizeUnits) != 4 {
		t.Errorf("Expected the nested units to decode, got %+v", session.Units)
	}
	if session.Version != "4.0.5" {
		t.Errorf("Expected version 4.0.5, got %q", session.Version)
	}
}

func TestSetSessionRenamesKeys(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env := decodeWireEnvelope(t, r)
		if env.Method != "session-set" {
			t.Errorf("Expected session-set, got %q", env.Method)
		}

		if env.Arguments["alt-speed-down"] != float64(100) {
			t.Errorf("Expected alt-speed-down 100, got %v", env.Arguments)
		}
		if env.Arguments["download-dir"] != "/new" {
			t.Errorf("Expected download-dir, got %v", env.Arguments)
		}

		// These two stay camel cased on the wire
		if env.Arguments["seedRatioLimit"] != 2.0 {
			t.Errorf("Expected seedRatioLimit to stay camel, got %v", env.Arguments)
		}
		if env.Arguments["seedRatioLimited"] != true {
			t.Errorf("Expected seedRatioLimited to stay camel, got %v", env.Arguments)
		}

		for _, stale := range []string{"altSpeedDown", "downloadDir", "seed-ratio-limit"} {
			if _, ok := env.Arguments[stale]; ok {
				t.Errorf("Unexpected key %q on the wire", stale)
			}
		}

		// Unset optional fields must be absent, not null
		if _, ok := env.Arguments["peer-port"]; ok {
			t.Errorf("Expected unset fields to be omitted, got %v", env.Arguments)
		}

		fmt.Fprintf(w, `{"result":"success","arguments":{},"tag":%d}`, env.Tag)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	err = client.SetSession(context.Background(), SessionSetRequest{
		AltSpeedDown:     Int(100),
		DownloadDir:      String("/new"),
		SeedRatioLimit:   Float(2.0),
		SeedRatioLimited: Bool(true),
	})
	if err != nil {
		t.Fatalf("Failed to set session: %v", err)
	}
}

func TestGetSessionStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env := decodeWireEnvelope(t, r)
		if env.Method != "session-stats" {
			t.Errorf("Expected session-stats, got %q", env.Method)
		}

		fmt.Fprintf(w, `{"result":"success","arguments":{
			"activeTorrentCount":3,
			"downloadSpeed":1048576,
			"torrentCount":10,
			"cumulative-stats":{"downloadedBytes":1099511627776,"sessionCount":42},
			"current-stats":{"downloadedBytes":123456789,"uploadedBytes":987654321}
		},"tag":%d}`, env.Tag)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	stats, err := client.GetSessionStats(context.Background())
	if err != nil {
		t.Fatalf("Failed to get session stats: %v", err)
	}

	if stats.ActiveTorrentCount != 3 || stats.TorrentCount != 10 {
		t.Errorf("Expected counters to decode, got %+v", stats)
	}
	if stats.CumulativeStats.DownloadedBytes != 1099511627776 {
		t.Errorf("Expected cumulative-stats to decode, got %+v", stats.CumulativeStats)
	}
	if stats.CurrentStats.UploadedBytes != 987654321 {
		t.Errorf("Expected current-stats to decode, got %+v", stats.CurrentStats)
	}
}

func TestCloseSessionSendsNoArguments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("Failed to read request body: %v", err)
		}

		var env map[string]any
		if err := json.Unmarshal(body, &env); err != nil {
			t.Fatalf("Failed to decode request envelope: %v", err)
		}
		if env["method"] != "session-close" {
			t.Errorf("Expected session-close, got %v", env["method"])
		}
		if _, ok := env["arguments"]; ok {
			t.Errorf("Expected the arguments key to be omitted, got %s", body)
		}

		fmt.Fprintf(w, `{"result":"success","arguments":{},"tag":%v}`, env["tag"])
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	if err := client.CloseSession(context.Background()); err != nil {
		t.Fatalf("Failed to close session: %v", err)
	}
}

func TestFreeSpace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env := decodeWireEnvelope(t, r)
		if env.Method != "free-space" {
			t.Errorf("Expected free-space, got %q", env.Method)
		}
		if env.Arguments["path"] != "/downloads" {
			t.Errorf("Expected path /downloads, got %v", env.Arguments["path"])
		}

		// total_size is the one snake cased key the daemon emits
		fmt.Fprintf(w, `{"result":"success","arguments":{"path":"/downloads","size-bytes":4398046511104,"total_size":8796093022208},"tag":%d}`, env.Tag)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	info, err := client.FreeSpace(context.Background(), "/downloads")
	if err != nil {
		t.Fatalf("Failed to get free space: %v", err)
	}

	if info.Path != "/downloads" {
		t.Errorf("Expected path /downloads, got %q", info.Path)
	}
	if info.SizeBytes != 4398046511104 {
		t.Errorf("Expected size-bytes to decode, got %d", info.SizeBytes)
	}
	if info.TotalSize != 8796093022208 {
		t.Errorf("Expected total_size to decode, got %d", info.TotalSize)
	}
}

func TestTestPort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env := decodeWireEnvelope(t, r)
		if env.Method != "port-test" {
			t.Errorf("Expected port-test, got %q", env.Method)
		}
		fmt.Fprintf(w, `{"result":"success","arguments":{"port-is-open":true},"tag":%d}`, env.Tag)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	open, err := client.TestPort(context.Background())
	if err != nil {
		t.Fatalf("Failed to test port: %v", err)
	}
	if !open {
		t.Error("Expected the port to be reported open")
	}
}

func TestUpdateBlocklist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env := decodeWireEnvelope(t, r)
		if env.Method != "blocklist-update" {
			t.Errorf("Expected blocklist-update, got %q", env.Method)
		}
		fmt.Fprintf(w, `{"result":"success","arguments":{"blocklist-size":393003},"tag":%d}`, env.Tag)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	size, err := client.UpdateBlocklist(context.Background())
	if err != nil {
		t.Fatalf("Failed to update blocklist: %v", err)
	}
	if size != 393003 {
		t.Errorf("Expected 393003 rules, got %d", size)
	}
}
