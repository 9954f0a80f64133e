/*
Package transmission provides a high-level, production-ready client for the
Transmission RPC protocol.

Highlights:
  - Transparent session token (CSRF) negotiation, including the 409 replay
  - HTTP Basic credentials sent per request, and only when configured
  - Wire keys re-cased to camel everywhere ("download-dir" -> "downloadDir")
  - Clean, well-typed models and argument shapes for every daemon method

Quick start:

	import (
	    "context"
	    "log"

	    transmission "github.com/jfxdev/go-transmission"
	)

	func main() {
	    client, err := transmission.New(transmission.Config{
	        URL:      "http://localhost:9091",
	        Username: "admin",
	        Password: "password",
	    })
	    if err != nil {
	        log.Fatal(err)
	    }

	    // List all torrents
	    _, _ = client.GetTorrents(context.Background(), transmission.TorrentGetRequest{})
	}
*/
package transmission
