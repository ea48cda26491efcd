// Package api is the entry point for serverless hosts that invoke an exported
// handler per request instead of running `blog serve`.
package api

import (
	"net/http"

	"github.com/goliatone/go-blog"
)

// Handler serves every blog route from a process-wide module built on first use.
func Handler(w http.ResponseWriter, r *http.Request) {
	blog.DefaultHandler(w, r)
}
