// Package tubeserver exposes the search engine as MCP tools:
// content_search, video_details, list_filters.
package tubeserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/engine/youtube"
)

// RegisterTools registers all content search tools on the given MCP server.
func RegisterTools(server *mcp.Server, searcher *engine.Searcher, client *youtube.Client) {
	registerContentSearch(server, searcher)
	registerVideoDetails(server, client)
	registerListFilters(server)
}
