package tubeserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

type listFiltersInput struct{}

func registerListFilters(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_filters",
		Description: "List the static filter catalog: video category IDs, Knowledge Graph topic IDs, sort orders, safe-search levels, duration buckets, definition levels, and kids-filter values accepted by content_search.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input listFiltersInput) (*mcp.CallToolResult, engine.ListFiltersOutput, error) {
		return nil, engine.ListFiltersOutput{
			Categories:  engine.Categories,
			Topics:      engine.Topics,
			Orders:      engine.Orders,
			SafeSearch:  engine.SafeSearchLevels,
			Durations:   engine.Durations,
			Definitions: engine.Definitions,
			KidsFilters: engine.KidsFilters,
		}, nil
	})
}
