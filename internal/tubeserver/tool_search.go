package tubeserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

func registerContentSearch(server *mcp.Server, searcher *engine.Searcher) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "content_search",
		Description: "Search YouTube for videos, channels, and playlists. Returns structured JSON with normalized results (title, URL, duration, counts, category, topics). Supports category fan-out, topic and made-for-kids post-filters, duration/definition buckets, and date ranges. Partial source failures are reported in `issues` instead of failing the search.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.ContentSearchInput) (*mcp.CallToolResult, engine.ContentSearchOutput, error) {
		if input.Query == "" {
			return nil, engine.ContentSearchOutput{}, errors.New("query is required")
		}
		request, err := buildRequest(input)
		if err != nil {
			return nil, engine.ContentSearchOutput{}, err
		}

		set, issues, err := searcher.Search(ctx, request)
		if err != nil {
			return nil, engine.ContentSearchOutput{}, err
		}

		slog.Info("content_search done",
			slog.String("query", input.Query),
			slog.Int("videos", len(set.Videos)),
			slog.Int("channels", len(set.Channels)),
			slog.Int("playlists", len(set.Playlists)),
			slog.Int("issues", len(issues)),
		)
		return nil, engine.ContentSearchOutput{
			Query:     input.Query,
			Videos:    set.Videos,
			Channels:  set.Channels,
			Playlists: set.Playlists,
			Issues:    issues,
		}, nil
	})
}

// buildRequest validates tool input and maps it onto an engine request.
func buildRequest(input engine.ContentSearchInput) (engine.Request, error) {
	var types []engine.ContentType
	for _, t := range input.ContentTypes {
		switch ct := engine.ContentType(strings.ToLower(strings.TrimSpace(t))); ct {
		case engine.ContentVideo, engine.ContentChannel, engine.ContentPlaylist:
			types = append(types, ct)
		default:
			return engine.Request{}, fmt.Errorf("unknown content type %q (want video, channel, or playlist)", t)
		}
	}

	kids := strings.ToLower(input.KidsFilter)
	switch kids {
	case "", "any", "yes", "no":
	default:
		return engine.Request{}, fmt.Errorf("unknown kids_filter %q (want any, yes, or no)", input.KidsFilter)
	}

	return engine.Request{
		Query:           input.Query,
		ContentTypes:    types,
		MaxResults:      int64(input.MaxResults),
		Order:           input.Order,
		SafeSearch:      input.SafeSearch,
		CategoryIDs:     input.CategoryIDs,
		TopicID:         input.TopicID,
		VideoDuration:   input.VideoDuration,
		VideoDefinition: input.VideoDefinition,
		KidsFilter:      kids,
		PublishedAfter:  input.PublishedAfter,
		PublishedBefore: input.PublishedBefore,
		RegionCode:      input.RegionCode,
		Language:        input.Language,
	}, nil
}
