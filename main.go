// go_tube — YouTube content search MCP server.
//
// Exposes three MCP tools: content_search, video_details, list_filters.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/engine/youtube"
	"github.com/anatolykoptev/go_tube/internal/tubeserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	engine.Init(engine.Config{
		APIKey:            env.Str("YOUTUBE_API_KEY", ""),
		APIKeyFallback:    env.Str("YOUTUBE_API_KEY_FALLBACK", ""),
		SearchQPS:         env.Float("YOUTUBE_SEARCH_QPS", 8),
		SearchBurst:       env.Int("YOUTUBE_SEARCH_BURST", 4),
		DefaultMaxResults: int64(env.Int("DEFAULT_MAX_RESULTS", 10)),
	})

	client := youtube.NewClient()
	configureClient(client)
	searcher := engine.NewSearcher(client)

	slog.Info("starting go_tube",
		slog.String("port", mcpPort),
		slog.Bool("configured", client.Ready()),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_tube",
		Version: version,
	}, nil)

	tubeserver.RegisterTools(server, searcher, client)
	slog.Info("tools registered", slog.Int("count", 3))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_tube",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

// configureClient tries the primary key, then the fallback. The server
// still starts unconfigured; searches then fail with NotReady until a key
// is supplied.
func configureClient(client *youtube.Client) {
	ctx := context.Background()
	for _, key := range []string{engine.Cfg.APIKey, engine.Cfg.APIKeyFallback} {
		if key == "" {
			continue
		}
		if client.Configure(ctx, key) {
			return
		}
	}
	slog.Warn("no usable YouTube API key, content_search will return not-ready")
}
