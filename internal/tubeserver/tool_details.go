package tubeserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/engine/youtube"
)

func registerVideoDetails(server *mcp.Server, client *youtube.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "video_details",
		Description: "Look up full metadata for known video IDs: duration, view/like/comment counts, category, topics, made-for-kids status. All IDs are fetched in one batched API call; unknown IDs are omitted from the result.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.VideoDetailsInput) (*mcp.CallToolResult, engine.VideoDetailsOutput, error) {
		if len(input.IDs) == 0 {
			return nil, engine.VideoDetailsOutput{}, errors.New("ids is required")
		}

		recs, err := client.VideoDetails(ctx, input.IDs)
		if err != nil {
			return nil, engine.VideoDetailsOutput{}, err
		}

		out := engine.VideoDetailsOutput{Videos: make([]engine.Result, 0, len(recs))}
		for _, rec := range recs {
			out.Videos = append(out.Videos, engine.FormatVideoDetail(rec))
		}
		return nil, out, nil
	})
}
