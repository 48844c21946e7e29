// Package youtube wraps the Data API v3 client behind the four remote
// operations the engine needs: search plus batched video, channel and
// playlist detail lookups.
package youtube

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

var (
	searchParts   = []string{"snippet"}
	videoParts    = []string{"snippet", "contentDetails", "statistics", "status", "topicDetails"}
	channelParts  = []string{"snippet", "statistics", "brandingSettings"}
	playlistParts = []string{"snippet", "contentDetails", "status"}
)

// Client issues Data API calls through a shared QPS limiter. The service
// handle is swapped atomically on Configure, so a reconfiguration is never
// observable half-done.
type Client struct {
	svc     atomic.Pointer[yt.Service]
	limiter *rate.Limiter
}

// NewClient returns an unconfigured client. The limiter guards the API
// quota across all operations.
func NewClient() *Client {
	qps := engine.Cfg.SearchQPS
	if qps <= 0 {
		qps = 8
	}
	burst := engine.Cfg.SearchBurst
	if burst <= 0 {
		burst = 4
	}
	return &Client{limiter: rate.NewLimiter(rate.Limit(qps), burst)}
}

// Configure (re)builds the underlying service for the given API key and
// reports readiness. An empty key or a failed construction leaves the
// client unready; no error escapes.
func (c *Client) Configure(ctx context.Context, apiKey string) bool {
	if apiKey == "" {
		c.svc.Store(nil)
		return false
	}
	svc, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		slog.Warn("youtube service init failed", slog.Any("error", err))
		c.svc.Store(nil)
		return false
	}
	c.svc.Store(svc)
	return true
}

// Ready reports whether the client holds a usable service.
func (c *Client) Ready() bool {
	return c.svc.Load() != nil
}

// Search runs one search.list call. Unset optional filters are omitted
// from the request entirely: the API distinguishes absent from empty.
func (c *Client) Search(ctx context.Context, query string, contentType engine.ContentType, f engine.Filters) ([]*yt.SearchResult, error) {
	svc := c.svc.Load()
	if svc == nil {
		return nil, engine.ErrNotReady
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	engine.IncrSearch()

	call := svc.Search.List(searchParts).
		Q(query).
		Type(string(contentType)).
		Context(ctx)
	if f.MaxResults > 0 {
		call = call.MaxResults(f.MaxResults)
	}
	if f.Order != "" {
		call = call.Order(f.Order)
	}
	if f.SafeSearch != "" {
		call = call.SafeSearch(f.SafeSearch)
	}
	if f.VideoDuration != "" {
		call = call.VideoDuration(f.VideoDuration)
	}
	if f.VideoDefinition != "" {
		call = call.VideoDefinition(f.VideoDefinition)
	}
	if f.CategoryID != "" {
		call = call.VideoCategoryId(f.CategoryID)
	}
	if f.PublishedAfter != "" {
		call = call.PublishedAfter(f.PublishedAfter)
	}
	if f.PublishedBefore != "" {
		call = call.PublishedBefore(f.PublishedBefore)
	}
	if f.RegionCode != "" {
		call = call.RegionCode(f.RegionCode)
	}
	if f.RelevanceLanguage != "" {
		call = call.RelevanceLanguage(f.RelevanceLanguage)
	}

	resp, err := call.Do()
	if err != nil {
		engine.IncrRemoteError()
		return nil, engine.WrapAPIError(err)
	}
	return resp.Items, nil
}

// VideoDetails fetches detail records for a batch of video IDs in a single
// videos.list call. Unknown IDs are silently absent from the response.
func (c *Client) VideoDetails(ctx context.Context, ids []string) ([]*yt.Video, error) {
	svc := c.svc.Load()
	if svc == nil {
		return nil, engine.ErrNotReady
	}
	if len(ids) == 0 {
		return nil, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	engine.IncrVideoDetails()

	resp, err := svc.Videos.List(videoParts).Id(ids...).Context(ctx).Do()
	if err != nil {
		engine.IncrRemoteError()
		return nil, engine.WrapAPIError(err)
	}
	return resp.Items, nil
}

// ChannelDetails fetches detail records for a batch of channel IDs.
func (c *Client) ChannelDetails(ctx context.Context, ids []string) ([]*yt.Channel, error) {
	svc := c.svc.Load()
	if svc == nil {
		return nil, engine.ErrNotReady
	}
	if len(ids) == 0 {
		return nil, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	engine.IncrChannelDetails()

	resp, err := svc.Channels.List(channelParts).Id(ids...).Context(ctx).Do()
	if err != nil {
		engine.IncrRemoteError()
		return nil, engine.WrapAPIError(err)
	}
	return resp.Items, nil
}

// PlaylistDetails fetches detail records for a batch of playlist IDs.
func (c *Client) PlaylistDetails(ctx context.Context, ids []string) ([]*yt.Playlist, error) {
	svc := c.svc.Load()
	if svc == nil {
		return nil, engine.ErrNotReady
	}
	if len(ids) == 0 {
		return nil, nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	engine.IncrPlaylistDetails()

	resp, err := svc.Playlists.List(playlistParts).Id(ids...).Context(ctx).Do()
	if err != nil {
		engine.IncrRemoteError()
		return nil, engine.WrapAPIError(err)
	}
	return resp.Items, nil
}
