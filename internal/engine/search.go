package engine

import (
	"context"
	"log/slog"
	"sync"

	"google.golang.org/api/youtube/v3"
)

// ContentClient is the remote surface the orchestrator drives. Implemented
// by youtube.Client; faked in tests.
type ContentClient interface {
	Ready() bool
	Search(ctx context.Context, query string, contentType ContentType, f Filters) ([]*youtube.SearchResult, error)
	VideoDetails(ctx context.Context, ids []string) ([]*youtube.Video, error)
	ChannelDetails(ctx context.Context, ids []string) ([]*youtube.Channel, error)
	PlaylistDetails(ctx context.Context, ids []string) ([]*youtube.Playlist, error)
}

// Searcher coordinates fan-out search, batched enrichment, post-filtering
// and deduplication across content kinds.
type Searcher struct {
	client ContentClient
}

func NewSearcher(client ContentClient) *Searcher {
	return &Searcher{client: client}
}

// Search runs one orchestration pass. It fails only when the client is not
// configured; any failing fan-out or enrichment unit is skipped, reported
// as an Issue, and never aborts sibling units.
func (s *Searcher) Search(ctx context.Context, req Request) (*ResultSet, []Issue, error) {
	if !s.client.Ready() {
		return nil, nil, ErrNotReady
	}
	req = withDefaults(req)

	set := &ResultSet{}
	var issues []Issue
	for _, ct := range req.ContentTypes {
		switch ct {
		case ContentVideo:
			set.Videos = s.searchVideos(ctx, req, &issues)
		case ContentChannel:
			set.Channels = s.searchFlat(ctx, req, ContentChannel, &issues)
		case ContentPlaylist:
			set.Playlists = s.searchFlat(ctx, req, ContentPlaylist, &issues)
		default:
			slog.Warn("search: unknown content type skipped", slog.String("type", string(ct)))
		}
	}
	return set, issues, nil
}

// withDefaults clamps the request into its documented bounds.
func withDefaults(req Request) Request {
	if len(req.ContentTypes) == 0 {
		req.ContentTypes = []ContentType{ContentVideo}
	}
	if req.MaxResults <= 0 {
		req.MaxResults = Cfg.DefaultMaxResults
		if req.MaxResults <= 0 {
			req.MaxResults = 10
		}
	}
	if req.MaxResults > 50 {
		req.MaxResults = 50
	}
	return req
}

// searchVideos fans out one search call per requested category (or a
// single uncategorized call), batches all detail lookups into one
// videos.list call, post-filters, and merges with first-wins dedup.
func (s *Searcher) searchVideos(ctx context.Context, req Request, issues *[]Issue) []Result {
	fanout := req.CategoryIDs
	if len(fanout) == 0 {
		fanout = []string{""}
	}

	// Fan-out calls run concurrently; hitsByCat keeps category-list order
	// regardless of completion order.
	hitsByCat := make([][]*youtube.SearchResult, len(fanout))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i, cat := range fanout {
		wg.Add(1)
		go func(i int, cat string) {
			defer wg.Done()
			hits, err := s.client.Search(ctx, req.Query, ContentVideo, req.filters(ContentVideo, cat))
			if err != nil {
				slog.Warn("video search: fan-out unit failed",
					slog.String("category", cat), slog.Any("error", err))
				mu.Lock()
				*issues = append(*issues, Issue{ContentType: ContentVideo, CategoryID: cat, Stage: "search", Message: err.Error()})
				mu.Unlock()
				return
			}
			hitsByCat[i] = hits
		}(i, cat)
	}
	wg.Wait()

	// One batched detail call for every ID the fan-out surfaced. A failed
	// batch degrades all videos to detail-less formatting.
	var ids []string
	for _, hits := range hitsByCat {
		for _, h := range hits {
			if h.Id != nil && h.Id.VideoId != "" {
				ids = append(ids, h.Id.VideoId)
			}
		}
	}
	details := make(map[string]*youtube.Video, len(ids))
	if len(ids) > 0 {
		recs, err := s.client.VideoDetails(ctx, ids)
		if err != nil {
			slog.Warn("video search: detail batch failed", slog.Int("ids", len(ids)), slog.Any("error", err))
			*issues = append(*issues, Issue{ContentType: ContentVideo, Stage: "details", Message: err.Error()})
		}
		for _, rec := range recs {
			details[rec.Id] = rec
		}
	}

	seen := make(map[string]bool)
	var out []Result
	for _, hits := range hitsByCat {
		for _, h := range hits {
			var detail *youtube.Video
			if h.Id != nil {
				detail = details[h.Id.VideoId]
			}
			r := FormatVideo(h, detail)
			if !MatchesTopic(&r, req.TopicID) || !MatchesKids(&r, req.KidsFilter) {
				metrics.PostFilterDrops.Add(1)
				continue
			}
			if r.ID != "" {
				if seen[r.ID] {
					metrics.DuplicatesDropped.Add(1)
					continue
				}
				seen[r.ID] = true
			}
			out = append(out, r)
			if int64(len(out)) >= req.MaxResults {
				return out
			}
		}
	}
	return out
}

// searchFlat handles channels and playlists: a single search call (the
// category list has no meaning for these kinds and is ignored), then one
// detail lookup per result. A failed lookup degrades that result only.
func (s *Searcher) searchFlat(ctx context.Context, req Request, ct ContentType, issues *[]Issue) []Result {
	hits, err := s.client.Search(ctx, req.Query, ct, req.filters(ct, ""))
	if err != nil {
		slog.Warn("search failed", slog.String("type", string(ct)), slog.Any("error", err))
		*issues = append(*issues, Issue{ContentType: ct, Stage: "search", Message: err.Error()})
		return nil
	}
	if int64(len(hits)) > req.MaxResults {
		hits = hits[:req.MaxResults]
	}

	results := make([]Result, len(hits))
	var wg sync.WaitGroup
	for i, h := range hits {
		wg.Add(1)
		go func(i int, h *youtube.SearchResult) {
			defer wg.Done()
			switch ct {
			case ContentChannel:
				results[i] = FormatChannel(h, s.channelDetail(ctx, h))
			case ContentPlaylist:
				results[i] = FormatPlaylist(h, s.playlistDetail(ctx, h))
			}
		}(i, h)
	}
	wg.Wait()
	return results
}

func (s *Searcher) channelDetail(ctx context.Context, h *youtube.SearchResult) *youtube.Channel {
	if h.Id == nil || h.Id.ChannelId == "" {
		return nil
	}
	recs, err := s.client.ChannelDetails(ctx, []string{h.Id.ChannelId})
	if err != nil {
		slog.Warn("channel detail lookup failed", slog.String("id", h.Id.ChannelId), slog.Any("error", err))
		return nil
	}
	if len(recs) == 0 {
		return nil
	}
	return recs[0]
}

func (s *Searcher) playlistDetail(ctx context.Context, h *youtube.SearchResult) *youtube.Playlist {
	if h.Id == nil || h.Id.PlaylistId == "" {
		return nil
	}
	recs, err := s.client.PlaylistDetails(ctx, []string{h.Id.PlaylistId})
	if err != nil {
		slog.Warn("playlist detail lookup failed", slog.String("id", h.Id.PlaylistId), slog.Any("error", err))
		return nil
	}
	if len(recs) == 0 {
		return nil
	}
	return recs[0]
}
