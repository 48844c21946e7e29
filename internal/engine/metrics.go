package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests         atomic.Int64
	VideoDetailRequests    atomic.Int64
	ChannelDetailRequests  atomic.Int64
	PlaylistDetailRequests atomic.Int64
	RemoteErrors           atomic.Int64
	PostFilterDrops        atomic.Int64
	DuplicatesDropped      atomic.Int64
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"search_requests":          metrics.SearchRequests.Load(),
		"video_detail_requests":    metrics.VideoDetailRequests.Load(),
		"channel_detail_requests":  metrics.ChannelDetailRequests.Load(),
		"playlist_detail_requests": metrics.PlaylistDetailRequests.Load(),
		"remote_errors":            metrics.RemoteErrors.Load(),
		"post_filter_drops":        metrics.PostFilterDrops.Load(),
		"duplicates_dropped":       metrics.DuplicatesDropped.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	keys := []string{
		"search_requests",
		"video_detail_requests", "channel_detail_requests", "playlist_detail_requests",
		"remote_errors", "post_filter_drops", "duplicates_dropped",
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the youtube sub-package.
func IncrSearch()          { metrics.SearchRequests.Add(1) }
func IncrVideoDetails()    { metrics.VideoDetailRequests.Add(1) }
func IncrChannelDetails()  { metrics.ChannelDetailRequests.Add(1) }
func IncrPlaylistDetails() { metrics.PlaylistDetailRequests.Add(1) }
func IncrRemoteError()     { metrics.RemoteErrors.Add(1) }
