package engine

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"google.golang.org/api/youtube/v3"
)

// Pure mapping from raw API resources to normalized Results. Every
// formatter tolerates missing sub-structures: malformed input degrades to
// the documented defaults and never errors.

const (
	defaultTitle       = "No title"
	defaultDescription = "No description"
	defaultChannel     = "Unknown Channel"
)

var durationRE = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatVideo maps one search hit plus its optional detail record into a
// normalized video result.
func FormatVideo(hit *youtube.SearchResult, detail *youtube.Video) Result {
	r := Result{Type: ContentVideo, Title: defaultTitle, Description: defaultDescription, ChannelTitle: defaultChannel}
	if hit != nil && hit.Id != nil {
		r.ID = hit.Id.VideoId
	}
	if hit != nil && hit.Snippet != nil {
		fillSearchSnippet(&r, hit.Snippet)
	}
	if r.ID != "" {
		r.URL = "https://www.youtube.com/watch?v=" + r.ID
	}
	r.PublishedDate = FormatPublishedDate(r.PublishedAt)
	fillVideoDetail(&r, detail)
	return r
}

// FormatVideoDetail builds a normalized result from a detail record alone,
// for direct ID lookups that never went through search.
func FormatVideoDetail(detail *youtube.Video) Result {
	r := Result{Type: ContentVideo, Title: defaultTitle, Description: defaultDescription, ChannelTitle: defaultChannel}
	if detail == nil {
		r.PublishedDate = FormatPublishedDate("")
		return r
	}
	r.ID = detail.Id
	if s := detail.Snippet; s != nil {
		if s.Title != "" {
			r.Title = s.Title
		}
		if s.Description != "" {
			r.Description = s.Description
		}
		if s.ChannelTitle != "" {
			r.ChannelTitle = s.ChannelTitle
		}
		r.ChannelID = s.ChannelId
		r.PublishedAt = s.PublishedAt
		r.ThumbnailURL = bestThumbnail(s.Thumbnails)
	}
	if r.ID != "" {
		r.URL = "https://www.youtube.com/watch?v=" + r.ID
	}
	r.PublishedDate = FormatPublishedDate(r.PublishedAt)
	fillVideoDetail(&r, detail)
	return r
}

// fillVideoDetail merges the detail-only video fields. The search snippet
// cannot carry a category in the typed API, so the category always comes
// from the detail snippet here.
func fillVideoDetail(r *Result, detail *youtube.Video) {
	if detail == nil {
		return
	}
	if r.CategoryID == "" && detail.Snippet != nil && detail.Snippet.CategoryId != "" {
		r.CategoryID = detail.Snippet.CategoryId
		r.CategoryName = CategoryName(r.CategoryID)
	}
	if cd := detail.ContentDetails; cd != nil {
		r.Duration = cd.Duration
		r.DurationReadable = ParseDuration(cd.Duration)
	}
	if st := detail.Statistics; st != nil {
		r.ViewCount = ptr(st.ViewCount)
		r.ViewCountReadable = FormatCount(st.ViewCount)
		r.LikeCount = ptr(st.LikeCount)
		r.CommentCount = ptr(st.CommentCount)
	}
	if st := detail.Status; st != nil {
		r.MadeForKids = ptr(st.MadeForKids)
		r.PrivacyStatus = st.PrivacyStatus
	}
	if td := detail.TopicDetails; td != nil {
		r.TopicIDs = td.RelevantTopicIds
	}
	r.TopicNames = resolveTopicNames(r, detail)
}

// resolveTopicNames picks topic names in preference order: mapped
// relevantTopicIds, then legacy topic-category URLs, then a single topic
// inferred from the category name.
func resolveTopicNames(r *Result, detail *youtube.Video) []string {
	if len(r.TopicIDs) > 0 {
		names := make([]string, 0, len(r.TopicIDs))
		for _, id := range r.TopicIDs {
			names = append(names, TopicName(id))
		}
		return names
	}
	if detail.TopicDetails != nil && len(detail.TopicDetails.TopicCategories) > 0 {
		names := make([]string, 0, len(detail.TopicDetails.TopicCategories))
		for _, u := range detail.TopicDetails.TopicCategories {
			names = append(names, topicNameFromURL(u))
		}
		return names
	}
	if r.CategoryName != "" {
		return []string{r.CategoryName}
	}
	return nil
}

// topicNameFromURL extracts a readable name from a Wikipedia topic URL,
// e.g. https://en.wikipedia.org/wiki/Rock_music -> "Rock music".
func topicNameFromURL(u string) string {
	seg := u
	if i := strings.LastIndex(u, "/"); i >= 0 {
		seg = u[i+1:]
	}
	if seg == "" {
		return u
	}
	return strings.ReplaceAll(seg, "_", " ")
}

// FormatChannel maps one search hit plus its optional detail record into a
// normalized channel result.
func FormatChannel(hit *youtube.SearchResult, detail *youtube.Channel) Result {
	r := Result{Type: ContentChannel, Title: defaultTitle, Description: defaultDescription}
	if hit != nil && hit.Id != nil {
		r.ID = hit.Id.ChannelId
	}
	if hit != nil && hit.Snippet != nil {
		s := hit.Snippet
		if s.Title != "" {
			r.Title = s.Title
		}
		if s.Description != "" {
			r.Description = s.Description
		}
		r.PublishedAt = s.PublishedAt
		r.ThumbnailURL = bestThumbnail(s.Thumbnails)
	}
	if r.ID != "" {
		r.URL = "https://www.youtube.com/channel/" + r.ID
	}
	r.PublishedDate = FormatPublishedDate(r.PublishedAt)
	if detail != nil {
		if st := detail.Statistics; st != nil {
			r.SubscriberCount = ptr(st.SubscriberCount)
			r.SubscriberCountReadable = FormatCount(st.SubscriberCount)
			r.VideoCount = ptr(st.VideoCount)
			r.ViewCount = ptr(st.ViewCount)
			r.ViewCountReadable = FormatCount(st.ViewCount)
		}
		if bs := detail.BrandingSettings; bs != nil && bs.Channel != nil {
			r.Keywords = bs.Channel.Keywords
		}
	}
	return r
}

// FormatPlaylist maps one search hit plus its optional detail record into
// a normalized playlist result.
func FormatPlaylist(hit *youtube.SearchResult, detail *youtube.Playlist) Result {
	r := Result{Type: ContentPlaylist, Title: defaultTitle, Description: defaultDescription, ChannelTitle: defaultChannel}
	if hit != nil && hit.Id != nil {
		r.ID = hit.Id.PlaylistId
	}
	if hit != nil && hit.Snippet != nil {
		fillSearchSnippet(&r, hit.Snippet)
	}
	if r.ID != "" {
		r.URL = "https://www.youtube.com/playlist?list=" + r.ID
	}
	r.PublishedDate = FormatPublishedDate(r.PublishedAt)
	if detail != nil {
		if cd := detail.ContentDetails; cd != nil {
			r.ItemCount = ptr(cd.ItemCount)
		}
		if st := detail.Status; st != nil {
			r.PrivacyStatus = st.PrivacyStatus
		}
	}
	return r
}

func fillSearchSnippet(r *Result, s *youtube.SearchResultSnippet) {
	if s.Title != "" {
		r.Title = s.Title
	}
	if s.Description != "" {
		r.Description = s.Description
	}
	if s.ChannelTitle != "" {
		r.ChannelTitle = s.ChannelTitle
	}
	r.ChannelID = s.ChannelId
	r.PublishedAt = s.PublishedAt
	r.ThumbnailURL = bestThumbnail(s.Thumbnails)
}

// bestThumbnail returns the highest-quality thumbnail URL available.
func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*youtube.Thumbnail{t.Maxres, t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}

// ParseDuration renders an ISO 8601 duration token (PT#H#M#S, any subset)
// as MM:SS, or HH:MM:SS when hours are present. An empty token is "Unknown".
func ParseDuration(duration string) string {
	if duration == "" {
		return "Unknown"
	}
	var h, m, s int
	if match := durationRE.FindStringSubmatch(duration); match != nil {
		h = atoi(match[1])
		m = atoi(match[2])
		s = atoi(match[3])
	}
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// FormatCount renders large counts compactly: 1.5K, 2.3M, 1.0B.
func FormatCount(count uint64) string {
	switch {
	case count >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(count)/1_000_000_000)
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK", float64(count)/1_000)
	default:
		return fmt.Sprintf("%d", count)
	}
}

// FormatPublishedDate renders an RFC 3339 timestamp as a readable date.
// Unparsable input falls back to its first 10 characters ("2023-07-04"),
// empty input to "Unknown".
func FormatPublishedDate(publishedAt string) string {
	if publishedAt == "" {
		return "Unknown"
	}
	t, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		if len(publishedAt) > 10 {
			return publishedAt[:10]
		}
		return publishedAt
	}
	return t.Format("January 02, 2006")
}

func ptr[T any](v T) *T { return &v }
