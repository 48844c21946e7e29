package engine

import (
	"reflect"
	"testing"

	"google.golang.org/api/youtube/v3"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PT1H2M3S", "01:02:03"},
		{"PT4M13S", "04:13"},
		{"PT2M", "02:00"},
		{"PT45S", "00:45"},
		{"PT1H", "01:00:00"},
		{"PT10H0M5S", "10:00:05"},
		{"", "Unknown"},
		{"garbage", "00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseDuration(tt.in); got != tt.want {
				t.Errorf("ParseDuration(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{2_300_000, "2.3M"},
		{1_000_000_000, "1.0B"},
		{12_400_000_000, "12.4B"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.in); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPublishedDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"rfc3339", "2023-07-04T10:30:00Z", "July 04, 2023"},
		{"unparsable long", "2023-07-04 not a timestamp", "2023-07-04"},
		{"unparsable short", "soon", "soon"},
		{"empty", "", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPublishedDate(tt.in); got != tt.want {
				t.Errorf("FormatPublishedDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func testVideoHit(id, title string) *youtube.SearchResult {
	return &youtube.SearchResult{
		Id: &youtube.ResourceId{VideoId: id},
		Snippet: &youtube.SearchResultSnippet{
			Title:        title,
			Description:  "a description",
			ChannelTitle: "Some Channel",
			ChannelId:    "UC123",
			PublishedAt:  "2023-07-04T10:30:00Z",
			Thumbnails: &youtube.ThumbnailDetails{
				Medium: &youtube.Thumbnail{Url: "https://i.ytimg.com/vi/" + id + "/mqdefault.jpg"},
			},
		},
	}
}

func testVideoDetail(id string) *youtube.Video {
	return &youtube.Video{
		Id:             id,
		Snippet:        &youtube.VideoSnippet{CategoryId: "10"},
		ContentDetails: &youtube.VideoContentDetails{Duration: "PT4M13S"},
		Statistics:     &youtube.VideoStatistics{ViewCount: 1500, LikeCount: 120, CommentCount: 7},
		Status:         &youtube.VideoStatus{MadeForKids: false, PrivacyStatus: "public"},
		TopicDetails:   &youtube.VideoTopicDetails{RelevantTopicIds: []string{"/m/04rlf", "/m/064t9"}},
	}
}

func TestFormatVideo(t *testing.T) {
	r := FormatVideo(testVideoHit("abc123", "My Video"), testVideoDetail("abc123"))

	if r.Type != ContentVideo {
		t.Errorf("Type = %q", r.Type)
	}
	if r.ID != "abc123" {
		t.Errorf("ID = %q", r.ID)
	}
	if r.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("URL = %q", r.URL)
	}
	if r.Title != "My Video" || r.ChannelTitle != "Some Channel" {
		t.Errorf("snippet fields: title=%q channel=%q", r.Title, r.ChannelTitle)
	}
	if r.PublishedDate != "July 04, 2023" {
		t.Errorf("PublishedDate = %q", r.PublishedDate)
	}
	if r.CategoryID != "10" || r.CategoryName != "Music" {
		t.Errorf("category: id=%q name=%q", r.CategoryID, r.CategoryName)
	}
	if r.Duration != "PT4M13S" || r.DurationReadable != "04:13" {
		t.Errorf("duration: %q / %q", r.Duration, r.DurationReadable)
	}
	if r.ViewCount == nil || *r.ViewCount != 1500 || r.ViewCountReadable != "1.5K" {
		t.Errorf("view count: %v / %q", r.ViewCount, r.ViewCountReadable)
	}
	if r.MadeForKids == nil || *r.MadeForKids {
		t.Errorf("MadeForKids = %v", r.MadeForKids)
	}
	if !reflect.DeepEqual(r.TopicIDs, []string{"/m/04rlf", "/m/064t9"}) {
		t.Errorf("TopicIDs = %v", r.TopicIDs)
	}
	if !reflect.DeepEqual(r.TopicNames, []string{"Music", "Pop music"}) {
		t.Errorf("TopicNames = %v", r.TopicNames)
	}
}

func TestFormatVideoIdempotent(t *testing.T) {
	hit, detail := testVideoHit("abc123", "My Video"), testVideoDetail("abc123")
	a := FormatVideo(hit, detail)
	b := FormatVideo(hit, detail)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("formatting is not idempotent:\n%+v\n%+v", a, b)
	}
}

func TestFormatVideoNoDetail(t *testing.T) {
	r := FormatVideo(testVideoHit("abc123", "My Video"), nil)

	if r.ID != "abc123" || r.Title != "My Video" {
		t.Errorf("snippet fields missing: %+v", r)
	}
	if r.Duration != "" || r.DurationReadable != "" {
		t.Errorf("duration should be absent without detail: %q / %q", r.Duration, r.DurationReadable)
	}
	if r.ViewCount != nil || r.MadeForKids != nil {
		t.Errorf("detail-only fields should be nil: view=%v kids=%v", r.ViewCount, r.MadeForKids)
	}
	if len(r.TopicIDs) != 0 || len(r.TopicNames) != 0 {
		t.Errorf("topics should be absent: %v / %v", r.TopicIDs, r.TopicNames)
	}
}

func TestFormatVideoMalformed(t *testing.T) {
	t.Run("empty snippet", func(t *testing.T) {
		r := FormatVideo(&youtube.SearchResult{
			Id:      &youtube.ResourceId{VideoId: "x1"},
			Snippet: &youtube.SearchResultSnippet{},
		}, nil)
		if r.Title != "No title" || r.Description != "No description" || r.ChannelTitle != "Unknown Channel" {
			t.Errorf("defaults not applied: %+v", r)
		}
		if r.PublishedDate != "Unknown" {
			t.Errorf("PublishedDate = %q", r.PublishedDate)
		}
	})
	t.Run("no id", func(t *testing.T) {
		r := FormatVideo(&youtube.SearchResult{}, nil)
		if r.ID != "" || r.URL != "" {
			t.Errorf("expected empty id and url, got %q %q", r.ID, r.URL)
		}
	})
	t.Run("nil hit", func(t *testing.T) {
		r := FormatVideo(nil, nil)
		if r.Type != ContentVideo || r.Title != "No title" {
			t.Errorf("nil hit: %+v", r)
		}
	})
}

func TestFormatVideoTopicFallbacks(t *testing.T) {
	t.Run("legacy topic urls", func(t *testing.T) {
		detail := testVideoDetail("x1")
		detail.TopicDetails = &youtube.VideoTopicDetails{
			TopicCategories: []string{"https://en.wikipedia.org/wiki/Rock_music", "https://en.wikipedia.org/wiki/Pop_music"},
		}
		r := FormatVideo(testVideoHit("x1", "t"), detail)
		if !reflect.DeepEqual(r.TopicNames, []string{"Rock music", "Pop music"}) {
			t.Errorf("TopicNames = %v", r.TopicNames)
		}
	})
	t.Run("inferred from category", func(t *testing.T) {
		detail := testVideoDetail("x1")
		detail.TopicDetails = nil
		r := FormatVideo(testVideoHit("x1", "t"), detail)
		if !reflect.DeepEqual(r.TopicNames, []string{"Music"}) {
			t.Errorf("TopicNames = %v", r.TopicNames)
		}
	})
}

func TestFormatVideoDetailOnly(t *testing.T) {
	detail := testVideoDetail("abc123")
	detail.Snippet.Title = "Titled"
	detail.Snippet.ChannelTitle = "Chan"
	detail.Snippet.PublishedAt = "2022-01-15T00:00:00Z"

	r := FormatVideoDetail(detail)
	if r.ID != "abc123" || r.Title != "Titled" || r.ChannelTitle != "Chan" {
		t.Errorf("detail-only format: %+v", r)
	}
	if r.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("URL = %q", r.URL)
	}
	if r.DurationReadable != "04:13" {
		t.Errorf("DurationReadable = %q", r.DurationReadable)
	}
	if r.PublishedDate != "January 15, 2022" {
		t.Errorf("PublishedDate = %q", r.PublishedDate)
	}
}

func TestFormatChannel(t *testing.T) {
	hit := &youtube.SearchResult{
		Id: &youtube.ResourceId{ChannelId: "UC999"},
		Snippet: &youtube.SearchResultSnippet{
			Title:       "A Channel",
			Description: "about things",
			PublishedAt: "2020-03-01T00:00:00Z",
		},
	}
	detail := &youtube.Channel{
		Id:         "UC999",
		Statistics: &youtube.ChannelStatistics{SubscriberCount: 2_300_000, VideoCount: 410, ViewCount: 90_000_000},
		BrandingSettings: &youtube.ChannelBrandingSettings{
			Channel: &youtube.ChannelSettings{Keywords: "go testing videos"},
		},
	}

	r := FormatChannel(hit, detail)
	if r.Type != ContentChannel || r.ID != "UC999" {
		t.Errorf("identity: %+v", r)
	}
	if r.URL != "https://www.youtube.com/channel/UC999" {
		t.Errorf("URL = %q", r.URL)
	}
	if r.SubscriberCount == nil || *r.SubscriberCount != 2_300_000 || r.SubscriberCountReadable != "2.3M" {
		t.Errorf("subscribers: %v / %q", r.SubscriberCount, r.SubscriberCountReadable)
	}
	if r.Keywords != "go testing videos" {
		t.Errorf("Keywords = %q", r.Keywords)
	}

	degraded := FormatChannel(hit, nil)
	if degraded.SubscriberCount != nil || degraded.Keywords != "" {
		t.Errorf("detail-only fields should be absent: %+v", degraded)
	}
	if degraded.Title != "A Channel" {
		t.Errorf("Title = %q", degraded.Title)
	}
}

func TestFormatPlaylist(t *testing.T) {
	hit := &youtube.SearchResult{
		Id: &youtube.ResourceId{PlaylistId: "PL42"},
		Snippet: &youtube.SearchResultSnippet{
			Title:        "Mix",
			ChannelTitle: "Some Channel",
			PublishedAt:  "2021-06-01T00:00:00Z",
		},
	}
	detail := &youtube.Playlist{
		Id:             "PL42",
		ContentDetails: &youtube.PlaylistContentDetails{ItemCount: 25},
		Status:         &youtube.PlaylistStatus{PrivacyStatus: "public"},
	}

	r := FormatPlaylist(hit, detail)
	if r.Type != ContentPlaylist || r.ID != "PL42" {
		t.Errorf("identity: %+v", r)
	}
	if r.URL != "https://www.youtube.com/playlist?list=PL42" {
		t.Errorf("URL = %q", r.URL)
	}
	if r.ItemCount == nil || *r.ItemCount != 25 {
		t.Errorf("ItemCount = %v", r.ItemCount)
	}
	if r.PrivacyStatus != "public" {
		t.Errorf("PrivacyStatus = %q", r.PrivacyStatus)
	}

	degraded := FormatPlaylist(hit, nil)
	if degraded.ItemCount != nil || degraded.PrivacyStatus != "" {
		t.Errorf("detail-only fields should be absent: %+v", degraded)
	}
}

func TestBestThumbnail(t *testing.T) {
	tests := []struct {
		name string
		in   *youtube.ThumbnailDetails
		want string
	}{
		{"nil", nil, ""},
		{"prefers maxres", &youtube.ThumbnailDetails{
			Maxres:  &youtube.Thumbnail{Url: "maxres"},
			Default: &youtube.Thumbnail{Url: "default"},
		}, "maxres"},
		{"falls back to default", &youtube.ThumbnailDetails{
			Default: &youtube.Thumbnail{Url: "default"},
		}, "default"},
		{"all empty", &youtube.ThumbnailDetails{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bestThumbnail(tt.in); got != tt.want {
				t.Errorf("bestThumbnail() = %q, want %q", got, tt.want)
			}
		})
	}
}
