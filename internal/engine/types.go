package engine

// ContentType is one of the three searchable YouTube resource kinds.
type ContentType string

const (
	ContentVideo    ContentType = "video"
	ContentChannel  ContentType = "channel"
	ContentPlaylist ContentType = "playlist"
)

// --- Core search types ---

// Request describes one orchestrated search pass.
type Request struct {
	Query           string
	ContentTypes    []ContentType
	MaxResults      int64
	Order           string
	SafeSearch      string
	CategoryIDs     []string // video only; ignored for channels/playlists
	TopicID         string
	VideoDuration   string
	VideoDefinition string
	KidsFilter      string // any | yes | no
	PublishedAfter  string
	PublishedBefore string
	RegionCode      string
	Language        string
}

// Filters are the per-call parameters forwarded to search.list.
// Empty fields are omitted from the remote call entirely — the Data API
// treats an absent parameter differently from an empty one.
type Filters struct {
	MaxResults        int64
	Order             string
	SafeSearch        string
	VideoDuration     string
	VideoDefinition   string
	CategoryID        string
	PublishedAfter    string
	PublishedBefore   string
	RegionCode        string
	RelevanceLanguage string
}

// filters builds the remote-call parameters for one fan-out unit.
// Video-only parameters are dropped for channel and playlist searches.
func (r Request) filters(contentType ContentType, categoryID string) Filters {
	f := Filters{
		MaxResults:        r.MaxResults,
		Order:             r.Order,
		SafeSearch:        r.SafeSearch,
		PublishedAfter:    r.PublishedAfter,
		PublishedBefore:   r.PublishedBefore,
		RegionCode:        r.RegionCode,
		RelevanceLanguage: r.Language,
	}
	if contentType == ContentVideo {
		f.VideoDuration = normalizeAny(r.VideoDuration)
		f.VideoDefinition = normalizeAny(r.VideoDefinition)
		f.CategoryID = categoryID
	}
	return f
}

// normalizeAny treats the catalog's "any" bucket as an unset parameter.
func normalizeAny(v string) string {
	if v == "any" {
		return ""
	}
	return v
}

// Result is the normalized output record, uniform across content kinds.
// Detail-only fields are pointers (or omitted) so a missing detail record
// is distinguishable from a zero value.
type Result struct {
	Type          ContentType `json:"type"`
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	ChannelTitle  string      `json:"channel_title,omitempty"`
	ChannelID     string      `json:"channel_id,omitempty"`
	PublishedAt   string      `json:"published_at"`
	PublishedDate string      `json:"published_date"`
	ThumbnailURL  string      `json:"thumbnail_url"`
	URL           string      `json:"url"`

	// video
	Duration          string   `json:"duration,omitempty"`
	DurationReadable  string   `json:"duration_readable,omitempty"`
	ViewCount         *uint64  `json:"view_count,omitempty"`
	ViewCountReadable string   `json:"view_count_readable,omitempty"`
	LikeCount         *uint64  `json:"like_count,omitempty"`
	CommentCount      *uint64  `json:"comment_count,omitempty"`
	MadeForKids       *bool    `json:"made_for_kids,omitempty"`
	PrivacyStatus     string   `json:"privacy_status,omitempty"`
	CategoryID        string   `json:"category_id,omitempty"`
	CategoryName      string   `json:"category_name,omitempty"`
	TopicIDs          []string `json:"topic_ids,omitempty"`
	TopicNames        []string `json:"topic_names,omitempty"`

	// channel
	SubscriberCount         *uint64 `json:"subscriber_count,omitempty"`
	SubscriberCountReadable string  `json:"subscriber_count_readable,omitempty"`
	VideoCount              *uint64 `json:"video_count,omitempty"`
	Keywords                string  `json:"keywords,omitempty"`

	// playlist
	ItemCount *int64 `json:"item_count,omitempty"`
}

// ResultSet groups normalized results by content kind. Order within each
// slice is merge order: category-list order, then remote relevance order,
// after dedup and capping.
type ResultSet struct {
	Videos    []Result `json:"videos"`
	Channels  []Result `json:"channels"`
	Playlists []Result `json:"playlists"`
}

// Issue reports one failed fan-out or enrichment unit. A search pass
// returns its issues alongside partial results instead of failing.
type Issue struct {
	ContentType ContentType `json:"content_type"`
	CategoryID  string      `json:"category_id,omitempty"`
	Stage       string      `json:"stage"` // search | details
	Message     string      `json:"message"`
}

// --- MCP tool input/output types ---

type ContentSearchInput struct {
	Query           string   `json:"query" jsonschema:"Search query"`
	ContentTypes    []string `json:"content_types,omitempty" jsonschema:"Content kinds to search: video, channel, playlist (default: video)"`
	MaxResults      int      `json:"max_results,omitempty" jsonschema:"Max results per content kind, 1-50 (default: 10)"`
	Order           string   `json:"order,omitempty" jsonschema:"Sort order: relevance, date, rating, viewCount, title (default: relevance)"`
	SafeSearch      string   `json:"safe_search,omitempty" jsonschema:"Safe search level: none, moderate, strict (default: moderate)"`
	CategoryIDs     []string `json:"category_ids,omitempty" jsonschema:"Video category IDs to fan out over (video searches only, see list_filters)"`
	TopicID         string   `json:"topic_id,omitempty" jsonschema:"Knowledge Graph topic ID post-filter, e.g. /m/04rlf (see list_filters)"`
	VideoDuration   string   `json:"video_duration,omitempty" jsonschema:"Duration bucket: any, short, medium, long"`
	VideoDefinition string   `json:"video_definition,omitempty" jsonschema:"Definition: any, high, standard"`
	KidsFilter      string   `json:"kids_filter,omitempty" jsonschema:"Made-for-kids post-filter: any, yes, no (default: any)"`
	PublishedAfter  string   `json:"published_after,omitempty" jsonschema:"RFC 3339 lower bound on publish date"`
	PublishedBefore string   `json:"published_before,omitempty" jsonschema:"RFC 3339 upper bound on publish date"`
	RegionCode      string   `json:"region_code,omitempty" jsonschema:"ISO 3166-1 alpha-2 region code"`
	Language        string   `json:"language,omitempty" jsonschema:"Relevance language code"`
}

type ContentSearchOutput struct {
	Query     string   `json:"query"`
	Videos    []Result `json:"videos"`
	Channels  []Result `json:"channels"`
	Playlists []Result `json:"playlists"`
	Issues    []Issue  `json:"issues,omitempty"`
}

type VideoDetailsInput struct {
	IDs []string `json:"ids" jsonschema:"Video IDs to look up (batched into one API call)"`
}

type VideoDetailsOutput struct {
	Videos []Result `json:"videos"`
}

type ListFiltersOutput struct {
	Categories  map[string]string `json:"categories"`
	Topics      map[string]string `json:"topics"`
	Orders      map[string]string `json:"orders"`
	SafeSearch  map[string]string `json:"safe_search"`
	Durations   map[string]string `json:"durations"`
	Definitions map[string]string `json:"definitions"`
	KidsFilters []string          `json:"kids_filters"`
}
