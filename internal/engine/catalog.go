package engine

// Static filter catalog: the lookup tables behind category and topic
// resolution plus the two post-filter predicates the Data API cannot
// express natively. All tables are read-only after init.

// Categories maps YouTube video category IDs to display names.
var Categories = map[string]string{
	"1":  "Film & Animation",
	"2":  "Autos & Vehicles",
	"10": "Music",
	"15": "Pets & Animals",
	"17": "Sports",
	"18": "Short Movies",
	"19": "Travel & Events",
	"20": "Gaming",
	"21": "Videoblogging",
	"22": "People & Blogs",
	"23": "Comedy",
	"24": "Entertainment",
	"25": "News & Politics",
	"26": "Howto & Style",
	"27": "Education",
	"28": "Science & Technology",
	"29": "Nonprofits & Activism",
	"30": "Movies",
	"31": "Anime/Animation",
	"32": "Action/Adventure",
	"33": "Classics",
	"34": "Documentary",
	"35": "Drama",
	"36": "Family",
	"37": "Foreign",
	"38": "Horror",
	"39": "Sci-Fi/Fantasy",
	"40": "Thriller",
	"41": "Shorts",
	"42": "Shows",
	"43": "Trailers",
}

// Topics maps Knowledge Graph topic IDs to display names, as annotated on
// videos under topicDetails.relevantTopicIds.
var Topics = map[string]string{
	"/m/04rlf":   "Music",
	"/m/02mscn":  "Christian music",
	"/m/0ggq0m":  "Classical music",
	"/m/01lyv":   "Country music",
	"/m/02lkt":   "Electronic music",
	"/m/0glt670": "Hip hop music",
	"/m/05rwpb":  "Independent music",
	"/m/03_d0":   "Jazz",
	"/m/028sqc":  "Music of Asia",
	"/m/0g293":   "Music of Latin America",
	"/m/064t9":   "Pop music",
	"/m/06cqb":   "Reggae",
	"/m/06j6l":   "Rhythm and blues",
	"/m/06by7":   "Rock music",
	"/m/0gywn":   "Soul music",
	"/m/0bzvm2":  "Gaming",
	"/m/025zzc":  "Action game",
	"/m/02ntfj":  "Adventure game",
	"/m/0b1vjn":  "Casual game",
	"/m/02hygl":  "Music video game",
	"/m/04q1x3q": "Puzzle video game",
	"/m/01sjng":  "Racing video game",
	"/m/0403l3g": "Role-playing video game",
	"/m/021bp2":  "Simulation video game",
	"/m/022dc6":  "Sports game",
	"/m/03hf_rm": "Strategy video game",
	"/m/06ntj":   "Sports",
	"/m/0jm_":    "American football",
	"/m/018jz":   "Baseball",
	"/m/018w8":   "Basketball",
	"/m/01cgz":   "Boxing",
	"/m/09xp_":   "Cricket",
	"/m/02vx4":   "Football",
	"/m/037hz":   "Golf",
	"/m/03tmr":   "Ice hockey",
	"/m/01h7lh":  "Mixed martial arts",
	"/m/0410tth": "Motorsport",
	"/m/07bs0":   "Tennis",
	"/m/07_53":   "Volleyball",
	"/m/02jjt":   "Entertainment",
	"/m/09kqc":   "Humor",
	"/m/02vxn":   "Movies",
	"/m/05qjc":   "Performing arts",
	"/m/066wd":   "Professional wrestling",
	"/m/0f2f9":   "TV shows",
	"/m/019_rr":  "Lifestyle",
	"/m/032tl":   "Fashion",
	"/m/027x7n":  "Fitness",
	"/m/02wbm":   "Food",
	"/m/03glg":   "Hobby",
	"/m/068hy":   "Pets",
	"/m/041xxh":  "Physical attractiveness",
	"/m/07c1v":   "Technology",
	"/m/07bxq":   "Tourism",
	"/m/07yv9":   "Vehicles",
	"/m/01k8wb":  "Knowledge",
}

// Orders are the search.list sort orders.
var Orders = map[string]string{
	"relevance": "Relevance",
	"date":      "Upload date",
	"rating":    "Rating",
	"viewCount": "View count",
	"title":     "Title",
}

// SafeSearchLevels are the search.list safeSearch values.
var SafeSearchLevels = map[string]string{
	"moderate": "Moderate",
	"strict":   "Strict",
	"none":     "None",
}

// Durations are the search.list videoDuration buckets.
var Durations = map[string]string{
	"any":    "Any duration",
	"short":  "Short (< 4 minutes)",
	"medium": "Medium (4-20 minutes)",
	"long":   "Long (> 20 minutes)",
}

// Definitions are the search.list videoDefinition levels.
var Definitions = map[string]string{
	"any":      "Any quality",
	"high":     "High Definition",
	"standard": "Standard Definition",
}

// KidsFilters are the accepted made-for-kids post-filter values.
var KidsFilters = []string{"any", "yes", "no"}

// CategoryName resolves a category ID to its display name.
func CategoryName(id string) string {
	if name, ok := Categories[id]; ok {
		return name
	}
	return "Category " + id
}

// TopicName resolves a Knowledge Graph topic ID to its display name.
func TopicName(id string) string {
	if name, ok := Topics[id]; ok {
		return name
	}
	return "Topic: " + id
}

// MatchesTopic reports whether a result passes the topic post-filter.
// An empty topicID matches everything.
func MatchesTopic(r *Result, topicID string) bool {
	if topicID == "" {
		return true
	}
	for _, id := range r.TopicIDs {
		if id == topicID {
			return true
		}
	}
	return false
}

// MatchesKids reports whether a result passes the made-for-kids post-filter.
// A result that carries no made-for-kids flag always passes: the filter
// cannot exclude what it cannot evaluate. This is deliberate policy.
func MatchesKids(r *Result, kidsFilter string) bool {
	if kidsFilter == "" || kidsFilter == "any" {
		return true
	}
	if r.MadeForKids == nil {
		return true
	}
	return *r.MadeForKids == (kidsFilter == "yes")
}
