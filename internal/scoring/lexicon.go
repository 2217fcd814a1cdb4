// internal/scoring/lexicon.go
package scoring

// Weighting of the five sub-scores. Values sum to 1.0.
const (
	WeightNiche       = 0.30
	WeightEngagement  = 0.25
	WeightAudience    = 0.15
	WeightSafety      = 0.20
	WeightSponsorship = 0.10
)

// nicheEntry maps a niche name to the lowercase keywords that signal it.
// Entries are evaluated in slice order so niche extraction is deterministic.
type nicheEntry struct {
	Niche    string
	Keywords []string
}

var nicheKeywords = []nicheEntry{
	{"fitness", []string{"fitness", "gym", "workout", "trainer", "yoga", "wellness", "health"}},
	{"beauty", []string{"beauty", "makeup", "skincare", "cosmetics", "glam", "hair"}},
	{"fashion", []string{"fashion", "style", "outfit", "ootd", "clothing", "apparel", "streetwear"}},
	{"tech", []string{"tech", "technology", "gadget", "gadgets", "software", "coding", "programming", "developer"}},
	{"gaming", []string{"gaming", "gamer", "esports", "streamer", "twitch"}},
	{"food", []string{"food", "foodie", "cooking", "recipe", "recipes", "chef", "baking"}},
	{"travel", []string{"travel", "traveler", "wanderlust", "backpacking", "adventure"}},
	{"music", []string{"music", "musician", "singer", "producer", "dj", "songwriter"}},
	{"comedy", []string{"comedy", "comedian", "funny", "humor", "memes"}},
	{"education", []string{"education", "teacher", "learning", "tutor", "study"}},
	{"finance", []string{"finance", "investing", "crypto", "stocks", "money", "trading"}},
	{"sports", []string{"sports", "athlete", "football", "basketball", "soccer", "running"}},
	{"parenting", []string{"parenting", "mom", "dad", "family", "kids"}},
	{"pets", []string{"pets", "dog", "dogs", "cat", "cats", "animal"}},
	{"art", []string{"art", "artist", "drawing", "painting", "design", "illustrator"}},
	{"photography", []string{"photography", "photographer", "photo", "photos"}},
	{"entertainment", []string{"entertainment", "actor", "actress", "film", "movies", "tv"}},
	{"lifestyle", []string{"lifestyle", "vlog", "vlogger", "daily life", "influencer"}},
}

// verifiedNiche is appended for verified accounts on top of keyword-derived
// niches. It never satisfies the "no niches detected" fallback on its own.
const verifiedNiche = "verified"

// brandCategoryNiches maps a lowercase brand category to the creator niches
// considered compatible with it.
var brandCategoryNiches = map[string][]string{
	"fitness":       {"fitness", "sports", "health", "lifestyle"},
	"health":        {"fitness", "food", "lifestyle", "sports"},
	"beauty":        {"beauty", "fashion", "lifestyle"},
	"fashion":       {"fashion", "beauty", "lifestyle", "art"},
	"technology":    {"tech", "gaming", "education"},
	"gaming":        {"gaming", "tech", "entertainment"},
	"food":          {"food", "travel", "lifestyle"},
	"travel":        {"travel", "food", "photography", "lifestyle"},
	"finance":       {"finance", "education", "tech"},
	"education":     {"education", "tech", "finance", "parenting"},
	"entertainment": {"entertainment", "comedy", "music", "gaming"},
	"music":         {"music", "entertainment", "art"},
	"sports":        {"sports", "fitness", "health"},
	"parenting":     {"parenting", "food", "lifestyle", "education"},
	"pets":          {"pets", "lifestyle", "comedy"},
	"automotive":    {"sports", "tech", "travel"},
}

// highRiskKeywords each deduct 30 safety points when found in profile text.
var highRiskKeywords = []string{
	"scandal", "arrest", "arrested", "fraud", "lawsuit", "racist",
	"racism", "assault", "abuse", "drugs", "scam", "hate speech",
}

// mediumRiskKeywords each deduct 15 safety points.
var mediumRiskKeywords = []string{
	"controversy", "controversial", "nsfw", "explicit", "gambling",
	"vape", "vaping", "alcohol", "political",
}

// sponsorshipSignalKeywords carry no deduction. A match is recorded as an
// informational signal that the creator has done sponsored work before.
var sponsorshipSignalKeywords = []string{
	"sponsored", "ad", "partner", "collab", "promotion", "brand deal",
	"ambassador",
}

// engagementThresholds holds per-tier rate cutoffs in percent. Smaller
// accounts are held to higher standards since their audiences engage more.
type engagementThresholds struct {
	Excellent  float64
	Good       float64
	Acceptable float64
}

var tierEngagement = map[Tier]engagementThresholds{
	TierNano:  {Excellent: 8.0, Good: 6.0, Acceptable: 4.0},
	TierMicro: {Excellent: 7.0, Good: 5.0, Acceptable: 3.0},
	TierMid:   {Excellent: 5.0, Good: 3.5, Acceptable: 2.0},
	TierMacro: {Excellent: 4.0, Good: 2.5, Acceptable: 1.5},
	TierMega:  {Excellent: 3.0, Good: 2.0, Acceptable: 1.0},
}
