package domain

// Platform namespaces post IDs so feeds from several networks could be
// merged into one list without collisions.
type Platform string

const PlatformX Platform = "x"

// Post is the normalized shape the site renders. DateISO is the
// upstream timestamp passed through verbatim, no timezone conversion.
// ImageURL is omitted entirely when the post carries no media.
type Post struct {
	ID       string   `json:"id"`
	Platform Platform `json:"platform"`
	Text     string   `json:"text"`
	DateISO  string   `json:"dateISO"`
	Link     string   `json:"link"`
	ImageURL string   `json:"imageUrl,omitempty"`
}

// FeedSource tells the HTTP layer which cache lifetime to hand out.
type FeedSource int

const (
	// SourceLive means posts came straight from the upstream API.
	SourceLive FeedSource = iota
	// SourceFallback means the upstream rate-limited us and the bundled
	// snapshot was substituted.
	SourceFallback
)

type Feed struct {
	Posts  []Post
	Source FeedSource
}
