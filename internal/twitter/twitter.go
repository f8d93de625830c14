package twitter

import (
	"context"
	"fmt"
)

//go:generate go run go.uber.org/mock/mockgen -source=twitter.go -destination=mocks/mock.go -package=mocks

// Client covers the two upstream calls a feed request needs. Rate
// limiting is signaled with errors.ErrRateLimited so the caller can
// substitute the snapshot instead of surfacing a 429.
type Client interface {
	// ResolveUserID maps a public handle to the platform-assigned user id.
	ResolveUserID(ctx context.Context, handle string) (string, error)

	// UserTimeline fetches the user's recent original tweets with media
	// expansions. limit is what the caller wants; the request may ask for
	// more because the API enforces a minimum page size.
	UserTimeline(ctx context.Context, userID string, limit int) (*Timeline, error)
}

// APIError carries an upstream non-2xx response verbatim so the HTTP
// layer can pass status and body through unmodified.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twitter: upstream status %d: %s", e.StatusCode, e.Body)
}

// Tweet and Media mirror the v2 API response shapes.
type Tweet struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	CreatedAt   string `json:"created_at"`
	Attachments struct {
		MediaKeys []string `json:"media_keys"`
	} `json:"attachments"`
}

type Media struct {
	MediaKey        string `json:"media_key"`
	Type            string `json:"type"`
	URL             string `json:"url"`
	PreviewImageURL string `json:"preview_image_url"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
}

// Timeline is one page of tweets plus the media records the response
// included for them. Media keys are only unique within one response.
type Timeline struct {
	Tweets []Tweet
	Media  []Media
}
