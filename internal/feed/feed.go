package feed

import (
	"context"

	"github.com/heyhimanshyou/portfolio-feed/internal/domain"
)

// Limits the API accepts for one page of posts. Anything outside is
// clamped, not rejected.
const (
	MinLimit = 1
	MaxLimit = 10
)

type Client interface {
	// GetRecentPosts returns up to limit normalized posts for a handle.
	// An empty handle falls back to the configured default. A rate-limited
	// upstream is not an error: the bundled snapshot is substituted and
	// the Feed is tagged so the HTTP layer shortens its cache lifetime.
	GetRecentPosts(ctx context.Context, handle string, limit int) (*domain.Feed, error)
}
