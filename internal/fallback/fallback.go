package fallback

import (
	"context"

	"github.com/heyhimanshyou/portfolio-feed/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=fallback.go -destination=mocks/mock.go -package=mocks
type Store interface {
	// Load returns the bundled snapshot. A missing or corrupt asset is
	// an empty list, never an error: the fallback path must not be able
	// to fail a request.
	Load(ctx context.Context) []domain.Post

	// Save replaces the snapshot with freshly captured posts.
	Save(ctx context.Context, posts []domain.Post) error
}
