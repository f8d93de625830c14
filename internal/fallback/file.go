package fallback

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/heyhimanshyou/portfolio-feed/internal/domain"
	"github.com/heyhimanshyou/portfolio-feed/pkg/config"
	"github.com/heyhimanshyou/portfolio-feed/pkg/logger"
)

// File reads and rewrites the JSON asset bundled with the deployment.
type File struct {
	path   string
	logger logger.Logger
}

func NewFile(cfg *config.Config, logger logger.Logger) *File {
	return &File{
		path:   cfg.Fallback.Path,
		logger: logger.WithComponent("FallbackStore"),
	}
}

var _ Store = (*File)(nil)

// snapshot matches the asset layout, {"posts": [...]}.
type snapshot struct {
	Posts []domain.Post `json:"posts"`
}

func (f *File) Load(ctx context.Context) []domain.Post {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		f.logger.Warn("Fallback asset unreadable, serving empty list", "path", f.path, "error", err)
		return []domain.Post{}
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		f.logger.Warn("Fallback asset malformed, serving empty list", "path", f.path, "error", err)
		return []domain.Post{}
	}
	if snap.Posts == nil {
		return []domain.Post{}
	}

	return snap.Posts
}

// Save writes to a sibling temp file and renames it over the asset so a
// request never observes a half-written snapshot.
func (f *File) Save(ctx context.Context, posts []domain.Post) error {
	data, err := json.MarshalIndent(snapshot{Posts: posts}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	f.logger.Info("Fallback snapshot updated", "path", f.path, "posts", len(posts))
	return nil
}
