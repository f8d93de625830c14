package feedimpl

import (
	"context"
	"fmt"

	"github.com/heyhimanshyou/portfolio-feed/internal/domain"
	"github.com/heyhimanshyou/portfolio-feed/internal/fallback"
	"github.com/heyhimanshyou/portfolio-feed/internal/feed"
	"github.com/heyhimanshyou/portfolio-feed/internal/twitter"
	"github.com/heyhimanshyou/portfolio-feed/pkg/config"
	"github.com/heyhimanshyou/portfolio-feed/pkg/errors"
	"github.com/heyhimanshyou/portfolio-feed/pkg/logger"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Twitter  twitter.Client
	Fallback fallback.Store
	Logger   logger.Logger
	Config   *config.Config
}

type FeedImpl struct {
	Twitter  twitter.Client
	Fallback fallback.Store
	Logger   logger.Logger
	Config   *config.Config
}

func New(opts Opts) *FeedImpl {
	return &FeedImpl{
		Twitter:  opts.Twitter,
		Fallback: opts.Fallback,
		Logger:   opts.Logger.WithComponent("Feed"),
		Config:   opts.Config,
	}
}

var _ feed.Client = (*FeedImpl)(nil)

func (f *FeedImpl) GetRecentPosts(ctx context.Context, handle string, limit int) (*domain.Feed, error) {
	// Deployment error, identical on every call until redeployed.
	if f.Config.Twitter.BearerToken == "" {
		return nil, errors.ErrMissingCredential
	}

	if handle == "" {
		handle = f.Config.Twitter.DefaultUsername
	}
	if handle == "" {
		return nil, errors.ErrUsernameRequired
	}

	limit = clampLimit(limit)

	userID, err := f.Twitter.ResolveUserID(ctx, handle)
	if err != nil {
		if errors.Is(err, errors.ErrRateLimited) {
			return f.fallbackFeed(ctx, "resolve_user"), nil
		}
		return nil, err
	}

	timeline, err := f.Twitter.UserTimeline(ctx, userID, limit)
	if err != nil {
		if errors.Is(err, errors.ErrRateLimited) {
			return f.fallbackFeed(ctx, "user_timeline"), nil
		}
		return nil, err
	}

	return &domain.Feed{
		Posts:  normalize(handle, timeline, limit),
		Source: domain.SourceLive,
	}, nil
}

// fallbackFeed swaps in the bundled snapshot. A rate-limited read
// degrades to stale content instead of failing the page render.
func (f *FeedImpl) fallbackFeed(ctx context.Context, stage string) *domain.Feed {
	f.Logger.Warn("Upstream rate limited, substituting snapshot", "stage", stage)
	return &domain.Feed{
		Posts:  f.Fallback.Load(ctx),
		Source: domain.SourceFallback,
	}
}

func clampLimit(limit int) int {
	if limit < feed.MinLimit {
		return feed.MinLimit
	}
	if limit > feed.MaxLimit {
		return feed.MaxLimit
	}
	return limit
}

// normalize joins tweets to their media by media_key and maps them into
// the shape the site renders. The timeline may hold more tweets than
// asked for because of the padded page size, so it is truncated here;
// fewer than limit is an accepted outcome.
func normalize(handle string, timeline *twitter.Timeline, limit int) []domain.Post {
	mediaByKey := lo.KeyBy(timeline.Media, func(m twitter.Media) string {
		return m.MediaKey
	})

	tweets := timeline.Tweets
	if len(tweets) > limit {
		tweets = tweets[:limit]
	}

	return lo.Map(tweets, func(t twitter.Tweet, _ int) domain.Post {
		post := domain.Post{
			ID:       fmt.Sprintf("x_%s", t.ID),
			Platform: domain.PlatformX,
			Text:     t.Text,
			DateISO:  t.CreatedAt,
			Link:     fmt.Sprintf("https://x.com/%s/status/%s", handle, t.ID),
		}

		if len(t.Attachments.MediaKeys) > 0 {
			if m, ok := mediaByKey[t.Attachments.MediaKeys[0]]; ok {
				if m.URL != "" {
					post.ImageURL = m.URL
				} else {
					post.ImageURL = m.PreviewImageURL
				}
			}
		}

		return post
	})
}
