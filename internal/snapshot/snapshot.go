package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/heyhimanshyou/portfolio-feed/internal/domain"
	"github.com/heyhimanshyou/portfolio-feed/internal/fallback"
	"github.com/heyhimanshyou/portfolio-feed/internal/feed"
	"github.com/heyhimanshyou/portfolio-feed/pkg/config"
	"github.com/heyhimanshyou/portfolio-feed/pkg/errors"
	"github.com/heyhimanshyou/portfolio-feed/pkg/logger"
	"github.com/heyhimanshyou/portfolio-feed/pkg/retry"
	"go.uber.org/fx"
)

// Refresher periodically recaptures the live feed into the fallback
// asset so degraded responses stay reasonably fresh. It never runs on
// the request path.
type Refresher struct {
	Feed      feed.Client
	Fallback  fallback.Store
	Logger    logger.Logger
	Config    *config.Config
	Scheduler gocron.Scheduler
}

type Opts struct {
	fx.In

	Feed     feed.Client
	Fallback fallback.Store
	Logger   logger.Logger
	Config   *config.Config
}

func New(opts Opts) *Refresher {
	return &Refresher{
		Feed:     opts.Feed,
		Fallback: opts.Fallback,
		Logger:   opts.Logger.WithComponent("SnapshotRefresher"),
		Config:   opts.Config,
	}
}

func (r *Refresher) Schedule(ctx context.Context) error {
	if !r.Config.Snapshot.Enabled {
		r.Logger.Info("Snapshot refresh disabled")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create snapshot scheduler: %w", err)
	}
	r.Scheduler = scheduler

	_, err = scheduler.NewJob(
		gocron.CronJob(r.Config.Snapshot.CronSpec, false),
		gocron.NewTask(func() {
			refreshCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
			defer cancel()
			r.RefreshOnce(refreshCtx)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule snapshot refresh: %w", err)
	}

	scheduler.Start()
	r.Logger.Info("Snapshot refresh scheduled", "cron", r.Config.Snapshot.CronSpec)

	go func() {
		<-ctx.Done()
		if err := scheduler.Shutdown(); err != nil {
			r.Logger.Error("Failed to shut down snapshot scheduler", "error", err)
		}
	}()

	return nil
}

// RefreshOnce captures the live feed and rewrites the asset. Transient
// upstream failures are retried with backoff; configuration errors are
// not, and a rate-limited run just keeps the existing snapshot since
// there is nothing fresh to capture.
func (r *Refresher) RefreshOnce(ctx context.Context) {
	var result *domain.Feed
	err := retry.Do(ctx, r.Logger, "snapshot_refresh", func() error {
		res, err := r.Feed.GetRecentPosts(ctx, "", r.Config.Snapshot.Limit)
		if err != nil {
			if errors.Is(err, errors.ErrMissingCredential) || errors.Is(err, errors.ErrUsernameRequired) {
				return retry.Permanent(err)
			}
			return err
		}
		result = res
		return nil
	}, retry.DefaultConfig())
	if err != nil {
		r.Logger.Error("Snapshot refresh failed", "error", err)
		return
	}

	if result.Source == domain.SourceFallback {
		r.Logger.Info("Upstream rate limited, keeping existing snapshot")
		return
	}
	if len(result.Posts) == 0 {
		r.Logger.Info("No live posts returned, keeping existing snapshot")
		return
	}

	if err := r.Fallback.Save(ctx, result.Posts); err != nil {
		r.Logger.Error("Failed to write snapshot", "error", err)
	}
}
