package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heyhimanshyou/portfolio-feed/internal/fallback"
	"github.com/heyhimanshyou/portfolio-feed/internal/feed"
	"github.com/heyhimanshyou/portfolio-feed/internal/feed/feedimpl"
	"github.com/heyhimanshyou/portfolio-feed/internal/ratelimit"
	"github.com/heyhimanshyou/portfolio-feed/internal/server"
	"github.com/heyhimanshyou/portfolio-feed/internal/snapshot"
	"github.com/heyhimanshyou/portfolio-feed/internal/twitter"
	"github.com/heyhimanshyou/portfolio-feed/internal/twitter/twitterimpl"
	"github.com/heyhimanshyou/portfolio-feed/pkg/config"
	"github.com/heyhimanshyou/portfolio-feed/pkg/errors"
	"github.com/heyhimanshyou/portfolio-feed/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			twitterimpl.New,
			fx.As(new(twitter.Client)),
		),
		fx.Annotate(
			feedimpl.New,
			fx.As(new(feed.Client)),
		),
		func(cfg *config.Config) ratelimit.Limiter {
			return ratelimit.NewInMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Per, cfg.RateLimit.Burst)
		},
		snapshot.New,
		server.New,
	),
	fallback.Module,
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, log logger.Logger, srv *server.Server, refresher *snapshot.Refresher) {
	httpSrv := srv.HTTPServer()
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				log.Info(fmt.Sprintf("Starting server on %s", httpSrv.Addr))
				if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server failed", "error", err)
				}
			}()

			if err := refresher.Schedule(ctx); err != nil {
				log.Error("Snapshot scheduling error", "error", err)
			}

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			return httpSrv.Shutdown(stopCtx)
		},
	})
}
