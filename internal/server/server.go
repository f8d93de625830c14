package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heyhimanshyou/portfolio-feed/internal/feed"
	"github.com/heyhimanshyou/portfolio-feed/internal/ratelimit"
	"github.com/heyhimanshyou/portfolio-feed/pkg/config"
	"github.com/heyhimanshyou/portfolio-feed/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Feed    feed.Client
	Limiter ratelimit.Limiter
	Logger  logger.Logger
	Config  *config.Config
}

type Server struct {
	Engine  *gin.Engine
	Feed    feed.Client
	Limiter ratelimit.Limiter
	Logger  logger.Logger
	Config  *config.Config
}

func New(opts Opts) *Server {
	if opts.Config.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		Engine:  gin.New(),
		Feed:    opts.Feed,
		Limiter: opts.Limiter,
		Logger:  opts.Logger.WithComponent("Server"),
		Config:  opts.Config,
	}

	s.Engine.Use(gin.Recovery(), s.requestLogger())
	s.routes()

	return s
}

func (s *Server) routes() {
	s.Engine.GET("/healthz", s.handleHealthz)

	api := s.Engine.Group("/api", s.rateLimit())
	api.GET("/twitter/recent", s.handleRecentPosts)

	// Everything else is the static site bundle.
	s.Engine.NoRoute(gin.WrapH(http.FileServer(http.Dir(s.Config.App.StaticDir))))
}

// HTTPServer wraps the engine so the app lifecycle can shut it down
// gracefully.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", s.Config.App.Port),
		Handler: s.Engine,
	}
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
