package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
		StaticDir string `env:"APP_STATIC_DIR" env-default:"./public"`
	}
	Twitter struct {
		BearerToken     string        `env:"TWITTER_BEARER_TOKEN"`
		DefaultUsername string        `env:"TWITTER_DEFAULT_USERNAME"`
		BaseURL         string        `env:"TWITTER_API_BASE_URL" env-default:"https://api.twitter.com/2"`
		Timeout         time.Duration `env:"TWITTER_HTTP_TIMEOUT" env-default:"10s"`
	}
	Feed struct {
		DefaultLimit         int `env:"FEED_DEFAULT_LIMIT" env-default:"2"`
		LiveMaxAge           int `env:"FEED_LIVE_MAX_AGE" env-default:"3600"`
		FallbackMaxAge       int `env:"FEED_FALLBACK_MAX_AGE" env-default:"1200"`
		StaleWhileRevalidate int `env:"FEED_STALE_WHILE_REVALIDATE" env-default:"86400"`
	}
	Fallback struct {
		Path string `env:"FALLBACK_POSTS_PATH" env-default:"./public/recentPosts.json"`
	}
	Snapshot struct {
		Enabled  bool   `env:"SNAPSHOT_REFRESH_ENABLED" env-default:"false"`
		CronSpec string `env:"SNAPSHOT_REFRESH_CRON" env-default:"0 */6 * * *"`
		Limit    int    `env:"SNAPSHOT_REFRESH_LIMIT" env-default:"10"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"10"`
		Per      time.Duration `env:"RATE_LIMIT_PER" env-default:"1m"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"5"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

// New reads the configuration from the environment once per process.
// A missing bearer token is deliberately not a startup failure: the feed
// reports it per request so the rest of the site keeps serving.
func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
