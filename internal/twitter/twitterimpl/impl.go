package twitterimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/heyhimanshyou/portfolio-feed/internal/twitter"
	"github.com/heyhimanshyou/portfolio-feed/pkg/config"
	"github.com/heyhimanshyou/portfolio-feed/pkg/errors"
	"github.com/heyhimanshyou/portfolio-feed/pkg/logger"
	"go.uber.org/fx"
)

type TwitterImpl struct {
	httpClient *http.Client
	baseURL    string
	bearer     string
	logger     logger.Logger
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts Opts) *TwitterImpl {
	return &TwitterImpl{
		httpClient: &http.Client{Timeout: opts.Config.Twitter.Timeout},
		baseURL:    opts.Config.Twitter.BaseURL,
		bearer:     opts.Config.Twitter.BearerToken,
		logger:     opts.Logger.WithComponent("TwitterClient"),
	}
}

var _ twitter.Client = (*TwitterImpl)(nil)

// get performs one bearer-authenticated call and applies the error
// taxonomy: 429 becomes the rate-limit sentinel, any other non-2xx is
// passed through as an APIError with the upstream body intact.
func (t *TwitterImpl) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.bearer)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call twitter api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, errors.ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &twitter.APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
