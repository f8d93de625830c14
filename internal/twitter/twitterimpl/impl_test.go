package twitterimpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/heyhimanshyou/portfolio-feed/internal/twitter"
	"github.com/heyhimanshyou/portfolio-feed/pkg/config"
	"github.com/heyhimanshyou/portfolio-feed/pkg/errors"
	"github.com/heyhimanshyou/portfolio-feed/pkg/logger"
)

func newTestClient(baseURL string) *TwitterImpl {
	cfg := &config.Config{}
	cfg.Twitter.BaseURL = baseURL
	cfg.Twitter.BearerToken = "test-token"
	cfg.Twitter.Timeout = 2 * time.Second

	return New(Opts{Config: cfg, Logger: logger.New(logger.Opts{})})
}

func TestResolveUserID_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		if r.URL.Path != "/users/by/username/someone" {
			t.Errorf("unexpected path: %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"data":{"id":"42","name":"Someone","username":"someone"}}`))
	}))
	defer srv.Close()

	id, err := newTestClient(srv.URL).ResolveUserID(context.Background(), "someone")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "42" {
		t.Fatalf("expected id 42, got %q", id)
	}
}

func TestResolveUserID_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"title":"Too Many Requests"}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).ResolveUserID(context.Background(), "someone"); !errors.Is(err, errors.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestResolveUserID_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"title":"Forbidden"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ResolveUserID(context.Background(), "someone")

	var apiErr *twitter.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusForbidden || apiErr.Body != `{"title":"Forbidden"}` {
		t.Fatalf("status and body must pass through verbatim: %+v", apiErr)
	}
}

func TestResolveUserID_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"errors":[{"detail":"Could not find user"}]}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).ResolveUserID(context.Background(), "nobody"); !errors.Is(err, errors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserTimeline_QueryShape(t *testing.T) {
	cases := []struct {
		name           string
		limit          int
		wantMaxResults string
	}{
		{"small limit padded to api minimum", 2, "5"},
		{"limit above minimum kept", 8, "8"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/users/42/tweets" {
					t.Errorf("unexpected path: %q", r.URL.Path)
				}
				q := r.URL.Query()
				if got := q.Get("max_results"); got != tc.wantMaxResults {
					t.Errorf("max_results = %q, want %q", got, tc.wantMaxResults)
				}
				if got := q.Get("tweet.fields"); got != "created_at,attachments,text" {
					t.Errorf("unexpected tweet.fields: %q", got)
				}
				if got := q.Get("expansions"); got != "attachments.media_keys" {
					t.Errorf("unexpected expansions: %q", got)
				}
				if got := q.Get("media.fields"); got != "url,preview_image_url,type,width,height" {
					t.Errorf("unexpected media.fields: %q", got)
				}
				if got := q["exclude"]; !reflect.DeepEqual(got, []string{"replies", "retweets"}) {
					t.Errorf("exclude must be two repeated parameters, got %v", got)
				}
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"data":[],"includes":{"media":[]}}`))
			}))
			defer srv.Close()

			if _, err := newTestClient(srv.URL).UserTimeline(context.Background(), "42", tc.limit); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUserTimeline_ParsesTweetsAndMedia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"data": [
				{"id":"101","text":"first","created_at":"2025-08-20T14:05:11.000Z","attachments":{"media_keys":["3_aaa"]}},
				{"id":"102","text":"second","created_at":"2025-08-19T10:00:00.000Z"}
			],
			"includes": {
				"media": [
					{"media_key":"3_aaa","type":"photo","url":"https://pbs.twimg.com/media/aaa.jpg","width":1200,"height":800}
				]
			}
		}`))
	}))
	defer srv.Close()

	timeline, err := newTestClient(srv.URL).UserTimeline(context.Background(), "42", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(timeline.Tweets) != 2 {
		t.Fatalf("expected 2 tweets, got %d", len(timeline.Tweets))
	}
	if got := timeline.Tweets[0].Attachments.MediaKeys; len(got) != 1 || got[0] != "3_aaa" {
		t.Errorf("unexpected media keys: %v", got)
	}
	if len(timeline.Media) != 1 || timeline.Media[0].URL != "https://pbs.twimg.com/media/aaa.jpg" {
		t.Errorf("unexpected media records: %+v", timeline.Media)
	}
}

func TestUserTimeline_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL).UserTimeline(context.Background(), "42", 2); !errors.Is(err, errors.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}
