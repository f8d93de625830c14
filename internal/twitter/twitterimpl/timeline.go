package twitterimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/heyhimanshyou/portfolio-feed/internal/twitter"
)

// The tweets endpoint rejects max_results below 5, so small limits are
// padded here and truncated by the caller.
const minPageSize = 5

type timelineResponse struct {
	Data     []twitter.Tweet `json:"data"`
	Includes struct {
		Media []twitter.Media `json:"media"`
	} `json:"includes"`
}

func (t *TwitterImpl) UserTimeline(ctx context.Context, userID string, limit int) (*twitter.Timeline, error) {
	params := url.Values{}
	params.Set("max_results", strconv.Itoa(max(limit, minPageSize)))
	params.Set("tweet.fields", "created_at,attachments,text")
	params.Set("expansions", "attachments.media_keys")
	params.Set("media.fields", "url,preview_image_url,type,width,height")
	// exclude is a multi-value field: one value per repeated parameter,
	// not comma-joined.
	params.Add("exclude", "replies")
	params.Add("exclude", "retweets")

	body, err := t.get(ctx, fmt.Sprintf("%s/users/%s/tweets?%s", t.baseURL, userID, params.Encode()))
	if err != nil {
		return nil, err
	}

	var res timelineResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode timeline response: %w", err)
	}

	t.logger.Debug("Fetched timeline", "user_id", userID, "tweets", len(res.Data), "media", len(res.Includes.Media))
	return &twitter.Timeline{Tweets: res.Data, Media: res.Includes.Media}, nil
}
