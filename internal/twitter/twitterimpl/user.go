package twitterimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/heyhimanshyou/portfolio-feed/pkg/errors"
)

type userResponse struct {
	Data struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Username string `json:"username"`
	} `json:"data"`
}

// ResolveUserID looks up the account behind a handle. A 2xx body
// without a user id means the handle does not exist.
func (t *TwitterImpl) ResolveUserID(ctx context.Context, handle string) (string, error) {
	body, err := t.get(ctx, fmt.Sprintf("%s/users/by/username/%s", t.baseURL, url.PathEscape(handle)))
	if err != nil {
		return "", err
	}

	var u userResponse
	if err := json.Unmarshal(body, &u); err != nil {
		return "", fmt.Errorf("decode user response: %w", err)
	}
	if u.Data.ID == "" {
		return "", errors.ErrUserNotFound
	}

	t.logger.Debug("Resolved handle", "handle", handle, "user_id", u.Data.ID)
	return u.Data.ID, nil
}
