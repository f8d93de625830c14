package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/heyhimanshyou/portfolio-feed/internal/domain"
	"github.com/heyhimanshyou/portfolio-feed/internal/twitter"
	"github.com/heyhimanshyou/portfolio-feed/pkg/errors"
)

// handleRecentPosts backs the "Recent Posts" section of the site.
// GET /api/twitter/recent?username=&limit=
func (s *Server) handleRecentPosts(c *gin.Context) {
	limit := s.Config.Feed.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	result, err := s.Feed.GetRecentPosts(c.Request.Context(), c.Query("username"), limit)
	if err != nil {
		s.renderError(c, err)
		return
	}

	maxAge := s.Config.Feed.LiveMaxAge
	if result.Source == domain.SourceFallback {
		// Shorter lifetime so the page recovers soon after the rate
		// limit clears.
		maxAge = s.Config.Feed.FallbackMaxAge
	}
	c.Header("Cache-Control", fmt.Sprintf("s-maxage=%d, stale-while-revalidate=%d", maxAge, s.Config.Feed.StaleWhileRevalidate))

	posts := result.Posts
	if posts == nil {
		posts = []domain.Post{}
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (s *Server) renderError(c *gin.Context, err error) {
	// Upstream failures pass through with their status and body intact.
	var apiErr *twitter.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Body})
		return
	}

	status := errors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.Logger.Error("Recent posts request failed", "error", err)
	}
	c.JSON(status, gin.H{"error": errors.GetMessage(err)})
}
