package api

import (
	"context"
	"net/http"

	"github.com/carecompanion/companion-cli/internal/insights"
)

// InsightPatterns fetches the server-computed aggregate and trend summary.
func (c *Client) InsightPatterns(ctx context.Context) (insights.Patterns, error) {
	var out insights.Patterns
	if err := c.do(ctx, http.MethodGet, "/api/insights/patterns", nil, &out); err != nil {
		return insights.Patterns{}, err
	}
	return out, nil
}
