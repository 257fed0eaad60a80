package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/carecompanion/companion-cli/internal/timeline"
)

// CreateEntry logs a new timeline entry.
func (c *Client) CreateEntry(ctx context.Context, input timeline.EntryInput) (timeline.Entry, error) {
	var out timeline.Entry
	if err := c.do(ctx, http.MethodPost, "/api/timeline/entry", input, &out); err != nil {
		return timeline.Entry{}, err
	}
	return out, nil
}

// Entries fetches the newest-first timeline, capped at limit.
func (c *Client) Entries(ctx context.Context, limit int) ([]timeline.Entry, error) {
	path := "/api/timeline/entries"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	var out []timeline.Entry
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
