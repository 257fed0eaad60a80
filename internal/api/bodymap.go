package api

import (
	"context"
	"net/http"

	"github.com/carecompanion/companion-cli/internal/bodymap"
)

// AnalyzeSymptom requests an AI symptom analysis for a body-map region. The
// analysis text is opaque to the client.
func (c *Client) AnalyzeSymptom(ctx context.Context, input bodymap.AnalyzeInput) (bodymap.Analysis, error) {
	var out bodymap.Analysis
	if err := c.do(ctx, http.MethodPost, "/api/bodymap/analyze", input, &out); err != nil {
		return bodymap.Analysis{}, err
	}
	return out, nil
}
