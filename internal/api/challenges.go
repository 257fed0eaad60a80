package api

import (
	"context"
	"net/http"

	"github.com/carecompanion/companion-cli/internal/challenge"
)

// ActiveChallenges fetches every challenge visible to the current session.
func (c *Client) ActiveChallenges(ctx context.Context) ([]challenge.Challenge, error) {
	var out []challenge.Challenge
	if err := c.do(ctx, http.MethodGet, "/api/challenges/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateChallenge asks the backend to instantiate a challenge from the given
// template fields.
func (c *Client) CreateChallenge(ctx context.Context, input challenge.CreateInput) (challenge.Challenge, error) {
	var out challenge.Challenge
	if err := c.do(ctx, http.MethodPost, "/api/challenges/create", input, &out); err != nil {
		return challenge.Challenge{}, err
	}
	return out, nil
}

type checkInRequest struct {
	ChallengeID string `json:"challenge_id"`
	Notes       string `json:"notes,omitempty"`
}

// CheckIn records today's progress for one challenge. Duplicate-day detection
// is the backend's call; it comes back as a validation error with the
// backend's own wording.
func (c *Client) CheckIn(ctx context.Context, challengeID, notes string) (challenge.CheckInResult, error) {
	var out challenge.CheckInResult
	req := checkInRequest{ChallengeID: challengeID, Notes: notes}
	if err := c.do(ctx, http.MethodPost, "/api/challenges/checkin", req, &out); err != nil {
		return challenge.CheckInResult{}, err
	}
	return out, nil
}
