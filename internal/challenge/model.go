package challenge

import (
	"context"
	"time"
)

// Template is a static challenge blueprint. Templates are defined at build
// time in the catalog and never mutated; a Challenge is always created from
// one of them.
type Template struct {
	Type         string `json:"type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DurationDays int    `json:"duration_days"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
}

// Challenge mirrors a server-owned challenge document. The client caches it
// but never mutates CompletedDays or Badges without a confirmed server
// response.
type Challenge struct {
	ID            string    `json:"id"`
	ChallengeType string    `json:"challenge_type"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DurationDays  int       `json:"duration_days"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	CompletedDays int       `json:"completed_days"`
	IsActive      bool      `json:"is_active"`
	IsCompleted   bool      `json:"is_completed"`
	Badges        []string  `json:"badges"`
}

// CheckInResult is the server's answer to one check-in. Feedback is an opaque
// narrative string produced server-side; Badges is the full post-check-in
// badge set, not a delta.
type CheckInResult struct {
	Feedback      string   `json:"ai_feedback"`
	CompletedDays int      `json:"completed_days"`
	Badges        []string `json:"badges"`
}

// CreateInput is what the creation workflow submits, copied verbatim from the
// chosen template.
type CreateInput struct {
	Type         string `json:"challenge_type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DurationDays int    `json:"duration_days"`
}

// BadgeInfo holds display metadata for a badge identifier.
type BadgeInfo struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Backend is the remote collaborator the store mirrors. The HTTP client in
// internal/api implements it; tests substitute fakes.
type Backend interface {
	ActiveChallenges(ctx context.Context) ([]Challenge, error)
	CreateChallenge(ctx context.Context, input CreateInput) (Challenge, error)
	CheckIn(ctx context.Context, challengeID, notes string) (CheckInResult, error)
}
