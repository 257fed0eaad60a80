package challenge

import (
	"context"
	"log/slog"
	"sync"
)

// Store is the session-scoped source of truth for the signed-in user's
// challenges, mirroring backend state. It never mutates challenge progress
// locally; every transition comes from a completed backend call followed by a
// reload.
type Store struct {
	backend Backend
	logger  *slog.Logger

	mu         sync.Mutex
	challenges []Challenge
	loaded     bool
	pending    map[string]bool
}

// NewStore creates a store backed by the given collaborator.
func NewStore(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		backend: backend,
		logger:  logger,
		pending: map[string]bool{},
	}
}

// LoadActive fetches all challenges visible to the current session and
// replaces the cached list. On failure the prior list is left untouched so a
// transient network error never flashes an empty screen; the caller may simply
// retry.
func (s *Store) LoadActive(ctx context.Context) ([]Challenge, error) {
	fetched, err := s.backend.ActiveChallenges(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range fetched {
		if c.DurationDays <= 0 {
			s.logger.Warn("challenge has non-positive duration, progress will read 0%",
				"challenge_id", c.ID, "duration_days", c.DurationDays)
		}
		if c.IsCompleted && (c.CompletedDays != c.DurationDays || c.IsActive) {
			s.logger.Warn("completed challenge violates completion invariant",
				"challenge_id", c.ID, "completed_days", c.CompletedDays,
				"duration_days", c.DurationDays, "is_active", c.IsActive)
		}
	}

	s.mu.Lock()
	s.challenges = fetched
	s.loaded = true
	s.mu.Unlock()

	return s.Challenges(), nil
}

// Loaded reports whether at least one LoadActive has succeeded this session.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Challenges returns a copy of the cached list in server order.
func (s *Store) Challenges() []Challenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Challenge, len(s.challenges))
	copy(out, s.challenges)
	return out
}

// Get returns the cached challenge with the given id.
func (s *Store) Get(id string) (Challenge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.challenges {
		if c.ID == id {
			return c, true
		}
	}
	return Challenge{}, false
}

// Create asks the backend to instantiate a new challenge. The store does not
// refresh itself; the caller triggers LoadActive so control flow stays
// explicit and testable.
func (s *Store) Create(ctx context.Context, input CreateInput) (Challenge, error) {
	return s.backend.CreateChallenge(ctx, input)
}

// CheckIn records today's progress for one challenge. Only one submission may
// be in flight per challenge; a second concurrent attempt fails with
// ErrCheckInPending. On any backend failure the cached state is untouched.
func (s *Store) CheckIn(ctx context.Context, challengeID, notes string) (CheckInResult, error) {
	s.mu.Lock()
	if s.pending[challengeID] {
		s.mu.Unlock()
		return CheckInResult{}, ErrCheckInPending
	}
	s.pending[challengeID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.pending, challengeID)
		s.mu.Unlock()
	}()

	return s.backend.CheckIn(ctx, challengeID, notes)
}

// CheckInPending reports whether a check-in for the challenge is in flight.
// The presentation layer uses it to disable the submit affordance.
func (s *Store) CheckInPending(challengeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[challengeID]
}
