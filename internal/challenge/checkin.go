package challenge

import (
	"context"
	"errors"
	"strings"
)

// noNotesPlaceholder is sent when the user leaves the note empty. The backend
// treats an empty string and an absent field differently, so the client always
// sends something unambiguous.
const noNotesPlaceholder = "No notes"

// CheckInOutcome is what one successful check-in reports back to the
// presentation layer.
type CheckInOutcome struct {
	Feedback      string
	CompletedDays int
	// NewBadges is the ordered set difference of post- minus pre-check-in
	// badges. Non-empty means the UI shows a "new badges earned" signal.
	NewBadges []string
	// Completed reflects the reloaded, server-computed completion state.
	Completed bool
}

// EarnedBadges reports whether the check-in produced any new badges.
func (o CheckInOutcome) EarnedBadges() bool {
	return len(o.NewBadges) > 0
}

// CheckInWorkflow mediates one check-in attempt: target selection, note
// capture, submission, and result interpretation. It holds only a transient
// reference into the store; the store stays the single owner of challenge
// state.
type CheckInWorkflow struct {
	store    *Store
	selected *Challenge
}

// NewCheckInWorkflow creates a workflow over the given store.
func NewCheckInWorkflow(store *Store) *CheckInWorkflow {
	return &CheckInWorkflow{store: store}
}

// Select targets a challenge for check-in. Completed challenges are not
// offered the action, so selecting one fails.
func (w *CheckInWorkflow) Select(challengeID string) error {
	c, ok := w.store.Get(challengeID)
	if !ok {
		return ErrUnknownChallenge
	}
	if c.IsCompleted {
		return ErrChallengeCompleted
	}
	w.selected = &c
	return nil
}

// Selected returns the currently targeted challenge.
func (w *CheckInWorkflow) Selected() (Challenge, bool) {
	if w.selected == nil {
		return Challenge{}, false
	}
	return *w.selected, true
}

// Submit performs the check-in for the selected challenge. On success the
// challenge list is reloaded in full rather than patched locally, because
// completion and remaining days are server-computed truth. On failure nothing
// changes and the attempt may be retried.
func (w *CheckInWorkflow) Submit(ctx context.Context, notes string) (CheckInOutcome, error) {
	if w.selected == nil {
		return CheckInOutcome{}, ErrNoChallengeSelected
	}
	if w.selected.IsCompleted {
		return CheckInOutcome{}, ErrChallengeCompleted
	}

	notes = strings.TrimSpace(notes)
	if notes == "" {
		notes = noNotesPlaceholder
	}

	before := *w.selected

	result, err := w.store.CheckIn(ctx, before.ID, notes)
	if err != nil {
		return CheckInOutcome{}, err
	}

	outcome := CheckInOutcome{
		Feedback:      result.Feedback,
		CompletedDays: result.CompletedDays,
		NewBadges:     BadgeDelta(before.Badges, result.Badges),
	}

	if _, err := w.store.LoadActive(ctx); err != nil {
		// The check-in itself was recorded; report the outcome and mark the
		// list stale so the caller can retry the reload.
		return outcome, errors.Join(ErrStaleList, err)
	}

	if updated, ok := w.store.Get(before.ID); ok {
		outcome.Completed = updated.IsCompleted
		w.selected = &updated
	}
	if outcome.Completed {
		w.selected = nil
	}

	return outcome, nil
}

// BadgeDelta returns the identifiers present in after but not in before,
// preserving after's order. Identical sets produce an empty delta no matter
// how often it is recomputed.
func BadgeDelta(before, after []string) []string {
	seen := make(map[string]bool, len(before))
	for _, id := range before {
		seen[id] = true
	}
	var delta []string
	for _, id := range after {
		if !seen[id] {
			delta = append(delta, id)
		}
	}
	return delta
}
