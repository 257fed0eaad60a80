package challenge

import "errors"

var (
	// ErrNoChallengeSelected indicates a check-in was submitted without a target.
	ErrNoChallengeSelected = errors.New("no challenge selected")
	// ErrChallengeCompleted indicates a check-in was attempted on a finished challenge.
	ErrChallengeCompleted = errors.New("challenge is already completed")
	// ErrCheckInPending indicates a check-in for this challenge is already in flight.
	ErrCheckInPending = errors.New("a check-in for this challenge is already in flight")
	// ErrUnknownTemplate indicates a creation request referenced a type outside the catalog.
	ErrUnknownTemplate = errors.New("unknown challenge template")
	// ErrUnknownChallenge indicates the referenced id is not in the local store.
	ErrUnknownChallenge = errors.New("challenge not found in local store")
	// ErrStaleList indicates a mutation was recorded server-side but the
	// follow-up list refresh failed, so the cached challenges may be out of
	// date.
	ErrStaleList = errors.New("challenge list refresh failed")
)
