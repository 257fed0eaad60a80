package timeline

import (
	"errors"
	"fmt"
	"time"
)

// EntryType identifies what kind of moment a timeline entry records.
type EntryType string

const (
	EntrySymptom   EntryType = "symptom"
	EntryMood      EntryType = "mood"
	EntryMedicine  EntryType = "medicine"
	EntrySleep     EntryType = "sleep"
	EntryHydration EntryType = "hydration"
	EntryNote      EntryType = "note"
)

var entryTypes = []EntryType{
	EntrySymptom, EntryMood, EntryMedicine, EntrySleep, EntryHydration, EntryNote,
}

var (
	// ErrTitleRequired indicates an entry was submitted without a title.
	ErrTitleRequired = errors.New("entry title is required")
	// ErrInvalidSeverity indicates a severity outside 1-5 or on a non-symptom entry.
	ErrInvalidSeverity = errors.New("severity must be between 1 and 5 and only on symptom entries")
)

// Entry mirrors a server-owned timeline entry.
type Entry struct {
	ID          string    `json:"id"`
	EntryType   EntryType `json:"entry_type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Severity    int       `json:"severity,omitempty"`
	Tags        []string  `json:"tags"`
	Timestamp   time.Time `json:"timestamp"`
}

// EntryInput is what the client submits when logging a new entry. Severity is
// only meaningful for symptom entries.
type EntryInput struct {
	EntryType   EntryType `json:"entry_type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Severity    int       `json:"severity,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

// Validate checks an input before it is sent. The backend validates again;
// this just catches obvious mistakes before a round trip.
func (in EntryInput) Validate() error {
	known := false
	for _, t := range entryTypes {
		if in.EntryType == t {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown entry type %q", in.EntryType)
	}
	if in.Title == "" {
		return ErrTitleRequired
	}
	if in.Severity != 0 {
		if in.EntryType != EntrySymptom || in.Severity < 1 || in.Severity > 5 {
			return ErrInvalidSeverity
		}
	}
	return nil
}

// EntryTypes returns the closed set of valid entry types for display.
func EntryTypes() []EntryType {
	out := make([]EntryType, len(entryTypes))
	copy(out, entryTypes)
	return out
}
