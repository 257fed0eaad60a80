package bodymap

import (
	"errors"
	"fmt"
)

// bodyParts is the closed set of tappable regions on the body map.
var bodyParts = []string{
	"head", "neck", "chest", "stomach", "back",
	"left_arm", "right_arm", "left_leg", "right_leg",
}

// Severity labels the backend may return for an analysis. Unknown labels
// render with the neutral fallback.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

var (
	// ErrUnknownBodyPart indicates a region outside the body map.
	ErrUnknownBodyPart = errors.New("unknown body part")
	// ErrInvalidPainLevel indicates a pain level outside 1-5.
	ErrInvalidPainLevel = errors.New("pain level must be between 1 and 5")
)

// AnalyzeInput is one symptom-analysis request.
type AnalyzeInput struct {
	BodyPart    string `json:"body_part"`
	PainLevel   int    `json:"pain_level"`
	Description string `json:"description,omitempty"`
}

// Validate checks the input before a round trip.
func (in AnalyzeInput) Validate() error {
	known := false
	for _, p := range bodyParts {
		if in.BodyPart == p {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownBodyPart, in.BodyPart)
	}
	if in.PainLevel < 1 || in.PainLevel > 5 {
		return ErrInvalidPainLevel
	}
	return nil
}

// Analysis is the server's answer: a severity label from the closed set and an
// opaque narrative produced by the AI collaborator.
type Analysis struct {
	Severity string `json:"severity"`
	Analysis string `json:"analysis"`
}

// SeverityGlyph maps a severity label to a display marker with a neutral
// fallback.
func SeverityGlyph(severity string) string {
	switch severity {
	case SeverityMild:
		return "🟢"
	case SeverityModerate:
		return "🟡"
	case SeveritySevere:
		return "🔴"
	default:
		return "⚪"
	}
}

// BodyParts returns the closed set of valid regions for display.
func BodyParts() []string {
	out := make([]string, len(bodyParts))
	copy(out, bodyParts)
	return out
}
