package bodymap

import (
	"errors"
	"testing"
)

func TestAnalyzeInputValidate(t *testing.T) {
	valid := AnalyzeInput{BodyPart: "head", PainLevel: 3, Description: "dull ache"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}

	if err := (AnalyzeInput{BodyPart: "tail", PainLevel: 3}).Validate(); !errors.Is(err, ErrUnknownBodyPart) {
		t.Fatalf("expected ErrUnknownBodyPart, got %v", err)
	}

	for _, level := range []int{0, 6, -1} {
		if err := (AnalyzeInput{BodyPart: "back", PainLevel: level}).Validate(); !errors.Is(err, ErrInvalidPainLevel) {
			t.Fatalf("pain level %d should be rejected, got %v", level, err)
		}
	}
}

func TestSeverityGlyph_UnknownLabelFallsBack(t *testing.T) {
	if SeverityGlyph("apocalyptic") == "" {
		t.Fatalf("unknown severity must still render a glyph")
	}
}
