package timeline

import (
	"errors"
	"testing"
)

func TestEntryInputValidate(t *testing.T) {
	cases := []struct {
		name    string
		input   EntryInput
		wantErr error
	}{
		{"symptom with severity", EntryInput{EntryType: EntrySymptom, Title: "Headache", Severity: 3}, nil},
		{"note without severity", EntryInput{EntryType: EntryNote, Title: "Slept well"}, nil},
		{"missing title", EntryInput{EntryType: EntryMood}, ErrTitleRequired},
		{"severity too high", EntryInput{EntryType: EntrySymptom, Title: "Headache", Severity: 6}, ErrInvalidSeverity},
		{"severity on mood entry", EntryInput{EntryType: EntryMood, Title: "Stressed", Severity: 2}, ErrInvalidSeverity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.input.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected valid input, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestEntryInputValidate_UnknownType(t *testing.T) {
	err := EntryInput{EntryType: "dream", Title: "Flying"}.Validate()
	if err == nil {
		t.Fatalf("expected error for unknown entry type")
	}
}
