package challenge

import "testing"

func TestLookupTemplate_KnownTypes(t *testing.T) {
	for _, tmpl := range Templates() {
		got, ok := LookupTemplate(tmpl.Type)
		if !ok {
			t.Fatalf("catalog template %q not found by lookup", tmpl.Type)
		}
		if got.DurationDays <= 0 {
			t.Fatalf("template %q has non-positive duration", tmpl.Type)
		}
	}
}

func TestLookupTemplate_UnknownTypeFallsBack(t *testing.T) {
	got, ok := LookupTemplate("quantum_fasting")
	if ok {
		t.Fatalf("unknown type should report not-found")
	}
	if got.Icon == "" || got.Color == "" {
		t.Fatalf("fallback template must carry renderable icon and color, got %+v", got)
	}
}

func TestTemplates_ReturnsCopy(t *testing.T) {
	first := Templates()
	first[0].Title = "mutated"
	if Templates()[0].Title == "mutated" {
		t.Fatalf("catalog must not be mutable through Templates()")
	}
}

func TestLookupBadge(t *testing.T) {
	info, ok := LookupBadge("challenge_completed")
	if !ok || info.Label != "Champion" {
		t.Fatalf("expected champion badge, got %+v (known=%v)", info, ok)
	}

	fallback, ok := LookupBadge("badge_from_the_future")
	if ok {
		t.Fatalf("unknown badge should report not-found")
	}
	if fallback.Label == "" || fallback.Icon == "" {
		t.Fatalf("unknown badge must render with fallback values, got %+v", fallback)
	}
}
