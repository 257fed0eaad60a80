package challenge

// templates is the canonical list of challenge templates offered by the
// product. Keep IDs stable because the backend stores challenge_type verbatim.
func templates() []Template {
	return []Template{
		{
			Type:         "hydration",
			Title:        "Hydration Hero",
			Description:  "Drink 8 glasses of water every day",
			DurationDays: 3,
			Icon:         "💧",
			Color:        "#38bdf8",
		},
		{
			Type:         "sleep",
			Title:        "Sleep Reset",
			Description:  "Get at least 7 hours of sleep each night",
			DurationDays: 7,
			Icon:         "😴",
			Color:        "#818cf8",
		},
		{
			Type:         "exercise",
			Title:        "Move More",
			Description:  "30 minutes of movement every day",
			DurationDays: 14,
			Icon:         "🏃",
			Color:        "#34d399",
		},
		{
			Type:         "mindfulness",
			Title:        "Calm Mind",
			Description:  "10 minutes of mindfulness practice daily",
			DurationDays: 7,
			Icon:         "🧘",
			Color:        "#fbbf24",
		},
		{
			Type:         "medication",
			Title:        "Medication Streak",
			Description:  "Take your medication on schedule every day",
			DurationDays: 30,
			Icon:         "💊",
			Color:        "#f87171",
		},
	}
}

// FallbackTemplate carries neutral display values used when a challenge
// references a type the catalog does not know. Unknown types render, they
// never fail.
var FallbackTemplate = Template{
	Type:  "unknown",
	Title: "Challenge",
	Icon:  "🎯",
	Color: "#94a3b8",
}

// Templates returns a copy of the catalog so callers cannot mutate it.
func Templates() []Template {
	defs := templates()
	out := make([]Template, len(defs))
	copy(out, defs)
	return out
}

// LookupTemplate resolves a challenge type to its template. The second return
// reports whether the type is known; a false result is not an error.
func LookupTemplate(challengeType string) (Template, bool) {
	for _, t := range templates() {
		if t.Type == challengeType {
			return t, true
		}
	}
	return FallbackTemplate, false
}
