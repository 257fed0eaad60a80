package insights

// Trend labels come from a small closed set owned by the backend. Unknown
// labels still render, just without a direction glyph.
const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendWorsening = "worsening"
)

// Patterns is the aggregate the insights endpoint returns. Everything here is
// server-computed; the client only renders it.
type Patterns struct {
	TotalEntries   int            `json:"total_entries"`
	EntryCounts    map[string]int `json:"entry_counts"`
	TopSymptoms    []SymptomCount `json:"top_symptoms"`
	OverallTrend   string         `json:"overall_trend"`
	WeeklyCheckIns int            `json:"weekly_check_ins"`
}

// SymptomCount pairs a symptom title with how often it was logged.
type SymptomCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// TrendGlyph maps a trend label to a direction indicator, with a neutral
// fallback for labels outside the known set.
func TrendGlyph(trend string) string {
	switch trend {
	case TrendImproving:
		return "↑"
	case TrendWorsening:
		return "↓"
	case TrendStable:
		return "→"
	default:
		return "·"
	}
}
