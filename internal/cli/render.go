package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/carecompanion/companion-cli/internal/bodymap"
	"github.com/carecompanion/companion-cli/internal/challenge"
	"github.com/carecompanion/companion-cli/internal/insights"
	"github.com/carecompanion/companion-cli/internal/timeline"
)

const barWidth = 20

// progressBar renders percent as a fixed-width bar. Percent outside [0, 100]
// is clamped for display only; the underlying value is preserved by callers.
func progressBar(percent float64) string {
	filled := int(percent / 100 * barWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}

// RenderChallenges renders the challenge list view. Completed challenges stay
// visible but get no check-in hint; unknown challenge types fall back to the
// neutral template.
func RenderChallenges(list []challenge.Challenge, now time.Time) string {
	if len(list) == 0 {
		return "No challenges yet. See `companion challenges templates` to start one.\n"
	}

	var b strings.Builder
	for i, c := range list {
		if i > 0 {
			b.WriteString("\n")
		}
		tmpl, _ := challenge.LookupTemplate(c.ChallengeType)
		s := challenge.Summarize(c, now)

		fmt.Fprintf(&b, "%s %s\n", tmpl.Icon, c.Title)
		fmt.Fprintf(&b, "   %s %3.0f%% · day %d of %d", progressBar(s.Percent), s.Percent, c.CompletedDays, c.DurationDays)
		switch {
		case c.IsCompleted:
			b.WriteString(" · completed")
		case s.Overdue:
			fmt.Fprintf(&b, " · overdue by %d day(s)", -s.DaysRemaining)
		default:
			fmt.Fprintf(&b, " · %d day(s) left", s.DaysRemaining)
		}
		b.WriteString("\n")

		if len(c.Badges) > 0 {
			b.WriteString("   badges:")
			for _, id := range c.Badges {
				info, _ := challenge.LookupBadge(id)
				fmt.Fprintf(&b, " %s %s", info.Icon, info.Label)
			}
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "   id: %s\n", c.ID)
	}
	return b.String()
}

// RenderTemplates renders the static catalog.
func RenderTemplates(templates []challenge.Template) string {
	var b strings.Builder
	b.WriteString("Available challenge templates:\n")
	for _, t := range templates {
		fmt.Fprintf(&b, "  %s %-12s %s (%d days)\n", t.Icon, t.Type, t.Title, t.DurationDays)
	}
	return b.String()
}

// RenderCheckInOutcome renders the confirmation for one successful check-in.
// A non-empty badge delta shows a "new badges" line; the confirmation does not
// have to name which badges beyond what the registry knows.
func RenderCheckInOutcome(o challenge.CheckInOutcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Checked in! %d day(s) done.\n", o.CompletedDays)
	if o.EarnedBadges() {
		b.WriteString("New badges earned:")
		for _, id := range o.NewBadges {
			info, _ := challenge.LookupBadge(id)
			fmt.Fprintf(&b, " %s %s", info.Icon, info.Label)
		}
		b.WriteString("\n")
	}
	if o.Completed {
		b.WriteString("Challenge completed! 🎉\n")
	}
	if o.Feedback != "" {
		fmt.Fprintf(&b, "\n%s\n", o.Feedback)
	}
	return b.String()
}

// RenderEntries renders the timeline, newest first as the server returns it.
func RenderEntries(entries []timeline.Entry) string {
	if len(entries) == 0 {
		return "No timeline entries yet.\n"
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %-9s %s", e.Timestamp.Format("2006-01-02 15:04"), e.EntryType, e.Title)
		if e.Severity > 0 {
			fmt.Fprintf(&b, " (severity %d/5)", e.Severity)
		}
		b.WriteString("\n")
		if e.Description != "" {
			fmt.Fprintf(&b, "                  %s\n", e.Description)
		}
	}
	return b.String()
}

// RenderInsights renders the server-computed aggregate summary.
func RenderInsights(p insights.Patterns) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Insights · %d entries logged · trend %s %s\n",
		p.TotalEntries, insights.TrendGlyph(p.OverallTrend), p.OverallTrend)
	if p.WeeklyCheckIns > 0 {
		fmt.Fprintf(&b, "Check-ins this week: %d\n", p.WeeklyCheckIns)
	}
	if len(p.TopSymptoms) > 0 {
		b.WriteString("Most logged symptoms:\n")
		for _, s := range p.TopSymptoms {
			fmt.Fprintf(&b, "  %2dx %s\n", s.Count, s.Title)
		}
	}
	return b.String()
}

// RenderAnalysis renders a body-map symptom analysis.
func RenderAnalysis(a bodymap.Analysis) string {
	return fmt.Sprintf("%s Severity: %s\n\n%s\n", bodymap.SeverityGlyph(a.Severity), a.Severity, a.Analysis)
}
