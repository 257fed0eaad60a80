package challenge

import "time"

// ProgressPercent returns completion progress in [0, 100]. A non-positive
// duration is a data error from the backend and reports 0; callers that see
// one should flag it upstream rather than render a misleading bar.
func ProgressPercent(completedDays, durationDays int) float64 {
	if durationDays <= 0 {
		return 0
	}
	return 100 * float64(completedDays) / float64(durationDays)
}

// DaysRemaining returns the calendar-day distance from now to the challenge
// end date, evaluated in the end date's location. The result is negative when
// the challenge has lapsed without completion; callers render that as overdue
// instead of clamping to zero.
func DaysRemaining(endDate, now time.Time) int {
	// Civil dates are compared in UTC so DST transitions cannot shorten a day.
	ey, em, ed := endDate.Date()
	ty, tm, td := now.In(endDate.Location()).Date()
	end := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	today := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(today) / (24 * time.Hour))
}

// Summary bundles the derived fields a challenge row renders from.
type Summary struct {
	Percent       float64
	DaysRemaining int
	Overdue       bool
}

// Summarize derives display progress for a challenge at the given instant.
func Summarize(c Challenge, now time.Time) Summary {
	remaining := DaysRemaining(c.EndDate, now)
	return Summary{
		Percent:       ProgressPercent(c.CompletedDays, c.DurationDays),
		DaysRemaining: remaining,
		Overdue:       remaining < 0 && !c.IsCompleted,
	}
}
