package challenge

// badgeRegistry maps badge identifiers to display metadata. The backend owns
// which badges exist; this table only controls how known ones render.
var badgeRegistry = map[string]BadgeInfo{
	"first_checkin": {
		Label: "First Step",
		Icon:  "🌱",
		Color: "#34d399",
	},
	"three_day_streak": {
		Label: "On a Roll",
		Icon:  "🔥",
		Color: "#fb923c",
	},
	"halfway_there": {
		Label: "Halfway There",
		Icon:  "⛰️",
		Color: "#38bdf8",
	},
	"week_warrior": {
		Label: "Week Warrior",
		Icon:  "🗓️",
		Color: "#818cf8",
	},
	"challenge_completed": {
		Label: "Champion",
		Icon:  "🏆",
		Color: "#fbbf24",
	},
}

// LookupBadge resolves a badge identifier to display metadata. Identifiers the
// registry does not know render with the fallback values; the second return
// reports whether the id was known.
func LookupBadge(badgeID string) (BadgeInfo, bool) {
	if info, ok := badgeRegistry[badgeID]; ok {
		return info, true
	}
	return BadgeInfo{Label: badgeID, Icon: "🏅", Color: "#94a3b8"}, false
}
