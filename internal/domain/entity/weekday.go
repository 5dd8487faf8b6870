package entity

import "strings"

// DefaultBusinessHours is the placeholder used for weekdays without stored hours.
const DefaultBusinessHours = "9:00 AM - 5:00 PM"

// Weekdays is the canonical order of business-hour rows.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// ParseWeekday returns the canonical name of s, ignoring case and surrounding space.
func ParseWeekday(s string) (string, bool) {
	needle := strings.TrimSpace(s)
	for _, day := range Weekdays {
		if strings.EqualFold(day, needle) {
			return day, true
		}
	}

	return "", false
}

// NormalizeBusinessHours returns exactly one row per weekday in canonical order.
// Rows are matched to weekdays with ParseWeekday; missing days get the default placeholder.
// Callers validate input first, so unknown days are skipped and the first duplicate wins.
func NormalizeBusinessHours(rows []*BusinessHour) []*BusinessHour {
	byDay := make(map[string]*BusinessHour, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		day, ok := ParseWeekday(row.Day)
		if !ok {
			continue
		}
		if _, seen := byDay[day]; !seen {
			byDay[day] = row
		}
	}

	out := make([]*BusinessHour, 0, len(Weekdays))
	for _, day := range Weekdays {
		if existing, ok := byDay[day]; ok {
			out = append(out, &BusinessHour{
				ID:        existing.ID,
				ProfileID: existing.ProfileID,
				Day:       day,
				Hours:     existing.Hours,
				IsOpen:    existing.IsOpen,
			})

			continue
		}
		out = append(out, &BusinessHour{Day: day, Hours: DefaultBusinessHours, IsOpen: true})
	}

	return out
}
