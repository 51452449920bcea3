package competition

import (
	"math"
	"strings"
	"time"
)

var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02/01/06",
	"2/1/06",
}

// ParseDate parses a provider date such as "19/10/2026" in loc.
// Returns the zero time when the text is empty or unrecognised.
func ParseDate(dateText string, loc *time.Location) time.Time {
	dateText = strings.TrimSpace(dateText)
	if dateText == "" {
		return time.Time{}
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, dateText, loc); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Kickoff combines the match date and time in loc.
// The second result is false when only the day is known.
func (m Match) Kickoff(loc *time.Location) (time.Time, bool) {
	day := ParseDate(m.Date, loc)
	if day.IsZero() {
		return time.Time{}, false
	}

	clock, err := time.Parse("15:04", strings.TrimSpace(m.Time))
	if err != nil {
		return day, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location()), true
}

// IsUpcoming reports whether the match has no result and its date is not in the past.
// Undated pending matches count as upcoming.
func (m Match) IsUpcoming(now time.Time, loc *time.Location) bool {
	if m.Played() {
		return false
	}
	day := ParseDate(m.Date, loc)
	if day.IsZero() {
		return true
	}
	return !day.AddDate(0, 0, 1).Before(now)
}

// DaysUntil returns the number of calendar days from now to the match date in loc.
// It reports false when the date cannot be parsed.
func (m Match) DaysUntil(now time.Time, loc *time.Location) (int, bool) {
	if loc == nil {
		loc = time.UTC
	}
	day := ParseDate(m.Date, loc)
	if day.IsZero() {
		return 0, false
	}

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	// round to absorb DST shifts inside the interval
	return int(math.Round(day.Sub(today).Hours() / 24)), true
}
