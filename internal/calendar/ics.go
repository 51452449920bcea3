// Package calendar exports fixtures as an iCalendar feed.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
)

// DefaultDuration is the length given to a timed fixture
const DefaultDuration = 2 * time.Hour

// Options controls feed generation
type Options struct {
	Name     string         // X-WR-CALNAME, omitted when empty
	Location *time.Location // zone of the provider's dates, UTC when nil
	Duration time.Duration  // DefaultDuration when zero
	Now      time.Time      // DTSTAMP, time.Now when zero
}

// GenerateICS renders one VEVENT per match with a parseable date.
// Matches without a kickoff time become all-day events.
func GenerateICS(groups []competition.MatchdayGroup, opts Options) string {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//FFCV Tracker//ffcv-tracker//ES\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	if opts.Name != "" {
		ics.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICS(opts.Name)))
	}

	for _, group := range groups {
		for _, m := range group.Matches {
			writeEvent(&ics, group.Label, m, opts)
		}
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeEvent(ics *strings.Builder, label string, m competition.Match, opts Options) {
	start, timed := m.Kickoff(opts.Location)
	if start.IsZero() {
		return
	}

	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("UID:%s@ffcv-tracker\r\n", m.Key()))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(opts.Now)))

	if timed {
		ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
		ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(start.Add(opts.Duration))))
	} else {
		ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", start.Format("20060102")))
		ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", start.AddDate(0, 0, 1).Format("20060102")))
	}

	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary(m))))
	if label != "" {
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(label)))
	}
	if m.Venue != "" {
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(m.Venue)))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

func summary(m competition.Match) string {
	if m.Played() {
		return fmt.Sprintf("%s %s %s", m.Home, m.Score, m.Away)
	}
	return fmt.Sprintf("%s - %s", m.Home, m.Away)
}

// formatICSTime formats a time.Time as an iCalendar UTC datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes text values per RFC 5545
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
