package calendar

import (
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGroups() []competition.MatchdayGroup {
	return []competition.MatchdayGroup{
		{
			Label: "JORNADA 1",
			Matches: []competition.Match{
				{Home: "CD Meliana", Away: "Alboraya UD", Score: "2-1", Date: "07/09/2026", Time: "11:00", Venue: "Municipal de Meliana", IsHighlighted: true},
			},
		},
		{
			Label: "JORNADA 2",
			Matches: []competition.Match{
				{Home: "CF Foios", Away: "CD Meliana", Score: "vs", Date: "14/09/2026", Venue: "Camp de Foios", IsHighlighted: true},
				{Home: "Torrent CF", Away: "CD Meliana", Score: "vs", IsHighlighted: true},
			},
		},
	}
}

func madrid(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	return loc
}

func TestGenerateICS(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	ics := GenerateICS(testGroups(), Options{Name: "CD Meliana", Location: madrid(t), Now: now})

	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR\r\n"))
	assert.Contains(t, ics, "X-WR-CALNAME:CD Meliana\r\n")
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"), "undated match is skipped")

	// 11:00 CEST is 09:00 UTC
	assert.Contains(t, ics, "DTSTART:20260907T090000Z\r\n")
	assert.Contains(t, ics, "DTEND:20260907T110000Z\r\n")
	assert.Contains(t, ics, "SUMMARY:CD Meliana 2-1 Alboraya UD\r\n")
	assert.Contains(t, ics, "DESCRIPTION:JORNADA 1\r\n")
	assert.Contains(t, ics, "DTSTAMP:20260901T080000Z\r\n")

	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20260914\r\n")
	assert.Contains(t, ics, "DTEND;VALUE=DATE:20260915\r\n")
	assert.Contains(t, ics, "SUMMARY:CF Foios - CD Meliana\r\n")
	assert.Contains(t, ics, "LOCATION:Camp de Foios\r\n")

	uid := "UID:" + testGroups()[0].Matches[0].Key() + "@ffcv-tracker\r\n"
	assert.Contains(t, ics, uid)
}

func TestGenerateICS_Empty(t *testing.T) {
	ics := GenerateICS(nil, Options{})

	assert.NotContains(t, ics, "BEGIN:VEVENT")
	assert.NotContains(t, ics, "X-WR-CALNAME")
	assert.Contains(t, ics, "VERSION:2.0\r\n")
}

func TestGenerateICS_CustomDuration(t *testing.T) {
	groups := testGroups()[:1]
	ics := GenerateICS(groups, Options{Duration: 90 * time.Minute})

	assert.Contains(t, ics, "DTSTART:20260907T110000Z\r\n")
	assert.Contains(t, ics, "DTEND:20260907T123000Z\r\n")
}

func TestEscapeICS(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Simple text", "Simple text"},
		{"Text, with comma", "Text\\, with comma"},
		{"Text; with semicolon", "Text\\; with semicolon"},
		{"Line 1\nLine 2", "Line 1\\nLine 2"},
		{"Back\\slash", "Back\\\\slash"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeICS(tt.input))
		})
	}
}

func TestFormatICSTime(t *testing.T) {
	ts := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "20260315T143000Z", formatICSTime(ts))
}
