package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
)

// Calendar fixture row layout
const (
	colCalendarTeams    = 2
	colCalendarScore    = 3
	colCalendarDateTime = 4
	colCalendarVenue    = 5
)

var teamsSeparator = regexp.MustCompile(`\s+-\s+`)

// ParseCalendar groups the season calendar's fixtures under their round headers.
// Groups are returned in header order and may be empty.
func ParseCalendar(html string, hl competition.Highlighter) []competition.MatchdayGroup {
	groups := make([]competition.MatchdayGroup, 0)
	open := -1

	eachRow(html, func(row, cells *goquery.Selection) {
		label := strings.ToUpper(strings.TrimSpace(row.Text()))

		if IsMatchdayHeader(cells.Length(), label) {
			groups = append(groups, competition.MatchdayGroup{
				Label:   label,
				Matches: make([]competition.Match, 0),
			})
			open = len(groups) - 1
			return
		}

		if !IsCalendarRow(cells.Length(), open >= 0) {
			return
		}

		match, ok := parseCalendarFixture(cells, hl)
		if !ok {
			return
		}
		groups[open].Matches = append(groups[open].Matches, match)
	})

	return groups
}

func parseCalendarFixture(cells *goquery.Selection, hl competition.Highlighter) (competition.Match, bool) {
	home, away, ok := SplitTeams(cellText(cells, colCalendarTeams))
	if !ok {
		return competition.Match{}, false
	}

	score := cellText(cells, colCalendarScore)
	if score == "" || score == "-" {
		score = competition.ScorePending
	}

	date, kickoff := SplitDateTime(cellText(cells, colCalendarDateTime))

	return competition.Match{
		Home:          home,
		Away:          away,
		Score:         score,
		Date:          date,
		Time:          kickoff,
		Venue:         cellText(cells, colCalendarVenue),
		IsHighlighted: hl.MatchAny(home, away),
	}, true
}

// SplitTeams splits "<home> - <away>". Hyphens inside a name without surrounding
// whitespace are kept.
func SplitTeams(raw string) (home, away string, ok bool) {
	parts := teamsSeparator.Split(raw, -1)
	if len(parts) < 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// SplitDateTime splits the calendar's combined "dd/mm/yyyy HH:MM" cell.
// Missing parts come back empty.
func SplitDateTime(raw string) (date, kickoff string) {
	fields := strings.Fields(raw)
	if len(fields) > 0 {
		date = fields[0]
	}
	if len(fields) > 1 {
		kickoff = fields[1]
	}
	return date, kickoff
}
