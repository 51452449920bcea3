package scraper

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
)

// Column offsets of the ranking table
const (
	colPosition = iota + 1
	colName
	colPlayed
	colWon
	colDrawn
	colLost
	colGoalsFor
	colGoalsAgainst
	colGoalDifference
	colPoints
)

// ParseStandings extracts the ranking table in document order
func ParseStandings(html string, hl competition.Highlighter) []competition.StandingEntry {
	entries := make([]competition.StandingEntry, 0)

	eachRow(html, func(_, cells *goquery.Selection) {
		if !IsStandingsRow(cells.Length(), cells.First().AttrOr("colspan", "") != "") {
			return
		}

		name := cellText(cells, colName)
		position, ok := ValidStanding(cellText(cells, colPosition), name)
		if !ok {
			return
		}

		count := func(i int) int { return NormalizeCount(cells.Eq(i)) }

		entries = append(entries, competition.StandingEntry{
			Position:       position,
			Name:           name,
			Played:         count(colPlayed),
			Won:            count(colWon),
			Drawn:          count(colDrawn),
			Lost:           count(colLost),
			GoalsFor:       count(colGoalsFor),
			GoalsAgainst:   count(colGoalsAgainst),
			GoalDifference: count(colGoalDifference),
			Points:         count(colPoints),
			IsHighlighted:  hl.Match(name),
		})
	})

	return entries
}
