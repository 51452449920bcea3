package scraper

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
)

const (
	standingsMinCells = 11
	roundCells        = 8
	calendarCells     = 6
	headerCells       = 1

	// minTeamNameLen rejects separator and blank rows in the round table
	minTeamNameLen = 3

	matchdayToken = "JORNADA"
)

// IsStandingsRow accepts ranking rows: at least 11 cells and a first cell that
// is not a merged (colspan) header cell.
func IsStandingsRow(cellCount int, firstCellSpans bool) bool {
	return cellCount >= standingsMinCells && !firstCellSpans
}

// ValidStanding checks the position and name cells of an accepted ranking row
// and returns the parsed position.
func ValidStanding(positionText, name string) (int, bool) {
	if name == "" || name == competition.HeaderSentinel {
		return 0, false
	}
	return leadingInt(positionText)
}

// IsRoundRow accepts fixture rows of the current-round table
func IsRoundRow(cellCount int) bool {
	return cellCount == roundCells
}

// ValidRoundTeams rejects rows whose team cells are too short to be names
func ValidRoundTeams(home, away string) bool {
	return utf8.RuneCountInString(home) >= minTeamNameLen && utf8.RuneCountInString(away) >= minTeamNameLen
}

// IsMatchdayHeader accepts single-cell rows that title a round
func IsMatchdayHeader(cellCount int, rowText string) bool {
	return cellCount == headerCells && strings.Contains(strings.ToUpper(rowText), matchdayToken)
}

// IsCalendarRow accepts fixture rows of the season calendar.
// Rows before the first round header have no group to join and are dropped.
func IsCalendarRow(cellCount int, groupOpen bool) bool {
	return cellCount == calendarCells && groupOpen
}

// eachRow walks every table row of the document in order
func eachRow(html string, fn func(row, cells *goquery.Selection)) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return
	}
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		fn(row, row.Find("td"))
	})
}
