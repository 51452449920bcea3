package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
)

// Round table layout: home, blank, result/time, blank, away, venue, blank, history
const (
	colRoundHome   = 0
	colRoundMiddle = 2
	colRoundAway   = 4
	colRoundVenue  = 5
)

var compactScorePattern = regexp.MustCompile(`^\d{2}$`)

// ParseRound extracts the fixtures of the current-round table
func ParseRound(html string, hl competition.Highlighter) []competition.Match {
	matches := make([]competition.Match, 0)

	eachRow(html, func(_, cells *goquery.Selection) {
		if !IsRoundRow(cells.Length()) {
			return
		}

		home := cellText(cells, colRoundHome)
		away := cellText(cells, colRoundAway)
		if !ValidRoundTeams(home, away) {
			return
		}

		score, kickoff := SplitRoundResult(cellText(cells, colRoundMiddle))

		matches = append(matches, competition.Match{
			Home:          home,
			Away:          away,
			Score:         score,
			Time:          kickoff,
			Venue:         cellText(cells, colRoundVenue),
			IsHighlighted: hl.MatchAny(home, away),
		})
	})

	return matches
}

// SplitRoundResult tells a kickoff time from a score in the round table's middle cell.
// "09:30" is a time, "43" is the compact form of 4-3, anything else non-empty is kept
// as the score, and an empty cell means the match has no result.
func SplitRoundResult(raw string) (score, kickoff string) {
	switch {
	case strings.Contains(raw, ":"):
		return competition.ScorePending, raw
	case compactScorePattern.MatchString(raw):
		return raw[:1] + "-" + raw[1:], ""
	case raw != "":
		return raw, ""
	default:
		return competition.ScorePending, ""
	}
}
