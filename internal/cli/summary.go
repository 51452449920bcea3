package cli

import (
	"time"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
	"github.com/pfrederiksen/ffcv-tracker/internal/scraper"
)

// Summary describes the tracked team at a point in time
type Summary struct {
	Team       string                     `json:"team"`
	Standing   *competition.StandingEntry `json:"standing,omitempty"`
	LastResult *competition.Match         `json:"lastResult,omitempty"`
	NextMatch  *competition.Match         `json:"nextMatch,omitempty"`
	Round      []competition.Match        `json:"round"`
}

// BuildSummary picks the tracked team's standing, latest result, next fixture and
// current-round matches out of the three pages.
func BuildSummary(team string, bundle *scraper.Bundle, now time.Time, loc *time.Location) *Summary {
	summary := &Summary{
		Team:  team,
		Round: highlightedRound(bundle.Round),
	}

	for i := range bundle.Standings {
		if bundle.Standings[i].IsHighlighted {
			entry := bundle.Standings[i]
			summary.Standing = &entry
			summary.Team = entry.Name
			break
		}
	}

	fixtures := competition.Merge(competition.Highlighted(bundle.Calendar), summary.Round)

	// calendar order is chronological and round-only matches come last,
	// so the last played entry is the latest result
	for i := len(fixtures) - 1; i >= 0; i-- {
		if fixtures[i].Played() {
			m := fixtures[i]
			summary.LastResult = &m
			break
		}
	}

	summary.NextMatch = nextMatch(fixtures, now, loc)

	return summary
}

// nextMatch returns the earliest upcoming fixture; undated fixtures rank last
func nextMatch(fixtures []competition.Match, now time.Time, loc *time.Location) *competition.Match {
	var next *competition.Match
	var nextKickoff time.Time

	for i := range fixtures {
		m := fixtures[i]
		if !m.IsUpcoming(now, loc) {
			continue
		}
		kickoff, _ := m.Kickoff(loc)

		switch {
		case next == nil:
		case kickoff.IsZero():
			continue
		case !nextKickoff.IsZero() && !kickoff.Before(nextKickoff):
			continue
		}
		next = &m
		nextKickoff = kickoff
	}

	return next
}
