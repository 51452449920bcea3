package competition

import (
	"crypto/sha1"
	"fmt"
	"strings"
)

const (
	// ScorePending marks a fixture without a result.
	ScorePending = "vs"

	// scoreDash is the provider's placeholder for a result not yet entered.
	scoreDash = "-"

	// HeaderSentinel is the team-name cell of the standings header row.
	HeaderSentinel = "Club"
)

// StandingEntry is one team's row in a ranking table
type StandingEntry struct {
	Position       int    `json:"position"`
	Name           string `json:"name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
	IsHighlighted  bool   `json:"isHighlighted"`
}

// Match is a single fixture, played or scheduled
type Match struct {
	Home          string `json:"home"`
	Away          string `json:"away"`
	Score         string `json:"score"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Venue         string `json:"venue"`
	IsHighlighted bool   `json:"isHighlighted"`
}

// MatchdayGroup is a round of the season calendar
type MatchdayGroup struct {
	Label   string  `json:"label"`
	Matches []Match `json:"matches"`
}

// Played reports whether the match carries a result
func (m Match) Played() bool {
	score := strings.TrimSpace(m.Score)
	return score != "" && score != ScorePending && score != scoreDash
}

// Key returns a deterministic identifier for the fixture.
// A pairing is played once per venue order in a season, so home and away are enough.
func (m Match) Key() string {
	h := sha1.New()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(m.Home)) + "|" + strings.ToLower(strings.TrimSpace(m.Away))))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Merge combines the calendar and current-round copies of the tracked fixtures,
// one match per Key in first-seen order. A played copy replaces a pending one, and
// date, time and venue missing from the kept copy are taken from the other.
func Merge(calendar, round []Match) []Match {
	index := make(map[string]int, len(calendar)+len(round))
	merged := make([]Match, 0, len(calendar)+len(round))

	add := func(m Match) {
		key := m.Key()
		i, seen := index[key]
		if !seen {
			index[key] = len(merged)
			merged = append(merged, m)
			return
		}
		merged[i] = mergeCopies(merged[i], m)
	}
	for _, m := range calendar {
		add(m)
	}
	for _, m := range round {
		add(m)
	}
	return merged
}

func mergeCopies(kept, other Match) Match {
	if !kept.Played() && other.Played() {
		kept, other = other, kept
	}
	if kept.Date == "" {
		kept.Date = other.Date
	}
	if kept.Time == "" {
		kept.Time = other.Time
	}
	if kept.Venue == "" {
		kept.Venue = other.Venue
	}
	kept.IsHighlighted = kept.IsHighlighted || other.IsHighlighted
	return kept
}

// Highlighted returns the highlighted matches of all groups, in calendar order
func Highlighted(groups []MatchdayGroup) []Match {
	out := make([]Match, 0)
	for _, g := range groups {
		for _, m := range g.Matches {
			if m.IsHighlighted {
				out = append(out, m)
			}
		}
	}
	return out
}

// HighlightedGroups keeps only highlighted matches, dropping groups left empty
func HighlightedGroups(groups []MatchdayGroup) []MatchdayGroup {
	out := make([]MatchdayGroup, 0, len(groups))
	for _, g := range groups {
		matches := Highlighted([]MatchdayGroup{g})
		if len(matches) > 0 {
			out = append(out, MatchdayGroup{Label: g.Label, Matches: matches})
		}
	}
	return out
}
