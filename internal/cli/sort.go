package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortNone    SortOrder = ""
	SortByTime  SortOrder = "time"
	SortByHome  SortOrder = "home"
	SortByVenue SortOrder = "venue"
)

// ParseSortOrder validates a --sort value
func ParseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	switch order {
	case SortNone, SortByTime, SortByHome, SortByVenue:
		return order, nil
	}
	return "", fmt.Errorf("invalid sort order: %s (must be 'time', 'home' or 'venue')", s)
}

// sortMatches sorts matches in place; SortNone keeps page order
func sortMatches(matches []competition.Match, order SortOrder, loc *time.Location) {
	switch order {
	case SortByTime:
		sort.SliceStable(matches, func(i, j int) bool {
			return compareByTime(matches[i], matches[j], loc)
		})
	case SortByHome:
		sort.SliceStable(matches, func(i, j int) bool {
			hi, hj := strings.ToLower(matches[i].Home), strings.ToLower(matches[j].Home)
			if hi != hj {
				return hi < hj
			}
			return compareByTime(matches[i], matches[j], loc)
		})
	case SortByVenue:
		sort.SliceStable(matches, func(i, j int) bool {
			vi, vj := strings.ToLower(matches[i].Venue), strings.ToLower(matches[j].Venue)
			if vi != vj {
				return vi < vj
			}
			return compareByTime(matches[i], matches[j], loc)
		})
	}
}

// matchTime returns the kickoff when dated, else the bare clock time
func matchTime(m competition.Match, loc *time.Location) time.Time {
	if kickoff, _ := m.Kickoff(loc); !kickoff.IsZero() {
		return kickoff
	}
	if clock, err := time.Parse("15:04", strings.TrimSpace(m.Time)); err == nil {
		return clock
	}
	return time.Time{}
}

// compareByTime reports whether i kicks off before j.
// Matches without a known time go last, ordered by home team.
func compareByTime(i, j competition.Match, loc *time.Location) bool {
	ti, tj := matchTime(i, loc), matchTime(j, loc)

	if !ti.IsZero() && !tj.IsZero() {
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return strings.ToLower(i.Home) < strings.ToLower(j.Home)
	}
	if !ti.IsZero() {
		return true
	}
	if !tj.IsZero() {
		return false
	}
	return strings.ToLower(i.Home) < strings.ToLower(j.Home)
}
