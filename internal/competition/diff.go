package competition

import (
	"sort"
	"time"
)

// Snapshot records the results already reported for the tracked club
type Snapshot struct {
	Results   map[string]string `json:"results"` // Match.Key → score
	UpdatedAt string            `json:"updated_at"`
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Results: make(map[string]string),
	}
}

// CreateSnapshot builds a snapshot from the played matches in current
func CreateSnapshot(current []Match, updatedAt string) *Snapshot {
	snapshot := NewSnapshot()
	snapshot.UpdatedAt = updatedAt
	for _, m := range current {
		if m.Played() {
			snapshot.Results[m.Key()] = m.Score
		}
	}
	return snapshot
}

// NewResults returns the highlighted played matches whose score is not in previous,
// ordered by kickoff and then by home team.
func NewResults(previous *Snapshot, current []Match, loc *time.Location) []Match {
	if previous == nil {
		previous = NewSnapshot()
	}

	results := make([]Match, 0)
	for _, m := range current {
		if !m.IsHighlighted || !m.Played() {
			continue
		}
		if score, ok := previous.Results[m.Key()]; ok && score == m.Score {
			continue
		}
		results = append(results, m)
	}

	sort.SliceStable(results, func(i, j int) bool {
		ti, _ := results[i].Kickoff(loc)
		tj, _ := results[j].Kickoff(loc)
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return results[i].Home < results[j].Home
	})

	return results
}
