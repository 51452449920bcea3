package cli

import (
	"testing"
	"time"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func homes(matches []competition.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Home
	}
	return out
}

func TestSortMatches(t *testing.T) {
	base := []competition.Match{
		{Home: "Levante UD", Time: "", Venue: "Ciudad Deportiva"},
		{Home: "CF Foios", Time: "09:30", Venue: "Polideportivo Foios"},
		{Home: "CD Meliana", Date: "07/09/2026", Time: "11:00", Venue: "Camp Municipal"},
		{Home: "Alboraya UD", Time: "12:00", Venue: "Camp Municipal"},
	}

	tests := []struct {
		name  string
		order SortOrder
		want  []string
	}{
		{"page order", SortNone, []string{"Levante UD", "CF Foios", "CD Meliana", "Alboraya UD"}},
		{"by home", SortByHome, []string{"Alboraya UD", "CD Meliana", "CF Foios", "Levante UD"}},
		// clock-only times sort before dated kickoffs; untimed last
		{"by time", SortByTime, []string{"CF Foios", "Alboraya UD", "CD Meliana", "Levante UD"}},
		{"by venue", SortByVenue, []string{"Alboraya UD", "CD Meliana", "Levante UD", "CF Foios"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := append([]competition.Match(nil), base...)
			sortMatches(matches, tt.order, time.UTC)
			assert.Equal(t, tt.want, homes(matches))
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    SortOrder
		wantErr bool
	}{
		{"", SortNone, false},
		{"time", SortByTime, false},
		{" HOME ", SortByHome, false},
		{"venue", SortByVenue, false},
		{"points", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortOrder(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
