package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatICS  OutputFormat = "ics"
)

// NotifyResult is the outcome of a notify run
type NotifyResult struct {
	Refreshed  bool                `json:"refreshed,omitempty"`
	NewResults []competition.Match `json:"newResults"`
	Count      int                 `json:"count"`
}

// writeJSON outputs v as indented JSON
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func marker(highlighted bool) string {
	if highlighted {
		return "*"
	}
	return ""
}

// WriteStandings writes the ranking table
func WriteStandings(w io.Writer, entries []competition.StandingEntry, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, entries)
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No standings found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "\tPOS\tTEAM\tPTS\tPJ\tG\tE\tP\tGF\tGC\tDG\t")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t\n",
			marker(e.IsHighlighted), e.Position, e.Name, e.Points, e.Played,
			e.Won, e.Drawn, e.Lost, e.GoalsFor, e.GoalsAgainst, e.GoalDifference)
	}
	return tw.Flush()
}

// WriteMatches writes a list of fixtures
func WriteMatches(w io.Writer, matches []competition.Match, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, matches)
	}

	if len(matches) == 0 {
		_, err := fmt.Fprintln(w, "No matches found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeMatchRows(tw, matches)
	return tw.Flush()
}

func writeMatchRows(w io.Writer, matches []competition.Match) {
	for _, m := range matches {
		when := strings.TrimSpace(m.Date + " " + m.Time)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", marker(m.IsHighlighted), m.Home, m.Score, m.Away, when, m.Venue)
	}
}

// WriteCalendar writes matchday groups; empty groups are omitted from text output
func WriteCalendar(w io.Writer, groups []competition.MatchdayGroup, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, groups)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	written := 0
	for _, g := range groups {
		if len(g.Matches) == 0 {
			continue
		}
		if written > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\n", g.Label)
		writeMatchRows(tw, g.Matches)
		written++
	}

	if written == 0 {
		_, err := fmt.Fprintln(w, "No calendar found.")
		return err
	}
	return tw.Flush()
}

// WriteSummary writes the tracked team summary
func WriteSummary(w io.Writer, s *Summary, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, s)
	}

	fmt.Fprintf(w, "%s\n", s.Team)
	if s.Standing != nil {
		fmt.Fprintf(w, "  Position: %d (%d pts, %d played, %d-%d-%d, GD %+d)\n",
			s.Standing.Position, s.Standing.Points, s.Standing.Played,
			s.Standing.Won, s.Standing.Drawn, s.Standing.Lost, s.Standing.GoalDifference)
	} else {
		fmt.Fprintln(w, "  Position: not found")
	}

	if s.LastResult != nil {
		fmt.Fprintf(w, "  Last result: %s\n", describeMatch(*s.LastResult))
	}
	if s.NextMatch != nil {
		fmt.Fprintf(w, "  Next match: %s\n", describeMatch(*s.NextMatch))
	}
	for _, m := range s.Round {
		fmt.Fprintf(w, "  This round: %s\n", describeMatch(m))
	}
	return nil
}

func describeMatch(m competition.Match) string {
	text := fmt.Sprintf("%s %s %s", m.Home, m.Score, m.Away)
	if when := strings.TrimSpace(m.Date + " " + m.Time); when != "" {
		text += " (" + when + ")"
	}
	if m.Venue != "" {
		text += " @ " + m.Venue
	}
	return text
}

// WriteNotifyResult reports what a notify run did
func WriteNotifyResult(w io.Writer, result *NotifyResult, format OutputFormat) error {
	result.Count = len(result.NewResults)
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	if result.Refreshed {
		_, err := fmt.Fprintln(w, "Snapshot refreshed successfully.")
		return err
	}
	if result.Count == 0 {
		_, err := fmt.Fprintln(w, "No new results found.")
		return err
	}

	for _, m := range result.NewResults {
		fmt.Fprintf(w, "NEW: %s\n", describeMatch(m))
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d new\n", result.Count)
	return err
}
