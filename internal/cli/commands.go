package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pfrederiksen/ffcv-tracker/internal/calendar"
	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
	"github.com/pfrederiksen/ffcv-tracker/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(a.scraper, server.Options{
				CalendarName: a.cfg.Highlight,
				Location:     a.loc,
				ReadTimeout:  a.cfg.Server.ReadTimeout,
				WriteTimeout: a.cfg.Server.WriteTimeout,
			})
			return srv.ListenAndServe(ctx, a.cfg.Server.Addr)
		},
	}
}

func newStandingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Print the competition standings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := a.outputFormat(FormatText, FormatJSON)
			if err != nil {
				return err
			}

			entries, err := a.scraper.Standings(cmd.Context())
			if err != nil {
				return err
			}
			return WriteStandings(cmd.OutOrStdout(), entries, format)
		},
	}
}

func newRoundCmd(a *app) *cobra.Command {
	var sortFlag string

	cmd := &cobra.Command{
		Use:   "round",
		Short: "Print the fixtures of the current round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := a.outputFormat(FormatText, FormatJSON)
			if err != nil {
				return err
			}
			order, err := ParseSortOrder(sortFlag)
			if err != nil {
				return err
			}

			matches, err := a.scraper.Round(cmd.Context())
			if err != nil {
				return err
			}
			sortMatches(matches, order, a.loc)
			return WriteMatches(cmd.OutOrStdout(), matches, format)
		},
	}

	cmd.Flags().StringVar(&sortFlag, "sort", "", "Sort order: time, home or venue (default: page order)")
	return cmd
}

func newCalendarCmd(a *app) *cobra.Command {
	var teamOnly bool

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the season calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := a.outputFormat(FormatText, FormatJSON, FormatICS)
			if err != nil {
				return err
			}

			groups, err := a.scraper.Calendar(cmd.Context())
			if err != nil {
				return err
			}

			// the feed only makes sense for the tracked team
			if teamOnly || format == FormatICS {
				groups = competition.HighlightedGroups(groups)
			}

			if format == FormatICS {
				_, err := fmt.Fprint(cmd.OutOrStdout(), calendar.GenerateICS(groups, calendar.Options{
					Name:     a.cfg.Highlight,
					Location: a.loc,
					Now:      a.now(),
				}))
				return err
			}
			return WriteCalendar(cmd.OutOrStdout(), groups, format)
		},
	}

	cmd.Flags().BoolVar(&teamOnly, "team-only", false, "Only list the tracked team's matches")
	return cmd
}

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the tracked team's position, last result and next match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := a.outputFormat(FormatText, FormatJSON)
			if err != nil {
				return err
			}

			bundle, err := a.scraper.All(cmd.Context())
			if err != nil {
				return err
			}
			summary := BuildSummary(a.cfg.Highlight, bundle, a.now(), a.loc)
			return WriteSummary(cmd.OutOrStdout(), summary, format)
		},
	}
}

// fetchFixtures returns the tracked team's matches from the calendar and the current
// round. The round page is updated first, so its played copy wins over a pending
// calendar entry.
func (a *app) fetchFixtures(ctx context.Context) ([]competition.Match, error) {
	bundle, err := a.scraper.Fixtures(ctx)
	if err != nil {
		return nil, err
	}

	return competition.Merge(competition.Highlighted(bundle.Calendar), highlightedRound(bundle.Round)), nil
}

func highlightedRound(round []competition.Match) []competition.Match {
	out := make([]competition.Match, 0)
	for _, m := range round {
		if m.IsHighlighted {
			out = append(out, m)
		}
	}
	return out
}
