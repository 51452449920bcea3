package cli

import (
	"fmt"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
	"github.com/pfrederiksen/ffcv-tracker/internal/logger"
	"github.com/spf13/cobra"
)

type remindOptions struct {
	channel string
	dryRun  bool
	days    int
}

func newRemindCmd(a *app) *cobra.Command {
	var opts remindOptions

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Announce the tracked team's fixtures that are a given number of days away",
		Long: `Fetch the calendar and post a reminder for every pending fixture of the tracked
team dated exactly --days days from today. Run it once a day to get one reminder per match.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.days < 0 {
				return fmt.Errorf("--days must not be negative")
			}

			groups, err := a.scraper.Calendar(cmd.Context())
			if err != nil {
				return err
			}
			due := dueFixtures(competition.Highlighted(groups), opts.days, a)

			out := cmd.OutOrStdout()
			if len(due) == 0 {
				_, err := fmt.Fprintf(out, "No matches %d days away.\n", opts.days)
				return err
			}

			channel := opts.channel
			if channel == "" {
				channel = a.cfg.Notify.Channel
			}
			if opts.dryRun {
				channel = ChannelDryRun
			}
			n, err := newNotifier(channel, a.cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			for _, m := range due {
				if err := n.Remind(m, opts.days); err != nil {
					return fmt.Errorf("sending reminder: %w", err)
				}
				logger.IncrCounter("remind.sent")
				fmt.Fprintf(out, "REMINDER: %s\n", describeMatch(m))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.channel, "channel", "", "Notification channel: dryrun, telegram or twitter (default from config)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the reminders instead of sending them")
	cmd.Flags().IntVar(&opts.days, "days", 1, "Days before the match to send the reminder")

	return cmd
}

// dueFixtures returns pending fixtures dated exactly days from now
func dueFixtures(fixtures []competition.Match, days int, a *app) []competition.Match {
	now := a.now()
	due := make([]competition.Match, 0)
	for _, m := range fixtures {
		if m.Played() {
			continue
		}
		if d, ok := m.DaysUntil(now, a.loc); ok && d == days {
			due = append(due, m)
		}
	}
	return due
}
