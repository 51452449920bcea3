package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
	"github.com/pfrederiksen/ffcv-tracker/internal/config"
	"github.com/pfrederiksen/ffcv-tracker/internal/logger"
	"github.com/pfrederiksen/ffcv-tracker/internal/notifier"
	"github.com/pfrederiksen/ffcv-tracker/internal/storage"
	"github.com/pfrederiksen/ffcv-tracker/internal/telegram"
	"github.com/spf13/cobra"
)

// Notification channels
const (
	ChannelDryRun   = "dryrun"
	ChannelTelegram = "telegram"
	ChannelTwitter  = "twitter"
)

type notifyOptions struct {
	channel string
	dryRun  bool
	refresh bool
}

func newNotifyCmd(a *app) *cobra.Command {
	var opts notifyOptions

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Announce newly played results of the tracked team",
		Long: `Fetch the round and calendar, compare the tracked team's played matches with the
snapshot of the previous run, post the new results and save the new snapshot.
Exits with status 2 when new results were found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runNotify(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.channel, "channel", "", "Notification channel: dryrun, telegram or twitter (default from config)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the posts instead of sending them")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "Refresh snapshot without sending notifications")

	return cmd
}

func (a *app) runNotify(cmd *cobra.Command, opts notifyOptions) error {
	format, err := a.outputFormat(FormatText, FormatJSON)
	if err != nil {
		return err
	}

	store, err := storage.New(a.cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	current, err := a.fetchFixtures(cmd.Context())
	if err != nil {
		return err
	}

	snapshotName := a.cfg.Highlight
	previous, err := store.LoadSnapshot(snapshotName)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	fresh := competition.NewResults(previous, current, a.loc)
	logger.Info("results compared", logger.Fields{
		"tracked":  len(current),
		"previous": len(previous.Results),
		"new":      len(fresh),
	})

	out := cmd.OutOrStdout()

	if opts.refresh {
		if err := store.SaveMatches(current, snapshotName); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
		return WriteNotifyResult(out, &NotifyResult{Refreshed: true, NewResults: []competition.Match{}}, format)
	}

	if len(fresh) > 0 {
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
		if err := n.Notify(fresh); err != nil {
			return fmt.Errorf("sending notifications: %w", err)
		}
		logger.IncrCounter("notify.sent")
		a.exitCode = ExitNewResults
	}

	// saved after sending so a failed post is retried on the next run
	if err := store.SaveMatches(current, snapshotName); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	return WriteNotifyResult(out, &NotifyResult{NewResults: fresh}, format)
}

// newNotifier builds the notifier for channel; dry runs write to out
func newNotifier(channel string, cfg *config.Config, out io.Writer) (notifier.Notifier, error) {
	switch strings.ToLower(strings.TrimSpace(channel)) {
	case ChannelDryRun:
		return notifier.NewDryRunNotifier(out, cfg.Notify.Hashtags), nil
	case ChannelTelegram:
		client, err := telegram.NewClient(cfg.Notify.TelegramBotToken, cfg.Notify.TelegramChatID)
		if err != nil {
			return nil, fmt.Errorf("creating telegram client: %w", err)
		}
		return notifier.NewTelegramNotifier(client, "Resultados "+cfg.Highlight, cfg.Notify.Hashtags), nil
	case ChannelTwitter:
		n, err := notifier.NewTwitterNotifier(cfg.Notify.Hashtags)
		if err != nil {
			return nil, fmt.Errorf("creating twitter notifier: %w", err)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("invalid channel: %s (must be dryrun, telegram or twitter)", channel)
	}
}
