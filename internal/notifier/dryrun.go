package notifier

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
)

// DryRunNotifier prints what would be posted without contacting any service
type DryRunNotifier struct {
	out      io.Writer
	hashtags string
}

// NewDryRunNotifier creates a new dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer, hashtags string) *DryRunNotifier {
	return &DryRunNotifier{out: out, hashtags: hashtags}
}

// Notify prints the posts that would be made
func (n *DryRunNotifier) Notify(matches []competition.Match) error {
	for i, m := range matches {
		post := formatTweet(m, n.hashtags)
		if _, err := fmt.Fprintf(n.out, "--- Post %d/%d ---\n%s\n\n(Length: %d characters)\n\n",
			i+1, len(matches), post, utf8.RuneCountInString(post)); err != nil {
			return fmt.Errorf("writing dry run: %w", err)
		}
	}
	return nil
}

// Remind prints the reminder that would be posted
func (n *DryRunNotifier) Remind(m competition.Match, daysUntil int) error {
	post := formatReminder(m, daysUntil, n.hashtags)
	if _, err := fmt.Fprintf(n.out, "--- Reminder ---\n%s\n\n(Length: %d characters)\n\n",
		post, utf8.RuneCountInString(post)); err != nil {
		return fmt.Errorf("writing dry run: %w", err)
	}
	return nil
}
