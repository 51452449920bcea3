package notifier

import (
	"fmt"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
	"github.com/pfrederiksen/ffcv-tracker/internal/telegram"
)

// digestThreshold is the number of results above which one digest replaces individual messages
const digestThreshold = 5

// MessageSender delivers a formatted message; *telegram.Client implements it
type MessageSender interface {
	SendMessage(text string) error
}

// TelegramNotifier posts results to a Telegram chat
type TelegramNotifier struct {
	sender   MessageSender
	title    string
	hashtags string
}

// NewTelegramNotifier creates a notifier that sends through sender.
// title heads the digest message sent when many results arrive at once.
func NewTelegramNotifier(sender MessageSender, title, hashtags string) *TelegramNotifier {
	return &TelegramNotifier{sender: sender, title: title, hashtags: hashtags}
}

// Notify sends one message per match, or a single digest for large batches
func (n *TelegramNotifier) Notify(matches []competition.Match) error {
	if len(matches) == 0 {
		return nil
	}

	if len(matches) > digestThreshold {
		if err := n.sender.SendMessage(telegram.FormatDigest(matches, n.title)); err != nil {
			return fmt.Errorf("sending digest: %w", err)
		}
		return nil
	}

	for _, m := range matches {
		if err := n.sender.SendMessage(telegram.FormatResult(m, n.hashtags)); err != nil {
			return fmt.Errorf("sending result for %s - %s: %w", m.Home, m.Away, err)
		}
	}
	return nil
}

// Remind sends a reminder for an upcoming fixture
func (n *TelegramNotifier) Remind(m competition.Match, daysUntil int) error {
	if err := n.sender.SendMessage(telegram.FormatUpcoming(m, daysUntil, n.hashtags)); err != nil {
		return fmt.Errorf("sending reminder for %s - %s: %w", m.Home, m.Away, err)
	}
	return nil
}
