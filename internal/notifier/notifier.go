package notifier

import (
	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
)

// Notifier defines the interface for posting result notifications
type Notifier interface {
	// Notify posts the given played matches as new results
	Notify(matches []competition.Match) error

	// Remind announces a fixture that is daysUntil days away
	Remind(m competition.Match, daysUntil int) error
}

const tweetLimit = 280

// truncate shortens text to limit runes, ending with an ellipsis when cut
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-3]) + "..."
}
