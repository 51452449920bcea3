package notifier

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
	"github.com/pfrederiksen/ffcv-tracker/internal/telegram"
)

// TwitterNotifier posts results to Twitter
type TwitterNotifier struct {
	client   *twitter.Client
	hashtags string
	pause    time.Duration
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier(hashtags string) (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)

	return newTwitterNotifier(config.Client(oauth1.NoContext, token), hashtags, 2*time.Second), nil
}

func newTwitterNotifier(httpClient *http.Client, hashtags string, pause time.Duration) *TwitterNotifier {
	return &TwitterNotifier{
		client:   twitter.NewClient(httpClient),
		hashtags: hashtags,
		pause:    pause,
	}
}

// Notify posts one tweet per match
func (n *TwitterNotifier) Notify(matches []competition.Match) error {
	for i, m := range matches {
		_, _, err := n.client.Statuses.Update(formatTweet(m, n.hashtags), nil)
		if err != nil {
			return fmt.Errorf("posting tweet for %s - %s: %w", m.Home, m.Away, err)
		}

		// Rate limiting: wait between tweets
		if i < len(matches)-1 && n.pause > 0 {
			time.Sleep(n.pause)
		}
	}

	return nil
}

// Remind posts a tweet announcing an upcoming fixture
func (n *TwitterNotifier) Remind(m competition.Match, daysUntil int) error {
	if _, _, err := n.client.Statuses.Update(formatReminder(m, daysUntil, n.hashtags), nil); err != nil {
		return fmt.Errorf("posting reminder for %s - %s: %w", m.Home, m.Away, err)
	}
	return nil
}

// formatTweet formats a result as a tweet of at most 280 runes
func formatTweet(m competition.Match, hashtags string) string {
	tweet := "⚽ Resultado\n\n"
	tweet += fmt.Sprintf("%s %s %s\n", m.Home, m.Score, m.Away)

	if m.Date != "" {
		tweet += fmt.Sprintf("📅 %s\n", m.Date)
	}
	if m.Venue != "" {
		tweet += fmt.Sprintf("🏟 %s\n", m.Venue)
	}
	if hashtags != "" {
		tweet += "\n" + hashtags
	}

	return truncate(tweet, tweetLimit)
}

// formatReminder formats an upcoming fixture as a tweet of at most 280 runes
func formatReminder(m competition.Match, daysUntil int, hashtags string) string {
	tweet := fmt.Sprintf("⏰ Próximo partido: %s\n\n", telegram.DayLabel(daysUntil))
	tweet += fmt.Sprintf("%s - %s\n", m.Home, m.Away)

	if when := strings.TrimSpace(m.Date + " " + m.Time); when != "" {
		tweet += fmt.Sprintf("📅 %s\n", when)
	}
	if m.Venue != "" {
		tweet += fmt.Sprintf("🏟 %s\n", m.Venue)
	}
	if hashtags != "" {
		tweet += "\n" + hashtags
	}

	return truncate(tweet, tweetLimit)
}
