package telegram

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const timeout = 10 * time.Second

// Client represents a Telegram Bot API client bound to one chat
type Client struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	username string
}

// NewClient creates a Telegram client and verifies the token with getMe
func NewClient(botToken, chatID string) (*Client, error) {
	return newClient(botToken, chatID, tgbotapi.APIEndpoint, &http.Client{Timeout: timeout})
}

func newClient(botToken, chatID, endpoint string, httpClient *http.Client) (*Client, error) {
	if botToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return nil, fmt.Errorf("chat ID is required")
	}

	c := &Client{}
	if strings.HasPrefix(chatID, "@") {
		c.username = chatID
	} else {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing chat ID: %w", err)
		}
		c.chatID = id
	}

	bot, err := tgbotapi.NewBotAPIWithClient(botToken, endpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("connecting to telegram: %w", err)
	}
	c.bot = bot

	return c, nil
}

// SendMessage sends an HTML text message to the configured chat
func (c *Client) SendMessage(text string) error {
	if text == "" {
		return fmt.Errorf("message text is required")
	}

	var msg tgbotapi.MessageConfig
	if c.username != "" {
		msg = tgbotapi.NewMessageToChannel(c.username, text)
	} else {
		msg = tgbotapi.NewMessage(c.chatID, text)
	}
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	return nil
}
