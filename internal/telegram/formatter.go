package telegram

import (
	"fmt"
	"html"
	"strings"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
)

// FormatResult formats a played match as a Telegram message
func FormatResult(m competition.Match, hashtags string) string {
	var msg strings.Builder

	msg.WriteString("⚽ <b>Resultado</b>\n\n")
	msg.WriteString(fmt.Sprintf("<b>%s %s %s</b>\n", html.EscapeString(m.Home), html.EscapeString(m.Score), html.EscapeString(m.Away)))
	writeDetails(&msg, m)

	if hashtags != "" {
		msg.WriteString("\n" + html.EscapeString(hashtags))
	}

	return strings.TrimRight(msg.String(), "\n")
}

// FormatUpcoming formats a reminder for a pending fixture daysUntil days away
func FormatUpcoming(m competition.Match, daysUntil int, hashtags string) string {
	var msg strings.Builder

	msg.WriteString("⏰ <b>Próximo partido</b>\n\n")
	msg.WriteString(fmt.Sprintf("📣 <b>%s</b>\n\n", DayLabel(daysUntil)))
	msg.WriteString(fmt.Sprintf("<b>%s - %s</b>\n", html.EscapeString(m.Home), html.EscapeString(m.Away)))
	writeDetails(&msg, m)

	if hashtags != "" {
		msg.WriteString("\n" + html.EscapeString(hashtags))
	}

	return strings.TrimRight(msg.String(), "\n")
}

// DayLabel describes a day offset in Spanish ("Hoy", "Mañana", "En 3 días")
func DayLabel(daysUntil int) string {
	switch {
	case daysUntil <= 0:
		return "Hoy"
	case daysUntil == 1:
		return "Mañana"
	case daysUntil == 7:
		return "En 1 semana"
	default:
		return fmt.Sprintf("En %d días", daysUntil)
	}
}

func writeDetails(msg *strings.Builder, m competition.Match) {
	when := strings.TrimSpace(m.Date + " " + m.Time)
	if when != "" {
		msg.WriteString(fmt.Sprintf("📅 %s\n", html.EscapeString(when)))
	}
	if m.Venue != "" {
		msg.WriteString(fmt.Sprintf("🏟 %s\n", html.EscapeString(m.Venue)))
	}
}
