package telegram

import (
	"fmt"
	"html"
	"strings"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
)

// FormatDigest formats several results as one message
func FormatDigest(matches []competition.Match, title string) string {
	if len(matches) == 0 {
		return "Sin resultados nuevos."
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("📬 <b>%s</b>\n", html.EscapeString(title)))
	msg.WriteString(fmt.Sprintf("%d resultado%s\n\n", len(matches), pluralize(len(matches))))

	for _, m := range matches {
		msg.WriteString(fmt.Sprintf("• %s <b>%s</b> %s", html.EscapeString(m.Home), html.EscapeString(m.Score), html.EscapeString(m.Away)))
		if m.Date != "" {
			msg.WriteString(fmt.Sprintf(" (%s)", html.EscapeString(m.Date)))
		}
		msg.WriteString("\n")
	}

	return strings.TrimRight(msg.String(), "\n")
}

func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
