package telegram

import (
	"strings"
	"testing"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
	"github.com/stretchr/testify/assert"
)

func TestFormatResult(t *testing.T) {
	m := competition.Match{
		Home: "CD Meliana", Away: "Alboraya UD", Score: "2-1",
		Date: "07/09/2026", Time: "11:00", Venue: "Municipal de Meliana",
	}

	msg := FormatResult(m, "#FFCV #Meliana")

	assert.True(t, strings.HasPrefix(msg, "⚽ <b>Resultado</b>"))
	assert.Contains(t, msg, "<b>CD Meliana 2-1 Alboraya UD</b>")
	assert.Contains(t, msg, "📅 07/09/2026 11:00")
	assert.Contains(t, msg, "🏟 Municipal de Meliana")
	assert.True(t, strings.HasSuffix(msg, "#FFCV #Meliana"))
}

func TestFormatResult_EscapesHTML(t *testing.T) {
	m := competition.Match{Home: "Benimar <B>", Away: "A&B", Score: "1-0"}

	msg := FormatResult(m, "")

	assert.Contains(t, msg, "Benimar &lt;B&gt; 1-0 A&amp;B")
	assert.NotContains(t, msg, "📅")
	assert.NotContains(t, msg, "🏟")
}

func TestFormatUpcoming(t *testing.T) {
	m := competition.Match{Home: "CF Foios", Away: "CD Meliana", Score: "vs", Date: "14/09/2026"}

	msg := FormatUpcoming(m, 1, "#FFCV")

	assert.Contains(t, msg, "Próximo partido")
	assert.Contains(t, msg, "<b>Mañana</b>")
	assert.Contains(t, msg, "<b>CF Foios - CD Meliana</b>")
	assert.Contains(t, msg, "📅 14/09/2026")
	assert.True(t, strings.HasSuffix(msg, "#FFCV"))
}

func TestDayLabel(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{-1, "Hoy"},
		{0, "Hoy"},
		{1, "Mañana"},
		{3, "En 3 días"},
		{7, "En 1 semana"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DayLabel(tt.days))
	}
}

func TestFormatDigest(t *testing.T) {
	tests := []struct {
		name     string
		matches  []competition.Match
		contains []string
	}{
		{
			name:     "empty",
			matches:  nil,
			contains: []string{"Sin resultados nuevos."},
		},
		{
			name: "single",
			matches: []competition.Match{
				{Home: "CD Meliana", Away: "Alboraya UD", Score: "2-1", Date: "07/09/2026"},
			},
			contains: []string{"📬 <b>Meliana</b>", "1 resultado\n", "• CD Meliana <b>2-1</b> Alboraya UD (07/09/2026)"},
		},
		{
			name: "several",
			matches: []competition.Match{
				{Home: "CD Meliana", Away: "Alboraya UD", Score: "2-1"},
				{Home: "CF Foios", Away: "CD Meliana", Score: "0-0"},
			},
			contains: []string{"2 resultados", "• CF Foios <b>0-0</b> CD Meliana"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := FormatDigest(tt.matches, "Meliana")
			for _, want := range tt.contains {
				assert.Contains(t, msg, want)
			}
		})
	}
}
