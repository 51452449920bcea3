package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/ffcv-tracker/internal/config"
	"github.com/pfrederiksen/ffcv-tracker/internal/scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	standingsURL = "https://ffcv.test/clasificacion"
	roundURL     = "https://ffcv.test/jornada"
	calendarURL  = "https://ffcv.test/calendario"
)

// fixtureFetcher serves the HTML fixtures by URL
type fixtureFetcher map[string]string

func (f fixtureFetcher) Fetch(_ context.Context, url string) (string, error) {
	name, ok := f[url]
	if !ok {
		return "", fmt.Errorf("unexpected url %s", url)
	}
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "fixtures", name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// pageFetcher serves inline HTML by URL
type pageFetcher map[string]string

func (f pageFetcher) Fetch(_ context.Context, url string) (string, error) {
	html, ok := f[url]
	if !ok {
		return "", fmt.Errorf("unexpected url %s", url)
	}
	return html, nil
}

type testEnv struct {
	app     *app
	dataDir string
	config  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")

	configPath := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`highlight: meliana
data_dir: %s
sources:
  standings: %s
  round: %s
  calendar: %s
notify:
  hashtags: "#FFCV"
`, dataDir, standingsURL, roundURL, calendarURL)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	a := newApp()
	a.logOutput = io.Discard
	a.now = func() time.Time { return time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC) }
	a.newFetcher = func(*config.Config) scraper.Fetcher {
		return fixtureFetcher{
			standingsURL: "clasificacion.html",
			roundURL:     "jornada.html",
			calendarURL:  "calendario.html",
		}
	}

	return &testEnv{app: a, dataDir: dataDir, config: configPath}
}

func (e *testEnv) run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	e.app.exitCode = ExitSuccess
	code := run(e.app, append([]string{"--config", e.config}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestStandingsCommand(t *testing.T) {
	env := newTestEnv(t)

	code, out, _ := env.run("standings")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "TEAM")
	assert.Contains(t, out, "CD Meliana")
	assert.Contains(t, out, "Torrent CF")

	code, out, _ = env.run("standings", "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 4)
	assert.Equal(t, true, entries[1]["isHighlighted"])
}

func TestRoundCommand(t *testing.T) {
	env := newTestEnv(t)

	code, out, _ := env.run("round")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "4-3")

	code, out, _ = env.run("round", "--sort", "home", "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var matches []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &matches))
	require.Len(t, matches, 4)
	assert.Equal(t, "CD Meliana", matches[0]["home"])
	assert.Equal(t, "UD Puçol", matches[3]["home"])
}

func TestRoundCommand_InvalidSort(t *testing.T) {
	env := newTestEnv(t)

	code, _, stderr := env.run("round", "--sort", "points")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "invalid sort order")
}

func TestCalendarCommand(t *testing.T) {
	env := newTestEnv(t)

	code, out, _ := env.run("calendar")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "JORNADA 1")
	assert.Contains(t, out, "JORNADA 2")
	assert.NotContains(t, out, "JORNADA 3", "empty groups are skipped")

	code, out, _ = env.run("calendar", "--team-only", "--format", "json")
	require.Equal(t, ExitSuccess, code)
	assert.NotContains(t, out, "CF Foios")

	code, out, _ = env.run("calendar", "--format", "ics")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "DTSTAMP:20260910T120000Z")
}

func TestInvalidFormat(t *testing.T) {
	env := newTestEnv(t)

	code, _, stderr := env.run("standings", "--format", "ics")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "invalid format")
}

func TestSummaryCommand(t *testing.T) {
	env := newTestEnv(t)

	code, out, _ := env.run("summary")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "CD Meliana\n")
	assert.Contains(t, out, "Position: 2 (19 pts")
	assert.Contains(t, out, "Last result: CD Meliana 2-1 Alboraya UD 'A'")
	assert.Contains(t, out, "Next match: Torrent CF vs CD Meliana (14/09/2026)")

	code, out, _ = env.run("summary", "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var summary Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	require.NotNil(t, summary.Standing)
	assert.Equal(t, 2, summary.Standing.Position)
	assert.Len(t, summary.Round, 1)
}

func TestNotifyCommand(t *testing.T) {
	env := newTestEnv(t)

	code, out, stderr := env.run("notify", "--dry-run")
	require.Equal(t, ExitNewResults, code, stderr)
	assert.Contains(t, out, "NEW: CD Meliana 2-1 Alboraya UD 'A'")
	assert.Contains(t, out, "Total: 1 new")
	assert.Contains(t, stderr, "--- Post 1/1 ---")

	_, err := os.Stat(filepath.Join(env.dataDir, "snapshot_meliana.json"))
	require.NoError(t, err)

	code, out, _ = env.run("notify", "--dry-run")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "No new results found.")
}

func TestNotifyCommand_RoundAheadOfCalendar(t *testing.T) {
	env := newTestEnv(t)
	env.app.newFetcher = func(*config.Config) scraper.Fetcher {
		return pageFetcher{
			roundURL: `<table>
<tr><td>CD Meliana</td><td></td><td>21</td><td></td><td>Alboraya UD</td><td>Camp Municipal</td><td></td><td></td></tr>
</table>`,
			calendarURL: `<table>
<tr><td>Jornada 7</td></tr>
<tr><td>1</td><td></td><td>CD Meliana - Alboraya UD</td><td>-</td><td>19/10/2026 10:00</td><td>Camp Municipal</td></tr>
</table>`,
		}
	}

	code, out, stderr := env.run("notify", "--dry-run")
	require.Equal(t, ExitNewResults, code, stderr)
	assert.Contains(t, out, "NEW: CD Meliana 2-1 Alboraya UD")
	assert.Contains(t, stderr, "--- Post 1/1 ---")

	code, out, _ = env.run("notify", "--dry-run")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "No new results found.")
}

func TestNotifyCommand_Refresh(t *testing.T) {
	env := newTestEnv(t)

	code, out, stderr := env.run("notify", "--refresh")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "Snapshot refreshed successfully.")
	assert.NotContains(t, stderr, "--- Post")

	code, out, _ = env.run("notify", "--dry-run", "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var result NotifyResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 0, result.Count)
	assert.NotNil(t, result.NewResults)
}

func TestNotifyCommand_InvalidChannel(t *testing.T) {
	env := newTestEnv(t)

	code, _, stderr := env.run("notify", "--channel", "carrier-pigeon")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "invalid channel")

	_, err := os.Stat(filepath.Join(env.dataDir, "snapshot_meliana.json"))
	assert.True(t, os.IsNotExist(err), "snapshot is not saved when sending fails")
}

func TestConfigError(t *testing.T) {
	env := newTestEnv(t)
	env.config = filepath.Join(t.TempDir(), "missing.yaml")

	code, _, stderr := env.run("standings")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "reading config file")
}

func TestNewRootCmd_Commands(t *testing.T) {
	cmd := NewRootCmd()

	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "standings", "round", "calendar", "summary", "notify", "remind"} {
		assert.Contains(t, names, want)
	}
}

func TestRemindCommand(t *testing.T) {
	env := newTestEnv(t)

	// now is 10/09/2026; Torrent CF - CD Meliana is on 14/09/2026
	code, out, stderr := env.run("remind", "--days", "4", "--dry-run")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, out, "REMINDER: Torrent CF vs CD Meliana")
	assert.Contains(t, stderr, "--- Reminder ---")
	assert.Contains(t, stderr, "En 4 días")

	code, out, _ = env.run("remind", "--days", "1", "--dry-run")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "No matches 1 days away.")

	code, _, _ = env.run("remind", "--days", "-1")
	assert.Equal(t, ExitError, code)
}
