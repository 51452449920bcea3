package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
	"github.com/pfrederiksen/ffcv-tracker/internal/config"
	"github.com/pfrederiksen/ffcv-tracker/internal/logger"
	"github.com/pfrederiksen/ffcv-tracker/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitNewResults = 2
)

// app holds the state shared by all commands of one invocation
type app struct {
	configPath string
	format     string
	verbose    bool

	cfg      *config.Config
	loc      *time.Location
	scraper  *scraper.Scraper
	exitCode int

	// replaced in tests
	newFetcher func(cfg *config.Config) scraper.Fetcher
	now        func() time.Time
	logOutput  io.Writer
}

func newApp() *app {
	return &app{
		newFetcher: defaultFetcher,
		now:        time.Now,
		logOutput:  os.Stderr,
	}
}

func defaultFetcher(cfg *config.Config) scraper.Fetcher {
	if cfg.Fetch.Mode == config.FetchModeBrowser {
		return scraper.NewBrowserFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent, cfg.Fetch.ChromePath)
	}
	return scraper.NewHTTPFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ffcv-tracker",
		Short: "Follow a team in the Valencian football federation (FFCV) results site",
		Long: `A tool to follow one team in an FFCV competition.
It scrapes the standings, current round and season calendar pages, serves them as a
JSON API with a small web UI, and announces newly played results of the tracked team.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&a.format, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(
		newServeCmd(a),
		newStandingsCmd(a),
		newRoundCmd(a),
		newCalendarCmd(a),
		newSummaryCmd(a),
		newNotifyCmd(a),
		newRemindCmd(a),
	)

	return cmd
}

// setup loads the configuration and builds the scraper before any subcommand runs
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if a.verbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, a.logOutput))

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.loc = loc
	a.scraper = scraper.New(a.newFetcher(cfg), scraper.Sources{
		Standings: cfg.Sources.Standings,
		Round:     cfg.Sources.Round,
		Calendar:  cfg.Sources.Calendar,
	}, competition.NewHighlighter(cfg.Highlight))

	logger.Debug("configuration loaded", logger.Fields{
		"command":    cmd.Name(),
		"highlight":  cfg.Highlight,
		"fetch_mode": cfg.Fetch.Mode,
	})
	return nil
}

// outputFormat validates --format against the formats a command accepts
func (a *app) outputFormat(allowed ...OutputFormat) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(a.format)))
	for _, f := range allowed {
		if format == f {
			return format, nil
		}
	}

	names := make([]string, len(allowed))
	for i, f := range allowed {
		names[i] = string(f)
	}
	return "", fmt.Errorf("invalid format: %s (must be one of %s)", a.format, strings.Join(names, ", "))
}

// run executes the CLI with args and returns the process exit code
func run(a *app, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return a.exitCode
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	code := run(newApp(), os.Args[1:], os.Stdout, os.Stderr)
	_ = logger.Default().Sync()
	return code
}
