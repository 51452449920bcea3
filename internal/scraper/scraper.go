package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/pfrederiksen/ffcv-tracker/internal/competition"
	"github.com/pfrederiksen/ffcv-tracker/internal/logger"
	"github.com/sourcegraph/conc/pool"
)

// Sources holds the provider URLs of the three pages
type Sources struct {
	Standings string
	Round     string
	Calendar  string
}

// Scraper fetches and parses the provider pages for one competition.
// It holds no mutable state and is safe for concurrent use.
type Scraper struct {
	fetcher   Fetcher
	sources   Sources
	highlight competition.Highlighter
}

// New creates a Scraper
func New(fetcher Fetcher, sources Sources, highlight competition.Highlighter) *Scraper {
	return &Scraper{
		fetcher:   fetcher,
		sources:   sources,
		highlight: highlight,
	}
}

// Sources returns the configured page URLs
func (s *Scraper) Sources() Sources {
	return s.sources
}

// Standings fetches and parses the ranking table
func (s *Scraper) Standings(ctx context.Context) ([]competition.StandingEntry, error) {
	html, err := s.fetch(ctx, "standings", s.sources.Standings)
	if err != nil {
		return nil, err
	}
	entries := ParseStandings(html, s.highlight)
	logger.SetGauge("standings.entries", float64(len(entries)))
	return entries, nil
}

// Round fetches and parses the current-round fixtures
func (s *Scraper) Round(ctx context.Context) ([]competition.Match, error) {
	html, err := s.fetch(ctx, "round", s.sources.Round)
	if err != nil {
		return nil, err
	}
	matches := ParseRound(html, s.highlight)
	logger.SetGauge("round.matches", float64(len(matches)))
	return matches, nil
}

// Calendar fetches and parses the season calendar
func (s *Scraper) Calendar(ctx context.Context) ([]competition.MatchdayGroup, error) {
	html, err := s.fetch(ctx, "calendar", s.sources.Calendar)
	if err != nil {
		return nil, err
	}
	groups := ParseCalendar(html, s.highlight)
	logger.SetGauge("calendar.groups", float64(len(groups)))
	return groups, nil
}

// Bundle holds the records of all three pages
type Bundle struct {
	Standings []competition.StandingEntry
	Round     []competition.Match
	Calendar  []competition.MatchdayGroup
}

// All fetches the three pages concurrently. The first failure cancels the rest.
func (s *Scraper) All(ctx context.Context) (*Bundle, error) {
	return s.gather(ctx, true)
}

// Fixtures fetches only the round and calendar pages concurrently.
// Standings is left nil, so an unavailable ranking page does not fail the call.
func (s *Scraper) Fixtures(ctx context.Context) (*Bundle, error) {
	return s.gather(ctx, false)
}

func (s *Scraper) gather(ctx context.Context, withStandings bool) (*Bundle, error) {
	var b Bundle

	p := pool.New().WithContext(ctx).WithCancelOnError()
	if withStandings {
		p.Go(func(ctx context.Context) error {
			entries, err := s.Standings(ctx)
			b.Standings = entries
			return err
		})
	}
	p.Go(func(ctx context.Context) error {
		matches, err := s.Round(ctx)
		b.Round = matches
		return err
	})
	p.Go(func(ctx context.Context) error {
		groups, err := s.Calendar(ctx)
		b.Calendar = groups
		return err
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Scraper) fetch(ctx context.Context, kind, url string) (string, error) {
	logger.IncrCounter("fetch." + kind)
	started := time.Now()

	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		logger.IncrCounter("fetch." + kind + ".errors")
		return "", fmt.Errorf("fetching %s: %w", kind, err)
	}

	logger.Debug("page fetched", logger.Fields{
		"kind":        kind,
		"bytes":       len(html),
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return html, nil
}
