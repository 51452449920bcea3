package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/pfrederiksen/ffcv-tracker/internal/logger"
)

const (
	// UserAgent is a desktop browser identification; the provider serves
	// reduced pages to unknown clients.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	Timeout   = 30 * time.Second
)

// ErrUnexpectedStatus is returned when the provider answers with a non-200 status
var ErrUnexpectedStatus = crerr.New("unexpected status code")

// Fetcher retrieves the raw HTML of a provider page
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches pages with plain GET requests
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates an HTTPFetcher. Zero values select UserAgent and Timeout.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = Timeout
	}
	if userAgent == "" {
		userAgent = UserAgent
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Fetch performs a single GET; failures are returned as-is, there are no retries
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	started := time.Now()
	defer func() { logger.RecordTiming("fetch.http", time.Since(started)) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}

	return string(body), nil
}
