package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/pfrederiksen/ffcv-tracker/internal/logger"
)

// BrowserFetcher renders pages in headless Chrome and returns the resulting DOM.
// It needs a Chrome or Chromium binary on the host.
type BrowserFetcher struct {
	userAgent string
	timeout   time.Duration
	execPath  string
}

// NewBrowserFetcher creates a BrowserFetcher. An empty execPath lets chromedp
// locate the browser.
func NewBrowserFetcher(timeout time.Duration, userAgent, execPath string) *BrowserFetcher {
	if timeout <= 0 {
		timeout = Timeout
	}
	if userAgent == "" {
		userAgent = UserAgent
	}
	return &BrowserFetcher{
		userAgent: userAgent,
		timeout:   timeout,
		execPath:  execPath,
	}
}

func (f *BrowserFetcher) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent(f.userAgent),
	)
	if f.execPath != "" {
		opts = append(opts, chromedp.ExecPath(f.execPath))
	}
	return opts
}

// Fetch navigates to url and returns the outer HTML of the rendered document
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	started := time.Now()
	defer func() { logger.RecordTiming("fetch.browser", time.Since(started)) }()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, f.allocatorOptions()...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, v ...interface{}) {
		logger.Debug("chromedp", logger.Fields{"message": fmt.Sprintf(format, v...)})
	}))
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, f.timeout)
	defer cancelRun()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}

	return html, nil
}
