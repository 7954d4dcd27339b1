// Package rod provides a browser-based implementation of pagebrief.Fetcher
// for pages that only render their content client-side.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/pagebrief"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the default timeout for a rendered fetch.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRenderDelay is how long to wait after page load before serializing
// the DOM. SPA frameworks often fill in content asynchronously after the
// load event fires.
const DefaultRenderDelay = 2 * time.Second

// Ensure Fetcher implements pagebrief.Fetcher at compile time.
var _ pagebrief.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// One browser process backs the Fetcher; each Fetch opens and closes its own
// page, so the page is released on every exit path.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser     *rod.Browser
	launcher    *launcher.Launcher
	renderDelay time.Duration
	timeout     time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithRenderDelay sets the settle time after navigation before the DOM is
// serialized. Defaults to DefaultRenderDelay.
func WithRenderDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.renderDelay = d
	}
}

// WithTimeout sets the per-fetch timeout. Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an ERENDER error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		renderDelay: DefaultRenderDelay,
		timeout:     DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	lnchr := launcher.New().
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("disable-background-timer-throttling").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, pagebrief.Errorf(pagebrief.ERENDER, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, pagebrief.Errorf(pagebrief.ERENDER, "connecting to browser: %v", err)
	}

	f.browser = browser
	f.launcher = lnchr
	return f, nil
}

// SetRenderDelay adjusts the settle time after construction.
func (f *Fetcher) SetRenderDelay(d time.Duration) {
	f.renderDelay = d
}

// Fetch navigates to the URL, waits for rendering to settle, and returns
// the serialized DOM.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout+f.renderDelay)
	defer cancel()

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", pagebrief.Errorf(pagebrief.ERENDER, "opening page for %s: %v", url, err)
	}
	defer page.Close()

	// Bind context so every subsequent operation honors cancellation.
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", pagebrief.Errorf(pagebrief.ERENDER, "navigating to %s: %v", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", pagebrief.Errorf(pagebrief.ERENDER, "waiting for %s to load: %v", url, err)
	}

	if f.renderDelay > 0 {
		select {
		case <-ctx.Done():
			return "", pagebrief.Errorf(pagebrief.ETIMEOUT, "rendering %s: %v", url, ctx.Err())
		case <-time.After(f.renderDelay):
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", pagebrief.Errorf(pagebrief.ERENDER, "serializing %s: %v", url, err)
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}
