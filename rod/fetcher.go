// Package rod provides a wpsignals.Fetcher that renders pages in headless
// Chrome via go-rod, so scripts enqueued at runtime are part of the
// analyzed DOM.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/wpsignals"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page render.
const DefaultFetchTimeout = 10 * time.Second

// serializeJS returns the doctype declaration followed by the rendered
// root element. outerHTML alone drops the doctype.
const serializeJS = `() => {
	const dt = document.doctype ? new XMLSerializer().serializeToString(document.doctype) : '';
	return dt + document.documentElement.outerHTML;
}`

var errClosed = wpsignals.Errorf(wpsignals.EINVALID, "fetcher is closed")

// Ensure Fetcher implements wpsignals.Fetcher at compile time.
var _ wpsignals.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager  *BrowserManager
	timeout  time.Duration
	maxPages int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout for a single page render.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBrowserMaxPages sets how many pages a browser process renders before
// it is replaced. Defaults to DefaultMaxPages.
func WithBrowserMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(WithMaxPages(f.maxPages))
	if err != nil {
		return nil, err
	}
	f.manager = manager
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML, including the
// doctype declaration when the page has one.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, err := f.manager.Acquire()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	res, err := page.Eval(serializeJS)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

// LauncherPID returns the process ID of the browser process.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
