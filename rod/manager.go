package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of pages rendered by one browser process
// before it is replaced.
const DefaultMaxPages = 75

// BrowserManager owns a headless Chrome process and replaces it after a
// fixed number of pages. Chrome's memory use grows with every page it
// renders and does not return to baseline after pages are closed.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	maxPages int
	closed   bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets how many pages a browser renders before it is replaced.
// Values below one are ignored.
func WithMaxPages(n int) ManagerOption {
	return func(m *BrowserManager) {
		if n > 0 {
			m.maxPages = n
		}
	}
}

// NewBrowserManager launches a headless Chrome browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	m := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(m)
	}

	browser, l, err := launch()
	if err != nil {
		return nil, err
	}
	m.browser, m.launcher = browser, l
	return m, nil
}

// Acquire returns the browser to render the next page with and counts the
// page against the current process. A replacement is launched first when
// the current process has reached its page limit; if that launch fails the
// current process keeps serving.
func (m *BrowserManager) Acquire() (*rod.Browser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, errClosed
	}

	if m.pages >= m.maxPages {
		if browser, l, err := launch(); err == nil {
			_ = m.browser.Close()
			m.launcher.Kill()
			m.browser, m.launcher, m.pages = browser, l, 0
		}
	}

	m.pages++
	return m.browser, nil
}

// LauncherPID returns the process ID of the current browser process, or
// zero once the manager is closed.
func (m *BrowserManager) LauncherPID() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.launcher == nil {
		return 0
	}
	return m.launcher.PID()
}

// Close shuts the browser down. Close is safe to call multiple times.
func (m *BrowserManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	err := m.browser.Close()
	m.launcher.Kill()
	m.browser, m.launcher = nil, nil
	return err
}

// launch starts a browser process and connects to it.
func launch() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return browser, l, nil
}
