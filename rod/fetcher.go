// Package rod renders meeting pages in headless Chrome, for wikis that
// build their content with JavaScript.
package rod

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fwojciec/meetparse"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page render.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRecycleAfter is the number of pages a browser renders before it
// is replaced. Chrome's memory grows over a long harvest and does not
// shrink when pages close.
const DefaultRecycleAfter = 75

// Ensure Fetcher implements meetparse.Fetcher at compile time.
var _ meetparse.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// It is safe for concurrent use.
type Fetcher struct {
	timeout      time.Duration
	recycleAfter int

	mu      sync.Mutex
	current *session
	closed  bool
}

// session is one launched browser. A retired session is closed once the
// last page rendering in it finishes.
type session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	pages    int
	active   int
	retired  bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout overrides DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRecycleAfter overrides DefaultRecycleAfter. Zero or less keeps one
// browser for the lifetime of the Fetcher.
func WithRecycleAfter(pages int) Option {
	return func(f *Fetcher) {
		f.recycleAfter = pages
	}
}

// NewFetcher launches a headless browser. Close must be called when the
// Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		recycleAfter: DefaultRecycleAfter,
	}
	for _, opt := range opts {
		opt(f)
	}

	s, err := launch()
	if err != nil {
		return nil, err
	}
	f.current = s
	return f, nil
}

// Fetch navigates to url and returns the HTML once the page has loaded.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s, err := f.acquire()
	if err != nil {
		return "", err
	}
	defer f.release(s)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}
	return page.HTML()
}

// acquire returns the session the next page renders in, replacing the
// current one when it has rendered recycleAfter pages. If the
// replacement cannot be launched the old browser keeps serving.
func (f *Fetcher) acquire() (*session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, meetparse.Errorf(meetparse.EINVALID, "fetcher is closed")
	}

	if f.recycleAfter > 0 && f.current.pages >= f.recycleAfter {
		if next, err := launch(); err == nil {
			old := f.current
			old.retired = true
			if old.active == 0 {
				old.close()
			}
			f.current = next
		}
	}

	f.current.pages++
	f.current.active++
	return f.current, nil
}

func (f *Fetcher) release(s *session) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s.active--
	if s.retired && s.active == 0 {
		s.close()
	}
}

// Close releases browser resources. It is safe to call more than once.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	f.current.retired = true
	return f.current.close()
}

// LauncherPID returns the process ID of the current browser launcher,
// or 0 once the Fetcher is closed.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return 0
	}
	return f.current.launcher.PID()
}

// launch starts a browser that keeps rendering while in the background.
func launch() (*session, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return &session{browser: browser, launcher: l}, nil
}

func (s *session) close() error {
	if s.browser == nil {
		return nil
	}
	err := s.browser.Close()
	s.launcher.Kill()
	s.browser = nil
	return err
}
