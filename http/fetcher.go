// Package http retrieves meeting pages and sitemaps over plain HTTP.
// Wiki pages are static, so no JavaScript rendering is needed.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/meetparse"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodyBytes caps the size of a fetched page.
const DefaultMaxBodyBytes = 5 << 20

// DefaultUserAgent identifies requests made by meetparse.
const DefaultUserAgent = "meetparse/1.0"

// Ensure Fetcher implements meetparse.Fetcher at compile time.
var _ meetparse.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page HTML using HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	maxBytes  int64
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBodyBytes sets the largest page body that will be read.
// Larger bodies fail with EINVALID.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		maxBytes:  DefaultMaxBodyBytes,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(body)) > f.maxBytes {
		return "", meetparse.Errorf(meetparse.EINVALID, "page %s larger than %d bytes", url, f.maxBytes)
	}

	return string(body), nil
}

// Close releases resources. It is a no-op for the HTTP fetcher.
func (f *Fetcher) Close() error {
	return nil
}
