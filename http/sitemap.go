package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/meetparse"
)

// Ensure SitemapService implements meetparse.SitemapService.
var _ meetparse.SitemapService = (*SitemapService)(nil)

// SitemapService discovers meeting page URLs from sitemaps over HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs finds all page URLs from a site's sitemaps.
// Returns an empty slice (not nil) if no sitemap exists.
//
// When baseURL has a path (e.g., https://example.com/meetings/), only URLs
// under that path are returned.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *meetparse.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, meetparse.Errorf(meetparse.EINVALID, "invalid base URL: %v", err)
	}

	prefix := strings.TrimSuffix(base.Path, "/")
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}

	sitemaps, err := s.findSitemaps(ctx, root)
	if err != nil {
		return nil, err
	}

	w := &sitemapWalk{svc: s, visited: make(map[string]bool)}
	for _, sm := range sitemaps {
		if err := w.walk(ctx, sm); err != nil {
			return nil, err
		}
	}

	urls := []string{}
	seen := make(map[string]bool, len(w.urls))
	for _, u := range w.urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		if prefix != "" && !underPath(u, prefix) {
			continue
		}
		if !filter.Match(u) {
			continue
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// underPath reports whether rawURL's path is prefix or lies below it,
// respecting path segment boundaries.
func underPath(rawURL, prefix string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Path == prefix || strings.HasPrefix(u.Path, prefix+"/")
}

// findSitemaps reads Sitemap directives from robots.txt and falls back to
// /sitemap.xml when there are none.
func (s *SitemapService) findSitemaps(ctx context.Context, root *url.URL) ([]string, error) {
	robots := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if sitemaps, err := s.robotsSitemaps(ctx, robots); err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	ok, err := s.exists(ctx, fallback)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	return []string{fallback}, nil
}

func (s *SitemapService) robotsSitemaps(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	const directive = "sitemap:"
	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(strings.ToLower(line), directive) {
			continue
		}
		if loc := strings.TrimSpace(line[len(directive):]); loc != "" {
			sitemaps = append(sitemaps, loc)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return sitemaps, nil
}

// sitemapWalk collects page URLs from a tree of sitemaps and sitemap
// indexes, visiting each sitemap once.
type sitemapWalk struct {
	svc     *SitemapService
	visited map[string]bool
	urls    []string
}

func (w *sitemapWalk) walk(ctx context.Context, sitemapURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.visited[sitemapURL] {
		return nil
	}
	w.visited[sitemapURL] = true

	body, err := w.svc.get(ctx, sitemapURL)
	if err != nil {
		return err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return fmt.Errorf("parsing sitemap %s: %w", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("empty sitemap %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		for _, loc := range locs(root, "sitemap") {
			if err := w.walk(ctx, loc); err != nil {
				return err
			}
		}
		return nil
	}

	w.urls = append(w.urls, locs(root, "url")...)
	return nil
}

// locs returns the non-empty <loc> values of the given child elements.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}

func (s *SitemapService) exists(ctx context.Context, target string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}
