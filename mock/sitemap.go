package mock

import (
	"context"

	"github.com/fwojciec/meetparse"
)

var _ meetparse.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of meetparse.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *meetparse.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *meetparse.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
