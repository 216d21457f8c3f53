package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/meetparse"
	"golang.org/x/time/rate"
)

var _ meetparse.DomainLimiter = (*DomainLimiter)(nil)

// DefaultRequestsPerSecond is the per-host request rate used by harvests.
const DefaultRequestsPerSecond = 2

// DomainLimiter rate limits requests per host with token buckets, so pages
// on different hosts are fetched concurrently while each host sees at most
// rps requests per second.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter. Each host gets a burst of 1.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiter(domain).Wait(ctx)
}

func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.limiters[domain]
	if !ok {
		l = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = l
	}
	return l
}
