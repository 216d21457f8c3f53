// Package bloom remembers which meeting page URLs a harvest has already
// queued, using a Bloom filter.
package bloom

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter records page URLs. It is safe for concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether url was recorded before and records it.
// URLs differing only by fragment are the same page.
func (f *Filter) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestOrAddString(pageKey(url))
}

// Test reports whether url might have been recorded.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestString(pageKey(url))
}

// EstimatedCount returns the approximate number of recorded URLs.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}

func pageKey(url string) string {
	key, _, _ := strings.Cut(url, "#")
	return key
}
