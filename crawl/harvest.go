// Package crawl harvests meeting pages: it fetches each page, extracts
// its meeting record and stores the classifiable ones.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/meetparse"
	"github.com/fwojciec/meetparse/bloom"
	"github.com/fwojciec/meetparse/xxhash"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultConcurrency is the number of pages fetched at once.
	DefaultConcurrency = 4

	// dedupFalsePositiveRate is the acceptable rate of distinct URLs
	// mistaken for duplicates.
	dedupFalsePositiveRate = 0.0001
)

// Harvester fetches, parses and stores meeting pages.
type Harvester struct {
	Fetcher     meetparse.Fetcher
	Parser      meetparse.PageParser
	Meetings    meetparse.MeetingWriter
	RateLimiter meetparse.DomainLimiter // optional
	Logger      *slog.Logger            // optional
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a harvest.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a harvest.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Title     string
	Error     error
}

// ProgressFunc is a callback for reporting harvest progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	meeting  *meetparse.Meeting
	err      error
}

// Harvest processes urls and stores every classifiable meeting. Duplicate
// URLs are processed once. Meetings are stored in input order.
func (h *Harvester) Harvest(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	urls = dedup(urls)
	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := h.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(urls)
	notify(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan pageResult, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- h.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var (
		completed atomic.Int64
		result    Result
	)
	results := make([]pageResult, total)
	for r := range resultCh {
		n := int(completed.Add(1))
		results[r.position] = r

		event := ProgressEvent{Completed: n, Total: total, URL: r.url}
		switch {
		case r.err != nil:
			result.Failed++
			event.Type = ProgressFailed
			event.Error = r.err
		case !r.meeting.Valid():
			result.Skipped++
			event.Type = ProgressSkipped
		default:
			event.Type = ProgressCompleted
			event.Title = r.meeting.Title
		}
		notify(progress, event)
	}

	for _, r := range results {
		if r.err != nil || !r.meeting.Valid() {
			continue
		}
		if err := h.Meetings.CreateMeeting(ctx, r.meeting); err != nil {
			h.logger().Warn("store meeting failed", "url", r.url, "err", err)
			result.Failed++
			continue
		}
		result.Saved++
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	if err := ctx.Err(); err != nil {
		return &result, err
	}
	return &result, nil
}

// processURL fetches and parses a single page.
func (h *Harvester) processURL(ctx context.Context, position int, rawURL string) pageResult {
	result := pageResult{position: position, url: rawURL}

	if h.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			result.err = meetparse.Errorf(meetparse.EINVALID, "invalid page URL: %v", err)
			return result
		}
		if err := h.RateLimiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := h.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, h.Fetcher.Fetch, h.logger(), delays)
	if err != nil {
		result.err = err
		return result
	}

	m, err := h.Parser.Parse(html)
	if err != nil {
		result.err = err
		return result
	}
	if m.Valid() {
		m.SourceURL = rawURL
		m.ContentHash = xxhash.ContentHash(m.Details)
	}
	result.meeting = m
	return result
}

func (h *Harvester) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return h.Logger
}

// dedup drops repeated URLs, keeping the first occurrence.
func dedup(urls []string) []string {
	seen := bloom.NewFilter(uint(len(urls)), dedupFalsePositiveRate)
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen.Seen(u) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
