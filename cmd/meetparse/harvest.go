package main

import (
	"fmt"

	"github.com/fwojciec/meetparse"
	"github.com/fwojciec/meetparse/crawl"
)

const progressURLWidth = 60

// Run executes the harvest command.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	filter, err := meetparse.NewURLFilter(c.Filter, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", meetparse.ErrorMessage(err))
		return err
	}

	urls, err := c.pages(deps, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", meetparse.ErrorMessage(err))
		return err
	}

	if c.Preview {
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No meeting pages found.")
		return nil
	}

	if c.Concurrency > 0 {
		deps.Harvester.Concurrency = c.Concurrency
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d pages\n", event.Total)
		case crawl.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s: not a meeting page\n", crawl.TruncateURL(event.URL, progressURLWidth))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", crawl.TruncateURL(event.URL, progressURLWidth), event.Error)
		}
	}

	result, err := deps.Harvester.Harvest(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error harvesting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  %s\n", crawl.FormatResult(result))
	return nil
}

// pages returns the meeting page URLs to harvest.
func (c *HarvestCmd) pages(deps *Dependencies, filter *meetparse.URLFilter) ([]string, error) {
	if !c.Sitemap {
		var urls []string
		for _, u := range c.URLs {
			if filter.Match(u) {
				urls = append(urls, u)
			}
		}
		return urls, nil
	}

	var urls []string
	for _, site := range c.URLs {
		found, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, site, filter)
		if err != nil {
			return nil, err
		}
		urls = append(urls, found...)
	}
	return urls, nil
}
