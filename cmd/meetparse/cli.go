package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/meetparse"
	"github.com/fwojciec/meetparse/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Fetcher   meetparse.Fetcher
	Parser    meetparse.PageParser
	Sitemaps  meetparse.SitemapService
	Meetings  meetparse.MeetingService
	Converter meetparse.Converter
	Harvester *crawl.Harvester
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Log parsing and fetch details to stderr"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Browser bool          `short:"b" help:"Render pages in headless Chrome before parsing"`

	RecycleAfter int `name:"recycle-after" default:"75" help:"Restart Chrome after this many pages with --browser (0 never)"`

	Parse   ParseCmd   `cmd:"" help:"Extract meeting metadata from an HTML file or URL"`
	Harvest HarvestCmd `cmd:"" help:"Fetch, parse and store meeting pages"`
	List    ListCmd    `cmd:"" help:"List stored meetings"`
	Show    ShowCmd    `cmd:"" help:"Show a stored meeting as JSON"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored meeting"`
	Export  ExportCmd  `cmd:"" help:"Write stored meetings as Markdown files"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Source string `arg:"" help:"HTML file path or http(s) URL"`
}

// HarvestCmd is the "harvest" subcommand.
type HarvestCmd struct {
	URLs        []string `arg:"" name:"url" help:"Meeting page URLs, or site URLs with --sitemap"`
	Sitemap     bool     `short:"s" help:"Discover meeting pages from each site's sitemap"`
	Preview     bool     `short:"p" help:"Show URLs without harvesting"`
	Filter      []string `short:"F" name:"filter" help:"Only harvest URLs matching regex (repeatable)"`
	Exclude     []string `short:"x" name:"exclude" help:"Skip URLs matching regex (repeatable)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64  `name:"rps" default:"2" help:"Requests per second per host"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Venue string `help:"Only meetings whose venue contains this text"`
	Limit int    `short:"n" help:"Maximum number of meetings to show"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Meeting ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Meeting ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir   string `arg:"" help:"Output directory"`
	Venue string `help:"Only meetings whose venue contains this text"`
}
