package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/meetparse"
	"github.com/fwojciec/meetparse/crawl"
	"github.com/fwojciec/meetparse/dateparser"
	"github.com/fwojciec/meetparse/goquery"
	"github.com/fwojciec/meetparse/htmltomarkdown"
	meethttp "github.com/fwojciec/meetparse/http"
	"github.com/fwojciec/meetparse/rod"
	meetslog "github.com/fwojciec/meetparse/slog"
	"github.com/fwojciec/meetparse/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	MeetingService meetparse.MeetingService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("meetparse"),
		kong.Description("Extract meeting metadata from wiki meeting pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'meetparse --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	logger := newLogger(stderr, cli.Verbose)
	deps.Logger = logger

	if needsFetcher(cmd, cli) {
		base, err := newFetcher(cli)
		if err != nil {
			fmt.Fprintf(stderr, "Hint: --browser needs Chrome or Chromium installed\n")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher := meetslog.NewLoggingFetcher(base, logger)
		defer fetcher.Close()
		deps.Fetcher = fetcher
	}
	deps.Parser = meetslog.NewLoggingPageParser(goquery.NewParser(
		goquery.WithDateParser(dateparser.NewParser()),
		goquery.WithLogger(logger),
	), logger)
	deps.Sitemaps = meetslog.NewLoggingSitemapService(meethttp.NewSitemapService(nil), logger)
	deps.Converter = htmltomarkdown.NewConverter()

	// Parsing a single page needs no storage.
	if cmd == "parse" {
		return kongCtx.Run(deps)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set MEETPARSE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.MeetingService = sqlite.NewMeetingService(m.DB)
	deps.Meetings = m.MeetingService

	if cmd == "harvest" && !cli.Harvest.Preview {
		deps.Harvester = &crawl.Harvester{
			Fetcher:     deps.Fetcher,
			Parser:      deps.Parser,
			Meetings:    meetslog.NewLoggingMeetingWriter(m.MeetingService, logger),
			RateLimiter: crawl.NewDomainLimiter(cli.Harvest.RPS),
			Logger:      logger,
			Concurrency: cli.Harvest.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// needsFetcher reports whether cmd downloads pages. Only then is a
// fetcher, and with --browser a Chrome process, started.
func needsFetcher(cmd string, cli *CLI) bool {
	switch cmd {
	case "parse":
		return isURL(cli.Parse.Source)
	case "harvest":
		return !cli.Harvest.Preview
	}
	return false
}

func newFetcher(cli *CLI) (meetparse.Fetcher, error) {
	if cli.Browser {
		return rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithRecycleAfter(cli.RecycleAfter),
		)
	}
	return meethttp.NewFetcher(meethttp.WithTimeout(cli.Timeout)), nil
}

// newLogger logs warnings to stderr, or everything down to debug when
// verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("MEETPARSE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "meetparse.db"
	}
	dir := filepath.Join(home, ".meetparse")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "meetparse.db")
}
