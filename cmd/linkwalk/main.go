package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkwalk"
	"github.com/fwojciec/linkwalk/bloom"
	"github.com/fwojciec/linkwalk/crawl"
	"github.com/fwojciec/linkwalk/goquery"
	"github.com/fwojciec/linkwalk/html"
	lwhttp "github.com/fwojciec/linkwalk/http"
	lwslog "github.com/fwojciec/linkwalk/slog"
	"github.com/fwojciec/linkwalk/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened only when --db is given.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkwalk"),
		kong.Description("Crawl a site breadth-first from a seed URL under a global request budget"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no seed URL provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if err := cli.validate(); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var fetcher linkwalk.Fetcher = lwhttp.NewFetcher(
		lwhttp.WithTimeout(cli.Timeout),
		lwhttp.WithUserAgent(cli.UserAgent),
	)
	var extractor linkwalk.LinkExtractor
	switch cli.Parser {
	case "goquery":
		extractor = goquery.NewExtractor(cli.Selector)
	default:
		extractor = html.NewExtractor()
	}
	if cli.Debug {
		fetcher = lwslog.NewLoggingFetcher(fetcher, logger)
		extractor = lwslog.NewLoggingExtractor(extractor, logger)
	}
	defer fetcher.Close()

	crawler := crawl.NewCrawler(fetcher, extractor)
	crawler.Budget = cli.MaxRequests
	crawler.Concurrency = cli.Concurrency
	crawler.MaxOutcomes = cli.MaxOutcomes
	crawler.AllowHTTPS = cli.AllowHTTPS
	crawler.Logger = logger
	if cli.Rate > 0 {
		crawler.Limiter = crawl.NewRequestLimiter(cli.Rate)
	}
	if cli.Dedup == "bloom" {
		crawler.Frontier = bloom.NewFrontier(0, 0)
	}
	deps.Crawler = crawler

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		var crawls linkwalk.CrawlService = sqlite.NewCrawlService(m.DB)
		if cli.Debug {
			crawls = lwslog.NewLoggingCrawlService(crawls, logger)
		}
		deps.Crawls = crawls
	}

	cmd := &CrawlCmd{
		URL:    cli.URL,
		Budget: cli.MaxRequests,
	}

	return cmd.Run(deps)
}
