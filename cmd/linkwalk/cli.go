package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/linkwalk"
	"github.com/fwojciec/linkwalk/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Crawler *crawl.Crawler

	// Crawls is nil unless the crawl is recorded.
	Crawls linkwalk.CrawlService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL         string        `arg:"" help:"Seed URL to start crawling from"`
	MaxRequests int           `arg:"" optional:"" default:"10" help:"Maximum number of fetches to schedule"`
	Concurrency int           `short:"c" default:"8" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	MaxOutcomes int           `name:"max-outcomes" default:"0" help:"Stop after this many fetched pages (0 for no limit)"`
	Parser      string        `default:"html" enum:"html,goquery" help:"Link extractor: html or goquery"`
	Selector    string        `default:"a[href]" help:"CSS selector used by the goquery parser"`
	Dedup       string        `default:"exact" enum:"exact,bloom" help:"Frontier: exact or bloom"`
	AllowHTTPS  bool          `name:"allow-https" help:"Follow https links as well as http"`
	Rate        float64       `default:"0" help:"Global request rate limit per second (0 for no limit)"`
	UserAgent   string        `name:"user-agent" help:"User-Agent header to send"`
	DB          string        `name:"db" help:"Record the crawl in a SQLite database at this path"`
	Debug       bool          `help:"Log every fetch and parse to stderr"`
}

// validate checks flag values kong cannot check by itself.
func (c *CLI) validate() error {
	if c.MaxRequests < 0 {
		return linkwalk.Errorf(linkwalk.EINVALID, "max-requests must be non-negative, got %d", c.MaxRequests)
	}
	if c.Concurrency <= 0 {
		return linkwalk.Errorf(linkwalk.EINVALID, "concurrency must be positive, got %d", c.Concurrency)
	}
	if c.MaxOutcomes < 0 {
		return linkwalk.Errorf(linkwalk.EINVALID, "max-outcomes must be non-negative, got %d", c.MaxOutcomes)
	}
	seed, err := linkwalk.Normalize(nil, c.URL)
	if err != nil {
		return err
	}
	return linkwalk.ClassifyScheme(seed, c.AllowHTTPS)
}

// CrawlCmd runs a crawl and reports its progress.
type CrawlCmd struct {
	URL    string
	Budget int
}
