package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/linkwalk"
	"github.com/fwojciec/linkwalk/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	var record *linkwalk.Crawl
	if deps.Crawls != nil {
		record = &linkwalk.Crawl{SeedURL: c.URL, Budget: c.Budget}
		if err := deps.Crawls.CreateCrawl(deps.Ctx, record); err != nil {
			return fmt.Errorf("failed to record crawl: %w", err)
		}
		deps.Crawler.Recorder = linkwalk.CrawlRecorder(deps.Crawls, record.ID)
	}

	// A nil result means the crawl never started; the caller reports err.
	result, err := deps.Crawler.Run(deps.Ctx, c.URL, c.progress(deps))
	if result != nil {
		fmt.Fprintf(deps.Stdout, "Fetched %d pages (%s), skipped %d, dropped %d\n",
			result.Outcomes, crawl.FormatBytes(result.Bytes), result.Skipped, result.Dropped)
		fmt.Fprintf(deps.Stdout, "Scheduled %d of budget %d, spawned %d, discovered %d URLs in %s\n",
			result.Scheduled, c.Budget, result.Spawned, result.Discovered, result.Duration.Round(time.Millisecond))
	}

	if record != nil {
		var stats linkwalk.Stats
		if result != nil {
			stats = linkwalk.Stats{
				Scheduled:  result.Scheduled,
				Spawned:    result.Spawned,
				Outcomes:   result.Outcomes,
				Skipped:    result.Skipped,
				Discovered: result.Discovered,
			}
		}
		// The crawl context may be canceled by now; the report is still written.
		ferr := deps.Crawls.FinishCrawl(context.WithoutCancel(deps.Ctx), record.ID, stats)
		switch {
		case ferr != nil && err == nil:
			err = fmt.Errorf("failed to finish crawl record: %w", ferr)
		case ferr != nil:
			fmt.Fprintf(deps.Stderr, "failed to finish crawl record: %v\n", ferr)
		default:
			fmt.Fprintf(deps.Stdout, "Recorded crawl %s\n", record.ID)
		}
	}

	return err
}

// progress prints crawl events the way the crawl reports them: fetches,
// skipped schemes and batches to stdout, failures to stderr.
func (c *CrawlCmd) progress(deps *Dependencies) crawl.ProgressFunc {
	return func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.EventFetching:
			fmt.Fprintf(deps.Stdout, "Fetching URL: %s\n", event.URL)
		case crawl.EventSkipScheme:
			fmt.Fprintf(deps.Stdout, "Skipping HTTPS/unrecognized-scheme: %s\n", event.URL)
		case crawl.EventInvalidLink:
			fmt.Fprintf(deps.Stderr, "Invalid URL %q: %s\n", event.URL, linkwalk.ErrorMessage(event.Err))
		case crawl.EventBatch:
			fmt.Fprintf(deps.Stdout, "Found %d links in %s, of which %d are new\n", event.Found, event.URL, event.New)
		case crawl.EventSkipped:
			fmt.Fprintf(deps.Stderr, "skip %s (%s): %v\n", event.URL, event.Reason, event.Err)
		case crawl.EventBudgetExhausted:
			fmt.Fprintf(deps.Stdout, "Request budget of %d exhausted\n", c.Budget)
		}
	}
}
