// Package crawl implements the breadth-first crawl loop. A single coordinator
// goroutine owns the frontier and the request counter; a bounded pool of
// workers fetches and parses pages and reports back over a channel.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"sync/atomic"
	"time"

	"github.com/fwojciec/linkwalk"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBudget is the number of fetches a crawl may schedule.
	DefaultBudget = 10
	// DefaultConcurrency is the number of workers fetching in parallel.
	DefaultConcurrency = 8
	// OutcomeBufferSize is the capacity of the channel carrying worker attempts.
	OutcomeBufferSize = 1024
)

// Crawler crawls outward from a seed URL, following links breadth-first
// until its request budget is spent.
//
// Budget is taken literally: a zero Budget schedules nothing. Use NewCrawler
// for the default budget and concurrency.
type Crawler struct {
	Fetcher   linkwalk.Fetcher
	Extractor linkwalk.LinkExtractor

	// Frontier deduplicates discovered URLs. Nil uses an exact in-memory Frontier.
	Frontier linkwalk.Frontier

	// Limiter, if set, is waited on before every fetch.
	Limiter linkwalk.RequestLimiter

	// Recorder, if set, receives every successful outcome.
	Recorder linkwalk.OutcomeRecorder

	Budget      int
	Concurrency int

	// MaxOutcomes stops the crawl after that many successful outcomes. Zero means no cap.
	MaxOutcomes int

	// AllowHTTPS admits https links alongside http ones.
	AllowHTTPS bool

	Logger *slog.Logger
}

// NewCrawler returns a Crawler with the default budget and concurrency.
func NewCrawler(fetcher linkwalk.Fetcher, extractor linkwalk.LinkExtractor) *Crawler {
	return &Crawler{
		Fetcher:     fetcher,
		Extractor:   extractor,
		Budget:      DefaultBudget,
		Concurrency: DefaultConcurrency,
	}
}

// Result summarizes a finished crawl.
type Result struct {
	// Scheduled is the request counter: every scheduling decision, including
	// candidates charged after the budget ran out.
	Scheduled int

	// Spawned is the number of fetches handed to workers. Never exceeds the budget.
	Spawned int

	Outcomes   int
	Skipped    int
	Dropped    int
	Discovered int

	// Bytes is the total body size of all successful outcomes.
	Bytes int

	Duration time.Duration
}

// EventType identifies a ProgressEvent.
type EventType int

const (
	EventFetching EventType = iota
	EventInvalidLink
	EventSkipScheme
	EventBatch
	EventSkipped
	EventBudgetExhausted
	EventFinished
)

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type EventType
	URL  string

	// Found and New are set on EventBatch.
	Found int
	New   int

	Reason linkwalk.SkipReason
	Err    error
}

// ProgressFunc is a callback for reporting crawl progress. It is always
// called from the coordinator goroutine.
type ProgressFunc func(event ProgressEvent)

// run holds the state owned by the coordinator loop of one crawl.
type run struct {
	c         *Crawler
	ctx       context.Context
	frontier  linkwalk.Frontier
	progress  ProgressFunc
	queue     []string
	exhausted bool
	result    Result
}

// Run crawls from seed and returns once no work is left, MaxOutcomes is
// reached or ctx is canceled. An invalid seed or budget is returned as an
// error before anything is fetched. On cancellation the partial Result is
// returned together with the context error.
func (c *Crawler) Run(ctx context.Context, seed string, progress ProgressFunc) (*Result, error) {
	begin := time.Now()

	if c.Budget < 0 {
		return nil, linkwalk.Errorf(linkwalk.EINVALID, "budget must be non-negative, got %d", c.Budget)
	}
	seedURL, err := linkwalk.Normalize(nil, seed)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if err := linkwalk.ClassifyScheme(seedURL, c.AllowHTTPS); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	frontier := c.Frontier
	if frontier == nil {
		frontier = NewFrontier()
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	r := &run{
		c:        c,
		ctx:      ctx,
		frontier: frontier,
		progress: progress,
	}

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan string)
	results := make(chan linkwalk.Attempt, OutcomeBufferSize)
	var dropped atomic.Int64

	g, gctx := errgroup.WithContext(workCtx)
	for range concurrency {
		g.Go(func() error {
			for u := range jobs {
				attempt := c.visit(gctx, u)
				select {
				case results <- attempt:
				case <-gctx.Done():
					dropped.Add(1)
					c.logger().Warn("attempt dropped", "url", u, "reason", linkwalk.SkipSend.String())
				}
			}
			return nil
		})
	}

	frontier.Insert(seedURL.String(), nil)
	r.schedule(seedURL.String())

	inFlight := 0
loop:
	for {
		if len(r.queue) == 0 && inFlight == 0 {
			break
		}
		if c.MaxOutcomes > 0 && r.result.Outcomes >= c.MaxOutcomes {
			break
		}

		// A nil channel disables the dispatch case while the queue is empty.
		var dispatch chan<- string
		var next string
		if len(r.queue) > 0 {
			dispatch = jobs
			next = r.queue[0]
		}

		select {
		case <-ctx.Done():
			break loop
		case dispatch <- next:
			r.queue = r.queue[1:]
			inFlight++
			r.result.Spawned++
			r.emit(ProgressEvent{Type: EventFetching, URL: next})
		case attempt := <-results:
			inFlight--
			r.handleAttempt(attempt)
		}
	}

	// Stop workers. Attempts still buffered are discarded unprocessed.
	cancel()
	close(jobs)
	_ = g.Wait()
	close(results)
	for attempt := range results {
		c.logger().Debug("attempt discarded", "url", attempt.URL)
	}

	r.result.Dropped = int(dropped.Load())
	r.result.Discovered = frontier.Len()
	r.result.Duration = time.Since(begin)
	r.emit(ProgressEvent{Type: EventFinished})

	if err := ctx.Err(); err != nil {
		return &r.result, fmt.Errorf("crawl interrupted: %w", err)
	}
	return &r.result, nil
}

// schedule applies the budget rule to a single candidate. The counter is
// charged even when the budget is already spent; such candidates are never
// queued.
func (r *run) schedule(u string) {
	if r.result.Scheduled >= r.c.Budget {
		r.result.Scheduled++
		if !r.exhausted {
			r.exhausted = true
			r.emit(ProgressEvent{Type: EventBudgetExhausted, URL: u})
		}
		return
	}
	r.result.Scheduled++
	r.queue = append(r.queue, u)
}

func (r *run) handleAttempt(attempt linkwalk.Attempt) {
	if !attempt.OK() {
		r.result.Skipped++
		r.emit(ProgressEvent{
			Type:   EventSkipped,
			URL:    attempt.URL,
			Reason: attempt.Reason,
			Err:    attempt.Err,
		})
		return
	}

	r.result.Outcomes++
	r.result.Bytes += attempt.Outcome.Bytes
	if r.c.Recorder != nil {
		if err := r.c.Recorder.RecordOutcome(r.ctx, attempt.Outcome); err != nil {
			r.c.logger().Error("record outcome", "url", attempt.URL, "err", err)
		}
	}
	r.handleOutcome(attempt.Outcome)
}

// handleOutcome normalizes, filters and deduplicates the links of one page
// and schedules the survivors in sorted order.
func (r *run) handleOutcome(o *linkwalk.Outcome) {
	base, err := url.Parse(o.URL)
	if err != nil {
		r.c.logger().Error("outcome url", "url", o.URL, "err", err)
		return
	}

	var fresh []string
	for _, raw := range o.Links {
		u, err := linkwalk.Normalize(base, raw)
		if err != nil {
			r.emit(ProgressEvent{Type: EventInvalidLink, URL: raw, Err: err})
			continue
		}
		if err := linkwalk.ClassifyScheme(u, r.c.AllowHTTPS); err != nil {
			r.emit(ProgressEvent{Type: EventSkipScheme, URL: u.String(), Err: err})
			continue
		}
		s := u.String()
		if r.frontier.Insert(s, o.Links) {
			fresh = append(fresh, s)
		}
	}

	slices.Sort(fresh)
	fresh = slices.Compact(fresh)

	r.emit(ProgressEvent{
		Type:  EventBatch,
		URL:   o.URL,
		Found: len(o.Links),
		New:   len(fresh),
	})

	for _, u := range fresh {
		r.schedule(u)
	}
}

func (r *run) emit(event ProgressEvent) {
	if r.progress != nil {
		r.progress(event)
	}
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
